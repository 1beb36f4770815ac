package gosiebsp

import (
	"image/color"
	"os"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the file looked up when no --config flag is given.
const ConfigFileName = "gosiebsp.yaml"

type (
	// Config is the content of gosiebsp.yaml. Missing fields keep their
	// defaults.
	Config struct {
		Window WindowConfig `yaml:"window"`
		Camera CameraConfig `yaml:"camera"`
		Render RenderConfig `yaml:"render"`
		Light  LightConfig  `yaml:"light"`
		Sphere SphereConfig `yaml:"sphere"`
		Log    LogConfig    `yaml:"log"`
	}

	WindowConfig struct {
		Width  int    `yaml:"width"`
		Height int    `yaml:"height"`
		Title  string `yaml:"title"`
	}

	CameraConfig struct {
		Position Vector3 `yaml:"position"`
		Front    Vector3 `yaml:"front"`
		Up       Vector3 `yaml:"up"`
		// Fov is in degrees.
		Fov  float64 `yaml:"fov"`
		Near float64 `yaml:"near"`
		Far  float64 `yaml:"far"`
		// MoveSpeed is in world units per frame, RotateSpeed in radians per
		// frame.
		MoveSpeed   float64 `yaml:"move_speed"`
		RotateSpeed float64 `yaml:"rotate_speed"`
	}

	RenderConfig struct {
		Mode      string `yaml:"mode"`
		Fill      bool   `yaml:"fill"`
		Shading   bool   `yaml:"shading"`
		NoOutline bool   `yaml:"no_outline"`
	}

	LightConfig struct {
		Position    Vector3  `yaml:"position"`
		Color       [3]uint8 `yaml:"color"`
		Attenuation float64  `yaml:"attenuation"`
	}

	SphereConfig struct {
		Radius   int    `yaml:"radius"`
		Scale    int    `yaml:"scale"`
		Material string `yaml:"material"`
	}

	LogConfig struct {
		Level  string `yaml:"level"`
		Indent bool   `yaml:"indent"`
	}
)

func DefaultConfig() Config {
	cam := DefaultCamera()
	light := DefaultLight()

	return Config{
		Window: WindowConfig{
			Width:  1000,
			Height: 800,
			Title:  "gosiebsp",
		},
		Camera: CameraConfig{
			Position:    cam.Position,
			Front:       cam.Front,
			Up:          cam.Up,
			Fov:         cam.Fov,
			Near:        cam.Near,
			Far:         cam.Far,
			MoveSpeed:   0.08,
			RotateSpeed: 0.05,
		},
		Render: RenderConfig{
			Mode: string(RenderModeBSP),
		},
		Light: LightConfig{
			Position:    light.Position,
			Color:       [3]uint8{light.Color.R, light.Color.G, light.Color.B},
			Attenuation: light.Attenuation,
		},
		Sphere: SphereConfig{
			Radius:   SphereFast.Radius,
			Scale:    SphereFast.Scale,
			Material: MaterialSilver.Name,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadConfig reads path over the defaults and validates the result. An empty
// path returns the defaults.
func LoadConfig(path string) (Config, error) {
	conf := DefaultConfig()
	if path == "" {
		return conf, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.New("reading config failed").
			WithTag("path", path).
			Wrap(err)
	}

	if err := yaml.Unmarshal(data, &conf); err != nil {
		return Config{}, errors.New("parsing config failed").
			WithType(ErrTypeInvalidConfig).
			WithTag("path", path).
			Wrap(err)
	}

	if err := conf.Validate(); err != nil {
		return Config{}, errors.New("invalid config").
			WithType(ErrTypeInvalidConfig).
			WithTag("path", path).
			Wrap(err)
	}
	return conf, nil
}

// Validate returns the first invalid field.
func (c Config) Validate() error {
	invalid := func(field string, value any) error {
		return errors.New("invalid config value").
			WithType(ErrTypeInvalidConfig).
			WithTag("field", field).
			WithTag("value", value)
	}

	switch {
	case c.Window.Width <= 0:
		return invalid("window.width", c.Window.Width)
	case c.Window.Height <= 0:
		return invalid("window.height", c.Window.Height)
	case c.Camera.Fov < minFov || c.Camera.Fov > maxFov:
		return invalid("camera.fov", c.Camera.Fov)
	case c.Camera.Near <= 0:
		return invalid("camera.near", c.Camera.Near)
	case c.Camera.Far <= c.Camera.Near:
		return invalid("camera.far", c.Camera.Far)
	case c.Camera.Front.IsZero():
		return invalid("camera.front", c.Camera.Front.String())
	case c.Camera.Up.IsZero():
		return invalid("camera.up", c.Camera.Up.String())
	case c.Light.Attenuation < MinAttenuation || c.Light.Attenuation > MaxAttenuation:
		return invalid("light.attenuation", c.Light.Attenuation)
	case c.Sphere.Radius < 1:
		return invalid("sphere.radius", c.Sphere.Radius)
	case c.Sphere.Scale < 1:
		return invalid("sphere.scale", c.Sphere.Scale)
	}

	if _, err := ParseRenderMode(c.Render.Mode); err != nil {
		return err
	}
	if _, err := MaterialByName(c.Sphere.Material); err != nil {
		return err
	}
	return nil
}

func (c Config) NewCamera() Camera {
	return Camera{
		Position: c.Camera.Position,
		Front:    c.Camera.Front,
		Up:       c.Camera.Up,
		Fov:      c.Camera.Fov,
		Near:     c.Camera.Near,
		Far:      c.Camera.Far,
	}
}

func (c Config) Viewport() Viewport {
	return Viewport{Width: c.Window.Width, Height: c.Window.Height}
}

func (c Config) NewLight() Light {
	return Light{
		Position:    c.Light.Position,
		Color:       color.RGBA{R: c.Light.Color[0], G: c.Light.Color[1], B: c.Light.Color[2], A: 255},
		Attenuation: c.Light.Attenuation,
	}
}

func (c Config) SphereQuality() SphereQuality {
	return SphereQuality{Radius: c.Sphere.Radius, Scale: c.Sphere.Scale}
}

func (c Config) PaintStyle() PaintStyle {
	return PaintStyle{
		Fill:      c.Render.Fill,
		Shading:   c.Render.Shading,
		NoOutline: c.Render.NoOutline,
	}
}
