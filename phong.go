package gosiebsp

import (
	"image"
	"image/color"
	"math"
	"runtime"
	"sort"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Material holds the reflection coefficients of the Phong model.
type Material struct {
	Name         string
	Ambient      float64 // ka
	Specular     float64 // ks
	Diffuse      float64 // kd
	Shininess    float64 // n, the exponent on cos(alpha)
	AmbientColor color.RGBA
}

var (
	MaterialSilver = Material{
		Name:         "silver",
		Ambient:      0.19225,
		Specular:     0.508273,
		Diffuse:      0.50754,
		Shininess:    51.2,
		AmbientColor: color.RGBA{R: 112, G: 112, B: 112, A: 255},
	}
	MaterialPaint = Material{
		Name:         "paint",
		Ambient:      0.1,
		Specular:     0.5,
		Diffuse:      0.6,
		Shininess:    64,
		AmbientColor: color.RGBA{R: 235, G: 20, B: 20, A: 255},
	}
	MaterialWood = Material{
		Name:         "wood",
		Ambient:      0.05,
		Specular:     0.2,
		Diffuse:      0.6,
		Shininess:    32,
		AmbientColor: color.RGBA{R: 139, G: 69, B: 19, A: 255},
	}
	MaterialPlastic = Material{
		Name:         "plastic",
		Ambient:      0.2,
		Specular:     0.3,
		Diffuse:      0.7,
		Shininess:    128,
		AmbientColor: color.RGBA{R: 10, G: 165, B: 180, A: 255},
	}
)

// Materials in cycling order.
var Materials = []Material{MaterialSilver, MaterialPaint, MaterialWood, MaterialPlastic}

func MaterialByName(name string) (Material, error) {
	for _, m := range Materials {
		if m.Name == name {
			return m, nil
		}
	}

	names := make([]string, len(Materials))
	for i, m := range Materials {
		names[i] = m.Name
	}
	sort.Strings(names)
	return Material{}, errors.New("unknown material").
		WithType(ErrTypeInvalidConfig).
		WithTag("material", name).
		WithTag("known", names)
}

// NextMaterial returns the material after m, wrapping around.
func NextMaterial(m Material) Material {
	for i, candidate := range Materials {
		if candidate.Name == m.Name {
			return Materials[(i+1)%len(Materials)]
		}
	}
	return Materials[0]
}

const (
	MinAttenuation = 0.0
	MaxAttenuation = 0.9
)

// Light is a point light in image coordinates: x right, y down, z towards
// the viewer.
type Light struct {
	Position    Vector3
	Color       color.RGBA
	Attenuation float64
}

func DefaultLight() Light {
	return Light{
		Position:    NewVector3(300, 200, 100),
		Color:       color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Attenuation: 0.4,
	}
}

// AdjustAttenuation adds delta, keeping the result in [0, 0.9].
func (l Light) AdjustAttenuation(delta float64) Light {
	l.Attenuation = math.Max(MinAttenuation, math.Min(MaxAttenuation, l.Attenuation+delta))
	return l
}

func (l Light) Move(dx, dy float64) Light {
	l.Position = l.Position.Add(NewVector3(dx, dy, 0))
	return l
}

// Phong lights a surface point. normal and lightDir are expected to be unit
// vectors. Each channel of the result is clamped to [0, 255].
func Phong(normal, viewDir, lightDir Vector3, m Material, l Light) color.RGBA {
	nDotL := normal.Dot(lightDir)
	lightCol := rgbVector(l.Color)

	ambient := rgbVector(m.AmbientColor).Scale(m.Ambient)
	diffuse := lightCol.Scale(l.Attenuation * math.Max(nDotL, 0) * m.Diffuse)

	reflectDir := normal.Scale(2 * nDotL).Sub(lightDir)
	var cosAlpha float64
	if denom := viewDir.Length() * reflectDir.Length(); denom != 0 {
		cosAlpha = math.Max(0, math.Min(1, viewDir.Dot(reflectDir)/denom))
	}
	specular := lightCol.Scale(l.Attenuation * m.Specular * math.Pow(cosAlpha, m.Shininess))

	c := ambient.Add(diffuse).Add(specular)
	return color.RGBA{
		R: clampChannel(c.X),
		G: clampChannel(c.Y),
		B: clampChannel(c.Z),
		A: 255,
	}
}

func rgbVector(c color.RGBA) Vector3 {
	return NewVector3(float64(c.R), float64(c.G), float64(c.B))
}

func clampChannel(v float64) uint8 {
	return uint8(clamp(int(v), 0, 255))
}

// SphereQuality is the sampling of the rendered sphere. The drawn radius is
// Radius*Scale pixels, sampled every Scale pixels.
type SphereQuality struct {
	Radius int
	Scale  int
}

var (
	SphereFast = SphereQuality{Radius: 75, Scale: 2}
	SphereFine = SphereQuality{Radius: 150, Scale: 1}
)

// Toggle switches between the fast and fine settings.
func (q SphereQuality) Toggle() SphereQuality {
	if q == SphereFast {
		return SphereFine
	}
	return SphereFast
}

// RenderSphere draws a Phong-lit sphere centred in a width×height image on a
// black background. Rows are shaded concurrently.
func RenderSphere(width, height int, q SphereQuality, m Material, l Light) (*image.RGBA, error) {
	if width <= 0 || height <= 0 || q.Radius < 1 || q.Scale < 1 {
		return nil, errors.New("invalid sphere parameters").
			WithType(ErrTypeInvalidConfig).
			WithTag("width", width).
			WithTag("height", height).
			WithTag("radius", q.Radius).
			WithTag("scale", q.Scale)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}

	cx, cy := width/2, height/2
	realRadius := q.Radius * q.Scale
	viewDir := NewVector3(0, 0, 1)

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	for y := cy - realRadius; y < cy+realRadius; y += q.Scale {
		g.Go(func() error {
			for x := cx - realRadius; x < cx+realRadius; x += q.Scale {
				dx, dy := float64(x-cx), float64(y-cy)
				distanceSq := dx*dx + dy*dy
				r := float64(realRadius)
				if distanceSq > r*r {
					continue
				}

				normal := NewVector3(dx, dy, math.Sqrt(r*r-distanceSq)).Normalize()
				lightDir := l.Position.Sub(NewVector3(float64(x), float64(y), 0)).Normalize()
				fillBlock(img, x, y, q.Scale, Phong(normal, viewDir, lightDir, m, l))
			}
			return nil
		})
	}

	// rows only write their own pixels
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return img, nil
}

func fillBlock(img *image.RGBA, x, y, size int, c color.RGBA) {
	bounds := img.Bounds()
	for by := y; by < y+size; by++ {
		for bx := x; bx < x+size; bx++ {
			if image.Pt(bx, by).In(bounds) {
				img.SetRGBA(bx, by, c)
			}
		}
	}
}
