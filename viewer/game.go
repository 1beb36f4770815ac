// Package viewer shows polygon scenes and the Phong sphere in an ebiten
// window.
package viewer

import (
	"fmt"
	"image/color"

	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/smasonuk/gosiebsp"
)

// statusEvery is how many ticks pass between camera status log lines.
const statusEvery = 40

type Options struct {
	Title       string
	Viewport    gosiebsp.Viewport
	Camera      gosiebsp.Camera
	MoveSpeed   float64
	RotateSpeed float64
	Mode        gosiebsp.RenderMode
	Style       gosiebsp.PaintStyle
}

// OptionsFromConfig fills Options from a loaded config.
func OptionsFromConfig(conf gosiebsp.Config) (Options, error) {
	mode, err := gosiebsp.ParseRenderMode(conf.Render.Mode)
	if err != nil {
		return Options{}, err
	}
	return Options{
		Title:       conf.Window.Title,
		Viewport:    conf.Viewport(),
		Camera:      conf.NewCamera(),
		MoveSpeed:   conf.Camera.MoveSpeed,
		RotateSpeed: conf.Camera.RotateSpeed,
		Mode:        mode,
		Style:       conf.PaintStyle(),
	}, nil
}

// Game walks a camera through a scene. Each frame orders the scene for the
// current camera and paints it back to front.
type Game struct {
	scene   *gosiebsp.Scene
	opts    Options
	camera  gosiebsp.Camera
	tick    int
	painted int
}

func NewGame(scene *gosiebsp.Scene, opts Options) *Game {
	return &Game{
		scene:  scene,
		opts:   opts,
		camera: opts.Camera,
	}
}

// Run opens the window and blocks until it is closed.
func Run(scene *gosiebsp.Scene, opts Options) error {
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(opts.Viewport.Width, opts.Viewport.Height)
	ebiten.SetTPS(60)

	logs.WithTag("polygons", len(scene.Polygons())).
		WithTag("mode", opts.Mode).
		Info("starting viewer")
	return ebiten.RunGame(NewGame(scene, opts))
}

func (g *Game) Update() error {
	g.camera = g.camera.Apply(readCameraInput(), g.opts.MoveSpeed, g.opts.RotateSpeed)

	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.opts.Mode = g.opts.Mode.Toggle()
		logs.WithTag("mode", g.opts.Mode).Info("render mode changed")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.opts.Style.Fill = !g.opts.Style.Fill
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.opts.Style.Shading = !g.opts.Style.Shading
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		g.opts.Style.NoOutline = !g.opts.Style.NoOutline
	}

	g.tick++
	if g.tick%statusEvery == 0 {
		g.logStatus()
	}
	return nil
}

func readCameraInput() gosiebsp.CameraInput {
	pressed := ebiten.IsKeyPressed
	return gosiebsp.CameraInput{
		Forward:   pressed(ebiten.KeyW),
		Back:      pressed(ebiten.KeyS),
		Left:      pressed(ebiten.KeyA),
		Right:     pressed(ebiten.KeyD),
		Up:        pressed(ebiten.KeySpace),
		Down:      pressed(ebiten.KeyShiftLeft),
		PitchUp:   pressed(ebiten.KeyArrowUp),
		PitchDown: pressed(ebiten.KeyArrowDown),
		YawLeft:   pressed(ebiten.KeyArrowLeft),
		YawRight:  pressed(ebiten.KeyArrowRight),
		RollLeft:  pressed(ebiten.KeyQ),
		RollRight: pressed(ebiten.KeyE),
		ZoomIn:    pressed(ebiten.KeyM),
		ZoomOut:   pressed(ebiten.KeyN),
	}
}

func (g *Game) logStatus() {
	pitch, yaw, roll := g.camera.Orientation()
	logs.WithTag("position", g.camera.Position.String()).
		WithTag("front", g.camera.Front.String()).
		WithTag("up", g.camera.Up.String()).
		WithTag("pitch", pitch).
		WithTag("yaw", yaw).
		WithTag("roll", roll).
		WithTag("fov", g.camera.Fov).
		WithTag("painted", g.painted).
		Debug("camera")
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	drawAxes(screen, gosiebsp.NewProjector(g.camera, g.opts.Viewport))

	ordered := g.scene.Order(g.camera, g.opts.Mode)
	g.painted = gosiebsp.PaintPolygons(screenBatcher{screen: screen}, ordered, g.camera, g.opts.Viewport, g.opts.Style)

	pitch, yaw, roll := g.camera.Orientation()
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"mode: %s  fill: %t  shading: %t\npolygons: %d/%d  fov: %.0f\npos: %s\npitch: %.1f yaw: %.1f roll: %.1f",
		g.opts.Mode, g.opts.Style.Fill, g.opts.Style.Shading,
		g.painted, len(ordered), g.camera.Fov,
		g.camera.Position,
		pitch, yaw, roll,
	))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.opts.Viewport.Width, g.opts.Viewport.Height
}
