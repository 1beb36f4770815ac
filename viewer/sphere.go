package viewer

import (
	"fmt"

	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/smasonuk/gosiebsp"
)

const (
	lightStep       = 30
	attenuationStep = 0.1
)

// SphereGame shows the Phong sphere. The arrows move the light, T cycles the
// material, O toggles quality and N/M lower or raise the attenuation.
type SphereGame struct {
	viewport gosiebsp.Viewport
	quality  gosiebsp.SphereQuality
	material gosiebsp.Material
	light    gosiebsp.Light

	frame *ebiten.Image
	dirty bool
}

func NewSphereGame(vp gosiebsp.Viewport, q gosiebsp.SphereQuality, m gosiebsp.Material, l gosiebsp.Light) *SphereGame {
	return &SphereGame{
		viewport: vp,
		quality:  q,
		material: m,
		light:    l,
		dirty:    true,
	}
}

func RunSphere(title string, g *SphereGame) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(g.viewport.Width, g.viewport.Height)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

func (g *SphereGame) Update() error {
	before := *g

	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.light = g.light.Move(0, -lightStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.light = g.light.Move(0, lightStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.light = g.light.Move(-lightStep, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.light = g.light.Move(lightStep, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyN) {
		g.light = g.light.AdjustAttenuation(-attenuationStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyM) {
		g.light = g.light.AdjustAttenuation(attenuationStep)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.material = gosiebsp.NextMaterial(g.material)
		logs.WithTag("material", g.material.Name).Info("material changed")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		g.quality = g.quality.Toggle()
		logs.WithTag("radius", g.quality.Radius).
			WithTag("scale", g.quality.Scale).
			Info("sphere quality changed")
	}

	if g.light != before.light || g.material != before.material || g.quality != before.quality {
		g.dirty = true
	}
	return nil
}

func (g *SphereGame) Draw(screen *ebiten.Image) {
	if g.dirty || g.frame == nil {
		img, err := gosiebsp.RenderSphere(g.viewport.Width, g.viewport.Height, g.quality, g.material, g.light)
		if err != nil {
			logs.Warn(err)
			return
		}
		if g.frame != nil {
			g.frame.Deallocate()
		}
		g.frame = ebiten.NewImageFromImage(img)
		g.dirty = false
	}

	screen.DrawImage(g.frame, nil)
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"material: %s\nradius: %d scale: %d\nattenuation: %.1f\nlight: %s",
		g.material.Name, g.quality.Radius, g.quality.Scale, g.light.Attenuation, g.light.Position,
	))
}

func (g *SphereGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.viewport.Width, g.viewport.Height
}
