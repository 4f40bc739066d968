package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game adapts the viewer to ebiten's game loop
type Game struct {
	viewer     *Viewer
	dispatcher *Dispatcher
	source     *EbitenEventSource
	renderer   *Renderer

	needsRedraw   bool
	overlayActive bool
}

// NewGame creates a Game for viewer
func NewGame(viewer *Viewer, keys *KeybindingManager) *Game {
	return &Game{
		viewer:      viewer,
		dispatcher:  NewDispatcher(viewer, keys),
		source:      NewEbitenEventSource(),
		renderer:    NewRenderer(viewer),
		needsRedraw: true,
	}
}

func (g *Game) Update() error {
	for _, ev := range g.source.Poll() {
		if g.dispatcher.Dispatch(ev) {
			g.needsRedraw = true
		}
	}
	if g.viewer.Quitting() {
		return ebiten.Termination
	}

	// Repaint once more when an overlay message expires
	active := g.viewer.GetOverlayMessage() != "" &&
		time.Since(g.viewer.GetOverlayMessageTime()) < overlayMessageDuration
	if active != g.overlayActive {
		g.overlayActive = active
		g.needsRedraw = true
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if !g.needsRedraw {
		return
	}
	g.renderer.Draw(screen)
	g.needsRedraw = false
}

// Layout renders at the device's physical resolution
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := ebiten.Monitor().DeviceScaleFactor()
	if scale <= 0 {
		scale = 1
	}
	w := int(float64(outsideWidth) * scale)
	h := int(float64(outsideHeight) * scale)
	g.source.SetLayout(Size{W: outsideWidth, H: outsideHeight}, Size{W: w, H: h})
	return w, h
}
