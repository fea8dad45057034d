package game

import (
	"errors"
	"fmt"

	"github.com/cbodonnell/boxbench/client/objects"
	"github.com/cbodonnell/boxbench/pkg/frame"
	"github.com/cbodonnell/boxbench/pkg/geometry"
	"github.com/cbodonnell/boxbench/pkg/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// debug is a boolean value indicating whether debug mode is enabled.
	debug bool
	// bounds is the logical screen size.
	bounds geometry.IntPoint
	// driver runs the per-frame collision sequence.
	driver *frame.Driver
	// view is the result of the latest tick.
	view frame.View
	// objects are drawn in order, back to front.
	objects []objects.GameObject
}

var _ ebiten.Game = &Game{}

type NewGameOptions struct {
	Debug  bool
	Bounds geometry.IntPoint
	Driver *frame.Driver
}

func NewGame(opts NewGameOptions) (*Game, error) {
	if opts.Driver == nil {
		return nil, fmt.Errorf("driver is required")
	}
	if opts.Bounds.X <= 0 || opts.Bounds.Y <= 0 {
		return nil, fmt.Errorf("invalid screen bounds %s", opts.Bounds)
	}

	return &Game{
		debug:  opts.Debug,
		bounds: opts.Bounds,
		driver: opts.Driver,
		view:   opts.Driver.View(),
		objects: []objects.GameObject{
			objects.NewBackground(),
			objects.NewBoxLayer(opts.Bounds),
			objects.NewQueryBox(),
			objects.NewHUD(opts.Bounds),
		},
	}, nil
}

func (g *Game) Update() error {
	view, err := g.driver.Tick()
	if errors.Is(err, frame.ErrQuit) {
		log.Info("Quit requested, %s", g.driver.Stats())
		return ebiten.Termination
	}
	if err != nil {
		return fmt.Errorf("failed to run frame: %v", err)
	}
	g.view = view

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	for _, obj := range g.objects {
		obj.Draw(screen, g.view)
	}
	if g.debug {
		g.drawDebugOverlay(screen)
	}
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	stats := g.driver.Stats()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n   FPS: %0.1f", ebiten.ActualFPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n   TPS: %0.1f", ebiten.ActualTPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n   Boxes: %d", len(g.driver.State().Boxes())))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n   Scan: %s (mean %s, max %s)", g.view.Elapsed, stats.Mean(), stats.Max))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n\n   Query: %s", g.view.Query.Origin))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.bounds.X, g.bounds.Y
}
