package app

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/example/linecanvas/internal/config"
	"github.com/example/linecanvas/internal/event"
	"github.com/example/linecanvas/internal/input"
	"github.com/example/linecanvas/internal/logging"
	"github.com/example/linecanvas/internal/render"
	"github.com/example/linecanvas/internal/scene"
	"github.com/example/linecanvas/internal/ui"
)

// Game wires the scene, the toolbar and the input handler into ebiten's
// update/draw loop.
type Game struct {
	scene   *scene.Scene
	toolbar *ui.Toolbar
	handler *input.Handler
	poller  input.Poller
	events  []input.Event
}

func NewGame() *Game {
	d := event.NewDispatcher()
	d.Subscribe(event.ListenerFunc(logEvent),
		event.CirclePlaced, event.SelectionToggled, event.LineConstructed,
		event.ParallelConstructed, event.SceneCleared, event.RadiusChanged, event.ModeChanged)

	g := &Game{
		scene:   scene.New(image.Rect(0, 0, config.ScreenWidth, config.ScreenHeight), scene.WithDispatcher(d)),
		toolbar: ui.NewToolbar(config.ScreenWidth),
	}
	g.handler = input.NewHandler(g.scene, g.toolbar)
	return g
}

func logEvent(e event.Event) {
	logging.Logger().Debug("scene", "event", e.Type, "data", e.Data)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func (g *Game) Update() error {
	g.events = g.poller.Poll(g.events[:0])
	return g.step(g.events)
}

func (g *Game) step(events []input.Event) error {
	if g.handler.Apply(events) {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	render.Frame(screen, g.scene, g.toolbar)
}

// Run opens the window and blocks until the user quits. A non-nil error
// means the window or the loop failed.
func Run() error {
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowClosingHandled(true)

	logging.Logger().Info("starting", "width", config.ScreenWidth, "height", config.ScreenHeight)
	if err := ebiten.RunGame(NewGame()); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	logging.Logger().Info("quit")
	return nil
}
