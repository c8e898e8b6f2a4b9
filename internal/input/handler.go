package input

import (
	"github.com/example/linecanvas/internal/logging"
	"github.com/example/linecanvas/internal/scene"
	"github.com/example/linecanvas/internal/ui"
)

// Handler applies input events to a scene. Toolbar buttons are checked
// before the canvas for every primary click.
type Handler struct {
	scene   *scene.Scene
	toolbar *ui.Toolbar
}

func NewHandler(s *scene.Scene, tb *ui.Toolbar) *Handler {
	return &Handler{scene: s, toolbar: tb}
}

// Apply processes events in order and reports whether a quit was requested.
// Events after a quit are dropped.
func (h *Handler) Apply(events []Event) (quit bool) {
	for _, e := range events {
		switch e.Kind {
		case KindQuit:
			return true
		case KindPointerDown:
			h.pointerDown(e)
		case KindScroll:
			h.scroll(e.Delta)
		case KindKeyDown:
			h.keyDown(e.Key)
		}
	}
	return false
}

func (h *Handler) pointerDown(e Event) {
	if e.Button == ButtonSecondary {
		h.scene.SetMode(scene.ModeIdle)
		return
	}
	if b, ok := h.toolbar.Hit(e.Pos); ok {
		h.trigger(b.Action)
		return
	}
	h.scene.Click(e.Pos)
}

// trigger runs the handler of a toolbar action.
func (h *Handler) trigger(a ui.Action) {
	switch a {
	case ui.ActionPlace:
		h.scene.TogglePlacement()
	case ui.ActionClear:
		h.scene.Clear()
	case ui.ActionLine:
		if !h.scene.ConstructLine() {
			logging.Logger().Debug("construct line ignored", "selected_circles", len(h.scene.SelectedCircles()))
		}
	case ui.ActionParallel:
		if !h.scene.ConstructParallel() {
			logging.Logger().Debug("construct parallel ignored",
				"selected_circles", len(h.scene.SelectedCircles()),
				"selected_lines", len(h.scene.SelectedLines()))
		}
	}
}

func (h *Handler) scroll(delta float64) {
	switch {
	case delta > 0:
		h.scene.AdjustRadius(1)
	case delta < 0:
		h.scene.AdjustRadius(-1)
	}
}

func (h *Handler) keyDown(k Key) {
	switch k {
	case KeyIncrease:
		h.scene.AdjustRadius(1)
	case KeyDecrease:
		h.scene.AdjustRadius(-1)
	case KeyEscape:
		h.scene.SetMode(scene.ModeIdle)
	}
}
