package render

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/example/linecanvas/internal/config"
	"github.com/example/linecanvas/internal/scene"
	"github.com/example/linecanvas/internal/ui"
)

type Kind int

const (
	KindButton Kind = iota
	KindCircle
	KindLine
)

// Drawable is one item of a frame. Which fields are meaningful depends on
// Kind: Rect and Label for buttons, Center and Radius for circles, P1 and
// P2 for lines. Color is the fill for buttons and the stroke otherwise.
type Drawable struct {
	Kind   Kind
	Color  color.RGBA
	Rect   image.Rectangle
	Label  string
	Center image.Point
	Radius int
	P1, P2 image.Point
}

// Build lists everything to draw for the scene, back to front: toolbar
// buttons, then circles, then lines.
func Build(s *scene.Scene, tb *ui.Toolbar) []Drawable {
	ds := make([]Drawable, 0, len(tb.Buttons)+len(s.Circles)+len(s.Lines))
	for _, b := range tb.Buttons {
		ds = append(ds, Drawable{
			Kind:  KindButton,
			Color: buttonColor(b.Action, s.Mode),
			Rect:  b.Rect,
			Label: b.Label,
		})
	}
	for _, c := range s.Circles {
		clr := config.CircleColor
		if c.Selected {
			clr = config.SelectedColor
		}
		ds = append(ds, Drawable{Kind: KindCircle, Color: clr, Center: c.Center, Radius: c.Radius})
	}
	for _, l := range s.Lines {
		clr := config.LineColor
		if l.Selected {
			clr = config.SelectedLineColor
		}
		ds = append(ds, Drawable{Kind: KindLine, Color: clr, P1: l.P1, P2: l.P2})
	}
	return ds
}

func buttonColor(a ui.Action, m scene.Mode) color.RGBA {
	switch {
	case a == ui.ActionPlace && m == scene.ModePlacement:
		return config.ButtonActiveColor
	case a == ui.ActionLine:
		return config.ButtonLineColor
	}
	return config.ButtonColor
}

// HUDText is the status line shown in the top-left corner.
func HUDText(s *scene.Scene) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Radius:%d", s.Radius)
	if s.Mode == scene.ModePlacement {
		sb.WriteString(" (placing)")
	}
	fmt.Fprintf(&sb, "  Sel:%d  Lines:%d", len(s.SelectedCircles()), len(s.Lines))
	return sb.String()
}
