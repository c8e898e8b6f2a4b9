// Package render draws the canvas with ebiten primitives. Building the list
// of drawables is kept apart from the drawing so it can be checked without
// a window.
package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/example/linecanvas/internal/config"
	"github.com/example/linecanvas/internal/scene"
	"github.com/example/linecanvas/internal/ui"
)

var face font.Face = basicfont.Face7x13

// Frame renders one full frame of the scene onto dst.
func Frame(dst *ebiten.Image, s *scene.Scene, tb *ui.Toolbar) {
	dst.Fill(config.BackgroundColor)
	for _, d := range Build(s, tb) {
		Draw(dst, d)
	}
	drawText(dst, HUDText(s), image.Pt(config.HUDX, config.HUDY))
}

// Draw renders a single drawable.
func Draw(dst *ebiten.Image, d Drawable) {
	switch d.Kind {
	case KindButton:
		x, y := float32(d.Rect.Min.X), float32(d.Rect.Min.Y)
		w, h := float32(d.Rect.Dx()), float32(d.Rect.Dy())
		vector.DrawFilledRect(dst, x, y, w, h, d.Color, false)
		vector.StrokeRect(dst, x, y, w, h, config.BorderStrokeWidth, config.BorderColor, false)
		b := text.BoundString(face, d.Label)
		drawText(dst, d.Label, image.Pt(
			d.Rect.Min.X+(d.Rect.Dx()-b.Dx())/2,
			d.Rect.Min.Y+(d.Rect.Dy()-b.Dy())/2,
		))
	case KindCircle:
		vector.StrokeCircle(dst, float32(d.Center.X), float32(d.Center.Y), float32(d.Radius),
			config.CircleStrokeWidth, d.Color, true)
	case KindLine:
		vector.StrokeLine(dst, float32(d.P1.X), float32(d.P1.Y), float32(d.P2.X), float32(d.P2.Y),
			config.LineStrokeWidth, d.Color, false)
	}
}

// drawText places s with the top-left of its bounds at p.
func drawText(dst *ebiten.Image, s string, p image.Point) {
	b := text.BoundString(face, s)
	text.Draw(dst, s, face, p.X-b.Min.X, p.Y-b.Min.Y, config.TextColor)
}
