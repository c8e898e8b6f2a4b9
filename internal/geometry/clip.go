// Package geometry holds the pure geometric helpers behind the canvas:
// hit tests and clipping of infinite lines to the window boundary.
package geometry

import (
	"image"
	"math"
)

// maxPixel bounds the candidates considered on an edge; anything further out
// can never land inside a window and would overflow the int conversion.
const maxPixel = 1 << 30

// ClipLine returns the two points where the infinite line through a and b
// crosses the edges of r (edges inclusive). The points are the first two
// valid crossings in the order left, right, top, bottom.
//
// A vertical line (a.X == b.X) maps to (a.X, r.Min.Y) and (a.X, r.Max.Y).
// When fewer than two crossings land on the boundary, a and b are returned
// unchanged, so callers must accept points outside r.
func ClipLine(a, b image.Point, r image.Rectangle) (image.Point, image.Point) {
	if a.X == b.X {
		return image.Pt(a.X, r.Min.Y), image.Pt(a.X, r.Max.Y)
	}

	m := float64(b.Y-a.Y) / float64(b.X-a.X)
	c := float64(a.Y) - m*float64(a.X)

	var pts [4]image.Point
	n := 0

	if y, ok := pixel(m*float64(r.Min.X) + c); ok && y >= r.Min.Y && y <= r.Max.Y {
		pts[n] = image.Pt(r.Min.X, y)
		n++
	}
	if y, ok := pixel(m*float64(r.Max.X) + c); ok && y >= r.Min.Y && y <= r.Max.Y {
		pts[n] = image.Pt(r.Max.X, y)
		n++
	}
	// A horizontal line never meets the top or bottom edge at a single x.
	if m != 0 {
		if x, ok := pixel((float64(r.Min.Y) - c) / m); ok && x >= r.Min.X && x <= r.Max.X {
			pts[n] = image.Pt(x, r.Min.Y)
			n++
		}
		if x, ok := pixel((float64(r.Max.Y) - c) / m); ok && x >= r.Min.X && x <= r.Max.X {
			pts[n] = image.Pt(x, r.Max.Y)
			n++
		}
	}

	if n < 2 {
		return a, b
	}
	return pts[0], pts[1]
}

// ParallelThrough clips the line through anchor that runs parallel to the
// segment p1-p2. ok is false when p1 == p2, since there is no direction to copy.
func ParallelThrough(p1, p2, anchor image.Point, r image.Rectangle) (q1, q2 image.Point, ok bool) {
	d := p2.Sub(p1)
	if d == (image.Point{}) {
		return anchor, anchor, false
	}
	q1, q2 = ClipLine(anchor, anchor.Add(d), r)
	return q1, q2, true
}

// pixel rounds v to the nearest integer coordinate, half away from zero.
func pixel(v float64) (int, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > maxPixel {
		return 0, false
	}
	return int(math.Round(v)), true
}
