package geometry

import (
	"image"

	"github.com/jbeda/geom"
)

// PointInRect reports whether p lies in r, counting all four edges as inside.
func PointInRect(p image.Point, r image.Rectangle) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// PointInCircle reports whether p lies inside or on the circle.
func PointInCircle(p, center image.Point, radius int) bool {
	dx := p.X - center.X
	dy := p.Y - center.Y
	return dx*dx+dy*dy <= radius*radius
}

// DistanceToSegment returns the distance from p to the closest point of the
// segment a-b. A zero-length segment degrades to the distance to a.
func DistanceToSegment(p, a, b image.Point) float64 {
	pc, ac := coord(p), coord(a)
	ab := coord(b).Minus(ac)
	abLen2 := ab.X*ab.X + ab.Y*ab.Y
	if abLen2 == 0 {
		return pc.DistanceFrom(ac)
	}
	ap := pc.Minus(ac)
	t := (ap.X*ab.X + ap.Y*ab.Y) / abLen2
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return pc.DistanceFrom(ac.Plus(ab.Times(t)))
}

// NearSegment reports whether p is within tolerance of the segment a-b.
func NearSegment(p, a, b image.Point, tolerance float64) bool {
	bounds := geom.Rect{Min: coord(a), Max: coord(a)}
	bounds.ExpandToContainCoord(coord(b))

	pc := coord(p)
	if pc.X < bounds.Min.X-tolerance || pc.X > bounds.Max.X+tolerance ||
		pc.Y < bounds.Min.Y-tolerance || pc.Y > bounds.Max.Y+tolerance {
		return false
	}
	return DistanceToSegment(p, a, b) <= tolerance
}

func coord(p image.Point) geom.Coord {
	return geom.Coord{X: float64(p.X), Y: float64(p.Y)}
}
