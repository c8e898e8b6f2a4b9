package geometry

import (
	"image"
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

var window = image.Rect(0, 0, 800, 600)

func TestClipLine(t *testing.T) {
	tests := []struct {
		name   string
		a, b   image.Point
		r      image.Rectangle
		p1, p2 image.Point
	}{
		{"vertical", image.Pt(100, 100), image.Pt(100, 300), window, image.Pt(100, 0), image.Pt(100, 600)},
		{"vertical outside", image.Pt(-20, 5), image.Pt(-20, 9), window, image.Pt(-20, 0), image.Pt(-20, 600)},
		{"diagonal corner to corner", image.Pt(0, 0), image.Pt(800, 600), window, image.Pt(0, 0), image.Pt(800, 600)},
		{"anti-diagonal keeps left and right", image.Pt(800, 0), image.Pt(0, 600), window, image.Pt(0, 600), image.Pt(800, 0)},
		{"horizontal inside", image.Pt(10, 200), image.Pt(50, 200), window, image.Pt(0, 200), image.Pt(800, 200)},
		{"horizontal on top edge", image.Pt(10, 0), image.Pt(50, 0), window, image.Pt(0, 0), image.Pt(800, 0)},
		{"left and top", image.Pt(0, 300), image.Pt(400, 0), window, image.Pt(0, 300), image.Pt(400, 0)},
		{"steep rounds to pixels", image.Pt(400, 1), image.Pt(401, 599), window, image.Pt(400, 0), image.Pt(401, 600)},
		{"points outside window", image.Pt(-100, -50), image.Pt(900, 700), window, image.Pt(0, 25), image.Pt(767, 600)},
		{"offset rectangle", image.Pt(150, 150), image.Pt(250, 250), image.Rect(100, 100, 300, 300), image.Pt(100, 100), image.Pt(300, 300)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p1, p2 := ClipLine(tt.a, tt.b, tt.r)
			if p1 != tt.p1 || p2 != tt.p2 {
				t.Errorf("ClipLine(%v, %v) = %v, %v, want %v, %v", tt.a, tt.b, p1, p2, tt.p1, tt.p2)
			}
		})
	}
}

func TestClipLineFallback(t *testing.T) {
	tests := []struct {
		name string
		a, b image.Point
	}{
		{"horizontal below window", image.Pt(10, 700), image.Pt(50, 700)},
		{"horizontal above window", image.Pt(10, -1), image.Pt(50, -1)},
		{"misses window", image.Pt(900, 0), image.Pt(1000, 100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p1, p2 := ClipLine(tt.a, tt.b, window)
			if p1 != tt.a || p2 != tt.b {
				t.Errorf("ClipLine(%v, %v) = %v, %v, want inputs back", tt.a, tt.b, p1, p2)
			}
		})
	}
}

func TestClipLineCornerTouchKeepsScanOrder(t *testing.T) {
	// Slope -1 through the origin only touches the window at (0,0); the left
	// and top edges both report it, and both are returned.
	p1, p2 := ClipLine(image.Pt(0, 0), image.Pt(-100, 100), window)
	if p1 != image.Pt(0, 0) || p2 != image.Pt(0, 0) {
		t.Errorf("ClipLine corner touch = %v, %v, want (0,0), (0,0)", p1, p2)
	}
}

func TestClipLineRandomInteriorPairs(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		a := image.Pt(1+rng.Intn(798), 1+rng.Intn(598))
		b := image.Pt(1+rng.Intn(798), 1+rng.Intn(598))
		if a.X == b.X {
			continue
		}
		p1, p2 := ClipLine(a, b, window)
		for _, p := range []image.Point{p1, p2} {
			if !onEdge(p, window) {
				t.Fatalf("ClipLine(%v, %v) point %v not on a window edge", a, b, p)
			}
			if d := distanceToLine(p, a, b); d > 1 {
				t.Fatalf("ClipLine(%v, %v) point %v is %.3f px off the line", a, b, p, d)
			}
		}
	}
}

func TestParallelThrough(t *testing.T) {
	tests := []struct {
		name           string
		p1, p2, anchor image.Point
		q1, q2         image.Point
	}{
		{"same line", image.Pt(0, 0), image.Pt(800, 600), image.Pt(400, 300), image.Pt(0, 0), image.Pt(800, 600)},
		{"shifted up", image.Pt(0, 0), image.Pt(800, 600), image.Pt(400, 100), image.Pt(800, 400), image.Pt(267, 0)},
		{"vertical reference", image.Pt(100, 0), image.Pt(100, 600), image.Pt(250, 300), image.Pt(250, 0), image.Pt(250, 600)},
		{"horizontal reference", image.Pt(0, 200), image.Pt(800, 200), image.Pt(30, 450), image.Pt(0, 450), image.Pt(800, 450)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q1, q2, ok := ParallelThrough(tt.p1, tt.p2, tt.anchor, window)
			if !ok {
				t.Fatal("ParallelThrough() ok = false, want true")
			}
			if q1 != tt.q1 || q2 != tt.q2 {
				t.Errorf("ParallelThrough() = %v, %v, want %v, %v", q1, q2, tt.q1, tt.q2)
			}
			ref := tt.p2.Sub(tt.p1)
			got := q2.Sub(q1)
			if s := sine(ref, got); !scalar.EqualWithinAbs(s, 0, 0.01) {
				t.Errorf("direction %v not parallel to %v (sin=%v)", got, ref, s)
			}
		})
	}
}

func TestParallelThroughZeroDirection(t *testing.T) {
	_, _, ok := ParallelThrough(image.Pt(5, 5), image.Pt(5, 5), image.Pt(100, 100), window)
	if ok {
		t.Error("ParallelThrough() with zero direction ok = true, want false")
	}
}

func onEdge(p image.Point, r image.Rectangle) bool {
	if !PointInRect(p, r) {
		return false
	}
	return p.X == r.Min.X || p.X == r.Max.X || p.Y == r.Min.Y || p.Y == r.Max.Y
}

func distanceToLine(p, a, b image.Point) float64 {
	d := b.Sub(a)
	ap := p.Sub(a)
	cross := float64(d.X*ap.Y - d.Y*ap.X)
	return math.Abs(cross) / math.Hypot(float64(d.X), float64(d.Y))
}

func sine(u, v image.Point) float64 {
	cross := float64(u.X*v.Y - u.Y*v.X)
	return cross / (math.Hypot(float64(u.X), float64(u.Y)) * math.Hypot(float64(v.X), float64(v.Y)))
}
