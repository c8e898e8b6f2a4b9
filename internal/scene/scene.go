// Package scene holds the canvas state (circles, construction lines, the
// current radius and the interaction mode) and every mutation the input
// handler can apply to it.
package scene

import (
	"image"

	"github.com/example/linecanvas/internal/config"
	"github.com/example/linecanvas/internal/event"
	"github.com/example/linecanvas/internal/geometry"
)

type Mode int

const (
	ModeIdle Mode = iota
	ModePlacement
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModePlacement:
		return "placement"
	}
	return "unknown"
}

type Circle struct {
	Center   image.Point
	Radius   int
	Selected bool
}

// Contains reports whether p is inside or on the circle.
func (c Circle) Contains(p image.Point) bool {
	return geometry.PointInCircle(p, c.Center, c.Radius)
}

// Line is a construction line stored as its clipped endpoints.
type Line struct {
	P1, P2   image.Point
	Selected bool
}

// Near reports whether p is within tolerance of the drawn segment.
func (l Line) Near(p image.Point, tolerance float64) bool {
	return geometry.NearSegment(p, l.P1, l.P2, tolerance)
}

// Selection is the payload of an event.SelectionToggled event.
type Selection struct {
	Circle   bool // false means a line
	Index    int
	Selected bool
}

type Scene struct {
	Circles []Circle
	Lines   []Line
	Radius  int
	Mode    Mode
	Bounds  image.Rectangle

	events *event.Dispatcher
}

type Option func(*Scene)

// WithDispatcher publishes scene changes to d.
func WithDispatcher(d *event.Dispatcher) Option {
	return func(s *Scene) { s.events = d }
}

// New returns an empty scene whose lines are clipped to bounds.
func New(bounds image.Rectangle, opts ...Option) *Scene {
	s := &Scene{
		Radius: config.DefaultRadius,
		Mode:   ModeIdle,
		Bounds: bounds,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Scene) emit(t event.Type, data any) {
	s.events.Dispatch(event.Event{Type: t, Data: data})
}

// AdjustRadius moves the radius by delta, clamped to [MinRadius, MaxRadius].
// It reports whether the radius changed.
func (s *Scene) AdjustRadius(delta int) bool {
	r := min(max(s.Radius+delta, config.MinRadius), config.MaxRadius)
	if r == s.Radius {
		return false
	}
	s.Radius = r
	s.emit(event.RadiusChanged, r)
	return true
}

func (s *Scene) SetMode(m Mode) {
	if s.Mode == m {
		return
	}
	s.Mode = m
	s.emit(event.ModeChanged, m)
}

func (s *Scene) TogglePlacement() {
	if s.Mode == ModePlacement {
		s.SetMode(ModeIdle)
		return
	}
	s.SetMode(ModePlacement)
}

// Click applies a primary click on the canvas: it places a circle in
// placement mode and toggles selection otherwise.
func (s *Scene) Click(p image.Point) {
	if s.Mode == ModePlacement {
		s.PlaceCircle(p)
		return
	}
	s.ToggleSelectionAt(p)
}

func (s *Scene) PlaceCircle(p image.Point) {
	c := Circle{Center: p, Radius: s.Radius}
	s.Circles = append(s.Circles, c)
	s.emit(event.CirclePlaced, c)
}

// ToggleSelectionAt flips the selection of the first circle containing p,
// or failing that the first line near p. Circles win over lines.
func (s *Scene) ToggleSelectionAt(p image.Point) bool {
	for i := range s.Circles {
		if s.Circles[i].Contains(p) {
			s.Circles[i].Selected = !s.Circles[i].Selected
			s.emit(event.SelectionToggled, Selection{Circle: true, Index: i, Selected: s.Circles[i].Selected})
			return true
		}
	}
	for i := range s.Lines {
		if s.Lines[i].Near(p, config.SelectionTolerance) {
			s.Lines[i].Selected = !s.Lines[i].Selected
			s.emit(event.SelectionToggled, Selection{Index: i, Selected: s.Lines[i].Selected})
			return true
		}
	}
	return false
}

// SelectedCircles returns the indices of selected circles in insertion order.
func (s *Scene) SelectedCircles() []int {
	var idx []int
	for i, c := range s.Circles {
		if c.Selected {
			idx = append(idx, i)
		}
	}
	return idx
}

// SelectedLines returns the indices of selected lines in insertion order.
func (s *Scene) SelectedLines() []int {
	var idx []int
	for i, l := range s.Lines {
		if l.Selected {
			idx = append(idx, i)
		}
	}
	return idx
}

// ConstructLine adds the clipped line through the centres of the two
// selected circles and deselects them. With any other number of selected
// circles it does nothing and returns false.
func (s *Scene) ConstructLine() bool {
	sel := s.SelectedCircles()
	if len(sel) != 2 {
		return false
	}
	a, b := &s.Circles[sel[0]], &s.Circles[sel[1]]
	p1, p2 := geometry.ClipLine(a.Center, b.Center, s.Bounds)
	l := Line{P1: p1, P2: p2}
	s.Lines = append(s.Lines, l)
	a.Selected = false
	b.Selected = false
	s.emit(event.LineConstructed, l)
	return true
}

// ConstructParallel adds a line through the selected circle's centre,
// parallel to the selected line, and deselects that line. It needs exactly
// one selected circle and one selected line; otherwise, or when the
// reference line has no direction, it does nothing and returns false.
func (s *Scene) ConstructParallel() bool {
	circles, lines := s.SelectedCircles(), s.SelectedLines()
	if len(circles) != 1 || len(lines) != 1 {
		return false
	}
	ref := &s.Lines[lines[0]]
	p1, p2, ok := geometry.ParallelThrough(ref.P1, ref.P2, s.Circles[circles[0]].Center, s.Bounds)
	if !ok {
		return false
	}
	ref.Selected = false
	l := Line{P1: p1, P2: p2}
	s.Lines = append(s.Lines, l)
	s.emit(event.ParallelConstructed, l)
	return true
}

// Clear removes every circle and line. The mode and radius are kept.
func (s *Scene) Clear() {
	s.Circles = nil
	s.Lines = nil
	s.emit(event.SceneCleared, nil)
}
