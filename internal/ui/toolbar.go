package ui

import (
	"image"

	"github.com/example/linecanvas/internal/config"
	"github.com/example/linecanvas/internal/geometry"
)

// Action is what a toolbar button triggers. The set is closed; a new button
// means a new Action and a new case wherever actions are dispatched.
type Action int

const (
	ActionPlace Action = iota
	ActionClear
	ActionLine
	ActionParallel
)

func (a Action) String() string {
	switch a {
	case ActionPlace:
		return "place"
	case ActionClear:
		return "clear"
	case ActionLine:
		return "line"
	case ActionParallel:
		return "parallel"
	}
	return "unknown"
}

type Button struct {
	Rect   image.Rectangle
	Label  string
	Action Action
}

// Contains reports whether p is on or inside the button.
func (b Button) Contains(p image.Point) bool {
	return geometry.PointInRect(p, b.Rect)
}

type Toolbar struct {
	Buttons []Button
}

// NewToolbar lays the buttons out right to left from the top-right corner
// of a screen of the given width.
func NewToolbar(screenWidth int) *Toolbar {
	items := []struct {
		label  string
		action Action
	}{
		{"Place", ActionPlace},
		{"Clear", ActionClear},
		{"Draw Line", ActionLine},
		{"Parallel", ActionParallel},
	}
	tb := &Toolbar{}
	for i, s := range items {
		x := screenWidth - (i+1)*(config.ButtonWidth+config.ButtonPadding)
		tb.Buttons = append(tb.Buttons, Button{
			Rect:   image.Rect(x, config.ButtonPadding, x+config.ButtonWidth, config.ButtonPadding+config.ButtonHeight),
			Label:  s.label,
			Action: s.action,
		})
	}
	return tb
}

// Hit returns the first button containing p.
func (tb *Toolbar) Hit(p image.Point) (Button, bool) {
	for _, b := range tb.Buttons {
		if b.Contains(p) {
			return b, true
		}
	}
	return Button{}, false
}
