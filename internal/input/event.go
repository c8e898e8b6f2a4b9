// Package input turns the frame's raw pointer, wheel and keyboard input into
// discrete events and applies them to the scene.
package input

import "image"

type Kind int

const (
	KindQuit Kind = iota
	KindPointerDown
	KindScroll
	KindKeyDown
)

type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
)

// Key is the subset of keys the canvas reacts to.
type Key int

const (
	KeyOther Key = iota
	KeyIncrease
	KeyDecrease
	KeyEscape
)

// Event is one discrete input occurrence. Only the fields relevant to Kind
// are set.
type Event struct {
	Kind   Kind
	Pos    image.Point // KindPointerDown
	Button Button      // KindPointerDown
	Delta  float64     // KindScroll, positive is away from the user
	Key    Key         // KindKeyDown
}

func Quit() Event { return Event{Kind: KindQuit} }

func PointerDown(p image.Point, b Button) Event {
	return Event{Kind: KindPointerDown, Pos: p, Button: b}
}

func Scroll(delta float64) Event { return Event{Kind: KindScroll, Delta: delta} }

func KeyDown(k Key) Event { return Event{Kind: KindKeyDown, Key: k} }
