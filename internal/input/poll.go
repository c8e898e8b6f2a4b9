package input

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Poller reads this tick's input from ebiten. It must be used from the
// game's Update.
type Poller struct {
	keys []ebiten.Key
}

// Poll appends the events of the current tick to dst.
func (p *Poller) Poll(dst []Event) []Event {
	if ebiten.IsWindowBeingClosed() {
		dst = append(dst, Quit())
	}

	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		dst = append(dst, PointerDown(image.Pt(x, y), ButtonPrimary))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		dst = append(dst, PointerDown(image.Pt(x, y), ButtonSecondary))
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		dst = append(dst, Scroll(dy))
	}

	p.keys = inpututil.AppendJustPressedKeys(p.keys[:0])
	for _, k := range p.keys {
		if key := mapKey(k); key != KeyOther {
			dst = append(dst, KeyDown(key))
		}
	}
	return dst
}

func mapKey(k ebiten.Key) Key {
	switch k {
	case ebiten.KeyEqual, ebiten.KeyNumpadAdd, ebiten.KeyArrowUp:
		return KeyIncrease
	case ebiten.KeyMinus, ebiten.KeyNumpadSubtract, ebiten.KeyArrowDown:
		return KeyDecrease
	case ebiten.KeyEscape:
		return KeyEscape
	}
	return KeyOther
}
