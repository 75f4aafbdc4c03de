package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/tetris/tetris"
)

// termKey identifies a key from a tcell event. Runes are lower-cased so
// shift does not change the binding.
type termKey struct {
	Code tcell.Key
	Rune rune
}

func keyOf(ev *tcell.EventKey) termKey {
	if ev.Key() != tcell.KeyRune {
		return termKey{Code: ev.Key()}
	}
	r := ev.Rune()
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	return termKey{Code: tcell.KeyRune, Rune: r}
}

func runeKey(r rune) termKey {
	return termKey{Code: tcell.KeyRune, Rune: r}
}

var keyMap = map[tetris.Action]termKey{
	tetris.MoveLeft:  {Code: tcell.KeyLeft},
	tetris.MoveRight: {Code: tcell.KeyRight},
	tetris.SoftDrop:  {Code: tcell.KeyDown},
	tetris.RotateCW:  runeKey('c'),
	tetris.RotateCCW: runeKey('z'),
	tetris.HardDrop:  runeKey(' '),
}

// heldKeys infers key state from press events. Terminals never report a
// release, so a key counts as down until no press or auto-repeat arrived
// for hold.
type heldKeys struct {
	hold time.Duration
	last map[termKey]time.Time
}

func newHeldKeys(hold time.Duration) *heldKeys {
	return &heldKeys{hold: hold, last: make(map[termKey]time.Time)}
}

func (h *heldKeys) press(k termKey, at time.Time) {
	h.last[k] = at
}

func (h *heldKeys) isDown(k termKey, now time.Time) bool {
	at, ok := h.last[k]
	if !ok {
		return false
	}
	if now.Sub(at) >= h.hold {
		delete(h.last, k)
		return false
	}
	return true
}
