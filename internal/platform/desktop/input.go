package desktop

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/happy-bunny/internal/core"
)

// Held keys repeat after keyRepeatDelay ticks, then every keyRepeatEvery.
const (
	keyRepeatDelay = 15
	keyRepeatEvery = 4
)

// keyBindings mirrors the terminal bindings.
var keyBindings = []struct {
	keys   []ebiten.Key
	action core.Action
	repeat bool
}{
	{[]ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}, core.ActionLeft, true},
	{[]ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}, core.ActionRight, true},
	{[]ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}, core.ActionUp, false},
	{[]ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}, core.ActionDown, false},
	{[]ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace}, core.ActionConfirm, false},
	{[]ebiten.Key{ebiten.KeyB, ebiten.KeyEscape}, core.ActionBack, false},
	{[]ebiten.Key{ebiten.KeyP}, core.ActionPause, false},
	{[]ebiten.Key{ebiten.KeyM}, core.ActionMute, false},
	{[]ebiten.Key{ebiten.KeyR}, core.ActionRestart, false},
	{[]ebiten.Key{ebiten.KeyQ}, core.ActionQuit, false},
}

// inputState remembers pointer positions between ticks so drags are only
// reported when the pointer moves to another cell.
type inputState struct {
	mouseCell image.Point
	touches   map[ebiten.TouchID]image.Point
	touchIDs  []ebiten.TouchID
}

func newInputState() inputState {
	return inputState{touches: make(map[ebiten.TouchID]image.Point)}
}

// collect adds this tick's keys, clicks and touches to frame.
func (s *inputState) collect(frame *core.InputFrame) {
	for _, b := range keyBindings {
		for _, k := range b.keys {
			d := inpututil.KeyPressDuration(k)
			if keyFires(d, b.repeat) {
				frame.Set(b.action)
				break
			}
		}
	}

	s.collectMouse(frame)
	s.collectTouches(frame)
}

// keyFires reports whether a key held for d ticks triggers this tick.
func keyFires(d int, repeat bool) bool {
	if d == 1 {
		return true
	}
	return repeat && d >= keyRepeatDelay && (d-keyRepeatDelay)%keyRepeatEvery == 0
}

func (s *inputState) collectMouse(frame *core.InputFrame) {
	cell := cellAt(ebiten.CursorPosition())

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		frame.AddPointer(core.PointerDown, cell.X, cell.Y)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && cell != s.mouseCell:
		frame.AddPointer(core.PointerDrag, cell.X, cell.Y)
	}
	s.mouseCell = cell
}

func (s *inputState) collectTouches(frame *core.InputFrame) {
	s.touchIDs = inpututil.AppendJustPressedTouchIDs(s.touchIDs[:0])
	for _, id := range s.touchIDs {
		cell := cellAt(ebiten.TouchPosition(id))
		frame.AddPointer(core.PointerDown, cell.X, cell.Y)
		s.touches[id] = cell
	}

	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	live := make(map[ebiten.TouchID]bool, len(s.touchIDs))
	for _, id := range s.touchIDs {
		live[id] = true
		cell := cellAt(ebiten.TouchPosition(id))
		if prev, ok := s.touches[id]; ok && prev != cell {
			frame.AddPointer(core.PointerDrag, cell.X, cell.Y)
		}
		s.touches[id] = cell
	}

	for id := range s.touches {
		if !live[id] {
			delete(s.touches, id)
		}
	}
}

// cellAt converts logical pixel coordinates to a cell position.
func cellAt(px, py int) image.Point {
	return image.Pt(floorDiv(px, cellW), floorDiv(py, cellH))
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
