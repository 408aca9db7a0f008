package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - tilt left
	ActionRight          // D, Right arrow - tilt right
	ActionConfirm        // Enter, Space - press the play button
	ActionBack           // Esc, B - back button, leaves the game
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
	ActionMute           // M - toggle music
	ActionUp             // W, Up arrow - menu navigation
	ActionDown           // S, Down arrow - menu navigation
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionMute:
		return "Mute"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// PointerKind distinguishes a tap from a drag.
type PointerKind int

const (
	PointerDown PointerKind = iota // Touch began / left click
	PointerDrag                    // Touch moved / mouse motion with button held
)

// Pointer is a touch or mouse event in screen cell coordinates.
type Pointer struct {
	Kind PointerKind
	X, Y int
}

// InputFrame represents the input state for a single player during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Pointers holds touch/mouse events in arrival order.
	Pointers []Pointer
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// AddPointer appends a pointer event to this frame.
func (f *InputFrame) AddPointer(kind PointerKind, x, y int) {
	f.Pointers = append(f.Pointers, Pointer{Kind: kind, X: x, Y: y})
}

// Taps returns the pointer-down events of this frame.
func (f InputFrame) Taps() []Pointer {
	var taps []Pointer
	for _, p := range f.Pointers {
		if p.Kind == PointerDown {
			taps = append(taps, p)
		}
	}
	return taps
}

// LastDrag returns the most recent drag event, if any.
func (f InputFrame) LastDrag() (Pointer, bool) {
	for i := len(f.Pointers) - 1; i >= 0; i-- {
		if f.Pointers[i].Kind == PointerDrag {
			return f.Pointers[i], true
		}
	}
	return Pointer{}, false
}

// Empty reports whether nothing was triggered this frame.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Pointers) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointers = f.Pointers[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	if len(f.Pointers) > 0 {
		clone.Pointers = append([]Pointer(nil), f.Pointers...)
	}
	return clone
}
