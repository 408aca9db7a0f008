// Package scene stacks game screens the way an engine director does:
// the gameplay scene, a pause overlay pushed on top of it, and the game
// over and title screens that replace it. Both the terminal and the
// desktop front ends drive the same Director.
package scene

import (
	"github.com/vovakirdan/happy-bunny/internal/core"
)

// Scene is one screen managed by the Director.
type Scene interface {
	// Name identifies the scene in logs and events.
	Name() string

	// Update advances the scene by dt seconds with this tick's input.
	Update(in core.InputFrame, dt float64) []core.Event

	// Render draws the scene. The screen is cleared before the call.
	Render(dst *core.Screen)
}

// Director owns the scene stack. Only the top scene is updated.
type Director struct {
	stack   []Scene
	flip    *flipTransition
	ended   bool
	pending []core.Event
	scratch *core.Screen
}

// NewDirector creates a director with an empty stack.
func NewDirector() *Director {
	return &Director{scratch: core.NewScreen(0, 0)}
}

// RunWithScene sets the root scene, dropping anything already stacked.
func (d *Director) RunWithScene(s Scene) {
	d.stack = d.stack[:0]
	d.flip = nil
	d.ended = false
	d.stack = append(d.stack, s)
	d.changed(s)
}

// Push puts a scene on top of the current one, which stays alive but is
// no longer updated.
func (d *Director) Push(s Scene) {
	d.stack = append(d.stack, s)
	d.changed(s)
}

// Pop removes the top scene. Popping the last scene ends the director.
func (d *Director) Pop() {
	if len(d.stack) <= 1 {
		d.End()
		return
	}
	d.stack[len(d.stack)-1] = nil
	d.stack = d.stack[:len(d.stack)-1]
	d.changed(d.Current())
}

// Replace swaps the top scene. A positive flip duration (seconds) plays a
// horizontal flip from the old scene to the new one, during which input
// is ignored.
func (d *Director) Replace(s Scene, flip float64) {
	if len(d.stack) == 0 {
		d.RunWithScene(s)
		return
	}
	old := d.stack[len(d.stack)-1]
	d.stack[len(d.stack)-1] = s
	d.flip = nil
	if flip > 0 {
		d.flip = &flipTransition{from: old, to: s, duration: flip}
	}
	d.changed(s)
}

// Current returns the top scene, or nil when the stack is empty.
func (d *Director) Current() Scene {
	if len(d.stack) == 0 {
		return nil
	}
	return d.stack[len(d.stack)-1]
}

// Depth returns the number of stacked scenes.
func (d *Director) Depth() int {
	return len(d.stack)
}

// End stops the director. Front ends quit once Ended reports true.
func (d *Director) End() {
	d.ended = true
}

// Ended reports whether End was called.
func (d *Director) Ended() bool {
	return d.ended
}

// InTransition reports whether a flip is playing.
func (d *Director) InTransition() bool {
	return d.flip != nil
}

// Update advances the running transition or the top scene and returns the
// events produced this tick.
func (d *Director) Update(in core.InputFrame, dt float64) []core.Event {
	events := d.pending
	d.pending = nil

	if d.ended {
		return events
	}

	if d.flip != nil {
		d.flip.elapsed += dt
		if d.flip.done() {
			d.flip = nil
		}
		return events
	}

	if cur := d.Current(); cur != nil {
		events = append(events, cur.Update(in, dt)...)
	}

	// Scene changes made during this update surface now, not a tick later
	events = append(events, d.pending...)
	d.pending = nil
	return events
}

// Render draws the top scene, or the transition frame while flipping.
func (d *Director) Render(dst *core.Screen) {
	dst.Clear()
	if d.flip != nil {
		d.flip.render(dst, d.scratch)
		return
	}
	if cur := d.Current(); cur != nil {
		cur.Render(dst)
	}
}

// changed queues a SceneChanged event for the new top scene.
func (d *Director) changed(s Scene) {
	if s == nil {
		return
	}
	d.pending = append(d.pending, core.Event{Kind: core.EventSceneChanged, Name: s.Name(), Value: len(d.stack)})
}
