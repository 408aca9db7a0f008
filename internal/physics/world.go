// Package physics wraps a chipmunk space for contact-based collision
// detection between the bunny and falling bombs.
//
// Bombs are dynamic sensor bodies with zero gravity, so they fall at the
// constant velocity they were spawned with and never push anything. The
// bunny is a kinematic body moved by the game. A begin-contact handler
// records which bombs touched the bunny during a step.
package physics

import (
	"sort"

	"github.com/jakecoffman/cp/v2"
)

const (
	collisionPlayer cp.CollisionType = 1
	collisionBomb   cp.CollisionType = 2
)

type bombEntry struct {
	body  *cp.Body
	shape *cp.Shape
}

// ContactWorld owns the physics space for one game session.
type ContactWorld struct {
	space    *cp.Space
	player   *cp.Body
	bombs    map[int]bombEntry
	contacts map[int]bool
}

// NewContactWorld creates a space with a bunny box of the given size
// centered at (cx, cy).
func NewContactWorld(cx, cy, width, height float64) *ContactWorld {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{})

	w := &ContactWorld{
		space:    space,
		bombs:    make(map[int]bombEntry),
		contacts: make(map[int]bool),
	}

	player := space.AddBody(cp.NewKinematicBody())
	player.SetPosition(cp.Vector{X: cx, Y: cy})
	shape := space.AddShape(cp.NewBox(player, width, height, 0))
	shape.SetCollisionType(collisionPlayer)
	w.player = player

	handler := space.NewCollisionHandler(collisionPlayer, collisionBomb)
	handler.BeginFunc = w.beginContact

	return w
}

// beginContact records the bomb side of a new player/bomb contact.
func (w *ContactWorld) beginContact(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
	a, b := arb.Shapes()
	for _, s := range []*cp.Shape{a, b} {
		if id, ok := s.Body().UserData.(int); ok {
			w.contacts[id] = true
		}
	}
	return true
}

// MovePlayer teleports the bunny body to a new center.
func (w *ContactWorld) MovePlayer(cx, cy float64) {
	w.player.SetPosition(cp.Vector{X: cx, Y: cy})
}

// playerPosition returns the bunny body center.
func (w *ContactWorld) playerPosition() (float64, float64) {
	p := w.player.Position()
	return p.X, p.Y
}

// AddBomb adds a bomb centered at (cx, cy) falling with speed vy (cells/sec).
// Re-adding an existing id replaces the old body.
func (w *ContactWorld) AddBomb(id int, cx, cy, width, height, vy float64) {
	w.RemoveBomb(id)

	const mass = 1.0
	body := w.space.AddBody(cp.NewBody(mass, cp.MomentForBox(mass, width, height)))
	body.SetPosition(cp.Vector{X: cx, Y: cy})
	body.SetVelocity(0, vy)
	body.UserData = id

	shape := w.space.AddShape(cp.NewBox(body, width, height, 0))
	shape.SetSensor(true)
	shape.SetCollisionType(collisionBomb)

	w.bombs[id] = bombEntry{body: body, shape: shape}
}

// RemoveBomb takes a bomb out of the space. Unknown ids are ignored.
func (w *ContactWorld) RemoveBomb(id int) {
	entry, ok := w.bombs[id]
	if !ok {
		return
	}
	w.space.RemoveShape(entry.shape)
	w.space.RemoveBody(entry.body)
	delete(w.bombs, id)
	delete(w.contacts, id)
}

// BombPosition returns the simulated center of a bomb.
func (w *ContactWorld) BombPosition(id int) (x, y float64, ok bool) {
	entry, found := w.bombs[id]
	if !found {
		return 0, 0, false
	}
	p := entry.body.Position()
	return p.X, p.Y, true
}

// bombCount returns the number of bombs in the space.
func (w *ContactWorld) bombCount() int {
	return len(w.bombs)
}

// Step advances the space by dt seconds.
func (w *ContactWorld) Step(dt float64) {
	if dt <= 0 {
		return
	}
	w.space.Step(dt)
}

// Contacts returns the ids of bombs that started touching the bunny since
// the last call, sorted, and clears the list.
func (w *ContactWorld) Contacts() []int {
	if len(w.contacts) == 0 {
		return nil
	}
	ids := make([]int, 0, len(w.contacts))
	for id := range w.contacts {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	w.contacts = make(map[int]bool)
	return ids
}
