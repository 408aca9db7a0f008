package bunny

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/happy-bunny/internal/config"
	"github.com/vovakirdan/happy-bunny/internal/core"
)

// Bomb is a single falling bomb. Position is the center in cell space.
type Bomb struct {
	ID    int
	X, Y  float64
	Speed float64 // Cells per second, fixed at spawn
}

// Rect returns the bomb's bounding box.
func (b Bomb) Rect(w, h int) core.RectF {
	return core.NewRectF(b.X, b.Y, float64(w), float64(h))
}

// CellRect returns the cells the bomb is drawn on.
func (b Bomb) CellRect(w, h int) core.Rect {
	r := b.Rect(w, h)
	return core.NewRect(int(math.Floor(r.X+0.5)), int(math.Floor(r.Y+0.5)), w, h)
}

// BombManager handles spawning, movement, and removal of bombs.
type BombManager struct {
	bombs      []Bomb
	nextID     int
	rng        *rand.Rand
	screenW    int
	screenH    int
	cfg        *config.BunnyConfig
	difficulty *config.DifficultyManager
}

// NewBombManager creates a new bomb manager with the given RNG seed.
func NewBombManager(seed int64, screenW, screenH int, cfg *config.BunnyConfig, diff *config.DifficultyManager) *BombManager {
	bm := &BombManager{
		bombs:      make([]Bomb, 0, 16),
		screenW:    screenW,
		screenH:    screenH,
		cfg:        cfg,
		difficulty: diff,
	}
	bm.Reset(seed)
	return bm
}

// UpdateConfig updates the configuration.
func (bm *BombManager) UpdateConfig(cfg *config.BunnyConfig, diff *config.DifficultyManager) {
	bm.cfg = cfg
	bm.difficulty = diff
}

// UpdateScreenSize updates the screen dimensions.
func (bm *BombManager) UpdateScreenSize(screenW, screenH int) {
	bm.screenW = screenW
	bm.screenH = screenH
}

// Reset clears all bombs and reseeds the RNG.
func (bm *BombManager) Reset(seed int64) {
	bm.bombs = bm.bombs[:0]
	bm.nextID = 1
	bm.rng = rand.New(rand.NewSource(seed))
}

// SpawnWave drops wave_size bombs at random columns just above the top edge.
// Each bomb gets its own fall speed, scaled by the current difficulty.
func (bm *BombManager) SpawnWave(score, ticks int) []Bomb {
	n := bm.cfg.Bombs.WaveSize
	if n <= 0 {
		return nil
	}

	h := float64(bm.cfg.Bombs.Height)
	minSpeed := bm.cfg.Bombs.MinFallSpeed
	maxSpeed := bm.cfg.Bombs.MaxFallSpeed

	spawned := make([]Bomb, 0, n)
	for i := 0; i < n; i++ {
		base := minSpeed + bm.rng.Float64()*(maxSpeed-minSpeed)
		speed := bm.difficulty.Speed(base, score, ticks) * float64(bm.screenH)

		b := Bomb{
			ID:    bm.nextID,
			X:     bm.rng.Float64() * float64(bm.screenW),
			Y:     -h / 2,
			Speed: speed,
		}
		bm.nextID++
		bm.bombs = append(bm.bombs, b)
		spawned = append(spawned, b)
	}
	return spawned
}

// Update moves every bomb down by speed*dt.
func (bm *BombManager) Update(dt float64) {
	for i := range bm.bombs {
		bm.bombs[i].Y += bm.bombs[i].Speed * dt
	}
}

// SetPosition overrides a bomb's position, used when a physics space
// integrates the motion instead of Update.
func (bm *BombManager) SetPosition(id int, x, y float64) {
	for i := range bm.bombs {
		if bm.bombs[i].ID == id {
			bm.bombs[i].X = x
			bm.bombs[i].Y = y
			return
		}
	}
}

// RemoveFallen drops bombs whose top edge is below the screen and returns
// their ids.
func (bm *BombManager) RemoveFallen() []int {
	half := float64(bm.cfg.Bombs.Height) / 2
	limit := float64(bm.screenH)

	var removed []int
	kept := bm.bombs[:0]
	for _, b := range bm.bombs {
		if b.Y-half >= limit {
			removed = append(removed, b.ID)
			continue
		}
		kept = append(kept, b)
	}
	bm.bombs = kept
	return removed
}

// Remove deletes a bomb by id. Returns false if no such bomb exists.
func (bm *BombManager) Remove(id int) bool {
	for i, b := range bm.bombs {
		if b.ID == id {
			bm.bombs = append(bm.bombs[:i], bm.bombs[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the bomb with the given id.
func (bm *BombManager) Get(id int) (Bomb, bool) {
	for _, b := range bm.bombs {
		if b.ID == id {
			return b, true
		}
	}
	return Bomb{}, false
}

// At returns the bombs drawn within grab reach of cell (x, y).
// Terminal cells are coarse, so a tap one cell off still counts.
func (bm *BombManager) At(x, y int) []Bomb {
	w, h := bm.cfg.Bombs.Width, bm.cfg.Bombs.Height

	var hit []Bomb
	for _, b := range bm.bombs {
		r := b.CellRect(w, h)
		reach := core.NewRect(r.X-grabSlack, r.Y-grabSlack, r.W+2*grabSlack, r.H+2*grabSlack)
		if reach.Contains(x, y) {
			hit = append(hit, b)
		}
	}
	return hit
}

// Bombs returns the current bombs for rendering and collision.
func (bm *BombManager) Bombs() []Bomb {
	return bm.bombs
}

// count returns the number of live bombs.
func (bm *BombManager) count() int {
	return len(bm.bombs)
}
