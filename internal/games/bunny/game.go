// Package bunny implements Happy Bunny: bombs fall from the sky, the bunny
// dodges them, and tapped bombs blow up before they land.
package bunny

import (
	"fmt"
	"math"

	"github.com/vovakirdan/happy-bunny/internal/config"
	"github.com/vovakirdan/happy-bunny/internal/core"
	"github.com/vovakirdan/happy-bunny/internal/physics"
	"github.com/vovakirdan/happy-bunny/internal/registry"
)

// Variant ids registered with the game registry.
const (
	IDClassic = "bunny"
	IDPhysics = "bunny-physics"
)

// Scheduler timer names.
const (
	timerScore = "score"
	timerWave  = "wave"
	timerAnim  = "anim"
)

// grabSlack is how many cells around a sprite still count as touching it.
const grabSlack = 1

// Visual characters for rendering
const (
	BombChar   = '●'
	GroundChar = '▔'
)

// playerFrames is the two-frame idle animation, one string per sprite row.
var playerFrames = [2][]string{
	{`\ /`, `(•)`},
	{`| |`, `(•)`},
}

// Phase is the scene-level game state. Transitions are plain assignments.
type Phase int

const (
	PhaseInit   Phase = iota // Before the first tick
	PhaseUpdate              // Bombs fall, score grows
	PhasePause               // Frozen on the tick a bomb hit the bunny
	PhaseEnd                 // Hit processed, run is over
	PhaseMenu1               // Shown behind the title menu
	PhaseMenu2               // Shown behind the game over menu
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseInit:
		return "init"
	case PhaseUpdate:
		return "update"
	case PhasePause:
		return "pause"
	case PhaseEnd:
		return "end"
	case PhaseMenu1:
		return "menu1"
	case PhaseMenu2:
		return "menu2"
	default:
		return "unknown"
	}
}

// Game implements the Happy Bunny game logic.
type Game struct {
	id        string
	title     string
	collision string // Forced collision mode, empty means use config

	runtime    core.RuntimeConfig
	cfg        config.BunnyConfig
	difficulty *config.DifficultyManager
	sched      *core.Scheduler
	bombs      *BombManager
	world      *physics.ContactWorld // Only set in physics collision mode
	explosions []Explosion

	phase     Phase
	paused    bool
	playerX   float64 // Bunny center
	playerY   float64
	score     int
	tickCount int
	animFrame int
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// New creates the classic variant, which detects hits by box intersection
// unless the config file asks for physics.
func New() *Game {
	return &Game{id: IDClassic, title: "Happy Bunny"}
}

// NewPhysics creates the variant that detects hits through physics contacts.
func NewPhysics() *Game {
	return &Game{id: IDPhysics, title: "Happy Bunny (physics)", collision: config.CollisionPhysics}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Description says how the variant detects hits.
func (g *Game) Description() string {
	if g.id == IDPhysics {
		return "hits are physics contacts between the bunny and a bomb"
	}
	return "hits are overlapping bounding boxes"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadBunny(configPath)
	if err != nil {
		cfg = config.DefaultBunnyConfig()
	}
	config.ApplyBunnyPreset(&cfg, difficultyPreset)
	if g.collision != "" {
		cfg.Collision = g.collision
	}
	g.cfg = cfg

	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.phase = PhaseInit
	g.paused = false
	g.score = 0
	g.tickCount = 0
	g.animFrame = 0
	g.explosions = g.explosions[:0]

	g.playerX = float64(runtime.ScreenW) / 2
	g.playerY = float64(runtime.ScreenH) * (1 - cfg.Player.YRatio)

	g.sched = core.NewScheduler()
	g.sched.Schedule(timerScore, cfg.Score.Interval)
	g.sched.Schedule(timerWave, g.difficulty.Interval(cfg.Bombs.WaveInterval, 0, 0))
	g.sched.Schedule(timerAnim, cfg.Player.AnimInterval)

	if g.bombs == nil {
		g.bombs = NewBombManager(runtime.Seed, runtime.ScreenW, runtime.ScreenH, &g.cfg, g.difficulty)
	} else {
		g.bombs.UpdateConfig(&g.cfg, g.difficulty)
		g.bombs.UpdateScreenSize(runtime.ScreenW, runtime.ScreenH)
		g.bombs.Reset(runtime.Seed)
	}

	g.world = nil
	if cfg.Collision == config.CollisionPhysics {
		g.world = physics.NewContactWorld(g.playerX, g.playerY,
			float64(cfg.Player.Width), float64(cfg.Player.Height))
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.phase {
	case PhaseEnd, PhaseMenu1, PhaseMenu2:
		return core.StepResult{State: g.State()}
	case PhasePause:
		// The hit was shown for a frame, now the run is over
		g.phase = PhaseEnd
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	var events []core.Event
	if g.phase == PhaseInit {
		g.phase = PhaseUpdate
		events = append(events, g.spawnWave()...)
	}

	dt := g.runtime.TickDelta()
	g.tickCount++

	g.handleInput(in, &events)

	for _, name := range g.sched.Tick(dt) {
		switch name {
		case timerScore:
			g.score += g.cfg.Score.Points
			events = append(events, core.Event{Kind: core.EventScoreTick, Value: g.score})
		case timerWave:
			events = append(events, g.spawnWave()...)
			g.sched.Schedule(timerWave, g.difficulty.Interval(g.cfg.Bombs.WaveInterval, g.score, g.tickCount))
		case timerAnim:
			g.animFrame = (g.animFrame + 1) % len(playerFrames)
		}
	}

	hit, ok := g.moveBombs(dt)
	g.explosions = updateExplosions(g.explosions, dt, g.cfg.Explosion.Duration)

	if ok {
		g.phase = PhasePause
		cell := hit.CellRect(g.cfg.Bombs.Width, g.cfg.Bombs.Height)
		events = append(events, core.Event{Kind: core.EventPlayerHit, X: cell.X, Y: cell.Y, Value: g.score})
	}

	return core.StepResult{State: g.State(), Events: events}
}

// handleInput applies tilt keys, drags on the bunny and taps on bombs.
func (g *Game) handleInput(in core.InputFrame, events *[]core.Event) {
	if in.Has(core.ActionLeft) {
		g.movePlayerIfPossible(g.playerX - g.cfg.Player.TiltStep)
	}
	if in.Has(core.ActionRight) {
		g.movePlayerIfPossible(g.playerX + g.cfg.Player.TiltStep)
	}

	if p, ok := in.LastDrag(); ok {
		r := g.playerCells()
		reach := core.NewRect(r.X-grabSlack, r.Y, r.W+2*grabSlack, r.H)
		if reach.Contains(p.X, p.Y) {
			g.movePlayerIfPossible(float64(p.X) + 0.5)
		}
	}

	for _, tap := range in.Taps() {
		for _, b := range g.bombs.At(tap.X, tap.Y) {
			g.removeBomb(b.ID)
			cell := b.CellRect(g.cfg.Bombs.Width, g.cfg.Bombs.Height)
			g.explosions = append(g.explosions, Explosion{X: cell.X, Y: cell.Y})
			*events = append(*events, core.Event{Kind: core.EventBombExploded, X: cell.X, Y: cell.Y})
		}
	}
}

// movePlayerIfPossible moves the bunny only if it stays fully on screen.
func (g *Game) movePlayerIfPossible(newX float64) {
	halfW := float64(g.cfg.Player.Width) / 2
	if newX >= halfW && newX < float64(g.runtime.ScreenW)-halfW {
		g.playerX = newX
		if g.world != nil {
			g.world.MovePlayer(g.playerX, g.playerY)
		}
	}
}

// spawnWave drops a new wave of bombs and reports each one.
func (g *Game) spawnWave() []core.Event {
	spawned := g.bombs.SpawnWave(g.score, g.tickCount)
	events := make([]core.Event, 0, len(spawned))
	for _, b := range spawned {
		if g.world != nil {
			g.world.AddBomb(b.ID, b.X, b.Y,
				float64(g.cfg.Bombs.Width), float64(g.cfg.Bombs.Height), b.Speed)
		}
		events = append(events, core.Event{Kind: core.EventBombSpawned, X: int(b.X), Value: b.ID})
	}
	return events
}

// moveBombs advances the bombs, drops the fallen ones and returns the first
// bomb touching the bunny, if any.
func (g *Game) moveBombs(dt float64) (Bomb, bool) {
	var hitIDs []int

	if g.world != nil {
		g.world.Step(dt)
		for _, b := range g.bombs.Bombs() {
			if x, y, ok := g.world.BombPosition(b.ID); ok {
				g.bombs.SetPosition(b.ID, x, y)
			}
		}
		hitIDs = g.world.Contacts()
	} else {
		g.bombs.Update(dt)
		player := g.playerRect()
		for _, b := range g.bombs.Bombs() {
			if b.Rect(g.cfg.Bombs.Width, g.cfg.Bombs.Height).Intersects(player) {
				hitIDs = append(hitIDs, b.ID)
			}
		}
	}

	var hit Bomb
	found := false
	for _, id := range hitIDs {
		if b, ok := g.bombs.Get(id); ok {
			hit, found = b, true
			break
		}
	}

	for _, id := range g.bombs.RemoveFallen() {
		if g.world != nil {
			g.world.RemoveBomb(id)
		}
	}

	return hit, found
}

// removeBomb takes a bomb out of the game and the physics space.
func (g *Game) removeBomb(id int) {
	g.bombs.Remove(id)
	if g.world != nil {
		g.world.RemoveBomb(id)
	}
}

// playerRect returns the bunny's collision box.
func (g *Game) playerRect() core.RectF {
	return core.NewRectF(g.playerX, g.playerY, float64(g.cfg.Player.Width), float64(g.cfg.Player.Height))
}

// playerCells returns the cells the bunny is drawn on.
func (g *Game) playerCells() core.Rect {
	r := g.playerRect()
	return core.NewRect(int(math.Floor(r.X+0.5)), int(math.Floor(r.Y+0.5)), g.cfg.Player.Width, g.cfg.Player.Height)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Ground line under the bunny
	groundY := g.playerCells().Bottom()
	if groundY < dst.Height() {
		for x := 0; x < dst.Width(); x++ {
			dst.SetColor(x, groundY, GroundChar, core.ColorGreen)
		}
	}

	for _, b := range g.bombs.Bombs() {
		dst.DrawRectColor(b.CellRect(g.cfg.Bombs.Width, g.cfg.Bombs.Height), BombChar, core.ColorGray)
	}

	for _, e := range g.explosions {
		drawExplosion(dst, e, g.cfg.Explosion.Duration, g.cfg.Explosion.Radius)
	}

	g.drawPlayer(dst)

	if g.phase == PhaseMenu1 || g.phase == PhaseMenu2 {
		return
	}

	dst.DrawTextColor(2, 0, fmt.Sprintf(" Score: %d ", g.score), core.ColorBrightWhite)

	if g.phase == PhasePause || g.phase == PhaseEnd {
		r := g.playerCells()
		dst.DrawTextColor(r.X, r.Y-1, "uh!", core.ColorBrightRed)
	}

	if g.paused {
		dst.DrawTextCenteredColor(dst.Height()/2, "PAUSE", core.ColorBrightYellow)
	}
}

// drawPlayer draws the current animation frame. Cells outside the sprite
// art (for configs wider than the art) are filled solid.
func (g *Game) drawPlayer(dst *core.Screen) {
	r := g.playerCells()
	frame := playerFrames[g.animFrame]
	for dy := 0; dy < r.H; dy++ {
		var row []rune
		if dy < len(frame) {
			row = []rune(frame[dy])
		}
		for dx := 0; dx < r.W; dx++ {
			ch := '█'
			if dx < len(row) {
				ch = row[dx]
			}
			dst.SetColor(r.X+dx, r.Y+dy, ch, core.ColorPink)
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == PhaseEnd,
		Paused:   g.paused,
	}
}

// SetPaused freezes or resumes the simulation.
func (g *Game) SetPaused(paused bool) {
	g.paused = paused
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// EnterMenu parks the game behind a menu: 1 for the title menu, anything
// else for the game over menu. Step is a no-op until the next Reset.
func (g *Game) EnterMenu(n int) {
	if n == 1 {
		g.phase = PhaseMenu1
		return
	}
	g.phase = PhaseMenu2
}

// Register both collision variants with the registry
func init() {
	registry.Register(IDClassic, func() registry.Game {
		return New()
	})
	registry.Register(IDPhysics, func() registry.Game {
		return NewPhysics()
	})
}
