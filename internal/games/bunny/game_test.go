package bunny

import (
	"testing"

	"github.com/vovakirdan/happy-bunny/internal/core"
	"github.com/vovakirdan/happy-bunny/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

// clearBombs removes every bomb so long-running tests are not cut short
// by a random hit.
func clearBombs(g *Game) {
	for _, b := range append([]Bomb(nil), g.bombs.Bombs()...) {
		g.removeBomb(b.ID)
	}
}

// countEvents returns how many events of the given kind are in the list.
func countEvents(events []core.Event, kind core.EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// stepSafely runs n empty ticks with bombs cleared after each one and
// returns every event emitted.
func stepSafely(g *Game, n int) []core.Event {
	var all []core.Event
	for i := 0; i < n; i++ {
		res := g.Step(core.NewInputFrame())
		all = append(all, res.Events...)
		clearBombs(g)
	}
	return all
}

func TestGameDeterminism(t *testing.T) {
	cfg := testRuntime(12345)

	inputs := make([]core.InputFrame, 400)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		if i%20 == 0 {
			inputs[i].Set(core.ActionLeft)
		}
		if i%35 == 0 {
			inputs[i].Set(core.ActionRight)
		}
	}

	run := func() *Game {
		g := New()
		g.Reset(cfg)
		for _, in := range inputs {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g
	}

	g1, g2 := run(), run()

	if g1.score != g2.score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", g1.score, g2.score)
	}
	if g1.tickCount != g2.tickCount {
		t.Errorf("Determinism failed: tick counts differ. Run1=%d, Run2=%d", g1.tickCount, g2.tickCount)
	}
	b1, b2 := g1.bombs.Bombs(), g2.bombs.Bombs()
	if len(b1) != len(b2) {
		t.Fatalf("Determinism failed: bomb counts differ. Run1=%d, Run2=%d", len(b1), len(b2))
	}
	for i := range b1 {
		if b1[i] != b2[i] {
			t.Errorf("Determinism failed: bomb %d differs: %+v vs %+v", i, b1[i], b2[i])
		}
	}
}

func TestGameReset(t *testing.T) {
	cfg := testRuntime(42)

	g := New()
	g.Reset(cfg)
	stepSafely(g, 200)
	g.SetPaused(true)

	g.Reset(cfg)

	if g.score != 0 {
		t.Errorf("Reset should clear score, got %d", g.score)
	}
	if g.paused {
		t.Error("Reset should clear paused flag")
	}
	if g.tickCount != 0 {
		t.Errorf("Reset should clear tickCount, got %d", g.tickCount)
	}
	if g.Phase() != PhaseInit {
		t.Errorf("Reset should return to init phase, got %s", g.Phase())
	}
	if g.bombs.count() != 0 {
		t.Errorf("Reset should clear bombs, got %d", g.bombs.count())
	}
	if g.playerX != 40 {
		t.Errorf("Bunny should start centered at x=40, got %f", g.playerX)
	}
}

func TestFirstStepSpawnsWave(t *testing.T) {
	g := New()
	g.Reset(testRuntime(7))

	if g.Phase() != PhaseInit {
		t.Fatalf("Expected init phase before first step, got %s", g.Phase())
	}

	res := g.Step(core.NewInputFrame())

	if g.Phase() != PhaseUpdate {
		t.Errorf("First step should move init -> update, got %s", g.Phase())
	}
	if n := countEvents(res.Events, core.EventBombSpawned); n != 3 {
		t.Errorf("Expected 3 BombSpawned events, got %d", n)
	}
	if g.bombs.count() != 3 {
		t.Fatalf("Expected 3 bombs after first step, got %d", g.bombs.count())
	}

	for _, b := range g.bombs.Bombs() {
		if b.X < 0 || b.X >= 80 {
			t.Errorf("Bomb x=%f outside [0, 80)", b.X)
		}
		if b.Y > 0.5 {
			t.Errorf("Bomb should start at the top edge, y=%f", b.Y)
		}
		// 0.09..0.18 screen heights per second on a 24-row screen
		if b.Speed < 0.09*24 || b.Speed > 0.18*24 {
			t.Errorf("Bomb speed %f outside configured range", b.Speed)
		}
	}
}

func TestWaveEveryEightSeconds(t *testing.T) {
	g := New()
	g.Reset(testRuntime(3))

	events := stepSafely(g, 470) // just under 8s
	if n := countEvents(events, core.EventBombSpawned); n != 3 {
		t.Errorf("Expected only the initial wave before 8s, got %d bombs", n)
	}

	events = append(events, stepSafely(g, 20)...) // just over 8s
	if n := countEvents(events, core.EventBombSpawned); n != 6 {
		t.Errorf("Expected a second wave at 8s, got %d bombs total", n)
	}
}

func TestDefaultWavesStayEightSecondsApart(t *testing.T) {
	g := New()
	g.Reset(testRuntime(11))

	const minutes = 3
	ticks := minutes * 60 * 60

	var waveTicks []int
	for i := 1; i <= ticks; i++ {
		res := g.Step(core.NewInputFrame())
		if n := countEvents(res.Events, core.EventBombSpawned); n > 0 {
			if n != 3 {
				t.Fatalf("wave on tick %d had %d bombs, want 3", i, n)
			}
			waveTicks = append(waveTicks, i)
		}
		clearBombs(g)
	}

	// Initial wave on the first tick, then one every 480 ticks
	if want := 1 + ticks/480; len(waveTicks) != want {
		t.Fatalf("got %d waves in %d minutes, want %d", len(waveTicks), minutes, want)
	}
	if waveTicks[0] != 1 {
		t.Errorf("first wave on tick %d, want 1", waveTicks[0])
	}
	for i, at := range waveTicks[1:] {
		if want := 480 * (i + 1); at != want {
			t.Fatalf("wave %d on tick %d, want %d (score %d)", i+2, at, want, g.score)
		}
	}

	if g.score != minutes*60/3*10 {
		t.Errorf("score after %d minutes = %d, want %d", minutes, g.score, minutes*60/3*10)
	}
}

func TestDifficultyPresetIsOptIn(t *testing.T) {
	SetDifficultyPreset("hard")
	t.Cleanup(func() { SetDifficultyPreset("") })

	g := New()
	g.Reset(testRuntime(5))
	res := g.Step(core.NewInputFrame())

	if n := countEvents(res.Events, core.EventBombSpawned); n != 4 {
		t.Errorf("hard preset wave = %d bombs, want 4", n)
	}
	if g.sched.Interval(timerWave) >= 8.0 {
		t.Errorf("hard preset should shorten the wave interval, got %f", g.sched.Interval(timerWave))
	}
}

func TestScoreEveryThreeSeconds(t *testing.T) {
	g := New()
	g.Reset(testRuntime(3))

	stepSafely(g, 175)
	if g.score != 0 {
		t.Errorf("Score should still be 0 before 3s, got %d", g.score)
	}

	events := stepSafely(g, 10)
	if g.score != 10 {
		t.Errorf("Score should be 10 after 3s, got %d", g.score)
	}
	if n := countEvents(events, core.EventScoreTick); n != 1 {
		t.Errorf("Expected one ScoreTick event, got %d", n)
	}

	stepSafely(g, 180)
	if g.score != 20 {
		t.Errorf("Score should be 20 after 6s, got %d", g.score)
	}
}

func TestTiltStaysOnScreen(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	stepSafely(g, 1)

	left := core.NewInputFrame()
	left.Set(core.ActionLeft)
	for i := 0; i < 100; i++ {
		g.Step(left)
		clearBombs(g)
	}
	halfW := float64(g.cfg.Player.Width) / 2
	if g.playerX < halfW {
		t.Errorf("Bunny left the screen on the left: x=%f", g.playerX)
	}
	if g.playerX > halfW+g.cfg.Player.TiltStep {
		t.Errorf("Bunny should reach the left edge, x=%f", g.playerX)
	}

	right := core.NewInputFrame()
	right.Set(core.ActionRight)
	for i := 0; i < 100; i++ {
		g.Step(right)
		clearBombs(g)
	}
	if g.playerX >= 80-halfW {
		t.Errorf("Bunny left the screen on the right: x=%f", g.playerX)
	}
}

func TestDragMovesBunny(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	stepSafely(g, 1)

	row := g.playerCells().Y
	startX := g.playerX

	// Dragging far from the bunny does nothing
	in := core.NewInputFrame()
	in.AddPointer(core.PointerDrag, 10, 0)
	g.Step(in)
	clearBombs(g)
	if g.playerX != startX {
		t.Errorf("Drag away from the bunny should not move it, x=%f", g.playerX)
	}

	// Dragging on the bunny follows the pointer
	in = core.NewInputFrame()
	in.AddPointer(core.PointerDrag, int(startX)+1, row)
	g.Step(in)
	clearBombs(g)
	if want := float64(int(startX)+1) + 0.5; g.playerX != want {
		t.Errorf("Drag should move bunny to %f, got %f", want, g.playerX)
	}
}

func TestTapExplodesBomb(t *testing.T) {
	g := New()
	g.Reset(testRuntime(9))
	g.Step(core.NewInputFrame())

	target := g.bombs.Bombs()[0]
	cell := target.CellRect(g.cfg.Bombs.Width, g.cfg.Bombs.Height)

	in := core.NewInputFrame()
	in.AddPointer(core.PointerDown, cell.X, cell.Y)
	res := g.Step(in)

	if countEvents(res.Events, core.EventBombExploded) < 1 {
		t.Fatal("Tapping a bomb should emit BombExploded")
	}
	if _, ok := g.bombs.Get(target.ID); ok {
		t.Error("Tapped bomb should be removed")
	}
	if len(g.explosions) == 0 {
		t.Error("Tapped bomb should leave an explosion")
	}
}

func TestFallenBombsRemoved(t *testing.T) {
	for _, g := range []*Game{New(), NewPhysics()} {
		t.Run(g.ID(), func(t *testing.T) {
			g.Reset(testRuntime(5))
			g.Step(core.NewInputFrame())

			b := g.bombs.Bombs()[0]
			g.bombs.SetPosition(b.ID, 1, 30)
			if g.world != nil {
				g.world.AddBomb(b.ID, 1, 30, 1, 1, b.Speed)
			}
			g.Step(core.NewInputFrame())

			if _, ok := g.bombs.Get(b.ID); ok {
				t.Error("Bomb below the screen should be removed")
			}
			if g.world != nil {
				if _, _, ok := g.world.BombPosition(b.ID); ok {
					t.Error("Bomb below the screen should leave the physics space")
				}
			}
		})
	}
}

func TestCollisionEndsRun(t *testing.T) {
	for _, g := range []*Game{New(), NewPhysics()} {
		t.Run(g.ID(), func(t *testing.T) {
			g.Reset(testRuntime(11))
			g.Step(core.NewInputFrame())

			// Drop the first bomb right above the bunny, park the others
			bombs := append([]Bomb(nil), g.bombs.Bombs()...)
			for i, b := range bombs {
				x, y := g.playerX, g.playerY-1.6
				if i > 0 {
					x, y = 1, -5
				}
				g.bombs.SetPosition(b.ID, x, y)
				if g.world != nil {
					g.world.AddBomb(b.ID, x, y, 1, 1, b.Speed)
				}
			}

			var hit bool
			for i := 0; i < 120 && !hit; i++ {
				res := g.Step(core.NewInputFrame())
				hit = countEvents(res.Events, core.EventPlayerHit) > 0
			}

			if !hit {
				t.Fatal("Bomb falling on the bunny should emit PlayerHit")
			}
			if g.Phase() != PhasePause {
				t.Errorf("Hit should freeze the game in pause phase, got %s", g.Phase())
			}
			if g.State().GameOver {
				t.Error("Game over should be reported after the freeze frame")
			}

			res := g.Step(core.NewInputFrame())
			if g.Phase() != PhaseEnd || !res.State.GameOver {
				t.Errorf("Expected end phase with GameOver, got %s / %v", g.Phase(), res.State.GameOver)
			}

			score := g.score
			stepSafely(g, 300)
			if g.score != score {
				t.Error("Score should not change after game over")
			}
		})
	}
}

func TestPauseFreezesGame(t *testing.T) {
	g := New()
	g.Reset(testRuntime(2))
	g.Step(core.NewInputFrame())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	res := g.Step(pause)
	if !res.State.Paused {
		t.Fatal("Pause action should pause the game")
	}

	before := append([]Bomb(nil), g.bombs.Bombs()...)
	ticks := g.tickCount
	for i := 0; i < 300; i++ {
		g.Step(core.NewInputFrame())
	}

	if g.tickCount != ticks {
		t.Errorf("Ticks advanced while paused: %d -> %d", ticks, g.tickCount)
	}
	after := g.bombs.Bombs()
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("Bomb moved while paused: %+v -> %+v", before[i], after[i])
		}
	}

	g.SetPaused(false)
	g.Step(core.NewInputFrame())
	if g.tickCount != ticks+1 {
		t.Error("Game should resume after SetPaused(false)")
	}
}

func TestMenuPhasesAreInert(t *testing.T) {
	g := New()
	g.Reset(testRuntime(2))
	g.Step(core.NewInputFrame())

	g.EnterMenu(1)
	if g.Phase() != PhaseMenu1 {
		t.Errorf("Expected menu1, got %s", g.Phase())
	}
	ticks := g.tickCount
	g.Step(core.NewInputFrame())
	if g.tickCount != ticks {
		t.Error("Step should be a no-op in menu phases")
	}

	g.EnterMenu(2)
	if g.Phase() != PhaseMenu2 {
		t.Errorf("Expected menu2, got %s", g.Phase())
	}
}

func TestRenderDrawsBunnyAndScore(t *testing.T) {
	g := New()
	g.Reset(testRuntime(2))
	stepSafely(g, 200)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	r := g.playerCells()
	if got := screen.Get(r.X+1, r.Y+1); got != '•' {
		t.Errorf("Expected bunny face at (%d,%d), got %q", r.X+1, r.Y+1, got)
	}
	if got := screen.Row(0); got[:len("   Score: 10")] != "   Score: 10" {
		t.Errorf("Expected score in HUD, got %q", got)
	}
}

func TestVariantsRegistered(t *testing.T) {
	for _, id := range []string{IDClassic, IDPhysics} {
		info, ok := registry.Info(id)
		if !ok {
			t.Errorf("Variant %q should be registered", id)
			continue
		}
		if info.Description == "" {
			t.Errorf("Variant %q should describe its collision mode", id)
		}
	}
}
