package core

import "sort"

// fireSlack absorbs the rounding error of summing fractional tick
// durations, so 60 ticks of 1/60s fire a 1s timer on the 60th tick.
const fireSlack = 1e-9

// timer is a single repeating callback slot.
type timer struct {
	interval float64
	elapsed  float64
}

// Scheduler runs named repeating timers against simulated time.
// It plays the role an engine scheduler plays for scene callbacks: a
// scene registers "spawn every 8s" once and asks each tick which timers
// fired. Time only advances through Tick, so pausing a scene is just not
// ticking its scheduler.
type Scheduler struct {
	timers map[string]*timer
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{timers: make(map[string]*timer)}
}

// Schedule registers (or re-registers) a repeating timer.
// Non-positive intervals are ignored.
func (s *Scheduler) Schedule(name string, interval float64) {
	if interval <= 0 {
		return
	}
	if t, ok := s.timers[name]; ok {
		t.interval = interval
		return
	}
	s.timers[name] = &timer{interval: interval}
}

// Unschedule removes a timer. Unknown names are ignored.
func (s *Scheduler) Unschedule(name string) {
	delete(s.timers, name)
}

// Scheduled reports whether a timer with the given name exists.
func (s *Scheduler) Scheduled(name string) bool {
	_, ok := s.timers[name]
	return ok
}

// Interval returns the interval of a timer, or 0 if unknown.
func (s *Scheduler) Interval(name string) float64 {
	if t, ok := s.timers[name]; ok {
		return t.interval
	}
	return 0
}

// Tick advances all timers by dt seconds and returns the names of the
// timers that fired, once per elapsed interval, sorted by name.
func (s *Scheduler) Tick(dt float64) []string {
	if dt <= 0 {
		return nil
	}

	var fired []string
	for name, t := range s.timers {
		t.elapsed += dt
		for t.elapsed >= t.interval-fireSlack {
			t.elapsed -= t.interval
			fired = append(fired, name)
		}
	}

	// Map iteration order is random; keep results deterministic
	sort.Strings(fired)
	return fired
}

// Reset clears elapsed time on every timer, keeping registrations.
func (s *Scheduler) Reset() {
	for _, t := range s.timers {
		t.elapsed = 0
	}
}
