package core

import "time"

// MaxRate is the highest evolution rate a Scheduler accepts; larger rates
// are clamped. At MaxRate the gating product elapsed_ms*rate stays inside
// int64 for roughly 290 years of elapsed time.
const MaxRate = 1_000_000

// Scheduler decides when a simulation should advance and how long each loop
// iteration should sleep. Both decisions are measured against absolute time
// elapsed since the last Reset, so neither drifts over long runs.
//
// The evolution rate is fixed-point: evolutions per 100 time-units of 100ms,
// i.e. rate/10 evolutions per second.
type Scheduler struct {
	now func() time.Time

	start  time.Time
	rate   int64
	count  int64
	frames int64
	fps    int64
}

// NewScheduler constructs a Scheduler targeting fps loop iterations per
// second. A nil clock uses time.Now. fps must be positive.
func NewScheduler(fps, rate int, now func() time.Time) *Scheduler {
	if now == nil {
		now = time.Now
	}
	if fps <= 0 {
		panic("core: scheduler needs a positive refresh rate")
	}
	s := &Scheduler{now: now, fps: int64(fps), rate: clampRate(rate)}
	s.Reset()
	return s
}

// Reset restarts the clock and zeroes the evolution and frame counters.
func (s *Scheduler) Reset() {
	s.start = s.now()
	s.count = 0
	s.frames = 0
}

// SetRate changes the evolution rate, clamped to 0..MaxRate, and resets the
// timing base.
func (s *Scheduler) SetRate(rate int) {
	s.rate = clampRate(rate)
	s.Reset()
}

func clampRate(rate int) int64 {
	return int64(min(max(rate, 0), MaxRate))
}

// Rate returns the evolution rate.
func (s *Scheduler) Rate() int { return int(s.rate) }

// Evolutions returns the number of evolutions recorded since the last reset.
func (s *Scheduler) Evolutions() int64 { return s.count }

// Frames returns the number of paced iterations since the last reset.
func (s *Scheduler) Frames() int64 { return s.frames }

// Started returns the instant of the last reset.
func (s *Scheduler) Started() time.Time { return s.start }

// Elapsed returns time since the last reset.
func (s *Scheduler) Elapsed() time.Duration { return s.now().Sub(s.start) }

// ShouldEvolve reports whether the target time of the next evolution has passed.
func (s *Scheduler) ShouldEvolve() bool {
	return 10_000*(s.count+1) <= s.Elapsed().Milliseconds()*s.rate
}

// Evolved records that one evolution was emitted.
func (s *Scheduler) Evolved() { s.count++ }

// FrameDelay counts one loop iteration and returns how long to sleep until
// that iteration's deadline. It never returns a negative duration.
func (s *Scheduler) FrameDelay() time.Duration {
	s.frames++
	deadline := s.frames * 1_000_000 / s.fps
	remaining := deadline - s.Elapsed().Microseconds()
	if remaining <= 0 {
		return 0
	}
	return time.Duration(remaining) * time.Microsecond
}
