package clock

import "time"

// Stopwatch measures elapsed time between Start and Stop calls.
// A stopwatch that was never started, or was Reset, reads zero.
// Not safe for concurrent use; the owner serializes access.
type Stopwatch struct {
	clock   Clock
	running bool
	started time.Time
	total   time.Duration
}

// NewStopwatch creates a stopped stopwatch reading time from c.
func NewStopwatch(c Clock) *Stopwatch {
	if c == nil {
		c = System
	}
	return &Stopwatch{clock: c}
}

// Start resumes measuring. No-op if already running.
func (s *Stopwatch) Start() {
	if s.running {
		return
	}
	s.running = true
	s.started = s.clock.Now()
}

// Stop pauses measuring and keeps the accumulated time.
func (s *Stopwatch) Stop() {
	if !s.running {
		return
	}
	s.total += s.clock.Now().Sub(s.started)
	s.running = false
}

// Reset stops the stopwatch and zeroes it.
func (s *Stopwatch) Reset() {
	s.running = false
	s.total = 0
}

// Restart zeroes the stopwatch and starts it again.
func (s *Stopwatch) Restart() {
	s.Reset()
	s.Start()
}

// Running reports whether the stopwatch is measuring.
func (s *Stopwatch) Running() bool {
	return s.running
}

// Elapsed returns the accumulated time, including the current run.
func (s *Stopwatch) Elapsed() time.Duration {
	if s.running {
		return s.total + s.clock.Now().Sub(s.started)
	}
	return s.total
}
