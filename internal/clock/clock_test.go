package clock

import (
	"context"
	"testing"
	"time"
)

func TestStopwatchAccumulatesAcrossRuns(t *testing.T) {
	c := NewManual(time.Unix(0, 0))
	sw := NewStopwatch(c)

	if got := sw.Elapsed(); got != 0 {
		t.Fatalf("fresh stopwatch elapsed = %s, want 0", got)
	}

	sw.Start()
	c.Advance(3 * time.Second)
	sw.Stop()
	c.Advance(10 * time.Second)
	if got := sw.Elapsed(); got != 3*time.Second {
		t.Fatalf("elapsed after stop = %s, want 3s", got)
	}

	sw.Start()
	c.Advance(2 * time.Second)
	if got := sw.Elapsed(); got != 5*time.Second {
		t.Fatalf("elapsed while running = %s, want 5s", got)
	}
}

func TestStopwatchResetAndRestart(t *testing.T) {
	c := NewManual(time.Unix(0, 0))
	sw := NewStopwatch(c)
	sw.Start()
	c.Advance(time.Minute)

	sw.Reset()
	if sw.Running() {
		t.Fatal("reset stopwatch should not be running")
	}
	c.Advance(time.Minute)
	if got := sw.Elapsed(); got != 0 {
		t.Fatalf("elapsed after reset = %s, want 0", got)
	}

	sw.Restart()
	c.Advance(4 * time.Second)
	if got := sw.Elapsed(); got != 4*time.Second {
		t.Fatalf("elapsed after restart = %s, want 4s", got)
	}
}

func TestStartIsIdempotent(t *testing.T) {
	c := NewManual(time.Unix(0, 0))
	sw := NewStopwatch(c)
	sw.Start()
	c.Advance(time.Second)
	sw.Start()
	c.Advance(time.Second)
	if got := sw.Elapsed(); got != 2*time.Second {
		t.Fatalf("elapsed = %s, want 2s", got)
	}
}

func TestSleepReturnsFalseWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	start := time.Now()
	if Sleep(ctx, time.Hour) {
		t.Fatal("expected Sleep to report cancellation")
	}
	if time.Since(start) > time.Second {
		t.Fatal("Sleep did not return promptly after cancel")
	}
}

func TestSleepCompletes(t *testing.T) {
	if !Sleep(context.Background(), time.Millisecond) {
		t.Fatal("expected Sleep to complete")
	}
}

func TestPerUnit(t *testing.T) {
	if got := PerUnit(45*time.Second, 50); got != 900*time.Millisecond {
		t.Fatalf("PerUnit = %s, want 900ms", got)
	}
	if got := PerUnit(5*time.Minute, 100); got != 3*time.Second {
		t.Fatalf("PerUnit = %s, want 3s", got)
	}
	if got := PerUnit(time.Second, 0); got != time.Second {
		t.Fatalf("PerUnit with zero units = %s, want 1s", got)
	}
}
