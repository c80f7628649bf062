package monitor

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/term"
)

// Fallback size used when the terminal cannot be queried.
const (
	FallbackWidth  = 80
	FallbackHeight = 24
)

// Size is a terminal size in character cells.
type Size struct {
	Width  int
	Height int
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Monitor reads the terminal size periodically and stores it atomically.
type Monitor struct {
	size     atomic.Pointer[Size]
	interval time.Duration
	onResize func(Size) // called when the size changes

	read func() (int, int, error)
}

// New creates a Monitor for the terminal on fd. onResize is called each
// time a refresh sees a different size.
func New(fd int, interval time.Duration, onResize func(Size)) *Monitor {
	m := &Monitor{
		interval: interval,
		onResize: onResize,
		read:     func() (int, int, error) { return term.GetSize(fd) },
	}
	m.size.Store(&Size{Width: FallbackWidth, Height: FallbackHeight})
	m.refresh()
	return m
}

// Size returns the latest size without blocking.
func (m *Monitor) Size() Size {
	return *m.size.Load()
}

// Width is a shorthand for Size().Width.
func (m *Monitor) Width() int {
	return m.Size().Width
}

// Run polls the terminal size until the context is cancelled.
func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.refresh()
		}
	}
}

func (m *Monitor) refresh() {
	w, h, err := m.read()
	if err != nil || w <= 0 || h <= 0 {
		if err != nil {
			slog.Debug("monitor: cannot read terminal size", "err", err)
		}
		w, h = FallbackWidth, FallbackHeight
	}
	next := &Size{Width: w, Height: h}
	prev := m.size.Swap(next)
	if *prev != *next && m.onResize != nil {
		m.onResize(*next)
	}
}
