// Package pet holds the virtual pet's state, the rules that change it and
// the goroutine that owns it.
package pet

import (
	"context"
	"errors"
	"sync"
)

// ErrStopped is returned by Update once the owning goroutine has exited.
var ErrStopped = errors.New("pet: actor stopped")

// Sink receives events from the pet. Handle runs on the pet's goroutine and
// must not block or call back into the pet synchronously.
type Sink interface {
	Handle(Event)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(Event)

func (f SinkFunc) Handle(e Event) { f(e) }

type intent struct {
	fn    func(*State)
	reply chan Snapshot
}

// Pet serializes every read and write of a State through one goroutine.
// Other goroutines send intents with Update and get a snapshot back.
type Pet struct {
	state *State
	inbox chan intent
	done  chan struct{}

	mu    sync.RWMutex
	sinks []Sink
}

// New wraps state. Call Run to start processing.
func New(state *State) *Pet {
	return &Pet{
		state: state,
		inbox: make(chan intent, 16),
		done:  make(chan struct{}),
	}
}

// Subscribe registers a sink for all future events.
func (p *Pet) Subscribe(s Sink) {
	p.mu.Lock()
	p.sinks = append(p.sinks, s)
	p.mu.Unlock()
}

// Run applies intents in arrival order until ctx is cancelled.
func (p *Pet) Run(ctx context.Context) {
	defer close(p.done)
	for {
		select {
		case <-ctx.Done():
			return
		case in := <-p.inbox:
			if in.fn != nil {
				in.fn(p.state)
			}
			events := p.state.flush()
			snap := p.state.Snapshot()
			p.publish(events)
			in.reply <- snap
		}
	}
}

// Update runs fn against the state on the owning goroutine and returns the
// resulting snapshot. fn must not retain the *State.
func (p *Pet) Update(ctx context.Context, fn func(*State)) (Snapshot, error) {
	in := intent{fn: fn, reply: make(chan Snapshot, 1)}
	select {
	case p.inbox <- in:
	case <-ctx.Done():
		return Snapshot{}, ctx.Err()
	case <-p.done:
		return Snapshot{}, ErrStopped
	}
	select {
	case snap := <-in.reply:
		return snap, nil
	case <-p.done:
		// Run may exit with our intent still queued.
		select {
		case snap := <-in.reply:
			return snap, nil
		default:
			return Snapshot{}, ErrStopped
		}
	}
}

// Snapshot returns the current state.
func (p *Pet) Snapshot(ctx context.Context) (Snapshot, error) {
	return p.Update(ctx, nil)
}

func (p *Pet) publish(events []Event) {
	if len(events) == 0 {
		return
	}
	p.mu.RLock()
	sinks := append([]Sink(nil), p.sinks...)
	p.mu.RUnlock()
	for _, e := range events {
		for _, s := range sinks {
			s.Handle(e)
		}
	}
}
