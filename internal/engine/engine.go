// Package engine runs the background processes that age the pet and drain
// its vital stats.
package engine

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/moorebrett0/termpet/internal/clock"
	"github.com/moorebrett0/termpet/internal/pet"
)

// Engine drives the five decay processes plus one energy recovery process
// per sleep session.
type Engine struct {
	pet     *pet.Pet
	timings Timings

	sleeps   chan uint64
	dead     chan struct{}
	deadOnce sync.Once
}

// errDied ends the process group once the pet is dead.
var errDied = errors.New("engine: pet died")

// New creates an engine for p and subscribes it to p's events.
func New(p *pet.Pet, t Timings) *Engine {
	e := &Engine{
		pet:     p,
		timings: t,
		sleeps:  make(chan uint64, 8),
		dead:    make(chan struct{}),
	}
	p.Subscribe(e)
	return e
}

// Handle implements pet.Sink.
func (e *Engine) Handle(ev pet.Event) {
	switch ev := ev.(type) {
	case pet.FellAsleep:
		select {
		case e.sleeps <- ev.Session:
		default:
			slog.Warn("engine: dropped sleep session", "session", ev.Session)
		}
	case pet.Died:
		slog.Info("engine: pet died", "cause", ev.Cause.String(), "age", ev.Snapshot.Age)
		e.deadOnce.Do(func() { close(e.dead) })
	}
}

// Run starts the life cycle after the initial delay and blocks until the
// pet dies and every process has stopped, or ctx is cancelled.
func (e *Engine) Run(ctx context.Context) error {
	if !clock.Sleep(ctx, e.timings.InitialDelay) {
		return nil
	}
	if _, err := e.pet.Update(ctx, (*pet.State).StartLife); err != nil {
		return stopped(ctx, err)
	}
	slog.Info("engine: life cycle started")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return e.age(gctx) })
	g.Go(func() error { return e.hunger(gctx) })
	g.Go(func() error { return e.energy(gctx) })
	g.Go(func() error { return e.hygiene(gctx) })
	g.Go(func() error { return e.happiness(gctx) })
	g.Go(func() error { return e.superviseSleep(gctx, g) })

	err := g.Wait()
	if errors.Is(err, errDied) {
		err = nil
	}
	slog.Info("engine: stopped", "err", err)
	return err
}

// stopped turns cancellation into a clean exit and reports anything else.
func stopped(ctx context.Context, err error) error {
	if ctx.Err() != nil || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (e *Engine) age(ctx context.Context) error {
	for {
		snap, err := e.pet.Update(ctx, (*pet.State).AgeTick)
		if err != nil {
			return stopped(ctx, err)
		}
		if !snap.Alive {
			return nil
		}
		if !clock.Sleep(ctx, e.timings.Age) {
			return nil
		}
	}
}

// drain describes a stat that pauses while full and drains at half speed
// while an action is topping it up.
type drain struct {
	full   func(pet.Snapshot) bool
	slowed func(pet.Snapshot) bool
	tick   func(*pet.State)
	every  time.Duration
	grace  time.Duration
}

func (e *Engine) hunger(ctx context.Context) error {
	return e.drainLoop(ctx, drain{
		full:   func(s pet.Snapshot) bool { return s.Food >= pet.FoodMax },
		slowed: func(s pet.Snapshot) bool { return s.Feeding },
		tick:   (*pet.State).DrainFood,
		every:  e.timings.FoodDrain,
		grace:  e.timings.FoodFullGrace,
	})
}

func (e *Engine) happiness(ctx context.Context) error {
	return e.drainLoop(ctx, drain{
		full:   func(s pet.Snapshot) bool { return s.Happiness >= pet.HappinessMax },
		slowed: func(s pet.Snapshot) bool { return s.Playing },
		tick:   (*pet.State).DrainHappiness,
		every:  e.timings.HappinessDrain,
		grace:  e.timings.HappinessFullGrace,
	})
}

func (e *Engine) drainLoop(ctx context.Context, d drain) error {
	for {
		snap, err := e.pet.Snapshot(ctx)
		if err != nil {
			return stopped(ctx, err)
		}
		if !snap.Alive {
			return nil
		}
		if d.full(snap) && !clock.Sleep(ctx, d.grace) {
			return nil
		}

		snap, err = e.pet.Update(ctx, d.tick)
		if err != nil {
			return stopped(ctx, err)
		}
		if !snap.Alive {
			return nil
		}

		wait := d.every
		if d.slowed(snap) {
			wait *= 2
		}
		if !clock.Sleep(ctx, wait) {
			return nil
		}
	}
}

// energy drains while awake; while asleep it idles and the recovery
// process for the current session refills it.
func (e *Engine) energy(ctx context.Context) error {
	for {
		snap, err := e.pet.Update(ctx, (*pet.State).DrainEnergy)
		if err != nil {
			return stopped(ctx, err)
		}
		if !snap.Alive {
			return nil
		}
		if !clock.Sleep(ctx, e.timings.EnergyDrain) {
			return nil
		}
	}
}

func (e *Engine) hygiene(ctx context.Context) error {
	every := e.timings.PoopEvery
	check := func(s *pet.State) { s.CheckHygiene(every) }
	for {
		snap, err := e.pet.Update(ctx, check)
		if err != nil {
			return stopped(ctx, err)
		}
		if !snap.Alive {
			return nil
		}
		if !clock.Sleep(ctx, e.timings.PoopCheck) {
			return nil
		}
	}
}

// superviseSleep starts a recovery process for each sleep session. When the
// pet dies it fails the group so sleeping processes wake and exit.
func (e *Engine) superviseSleep(ctx context.Context, g *errgroup.Group) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-e.dead:
			return errDied
		case session := <-e.sleeps:
			g.Go(func() error { return e.recoverEnergy(ctx, session) })
		}
	}
}

func (e *Engine) recoverEnergy(ctx context.Context, session uint64) error {
	for {
		if !clock.Sleep(ctx, e.timings.EnergyRecovery) {
			return nil
		}
		more := false
		_, err := e.pet.Update(ctx, func(s *pet.State) {
			more = s.RecoverEnergy(session)
		})
		if err != nil {
			return stopped(ctx, err)
		}
		if !more {
			return nil
		}
	}
}
