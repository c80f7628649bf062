// Package action runs the player's commands against the pet.
package action

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/moorebrett0/termpet/internal/clock"
	"github.com/moorebrett0/termpet/internal/pet"
)

// ErrBusy is returned when an action is requested while another is running.
var ErrBusy = errors.New("action: another action is in progress")

// Command is a decoded player input.
type Command int

const (
	None Command = iota
	Feed
	Bed
	Wake
	Clean
	Play
	Exit
)

func (c Command) String() string {
	switch c {
	case Feed:
		return "feed"
	case Bed:
		return "bed"
	case Wake:
		return "wake"
	case Clean:
		return "clean"
	case Play:
		return "play"
	case Exit:
		return "exit"
	default:
		return "none"
	}
}

// Outcome tells whether the pet accepted an action.
type Outcome int

const (
	Rejected Outcome = iota
	Accepted
)

func (o Outcome) String() string {
	if o == Accepted {
		return "accepted"
	}
	return "rejected"
}

// Progress draws an action's progress sequence.
type Progress interface {
	ShowAction(a pet.Action, frame int)
	ClearAction()
}

// Durations is how long each action's progress sequence takes.
type Durations struct {
	Feed  time.Duration
	Bed   time.Duration
	Wake  time.Duration
	Clean time.Duration
	Play  time.Duration
}

// DefaultDurations returns the game's action lengths.
func DefaultDurations() Durations {
	return Durations{
		Feed:  3 * time.Second,
		Bed:   3 * time.Second,
		Wake:  1 * time.Second,
		Clean: 7 * time.Second,
		Play:  5 * time.Second,
	}
}

func (d Durations) of(a pet.Action) time.Duration {
	switch a {
	case pet.ActFeed:
		return d.Feed
	case pet.ActBed:
		return d.Bed
	case pet.ActWake:
		return d.Wake
	case pet.ActClean:
		return d.Clean
	default:
		return d.Play
	}
}

// progressSteps is the number of dots drawn after the action text.
const progressSteps = 3

// Dispatcher runs one action at a time.
type Dispatcher struct {
	pet       *pet.Pet
	progress  Progress
	durations Durations
	sem       chan struct{}
}

// New creates a dispatcher that draws progress on progress.
func New(p *pet.Pet, progress Progress, durations Durations) *Dispatcher {
	return &Dispatcher{
		pet:       p,
		progress:  progress,
		durations: durations,
		sem:       make(chan struct{}, 1),
	}
}

// Do runs the action for cmd. None and Exit are not actions.
func (d *Dispatcher) Do(ctx context.Context, cmd Command) (Outcome, error) {
	switch cmd {
	case Feed:
		return d.Feed(ctx)
	case Bed:
		return d.PutToBed(ctx)
	case Wake:
		return d.Wake(ctx)
	case Clean:
		return d.Clean(ctx)
	case Play:
		return d.Play(ctx)
	default:
		return Rejected, fmt.Errorf("action: %s is not an action", cmd)
	}
}

func (d *Dispatcher) Feed(ctx context.Context) (Outcome, error)     { return d.run(ctx, pet.ActFeed) }
func (d *Dispatcher) PutToBed(ctx context.Context) (Outcome, error) { return d.run(ctx, pet.ActBed) }
func (d *Dispatcher) Wake(ctx context.Context) (Outcome, error)     { return d.run(ctx, pet.ActWake) }
func (d *Dispatcher) Clean(ctx context.Context) (Outcome, error)    { return d.run(ctx, pet.ActClean) }
func (d *Dispatcher) Play(ctx context.Context) (Outcome, error)     { return d.run(ctx, pet.ActPlay) }

func (d *Dispatcher) run(ctx context.Context, a pet.Action) (Outcome, error) {
	select {
	case d.sem <- struct{}{}:
	default:
		return Rejected, ErrBusy
	}
	defer func() { <-d.sem }()

	var begun bool
	if _, err := d.pet.Update(ctx, func(s *pet.State) { begun = s.BeginAction(a) }); err != nil {
		return Rejected, err
	}
	if !begun {
		return Rejected, nil
	}

	if err := d.showProgress(ctx, a); err != nil {
		d.progress.ClearAction()
		// The pet must not stay latched if the game goes on.
		if _, abortErr := d.pet.Update(context.WithoutCancel(ctx), (*pet.State).AbortAction); abortErr != nil && !errors.Is(abortErr, pet.ErrStopped) {
			slog.Warn("action: abort failed", "action", a, "err", abortErr)
		}
		if errors.Is(err, errDied) {
			return Accepted, nil
		}
		return Accepted, err
	}
	d.progress.ClearAction()

	if _, err := d.pet.Update(ctx, func(s *pet.State) { s.FinishAction(a) }); err != nil {
		return Accepted, err
	}
	slog.Debug("action: finished", "action", a)
	return Accepted, nil
}

var errDied = errors.New("action: pet died")

// showProgress draws each frame and holds it for one step, so the last
// frame stays up as long as the others before the effect lands.
func (d *Dispatcher) showProgress(ctx context.Context, a pet.Action) error {
	step := clock.PerUnit(d.durations.of(a), progressSteps)
	for i := 0; i <= progressSteps; i++ {
		d.progress.ShowAction(a, i)
		if !clock.Sleep(ctx, step) {
			return ctx.Err()
		}
		snap, err := d.pet.Snapshot(ctx)
		if err != nil {
			return err
		}
		if !snap.Alive {
			return errDied
		}
	}
	return nil
}
