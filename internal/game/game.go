// Package game runs one play session: the pet, its decay, the screen and
// the player's keyboard.
package game

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/moorebrett0/termpet/internal/action"
	"github.com/moorebrett0/termpet/internal/announce"
	"github.com/moorebrett0/termpet/internal/clock"
	"github.com/moorebrett0/termpet/internal/display"
	"github.com/moorebrett0/termpet/internal/engine"
	"github.com/moorebrett0/termpet/internal/pet"
)

// DefaultDrain is how long the goodbye message stays up before exit.
const DefaultDrain = time.Second

// Input yields decoded key presses.
type Input interface {
	Next(ctx context.Context) (action.Command, error)
}

// Epitapher writes a dead pet's last words.
type Epitapher interface {
	Epitaph(ctx context.Context, snap pet.Snapshot) (string, error)
}

// Session wires the pieces of a game together. Pet, Engine, Dispatcher,
// Renderer and Input are required; Brain and Announcer may be nil.
type Session struct {
	Pet        *pet.Pet
	Engine     *engine.Engine
	Dispatcher *action.Dispatcher
	Renderer   *display.Renderer
	Input      Input

	Brain     Epitapher
	Announcer *announce.Announcer

	Goodbye string
	Drain   time.Duration

	farewells sync.WaitGroup
}

// Run plays until the player presses Esc, ctx is cancelled or input ends.
// It returns nil on a normal exit.
func (s *Session) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.Pet.Subscribe(s.Renderer)
	if s.Announcer != nil {
		s.Pet.Subscribe(s.Announcer)
	}
	if s.Brain != nil {
		s.Pet.Subscribe(pet.SinkFunc(func(e pet.Event) {
			if d, ok := e.(pet.Died); ok {
				s.farewells.Add(1)
				go s.farewell(ctx, d.Snapshot)
			}
		}))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.Pet.Run(gctx)
		return nil
	})
	g.Go(func() error {
		s.Renderer.Run(gctx)
		return nil
	})
	g.Go(func() error {
		return s.Engine.Run(gctx)
	})
	if s.Announcer != nil {
		g.Go(func() error {
			s.Announcer.Run(gctx)
			return nil
		})
	}

	if snap, err := s.Pet.Snapshot(gctx); err == nil {
		s.Renderer.Start(snap)
	}
	slog.Info("game: started")

	s.loop(gctx)

	s.Renderer.Final(s.Goodbye)
	clock.Sleep(context.WithoutCancel(ctx), s.drain())

	cancel()
	err := g.Wait()
	s.farewells.Wait()
	if s.Announcer != nil {
		flushCtx, stop := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
		s.Announcer.Flush(flushCtx)
		stop()
	}
	slog.Info("game: stopped")
	return err
}

func (s *Session) loop(ctx context.Context) {
	for {
		cmd, err := s.Input.Next(ctx)
		if err != nil {
			if ctx.Err() == nil {
				slog.Warn("game: input closed", "err", err)
			}
			return
		}
		switch cmd {
		case action.None:
			continue
		case action.Exit:
			slog.Info("game: player quit")
			return
		}

		out, err := s.Dispatcher.Do(ctx, cmd)
		switch {
		case errors.Is(err, action.ErrBusy):
			slog.Debug("game: action busy", "cmd", cmd)
		case err != nil && ctx.Err() == nil:
			slog.Error("game: action failed", "cmd", cmd, "err", err)
		default:
			slog.Debug("game: action done", "cmd", cmd, "outcome", out)
		}
	}
}

func (s *Session) farewell(ctx context.Context, snap pet.Snapshot) {
	defer s.farewells.Done()
	text, err := s.Brain.Epitaph(ctx, snap)
	if err != nil {
		if ctx.Err() == nil {
			slog.Warn("game: no epitaph", "err", err)
		}
		return
	}
	s.Renderer.Remark(text)
	if s.Announcer != nil {
		s.Announcer.Epitaph(snap, text)
	}
}

func (s *Session) drain() time.Duration {
	if s.Drain > 0 {
		return s.Drain
	}
	return DefaultDrain
}
