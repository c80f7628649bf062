package pet

import (
	"time"

	"github.com/moorebrett0/termpet/internal/clock"
)

// State is the mutable state of the pet. It is owned by a single goroutine
// (see Pet); nothing else may hold a reference to it.
type State struct {
	// Identity (from config, never change)
	Name      string
	SpeciesID string

	Alive bool
	Mode  Mode

	Age       int
	Food      int
	Energy    int
	Hygiene   int
	Happiness int

	// Action latch and the drain modifiers set while an action runs.
	ActionInFlight bool
	Feeding        bool
	Playing        bool

	Death        DeathCause
	SleepSession uint64

	sleepTimer   *clock.Stopwatch
	wakeTimer    *clock.Stopwatch
	hygieneTimer *clock.Stopwatch

	pending []Event
	dirty   bool
}

// Snapshot is a read-only copy of State.
type Snapshot struct {
	Name      string
	SpeciesID string

	Alive bool
	Mode  Mode

	Age       int
	Food      int
	Energy    int
	Hygiene   int
	Happiness int

	ActionInFlight bool
	Feeding        bool
	Playing        bool

	Death        DeathCause
	SleepSession uint64

	SleepElapsed   time.Duration
	WakeElapsed    time.Duration
	HygieneElapsed time.Duration

	Mood  string
	Stage Stage
}

// Awake reports whether the pet was awake.
func (s Snapshot) Awake() bool {
	return s.Mode == Awake
}

// NewState creates a newborn pet: food, energy and hygiene full, happiness at half.
func NewState(name, speciesID string, c clock.Clock) *State {
	return &State{
		Name:         name,
		SpeciesID:    speciesID,
		Alive:        true,
		Mode:         Awake,
		Food:         FoodMax,
		Energy:       EnergyMax,
		Hygiene:      HygieneMax,
		Happiness:    HappinessMax / 2,
		sleepTimer:   clock.NewStopwatch(c),
		wakeTimer:    clock.NewStopwatch(c),
		hygieneTimer: clock.NewStopwatch(c),
	}
}

// Snapshot copies the state and computes derived values.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Name:           s.Name,
		SpeciesID:      s.SpeciesID,
		Alive:          s.Alive,
		Mode:           s.Mode,
		Age:            s.Age,
		Food:           s.Food,
		Energy:         s.Energy,
		Hygiene:        s.Hygiene,
		Happiness:      s.Happiness,
		ActionInFlight: s.ActionInFlight,
		Feeding:        s.Feeding,
		Playing:        s.Playing,
		Death:          s.Death,
		SleepSession:   s.SleepSession,
		SleepElapsed:   s.sleepTimer.Elapsed(),
		WakeElapsed:    s.wakeTimer.Elapsed(),
		HygieneElapsed: s.hygieneTimer.Elapsed(),
	}
	snap.Mood = DetermineMood(snap)
	snap.Stage = StageForAge(snap.Age)
	return snap
}

func (s *State) emit(e Event) {
	s.pending = append(s.pending, e)
}

func (s *State) changed() {
	s.dirty = true
}

// flush returns the events produced since the last flush, followed by a
// StatsChanged if any stat was touched.
func (s *State) flush() []Event {
	events := s.pending
	s.pending = nil
	if s.dirty {
		s.dirty = false
		events = append(events, StatsChanged{Snapshot: s.Snapshot()})
	}
	return events
}

// die records the first cause of death; later causes are ignored.
func (s *State) die(cause DeathCause) {
	if !s.Alive {
		return
	}
	s.Alive = false
	s.Death = cause
	s.changed()
	s.emit(Died{Cause: cause, Snapshot: s.Snapshot()})
}
