package pet

// Event is something that happened to the pet. Events are published by the
// actor after each update, in the order they occurred.
type Event interface {
	isEvent()
}

// StatsChanged is published once per update that touched a stat.
type StatsChanged struct {
	Snapshot Snapshot
}

// Milestone fires when the pet enters a new life stage.
type Milestone struct {
	Name  string
	Stage Stage
	Age   int
}

// Died fires exactly once.
type Died struct {
	Cause    DeathCause
	Snapshot Snapshot
}

// FellAsleep fires on every Awake to Asleep transition.
type FellAsleep struct {
	Cause   SleepCause
	Session uint64
}

// WokeUp fires on every Asleep to Awake transition.
type WokeUp struct {
	Cause  WakeCause
	Grumpy bool
}

// Rejected fires when an action's preconditions fail.
type Rejected struct {
	Action Action
	Reason Reason
}

// Grumbled fires when the player beds or wakes the pet too early.
// A happiness penalty has been applied.
type Grumbled struct {
	Action Action
}

// Pooped fires when hygiene drops.
type Pooped struct {
	Hygiene int
}

// Overjoyed fires when playing fills happiness.
type Overjoyed struct{}

func (StatsChanged) isEvent() {}
func (Milestone) isEvent()    {}
func (Died) isEvent()         {}
func (FellAsleep) isEvent()   {}
func (WokeUp) isEvent()       {}
func (Rejected) isEvent()     {}
func (Grumbled) isEvent()     {}
func (Pooped) isEvent()       {}
func (Overjoyed) isEvent()    {}
