package pet

// Mode is the pet's sleep state.
type Mode int

const (
	Awake Mode = iota
	Asleep
)

func (m Mode) String() string {
	if m == Asleep {
		return "asleep"
	}
	return "awake"
}

// FallAsleep moves an awake, living pet to Asleep. It starts the sleep timer,
// clears the wake timer and opens a new sleep session.
func (s *State) FallAsleep(cause SleepCause) bool {
	if !s.Alive || s.Mode != Awake {
		return false
	}
	s.Mode = Asleep
	s.sleepTimer.Restart()
	s.wakeTimer.Reset()
	s.SleepSession++
	s.changed()
	s.emit(FellAsleep{Cause: cause, Session: s.SleepSession})
	return true
}

// WakeUp moves a sleeping, living pet to Awake.
func (s *State) WakeUp(cause WakeCause, grumpy bool) bool {
	if !s.Alive || s.Mode != Asleep {
		return false
	}
	s.Mode = Awake
	s.sleepTimer.Reset()
	s.wakeTimer.Restart()
	s.changed()
	s.emit(WokeUp{Cause: cause, Grumpy: grumpy})
	return true
}
