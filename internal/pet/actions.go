package pet

// BeginAction checks an action's preconditions and, if they hold, marks the
// action in flight. A refused action publishes Rejected and leaves the
// state untouched. An action already in flight is refused silently.
func (s *State) BeginAction(a Action) bool {
	if s.ActionInFlight {
		return false
	}
	if reason, ok := s.refusal(a); ok {
		s.emit(Rejected{Action: a, Reason: reason})
		return false
	}
	s.ActionInFlight = true
	switch a {
	case ActFeed:
		s.Feeding = true
	case ActPlay:
		s.Playing = true
	}
	return true
}

func (s *State) refusal(a Action) (Reason, bool) {
	if !s.Alive {
		return ReasonDead, true
	}
	switch a {
	case ActFeed, ActClean, ActPlay:
		if s.Mode != Awake {
			return ReasonAsleep, true
		}
	case ActBed:
		if s.Mode != Awake {
			return ReasonAlreadyAsleep, true
		}
	case ActWake:
		if s.Mode != Asleep {
			return ReasonAlreadyAwake, true
		}
	}
	return 0, false
}

// FinishAction applies the effect of an action begun with BeginAction and
// releases the latch. Nothing is applied if the pet died meanwhile.
func (s *State) FinishAction(a Action) {
	defer s.endAction()
	if !s.Alive {
		return
	}
	switch a {
	case ActFeed:
		s.Food = clamp(s.Food+FoodRecovery, FoodMax)
		s.changed()
		if s.Food >= FoodMax {
			s.FallAsleep(Overfed)
		}
	case ActClean:
		s.Hygiene = HygieneMax
		s.changed()
	case ActPlay:
		s.Happiness = clamp(s.Happiness+HappinessRecovery, HappinessMax)
		s.changed()
		if s.Happiness >= HappinessMax {
			s.emit(Overjoyed{})
		}
	case ActBed:
		if s.Mode != Awake {
			return
		}
		if s.wakeTimer.Elapsed() < MinAwake {
			s.emit(Grumbled{Action: ActBed})
			s.penalize()
			return
		}
		s.FallAsleep(Bedtime)
	case ActWake:
		if s.Mode != Asleep {
			return
		}
		grumpy := s.sleepTimer.Elapsed() < MinSleep
		if grumpy {
			s.emit(Grumbled{Action: ActWake})
			s.penalize()
		}
		s.WakeUp(Roused, grumpy)
	}
}

// AbortAction releases the latch without applying the effect.
func (s *State) AbortAction() {
	s.endAction()
}

func (s *State) endAction() {
	s.ActionInFlight = false
	s.Feeding = false
	s.Playing = false
}
