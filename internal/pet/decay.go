package pet

import "time"

// StartLife starts the timers that run from birth.
func (s *State) StartLife() {
	s.wakeTimer.Start()
	s.hygieneTimer.Start()
}

// AgeTick ages the pet by one unit. Reaching AgeMax is death by old age.
func (s *State) AgeTick() {
	if !s.Alive {
		return
	}
	s.Age = clamp(s.Age+1, AgeMax)
	s.changed()
	if s.Age >= AgeMax {
		s.die(OldAge)
		return
	}
	if stage, ok := milestones[s.Age]; ok {
		s.emit(Milestone{Name: s.Name, Stage: stage, Age: s.Age})
	}
}

// DrainFood removes one unit of food. Empty is death by starvation.
func (s *State) DrainFood() {
	if !s.Alive {
		return
	}
	s.Food = clamp(s.Food-1, FoodMax)
	s.changed()
	if s.Food == 0 {
		s.die(Starvation)
	}
}

// DrainEnergy removes one unit of energy while awake. Empty forces sleep.
func (s *State) DrainEnergy() {
	if !s.Alive || s.Mode != Awake {
		return
	}
	s.Energy = clamp(s.Energy-1, EnergyMax)
	s.changed()
	if s.Energy == 0 {
		s.FallAsleep(Exhausted)
	}
}

// RecoverEnergy adds one unit of energy during the given sleep session.
// It reports whether recovery should continue: false once the pet is awake,
// dead, or sleeping in a newer session. Full energy wakes the pet.
func (s *State) RecoverEnergy(session uint64) bool {
	if !s.Alive || s.Mode != Asleep || s.SleepSession != session {
		return false
	}
	s.Energy = clamp(s.Energy+1, EnergyMax)
	s.changed()
	if s.Energy >= EnergyMax {
		s.WakeUp(Rested, false)
		return false
	}
	return true
}

// CheckHygiene poops once the hygiene timer passes every while awake.
// Empty hygiene is death.
func (s *State) CheckHygiene(every time.Duration) {
	if !s.Alive || s.Mode != Awake {
		return
	}
	if s.hygieneTimer.Elapsed() <= every {
		return
	}
	s.Hygiene = clamp(s.Hygiene-1, HygieneMax)
	s.hygieneTimer.Restart()
	s.changed()
	s.emit(Pooped{Hygiene: s.Hygiene})
	if s.Hygiene == 0 {
		s.die(PoorHygiene)
	}
}

// DrainHappiness removes one unit of happiness. Empty is a broken heart.
func (s *State) DrainHappiness() {
	if !s.Alive {
		return
	}
	s.Happiness = clamp(s.Happiness-1, HappinessMax)
	s.changed()
	if s.Happiness == 0 {
		s.die(BrokenHeart)
	}
}

func (s *State) penalize() {
	s.Happiness = clamp(s.Happiness-HappinessPenalty, HappinessMax)
	s.changed()
	if s.Happiness == 0 {
		s.die(BrokenHeart)
	}
}
