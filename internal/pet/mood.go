package pet

// DetermineMood returns a mood string based on priority-ordered rules.
// Priority: Dead > Sleeping > Sick > Sleepy > Hungry > Bored > Happy > Content
func DetermineMood(s Snapshot) string {
	if !s.Alive {
		return "dead"
	}

	if s.Mode == Asleep {
		return "sleeping"
	}

	// Sick: one more poop from death
	if s.Hygiene <= 1 {
		return "sick"
	}

	if s.Energy*5 < EnergyMax {
		return "sleepy"
	}

	if s.Food*10 < FoodMax*3 {
		return "hungry"
	}

	if s.Happiness*10 < HappinessMax*3 {
		return "bored"
	}

	if s.Happiness*10 > HappinessMax*7 && s.Food*10 > FoodMax*4 {
		return "happy"
	}

	return "content"
}
