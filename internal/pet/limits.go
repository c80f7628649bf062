package pet

import "time"

// Stat bounds.
const (
	AgeMax       = 100
	FoodMax      = 50
	EnergyMax    = 50
	HygieneMax   = 3
	HappinessMax = 100
)

// Action effects.
const (
	FoodRecovery      = 15
	HappinessRecovery = 25
	HappinessPenalty  = 10
)

// Minimum time the pet wants to stay in a sleep mode before it is changed
// by the player without complaint.
const (
	MinAwake = 15 * time.Second
	MinSleep = 15 * time.Second
)

func clamp(v, hi int) int {
	return max(0, min(v, hi))
}
