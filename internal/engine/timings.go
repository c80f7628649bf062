package engine

import (
	"time"

	"github.com/moorebrett0/termpet/internal/clock"
	"github.com/moorebrett0/termpet/internal/pet"
)

// Timings holds the cadence of every decay process.
type Timings struct {
	InitialDelay time.Duration

	Age time.Duration

	FoodDrain     time.Duration
	FoodFullGrace time.Duration

	EnergyDrain    time.Duration
	EnergyRecovery time.Duration

	HappinessDrain     time.Duration
	HappinessFullGrace time.Duration

	PoopEvery time.Duration
	PoopCheck time.Duration
}

// DefaultTimings derives per-unit intervals from the time each stat takes
// to cross its full range.
func DefaultTimings() Timings {
	return Timings{
		InitialDelay:       time.Second,
		Age:                clock.PerUnit(5*time.Minute, pet.AgeMax),
		FoodDrain:          clock.PerUnit(45*time.Second, pet.FoodMax),
		FoodFullGrace:      2500 * time.Millisecond,
		EnergyDrain:        clock.PerUnit(120*time.Second, pet.EnergyMax),
		EnergyRecovery:     clock.PerUnit(45*time.Second, pet.EnergyMax),
		HappinessDrain:     clock.PerUnit(90*time.Second, pet.HappinessMax),
		HappinessFullGrace: 2500 * time.Millisecond,
		PoopEvery:          45 * time.Second,
		PoopCheck:          5 * time.Second,
	}
}
