package components

import "github.com/yohamta/donburi"

// HealthData keeps 0 <= Current <= Max. Mutate only through TakeDamage and
// Heal.
type HealthData struct {
	Current float64
	Max     float64
}

// NewHealth returns full health.
func NewHealth(max float64) HealthData {
	if max <= 0 {
		max = 1
	}
	return HealthData{Current: max, Max: max}
}

// TakeDamage subtracts amount and reports whether health reached zero.
// Negative amounts are ignored.
func (h *HealthData) TakeDamage(amount float64) bool {
	if amount > 0 {
		h.Current -= amount
		if h.Current < 0 {
			h.Current = 0
		}
	}
	return h.Current <= 0
}

// Heal restores up to Max. Dead entities stay dead.
func (h *HealthData) Heal(amount float64) {
	if amount <= 0 || h.Current <= 0 {
		return
	}
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

// Fraction returns Current/Max.
func (h *HealthData) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	return h.Current / h.Max
}

func (h *HealthData) IsDead() bool {
	return h.Current <= 0
}

var Health = donburi.NewComponentType[HealthData]()
