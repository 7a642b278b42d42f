package resources

import (
	"github.com/google/uuid"

	"github.com/automoto/doomerang-rogue/config"
)

// DamageEvent is a telemetry record of one resolved hit. It is never read
// back by the simulation.
type DamageEvent struct {
	RunID      uuid.UUID
	Source     string
	Target     string
	Amount     float64
	IsCrit     bool
	DamageType config.DamageType
	Timestamp  float64
}

// CombatLog keeps the most recent damage events up to a fixed capacity.
type CombatLog struct {
	capacity int
	events   []DamageEvent
}

// NewCombatLog returns an empty log holding at most capacity events.
func NewCombatLog(capacity int) *CombatLog {
	if capacity < 1 {
		capacity = 1
	}
	return &CombatLog{capacity: capacity, events: make([]DamageEvent, 0, capacity)}
}

// Add appends ev, dropping the oldest entry when full.
func (l *CombatLog) Add(ev DamageEvent) {
	if len(l.events) == l.capacity {
		copy(l.events, l.events[1:])
		l.events = l.events[:len(l.events)-1]
	}
	l.events = append(l.events, ev)
}

// Events returns a copy of the retained events, oldest first.
func (l *CombatLog) Events() []DamageEvent {
	out := make([]DamageEvent, len(l.events))
	copy(out, l.events)
	return out
}

func (l *CombatLog) Len() int {
	return len(l.events)
}
