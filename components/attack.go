package components

import (
	cfg "github.com/automoto/doomerang-rogue/config"
	"github.com/automoto/doomerang-rogue/timer"
	"github.com/yohamta/donburi"
)

// AttackPhase is the current phase of an attack.
type AttackPhase int

const (
	PhaseIdle AttackPhase = iota
	PhaseStartup
	PhaseActive
	PhaseRecovery
)

func (p AttackPhase) String() string {
	switch p {
	case PhaseStartup:
		return "startup"
	case PhaseActive:
		return "active"
	case PhaseRecovery:
		return "recovery"
	}
	return "idle"
}

type AttackStateData struct {
	IsAttacking bool
	AttackType  cfg.AttackType
	Startup     timer.Timer
	Active      timer.Timer
	Recovery    timer.Timer
	CanCancel   bool
	ComboCount  int // 0..3

	AttackID      uint32 // Incremented on every accepted start
	HitboxSpawned bool   // Prevents multiple hitboxes per attack
}

// Phase reports which clock is currently running.
func (a *AttackStateData) Phase() AttackPhase {
	switch {
	case !a.IsAttacking:
		return PhaseIdle
	case !a.Startup.Finished():
		return PhaseStartup
	case !a.Active.Finished():
		return PhaseActive
	default:
		return PhaseRecovery
	}
}

// InActivePhase is true while the damage window is open.
func (a *AttackStateData) InActivePhase() bool {
	return a.Phase() == PhaseActive
}

var AttackState = donburi.NewComponentType[AttackStateData]()
