package components

import (
	"github.com/automoto/doomerang-rogue/config"
	"github.com/automoto/doomerang-rogue/timer"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// EnemyData is the static classification of an enemy. Only elite modifiers
// change it after spawn.
type EnemyData struct {
	Type        config.EnemyType
	TypeConfig  *config.EnemyTypeConfig // Cached reference to type configuration
	Behavior    config.Behavior
	AggroRange  float64
	AttackRange float64
	Level       int
	Modifiers   []config.EliteModifier
}

// HasModifier reports whether m has been applied.
func (e *EnemyData) HasModifier(m config.EliteModifier) bool {
	for _, have := range e.Modifiers {
		if have == m {
			return true
		}
	}
	return false
}

// EnemyAIData is the per-enemy behaviour state.
type EnemyAIData struct {
	State             config.AIState
	Target            donburi.Entity
	HasTarget         bool
	LastKnownPosition math.Vec2
	HasLastKnown      bool
	StateTimer        timer.Timer // Reused by every state

	LowHealthApplied bool   // Low-health speed-up already applied this Chasing stint
	AttackSeq        uint32 // Incremented on every Attacking entry
	AttackIssued     bool   // Attack intent already emitted this Attacking stint
	TelegraphShown   bool   // Warning already spawned this Telegraphing stint
}

// Enter switches state and restarts the shared timer.
func (ai *EnemyAIData) Enter(state config.AIState, duration float64) {
	ai.State = state
	ai.StateTimer.Reset(duration)
	switch state {
	case config.AIChasing:
		ai.LowHealthApplied = false
	case config.AITelegraphing:
		ai.TelegraphShown = false
	case config.AIAttacking:
		ai.AttackSeq++
		ai.AttackIssued = false
	}
}

var (
	Enemy   = donburi.NewComponentType[EnemyData]()
	EnemyAI = donburi.NewComponentType[EnemyAIData]()
)
