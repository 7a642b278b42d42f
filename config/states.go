package config

import "fmt"

// AttackType identifies one of the player's attack moves.
type AttackType int

const (
	AttackLight AttackType = iota
	AttackHeavy
	AttackDash
	AttackSpecial
)

var attackTypeNames = []string{"light", "heavy", "dash", "special"}

func (a AttackType) String() string { return nameOf(attackTypeNames, int(a)) }

// ParseAttackType maps a tuning-table name to an AttackType.
func ParseAttackType(s string) (AttackType, error) {
	i, err := parseName(attackTypeNames, "attack type", s)
	return AttackType(i), err
}

// EnemyType is the enemy tier, from common grunts to the boss.
type EnemyType int

const (
	CommonMelee EnemyType = iota
	CommonRanged
	EliteMelee
	EliteRanged
	MiniBoss
	Boss
)

var enemyTypeNames = []string{"common_melee", "common_ranged", "elite_melee", "elite_ranged", "mini_boss", "boss"}

func (e EnemyType) String() string { return nameOf(enemyTypeNames, int(e)) }

// IsRanged reports whether the type attacks with projectiles.
func (e EnemyType) IsRanged() bool {
	return e == CommonRanged || e == EliteRanged
}

// ParseEnemyType maps a tuning/TMX name to an EnemyType.
func ParseEnemyType(s string) (EnemyType, error) {
	i, err := parseName(enemyTypeNames, "enemy type", s)
	return EnemyType(i), err
}

// AllEnemyTypes lists every enemy tier in table order.
func AllEnemyTypes() []EnemyType {
	return []EnemyType{CommonMelee, CommonRanged, EliteMelee, EliteRanged, MiniBoss, Boss}
}

// Behavior selects how an enemy reacts after it recovers from an attack.
type Behavior int

const (
	Aggressive Behavior = iota
	Defensive
	Support
	Patrol
)

var behaviorNames = []string{"aggressive", "defensive", "support", "patrol"}

func (b Behavior) String() string { return nameOf(behaviorNames, int(b)) }

func ParseBehavior(s string) (Behavior, error) {
	i, err := parseName(behaviorNames, "behavior", s)
	return Behavior(i), err
}

// AIState is the enemy behaviour cycle state.
type AIState int

const (
	AIIdle AIState = iota
	AIPatrolling
	AIChasing
	AITelegraphing
	AIAttacking
	AIRecovering
	AIFleeing
)

var aiStateNames = []string{"idle", "patrolling", "chasing", "telegraphing", "attacking", "recovering", "fleeing"}

func (s AIState) String() string { return nameOf(aiStateNames, int(s)) }

// RunState is the global state of the current run.
type RunState int

const (
	RunInRun RunState = iota
	RunBossFight
	RunPaused
	RunDefeated
)

var runStateNames = []string{"in_run", "boss_fight", "paused", "defeated"}

func (r RunState) String() string { return nameOf(runStateNames, int(r)) }

// Action is a discrete request from the input collaborator.
type Action int

const (
	ActionLightAttack Action = iota
	ActionHeavyAttack
	ActionDash
	ActionSpecial
	ActionMove
	ActionInteract
	ActionPause
)

var actionNames = []string{"light_attack", "heavy_attack", "dash", "special", "move", "interact", "pause"}

func (a Action) String() string { return nameOf(actionNames, int(a)) }

// Buffered reports whether the action waits in the input buffer rather
// than taking effect immediately.
func (a Action) Buffered() bool {
	switch a {
	case ActionMove, ActionPause:
		return false
	}
	return true
}

// TelegraphKind is the visual family of an enemy warning.
type TelegraphKind int

const (
	TelegraphMeleeSwing TelegraphKind = iota
	TelegraphRangedShot
	TelegraphAreaOfEffect
	TelegraphChargeAttack
)

var telegraphKindNames = []string{"melee_swing", "ranged_shot", "area_of_effect", "charge_attack"}

func (k TelegraphKind) String() string { return nameOf(telegraphKindNames, int(k)) }

func ParseTelegraphKind(s string) (TelegraphKind, error) {
	i, err := parseName(telegraphKindNames, "telegraph kind", s)
	return TelegraphKind(i), err
}

// EliteModifier is an augmentation applied to an upgraded enemy.
type EliteModifier int

const (
	EliteArmored EliteModifier = iota
	EliteBerserker
	EliteRegenerating
	EliteShielded
	EliteVampiric
	EliteExplosive
)

var eliteModifierNames = []string{"armored", "berserker", "regenerating", "shielded", "vampiric", "explosive"}

func (m EliteModifier) String() string { return nameOf(eliteModifierNames, int(m)) }

func ParseEliteModifier(s string) (EliteModifier, error) {
	i, err := parseName(eliteModifierNames, "elite modifier", s)
	return EliteModifier(i), err
}

// HazardType is a room hazard kind.
type HazardType int

const (
	HazardPoison HazardType = iota
	HazardSpikes
)

var hazardTypeNames = []string{"poison", "spikes"}

func (h HazardType) String() string { return nameOf(hazardTypeNames, int(h)) }

func ParseHazardType(s string) (HazardType, error) {
	i, err := parseName(hazardTypeNames, "hazard type", s)
	return HazardType(i), err
}

// DamageType labels damage in the combat log.
type DamageType int

const (
	DamagePhysical DamageType = iota
	DamageEnvironment
)

var damageTypeNames = []string{"physical", "environment"}

func (d DamageType) String() string { return nameOf(damageTypeNames, int(d)) }

func nameOf(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("unknown(%d)", i)
	}
	return names[i]
}

func parseName(names []string, what, s string) (int, error) {
	for i, n := range names {
		if n == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q", what, s)
}
