package components

import "github.com/yohamta/donburi"

// CombatStatsData is owned by each combatant. Progression and elite
// modifiers write it; combat only reads it.
type CombatStatsData struct {
	Damage          float64
	CritChance      float64 // [0,1]
	CritDamage      float64 // Multiplier, >= 1
	AttackSpeed     float64 // Scales phase durations inversely
	Armor           float64 // Flat reduction
	DamageReduction float64 // Multiplicative, [0,1]
}

var CombatStats = donburi.NewComponentType[CombatStatsData]()
