package components

import (
	cfg "github.com/automoto/doomerang-rogue/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// HitSource says what created a hitbox, which decides when it is cleaned up.
type HitSource int

const (
	SourceAttack     HitSource = iota // Player attack phase
	SourceIntent                      // Enemy AI melee intent
	SourceProjectile                  // Moving projectile
)

// HitRecord is one ledger entry. The resolved flags make damage and
// knockback fire at most once per (hitbox, target) pair.
type HitRecord struct {
	Target           donburi.Entity
	DamageApplied    bool
	KnockbackApplied bool
}

type HitboxData struct {
	Owner      donburi.Entity // Weak reference, may no longer exist
	Source     HitSource
	Size       math.Vec2
	Offset     math.Vec2 // Local offset from the owner, rotated by facing
	Damage     float64   // Pre-mitigation
	Knockback  float64
	Active     bool
	MaxTargets int // Zero means unlimited

	// Attacker stats captured at spawn so resolution never needs the owner
	CritChance float64
	CritDamage float64

	AttackType cfg.AttackType
	AttackID   uint32 // Owner's AttackID or AI attack sequence at spawn

	Ledger []HitRecord
}

// HasHit reports whether target is already in the ledger.
func (h *HitboxData) HasHit(target donburi.Entity) bool {
	for _, r := range h.Ledger {
		if r.Target == target {
			return true
		}
	}
	return false
}

// Record adds target to the ledger. It returns false if target was already
// struck by this hitbox.
func (h *HitboxData) Record(target donburi.Entity) bool {
	if h.HasHit(target) {
		return false
	}
	h.Ledger = append(h.Ledger, HitRecord{Target: target})
	return true
}

// HurtboxData is the damageable volume of a combatant.
type HurtboxData struct {
	Size         math.Vec2
	Invulnerable bool // Checked by hit detection
	Granted      bool // Invulnerability granted from outside the dash
}

var (
	Hitbox  = donburi.NewComponentType[HitboxData]()
	Hurtbox = donburi.NewComponentType[HurtboxData]()
)
