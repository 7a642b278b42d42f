package config

import (
	_ "embed"
	"fmt"
	"image/color"
	"strings"

	dmath "github.com/yohamta/donburi/features/math"
	"gopkg.in/yaml.v3"
)

//go:embed tuning.yaml
var defaultTuning []byte

// Size is a width/height pair in world units.
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Vec returns the size as a vector.
func (s Size) Vec() dmath.Vec2 {
	return dmath.Vec2{X: s.Width, Y: s.Height}
}

// Offset is a local-space displacement: X forward along facing, Y to the left.
type Offset struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (o Offset) Vec() dmath.Vec2 {
	return dmath.Vec2{X: o.X, Y: o.Y}
}

// AttackConfig contains timing and hit volume values for one attack type
type AttackConfig struct {
	Name string     `yaml:"type"`
	Type AttackType `yaml:"-"`

	// Phase durations at attack speed 1.0
	Startup           float64 `yaml:"startup"`
	Active            float64 `yaml:"active"`
	Recovery          float64 `yaml:"recovery"`
	CancelImmediately bool    `yaml:"cancel_immediately"`

	// Hit volume
	Hitbox           Size    `yaml:"hitbox"`
	Offset           Offset  `yaml:"offset"`
	DamageMultiplier float64 `yaml:"damage_multiplier"`
	ComboScaling     float64 `yaml:"combo_scaling"` // Extra multiplier per combo step
	Knockback        float64 `yaml:"knockback"`
}

// Multiplier returns the damage multiplier for the given combo count.
func (a AttackConfig) Multiplier(combo int) float64 {
	return a.DamageMultiplier + a.ComboScaling*float64(combo)
}

// TelegraphVisual describes the warning shape shown before an enemy attack.
type TelegraphVisual struct {
	KindName string        `yaml:"kind"`
	Kind     TelegraphKind `yaml:"-"`
	Width    float64       `yaml:"width"`
	Height   float64       `yaml:"height"`
	Color    [4]uint8      `yaml:"color"`
}

func (t TelegraphVisual) Size() dmath.Vec2 {
	return dmath.Vec2{X: t.Width, Y: t.Height}
}

func (t TelegraphVisual) RGBA() color.RGBA {
	return color.RGBA{R: t.Color[0], G: t.Color[1], B: t.Color[2], A: t.Color[3]}
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name         string    `yaml:"type"`
	Type         EnemyType `yaml:"-"`
	BehaviorName string    `yaml:"behavior"`
	Behavior     Behavior  `yaml:"-"`

	// Progression scaling: base + level * increment
	BaseHealth     float64 `yaml:"base_health"`
	HealthPerLevel float64 `yaml:"health_per_level"`
	BaseDamage     float64 `yaml:"base_damage"`
	DamagePerLevel float64 `yaml:"damage_per_level"`

	// Combat
	AggroRange      float64 `yaml:"aggro_range"`
	AttackRange     float64 `yaml:"attack_range"`
	CritChance      float64 `yaml:"crit_chance"`
	CritDamage      float64 `yaml:"crit_damage"`
	AttackSpeed     float64 `yaml:"attack_speed"`
	Armor           float64 `yaml:"armor"`
	DamageReduction float64 `yaml:"damage_reduction"`
	Hurtbox         Size    `yaml:"hurtbox"`
	MeleeHitbox     Size    `yaml:"melee_hitbox"`

	// AI timing
	TelegraphDuration float64 `yaml:"telegraph_duration"`
	RecoveryDuration  float64 `yaml:"recovery_duration"`
	MoveSpeed         float64 `yaml:"move_speed"`

	Telegraph TelegraphVisual `yaml:"telegraph"`
}

// HealthAt returns max health at a progression level.
func (e EnemyTypeConfig) HealthAt(level int) float64 {
	return e.BaseHealth + float64(level)*e.HealthPerLevel
}

// DamageAt returns base damage at a progression level.
func (e EnemyTypeConfig) DamageAt(level int) float64 {
	return e.BaseDamage + float64(level)*e.DamagePerLevel
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Combat
	Health          float64 `yaml:"health"`
	Damage          float64 `yaml:"damage"`
	CritChance      float64 `yaml:"crit_chance"`
	CritDamage      float64 `yaml:"crit_damage"`
	AttackSpeed     float64 `yaml:"attack_speed"`
	Armor           float64 `yaml:"armor"`
	DamageReduction float64 `yaml:"damage_reduction"`
	Hurtbox         Size    `yaml:"hurtbox"`

	// Movement
	BaseSpeed    float64 `yaml:"base_speed"`
	DashSpeed    float64 `yaml:"dash_speed"`
	DashDuration float64 `yaml:"dash_duration"`
	DashCooldown float64 `yaml:"dash_cooldown"`
}

// AIConfig holds the constants shared by every enemy behaviour cycle.
type AIConfig struct {
	AttackDuration      float64 `yaml:"attack_duration"`
	ChaseDelay          float64 `yaml:"chase_delay"`
	LowHealthThreshold  float64 `yaml:"low_health_threshold"`
	LowHealthFactor     float64 `yaml:"low_health_factor"`
	LeashMultiplier     float64 `yaml:"leash_multiplier"` // Drop target beyond aggro * this
	FleeTrigger         float64 `yaml:"flee_trigger"`     // Flee when closer than attack range * this
	FleeDuration        float64 `yaml:"flee_duration"`
	FleeRelease         float64 `yaml:"flee_release"`
	ChaseStopFactor     float64 `yaml:"chase_stop_factor"`
	FleeSpeedMultiplier float64 `yaml:"flee_speed_multiplier"`
	ResidualVelocity    float64 `yaml:"residual_velocity"`
	PatrolSpeed         float64 `yaml:"patrol_speed"`
	MeleeOffset         float64 `yaml:"melee_offset"`
	MeleeKnockback      float64 `yaml:"melee_knockback"`
}

type ProjectileConfig struct {
	Speed     float64 `yaml:"speed"`
	Lifetime  float64 `yaml:"lifetime"`
	Size      Size    `yaml:"size"`
	Piercing  int     `yaml:"piercing"`
	Knockback float64 `yaml:"knockback"`
}

type TelegraphConfig struct {
	FadeIn     float64 `yaml:"fade_in"`     // Fraction of the countdown spent fading in
	FlashStart float64 `yaml:"flash_start"` // Fraction after which the warning flashes
	FlashRate  float64 `yaml:"flash_rate"`
	FlashAlpha float64 `yaml:"flash_alpha"`
}

type DamageNumberConfig struct {
	Lifetime  float64 `yaml:"lifetime"`
	RiseSpeed float64 `yaml:"rise_speed"`
	Spread    float64 `yaml:"spread"`
	Decay     float64 `yaml:"decay"`
}

// ArenaConfig bounds the room. The arena is centered on the origin.
type ArenaConfig struct {
	HalfWidth  float64 `yaml:"half_width"`
	HalfHeight float64 `yaml:"half_height"`
	CellSize   int     `yaml:"cell_size"`
	Margin     float64 `yaml:"margin"`
}

type EliteConfig struct {
	ArmoredArmor         float64 `yaml:"armored_armor"`
	BerserkerDamage      float64 `yaml:"berserker_damage"`
	BerserkerAttackSpeed float64 `yaml:"berserker_attack_speed"`
	ShieldedReduction    float64 `yaml:"shielded_reduction"`
	MaxDamageReduction   float64 `yaml:"max_damage_reduction"`
	RegenFraction        float64 `yaml:"regen_fraction"` // Of max health, per second
	VampiricFraction     float64 `yaml:"vampiric_fraction"`
}

type HazardConfig struct {
	Name            string     `yaml:"type"`
	Type            HazardType `yaml:"-"`
	DamagePerSecond float64    `yaml:"damage_per_second"`
	Radius          float64    `yaml:"radius"`
	Size            Size       `yaml:"size"`
}

// Tuning is the full set of combat tables.
type Tuning struct {
	AttackList   []AttackConfig     `yaml:"attacks"`
	EnemyList    []EnemyTypeConfig  `yaml:"enemies"`
	HazardList   []HazardConfig     `yaml:"hazards"`
	Player       PlayerConfig       `yaml:"player"`
	AI           AIConfig           `yaml:"ai"`
	Projectile   ProjectileConfig   `yaml:"projectile"`
	Telegraph    TelegraphConfig    `yaml:"telegraph"`
	DamageNumber DamageNumberConfig `yaml:"damage_number"`
	Arena        ArenaConfig        `yaml:"arena"`
	Elite        EliteConfig        `yaml:"elite"`

	Attacks map[AttackType]AttackConfig   `yaml:"-"`
	Enemies map[EnemyType]EnemyTypeConfig `yaml:"-"`
	Hazards map[HazardType]HazardConfig   `yaml:"-"`
}

// Active tuning tables. Read by systems every tick; replaced only between
// ticks through ApplyTuning.
var (
	Attacks      map[AttackType]AttackConfig
	Enemies      map[EnemyType]EnemyTypeConfig
	Hazards      map[HazardType]HazardConfig
	Player       PlayerConfig
	AI           AIConfig
	Projectile   ProjectileConfig
	Telegraph    TelegraphConfig
	DamageNumber DamageNumberConfig
	Arena        ArenaConfig
	Elite        EliteConfig
)

// DefaultTuning returns the embedded tuning tables.
func DefaultTuning() []byte {
	return defaultTuning
}

// LoadTuning decodes and validates a tuning document.
func LoadTuning(data []byte) (*Tuning, error) {
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("decoding tuning: %w", err)
	}
	if err := t.index(); err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

func (t *Tuning) index() error {
	t.Attacks = make(map[AttackType]AttackConfig, len(t.AttackList))
	for _, a := range t.AttackList {
		at, err := ParseAttackType(a.Name)
		if err != nil {
			return fmt.Errorf("attacks: %w", err)
		}
		a.Type = at
		t.Attacks[at] = a
	}

	t.Enemies = make(map[EnemyType]EnemyTypeConfig, len(t.EnemyList))
	for _, e := range t.EnemyList {
		et, err := ParseEnemyType(e.Name)
		if err != nil {
			return fmt.Errorf("enemies: %w", err)
		}
		b, err := ParseBehavior(e.BehaviorName)
		if err != nil {
			return fmt.Errorf("enemies.%s: %w", e.Name, err)
		}
		k, err := ParseTelegraphKind(e.Telegraph.KindName)
		if err != nil {
			return fmt.Errorf("enemies.%s: %w", e.Name, err)
		}
		e.Type, e.Behavior, e.Telegraph.Kind = et, b, k
		t.Enemies[et] = e
	}

	t.Hazards = make(map[HazardType]HazardConfig, len(t.HazardList))
	for _, h := range t.HazardList {
		ht, err := ParseHazardType(h.Name)
		if err != nil {
			return fmt.Errorf("hazards: %w", err)
		}
		h.Type = ht
		t.Hazards[ht] = h
	}
	return nil
}

// Validate checks the tables for missing entries and out-of-range values.
func (t *Tuning) Validate() error {
	var errs []string

	for _, at := range []AttackType{AttackLight, AttackHeavy, AttackDash, AttackSpecial} {
		a, ok := t.Attacks[at]
		if !ok {
			errs = append(errs, fmt.Sprintf("attacks.%s missing", at))
			continue
		}
		if a.Startup <= 0 || a.Active <= 0 || a.Recovery <= 0 {
			errs = append(errs, fmt.Sprintf("attacks.%s phase durations must be > 0", at))
		}
		if a.Hitbox.Width <= 0 || a.Hitbox.Height <= 0 {
			errs = append(errs, fmt.Sprintf("attacks.%s hitbox must have positive size", at))
		}
	}

	for _, et := range AllEnemyTypes() {
		e, ok := t.Enemies[et]
		if !ok {
			errs = append(errs, fmt.Sprintf("enemies.%s missing", et))
			continue
		}
		errs = append(errs, validateStats("enemies."+et.String(), e.CritChance, e.CritDamage, e.AttackSpeed, e.DamageReduction)...)
		if e.BaseHealth <= 0 {
			errs = append(errs, fmt.Sprintf("enemies.%s.base_health must be > 0", et))
		}
		if e.AttackRange <= 0 || e.AggroRange < e.AttackRange {
			errs = append(errs, fmt.Sprintf("enemies.%s needs 0 < attack_range <= aggro_range", et))
		}
		if e.TelegraphDuration <= 0 || e.RecoveryDuration <= 0 {
			errs = append(errs, fmt.Sprintf("enemies.%s telegraph and recovery durations must be > 0", et))
		}
		if !et.IsRanged() && (e.MeleeHitbox.Width <= 0 || e.MeleeHitbox.Height <= 0) {
			errs = append(errs, fmt.Sprintf("enemies.%s.melee_hitbox must have positive size", et))
		}
	}

	errs = append(errs, validateStats("player", t.Player.CritChance, t.Player.CritDamage, t.Player.AttackSpeed, t.Player.DamageReduction)...)
	if t.Player.Health <= 0 {
		errs = append(errs, "player.health must be > 0")
	}
	if t.AI.AttackDuration <= 0 {
		errs = append(errs, "ai.attack_duration must be > 0")
	}
	if t.Projectile.Lifetime <= 0 || t.Projectile.Speed <= 0 {
		errs = append(errs, "projectile speed and lifetime must be > 0")
	}
	if t.Arena.HalfWidth <= 0 || t.Arena.HalfHeight <= 0 || t.Arena.CellSize <= 0 {
		errs = append(errs, "arena extents and cell_size must be > 0")
	}
	if t.DamageNumber.Lifetime <= 0 {
		errs = append(errs, "damage_number.lifetime must be > 0")
	}

	if len(errs) > 0 {
		return fmt.Errorf("tuning validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateStats(prefix string, critChance, critDamage, attackSpeed, reduction float64) []string {
	var errs []string
	if critChance < 0 || critChance > 1 {
		errs = append(errs, fmt.Sprintf("%s.crit_chance must be in [0,1], got %g", prefix, critChance))
	}
	if critDamage < 1 {
		errs = append(errs, fmt.Sprintf("%s.crit_damage must be >= 1, got %g", prefix, critDamage))
	}
	if attackSpeed <= 0 {
		errs = append(errs, fmt.Sprintf("%s.attack_speed must be > 0, got %g", prefix, attackSpeed))
	}
	if reduction < 0 || reduction > 1 {
		errs = append(errs, fmt.Sprintf("%s.damage_reduction must be in [0,1], got %g", prefix, reduction))
	}
	return errs
}

// ApplyTuning publishes t as the active tables.
func ApplyTuning(t *Tuning) {
	Attacks = t.Attacks
	Enemies = t.Enemies
	Hazards = t.Hazards
	Player = t.Player
	AI = t.AI
	Projectile = t.Projectile
	Telegraph = t.Telegraph
	DamageNumber = t.DamageNumber
	Arena = t.Arena
	Elite = t.Elite
}

func init() {
	t, err := LoadTuning(defaultTuning)
	if err != nil {
		panic(fmt.Sprintf("embedded tuning: %v", err))
	}
	ApplyTuning(t)
}
