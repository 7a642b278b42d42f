// Package resources holds the run-wide state threaded through every tick:
// the game state machine, run statistics and the combat log.
package resources

import (
	"github.com/google/uuid"

	"github.com/automoto/doomerang-rogue/config"
)

// GameState is the global run state. Only the death and room systems and
// the pause input change it.
type GameState struct {
	Current  config.RunState
	previous config.RunState
}

// NewGameState starts a run in progress.
func NewGameState() *GameState {
	return &GameState{Current: config.RunInRun, previous: config.RunInRun}
}

// InCombat reports whether combat systems should run this tick.
func (g *GameState) InCombat() bool {
	return g.Current == config.RunInRun || g.Current == config.RunBossFight
}

// TogglePause pauses an active run or resumes a paused one. Defeated runs
// cannot be paused.
func (g *GameState) TogglePause() {
	switch g.Current {
	case config.RunPaused:
		g.Current = g.previous
	case config.RunDefeated:
	default:
		g.previous = g.Current
		g.Current = config.RunPaused
	}
}

// Defeat moves the run into its terminal state. It returns false if the run
// was already defeated.
func (g *GameState) Defeat() bool {
	if g.Current == config.RunDefeated {
		return false
	}
	g.Current = config.RunDefeated
	return true
}

// SetBossFight switches between the boss and regular run states while the
// run is active. Paused and defeated runs are left alone.
func (g *GameState) SetBossFight(active bool) {
	if !g.InCombat() {
		return
	}
	if active {
		g.Current = config.RunBossFight
	} else {
		g.Current = config.RunInRun
	}
}

// RunStats accumulates per-run counters.
type RunStats struct {
	RunID         uuid.UUID
	DamageDealt   float64
	DamageTaken   float64
	EnemiesKilled int
	Deaths        int
	RoomsCleared  int
}

// NewRunStats returns zeroed stats for a fresh run.
func NewRunStats() *RunStats {
	return &RunStats{RunID: uuid.New()}
}
