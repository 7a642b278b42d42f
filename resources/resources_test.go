package resources_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/automoto/doomerang-rogue/config"
	"github.com/automoto/doomerang-rogue/resources"
)

func TestGameState_PauseResume(t *testing.T) {
	g := resources.NewGameState()
	g.SetBossFight(true)
	g.TogglePause()
	assert.Equal(t, config.RunPaused, g.Current)
	assert.False(t, g.InCombat())
	g.TogglePause()
	assert.Equal(t, config.RunBossFight, g.Current)
	assert.True(t, g.InCombat())
}

func TestGameState_DefeatOnce(t *testing.T) {
	g := resources.NewGameState()
	assert.True(t, g.Defeat())
	assert.False(t, g.Defeat())
	g.TogglePause()
	assert.Equal(t, config.RunDefeated, g.Current)
	g.SetBossFight(true)
	assert.Equal(t, config.RunDefeated, g.Current)
}

func TestCombatLog_TrimsOldest(t *testing.T) {
	l := resources.NewCombatLog(3)
	for i := 1; i <= 5; i++ {
		l.Add(resources.DamageEvent{Amount: float64(i)})
	}
	events := l.Events()
	assert.Len(t, events, 3)
	assert.Equal(t, []float64{3, 4, 5}, []float64{events[0].Amount, events[1].Amount, events[2].Amount})
}

func TestProperty_CombatLog_NeverExceedsCapacity(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		capacity := rapid.IntRange(1, 20).Draw(rt, "capacity")
		n := rapid.IntRange(0, 100).Draw(rt, "n")
		l := resources.NewCombatLog(capacity)
		for i := 0; i < n; i++ {
			l.Add(resources.DamageEvent{Amount: float64(i)})
		}
		assert.LessOrEqual(rt, l.Len(), capacity)
		if n > 0 {
			events := l.Events()
			assert.Equal(rt, float64(n-1), events[len(events)-1].Amount)
		}
	})
}
