package components

import (
	cfg "github.com/automoto/doomerang-rogue/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// BufferedAction is one timestamped request from the input collaborator.
type BufferedAction struct {
	Action    cfg.Action
	Direction math.Vec2
	Time      float64 // Simulation time the action was queued
}

// InputBufferData holds actions waiting to be consumed, oldest first.
type InputBufferData struct {
	Actions []BufferedAction
}

// Expire drops every action older than maxAge at time now.
func (b *InputBufferData) Expire(now, maxAge float64) {
	kept := b.Actions[:0]
	for _, a := range b.Actions {
		if now-a.Time < maxAge {
			kept = append(kept, a)
		}
	}
	b.Actions = kept
}

// Take removes and returns the oldest action accepted by fn. Actions fn
// rejects stay buffered.
func (b *InputBufferData) Take(fn func(BufferedAction) bool) (BufferedAction, bool) {
	for i, a := range b.Actions {
		if fn(a) {
			b.Actions = append(b.Actions[:i], b.Actions[i+1:]...)
			return a, true
		}
	}
	return BufferedAction{}, false
}

var InputBuffer = donburi.NewComponentType[InputBufferData]()
