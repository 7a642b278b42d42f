// Package core drives a combat scene headlessly at a fixed tick rate.
package core

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/automoto/doomerang-rogue/config"
)

// Stepper is a simulation the loop can advance.
type Stepper interface {
	Step(dt float64)
	// Done reports that the run has reached a terminal state.
	Done() bool
}

type GameLoop struct {
	stepper  Stepper
	tickRate int
	tuning   <-chan *config.Tuning
	logger   *zap.Logger

	mu       sync.Mutex
	running  bool
	ticks    int
	stopOnce sync.Once
	stopChan chan struct{}
}

func NewGameLoop(stepper Stepper, tickRate int, logger *zap.Logger) *GameLoop {
	if tickRate < 1 {
		tickRate = 60
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GameLoop{
		stepper:  stepper,
		tickRate: tickRate,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// WatchTuning makes the loop apply tunings received on ch between ticks.
func (g *GameLoop) WatchTuning(ch <-chan *config.Tuning) {
	g.tuning = ch
}

// Run ticks the stepper until ctx is cancelled, Stop is called or the
// stepper reports Done. It returns ctx.Err() on cancellation and nil
// otherwise.
func (g *GameLoop) Run(ctx context.Context) error {
	g.setRunning(true)
	defer g.setRunning(false)

	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	g.logger.Info("game loop started", zap.Int("tick_rate", g.tickRate))

	for {
		select {
		case <-ctx.Done():
			g.logger.Info("game loop cancelled", zap.Int("ticks", g.Ticks()))
			return ctx.Err()
		case <-g.stopChan:
			g.logger.Info("game loop stopped", zap.Int("ticks", g.Ticks()))
			return nil
		case <-ticker.C:
			if g.tick() {
				g.logger.Info("game loop finished", zap.Int("ticks", g.Ticks()))
				return nil
			}
		}
	}
}

// Stop ends Run after the current tick. Safe to call more than once.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

// Running reports whether Run is active.
func (g *GameLoop) Running() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.running
}

// Ticks returns the number of completed ticks.
func (g *GameLoop) Ticks() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.ticks
}

func (g *GameLoop) setRunning(v bool) {
	g.mu.Lock()
	g.running = v
	g.mu.Unlock()
}

// tick applies pending tuning, advances one step and reports whether the
// stepper is done.
func (g *GameLoop) tick() bool {
	g.applyPendingTuning()

	g.stepper.Step(1 / float64(g.tickRate))

	g.mu.Lock()
	g.ticks++
	g.mu.Unlock()

	return g.stepper.Done()
}

func (g *GameLoop) applyPendingTuning() {
	if g.tuning == nil {
		return
	}
	for {
		select {
		case t, ok := <-g.tuning:
			if !ok {
				g.tuning = nil
				return
			}
			config.ApplyTuning(t)
			g.logger.Info("tuning reloaded")
		default:
			return
		}
	}
}
