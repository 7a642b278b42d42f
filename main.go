package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/automoto/doomerang-rogue/config"
	"github.com/automoto/doomerang-rogue/observability"
	"github.com/automoto/doomerang-rogue/scenes"
	"github.com/automoto/doomerang-rogue/server/core"
	"github.com/automoto/doomerang-rogue/shared/leveldata"
)

func main() {
	configPath := flag.String("config", "", "Settings file (yaml)")
	mapPath := flag.String("map", "", "Room layout TMX file (overrides room.map)")
	bot := flag.Bool("bot", true, "Drive the player with the built-in bot")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	if *mapPath != "" {
		settings.Room.Map = *mapPath
	}

	logger, err := observability.NewLogger(settings.Logging)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	if err := run(settings, *bot, logger); err != nil {
		logger.Error("combat run failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(settings config.Settings, bot bool, logger *zap.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), settings.Simulation.Duration)
	defer cancel()
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if settings.Tuning.Path != "" {
		t, err := config.LoadTuningFile(settings.Tuning.Path)
		if err != nil {
			return err
		}
		config.ApplyTuning(t)
	}

	layout, err := loadLayout(settings.Room.Map)
	if err != nil {
		return err
	}

	seed := uint64(settings.Simulation.Seed)
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	scene, err := scenes.NewCombatScene(scenes.CombatOptions{
		Layout:            layout,
		Level:             settings.Simulation.Level,
		MaxBufferTime:     settings.Input.MaxBufferTime,
		CombatLogCapacity: settings.CombatLog.Capacity,
		Rand:              rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		Logger:            logger,
		Bot:               bot,
	})
	if err != nil {
		return err
	}
	runLogger := observability.ForRun(logger, scene.Stats().RunID)

	loop := core.NewGameLoop(scene, settings.Simulation.TickRate, runLogger)
	if settings.Tuning.Watch {
		ch, err := config.WatchTuning(ctx, settings.Tuning.Path, runLogger)
		if err != nil {
			return err
		}
		loop.WatchTuning(ch)
	}

	err = loop.Run(ctx)
	if errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}

	stats := scene.Stats()
	runLogger.Info("combat run summary",
		zap.String("state", scene.State().Current.String()),
		zap.Int("ticks", loop.Ticks()),
		zap.Float64("sim_time", scene.Time()),
		zap.Uint64("seed", seed),
		zap.Int("kills", stats.EnemiesKilled),
		zap.Int("deaths", stats.Deaths),
		zap.Int("rooms_cleared", stats.RoomsCleared),
		zap.Float64("damage_dealt", stats.DamageDealt),
		zap.Float64("damage_taken", stats.DamageTaken),
		zap.Int("enemies_remaining", scene.EnemiesRemaining()),
		zap.Int("combat_log_events", scene.Log().Len()))
	return err
}

func loadLayout(path string) (*leveldata.RoomLayout, error) {
	if path == "" {
		return leveldata.DefaultRoom(), nil
	}
	layout, err := leveldata.LoadRoomLayout(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("loading room: %w", err)
	}
	return layout, nil
}
