package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/audio"
	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/game"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/render"
	"github.com/lixenwraith/vi-pong/status"
	"github.com/lixenwraith/vi-pong/ui"
)

func main() {
	// Panic recovery: terminal is restored before the trace is printed
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "vi-pong: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cfg.BindFlags(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, logFile := setupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}
	core.RegisterLogger(logger)

	keys, err := loadKeys(cfg.Keymap)
	if err != nil {
		return err
	}

	theme, err := cfg.Theme()
	if err != nil {
		return err
	}

	audioCfg, err := audio.LoadAudioConfig()
	if err != nil {
		logger.Warn("audio config ignored", "error", err)
	}

	seed := cfg.ResolvedSeed(time.Now())
	logger.Info("starting", "fps", cfg.FPS, "seed", seed)

	// Initialize terminal
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	core.RegisterTerminal(screen)
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	// Audio degrades to silence when no device is available
	sounds := audio.NewSoundManager(audioCfg)
	if err := sounds.Initialize(); err != nil {
		logger.Warn("audio disabled", "error", err)
	}
	defer sounds.Cleanup()

	stats := status.NewRegistry()
	defer func() { logger.Info("session stats", "stats", stats) }()

	clock := engine.NewMonotonicTimeProvider()
	app := ui.NewApp(ui.AppConfig{
		Session:  game.NewSession(game.NewRandom(seed)),
		Renderer: render.NewRenderer(screen, theme),
		Keys:     keys,
		KeyHold:  cfg.KeyHold,
		KeyDelay: cfg.KeyDelay,
		Sounds:   sounds,
		Clock:    clock,
		Logger:   logger,
		Stats:    stats,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = engine.NewLoop(screen, app, clock, cfg.FPS, logger).Run(ctx)
	if err == nil || errors.Is(err, context.Canceled) {
		logger.Info("exiting")
		return nil
	}
	return err
}

// loadKeys merges the optional keymap file over the default bindings
func loadKeys(path string) (*input.KeyTable, error) {
	keys := input.DefaultKeyTable()
	if path == "" {
		return keys, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keymap: %w", err)
	}
	override, err := input.LoadKeyConfig(data)
	if err != nil {
		return nil, fmt.Errorf("keymap %s: %w", path, err)
	}
	return input.MergeKeyTable(keys, override), nil
}
