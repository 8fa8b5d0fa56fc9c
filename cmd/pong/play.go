package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pong-clone/internal/games/pong"
	"github.com/vovakirdan/pong-clone/internal/kbd"
	"github.com/vovakirdan/pong-clone/internal/platform"
	"github.com/vovakirdan/pong-clone/internal/registry"
)

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Debug("configuration loaded", "source", cfg.Source, "backend", cfg.Backend)

	backend, err := registry.Open(cfg.Backend, cfg, logger)
	if err != nil {
		if errors.Is(err, platform.ErrUnknownBackend) {
			return fmt.Errorf("%w (available: %s)", err, strings.Join(backendNames(), ", "))
		}
		return err
	}
	defer backend.Close()

	gameLogger := logger
	if l, ok := backend.(registry.Logging); ok {
		gameLogger = l.Logger()
	}

	keys := kbd.New(backend)
	defer keys.Quit()

	game := pong.New(keys, backend, backend, backend, pong.WithLogger(gameLogger))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := backend.Run(ctx, game); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	s := game.Snapshot()
	logger.Info("game over", "score", game.ScoreText(), "left", s.Left.Score, "right", s.Right.Score)
	return nil
}

func backendNames() []string {
	var names []string
	for _, info := range registry.List() {
		names = append(names, info.Name)
	}
	return names
}
