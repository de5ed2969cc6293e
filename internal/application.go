package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/gobblet-jr/internal/config"
	"github.com/rocketscienceinc/gobblet-jr/internal/gobblet"
	"github.com/rocketscienceinc/gobblet-jr/internal/repository"
	"github.com/rocketscienceinc/gobblet-jr/internal/transport/tui"
	"github.com/rocketscienceinc/gobblet-jr/internal/usecase"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	resultRepo := repository.NewResultRepository()
	engine := gobblet.NewEngine()
	gameUseCase := usecase.NewGameUseCase(logger, engine, resultRepo)
	ui := tui.New(logger, conf, gameUseCase)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			ui.Stop()
		case <-ctx.Done():
		}
	}()

	log.Info("Starting terminal UI", "match_id", gameUseCase.MatchID())
	if err := ui.Run(ctx); err != nil {
		return fmt.Errorf("terminal UI error: %w", err)
	}

	tally, err := gameUseCase.Tally(ctx)
	if err != nil {
		return fmt.Errorf("failed to read session tally: %w", err)
	}

	log.Info("Session finished", "red_wins", tally.RedWins, "blue_wins", tally.BlueWins, "draws", tally.Draws)

	return nil
}
