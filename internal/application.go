package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/presenter"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-cli/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-cli/internal/usecase"
)

var ErrInterrupted = errors.New("game interrupted")

// RunApp - runs one game on stdin/stdout.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	// stdin reads cannot be interrupted, so the session runs on its own goroutine
	sessionErrCh := make(chan error, 1)
	go func() {
		_, err := RunSession(ctx, logger, conf, os.Stdin, os.Stdout)
		sessionErrCh <- err
	}()

	select {
	case err := <-sessionErrCh:
		if err != nil {
			return fmt.Errorf("session failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return ErrInterrupted
	}
}

// RunSession - wires a fresh engine to the given streams and plays it to the end.
func RunSession(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) (entity.Status, error) {
	gameEngine := tictactoe.NewGame()
	inputReader := console.NewReader(in, out)
	gamePresenter := presenter.New(out, conf.Presenter)

	session := usecase.NewSession(logger, gameEngine, inputReader, gamePresenter)

	status, err := session.Run(ctx)
	if err != nil {
		return status, fmt.Errorf("game did not finish: %w", err)
	}

	return status, nil
}
