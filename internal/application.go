package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rocketscienceinc/tictactoe-tui/internal/config"
	"github.com/rocketscienceinc/tictactoe-tui/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-tui/internal/transport/tui"
	"github.com/rocketscienceinc/tictactoe-tui/internal/usecase"
)

// RunApp - runs the application until the player quits or a signal arrives.
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

	modes := newTerminalModes(conf)

	var opts []tea.ProgramOption
	if modes.altScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	if modes.mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	return run(ctx, logger, conf, opts...)
}

type terminalModes struct {
	altScreen bool
	mouse     bool
}

// newTerminalModes - mouse input needs the alternate screen: clicks are mapped
// assuming the view is drawn from the top-left corner of the terminal.
func newTerminalModes(conf *config.Config) terminalModes {
	altScreen := !conf.Inline

	return terminalModes{
		altScreen: altScreen,
		mouse:     altScreen && !conf.NoMouse,
	}
}

func run(ctx context.Context, logger *slog.Logger, conf *config.Config, opts ...tea.ProgramOption) error {
	log := logger.With("component", "app")

	session := usecase.NewSession(logger, tictactoe.NewEngine())
	model := tui.NewModel(session, tui.Theme{
		XColor: conf.Theme.XColor,
		OColor: conf.Theme.OColor,
	})

	program := tea.NewProgram(model, append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)...)

	log.Info("Starting game")

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			log.Info("Application context canceled, shutting down")
			return nil
		}

		return fmt.Errorf("terminal UI error: %w", err)
	}

	log.Info("Player quit")

	return nil
}
