package tui

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wayfarer-cli/wayfarer/internal/config"
	"github.com/wayfarer-cli/wayfarer/internal/logging"
	"github.com/wayfarer-cli/wayfarer/internal/planner"
)

// App wraps the Bubbletea program
type App struct {
	program   *tea.Program
	model     Model
	altScreen bool
	log       *logging.Logger
}

// New creates a new TUI application
func New(client *planner.Client, cfg *config.Config, log *logging.Logger) *App {
	if log == nil {
		log = logging.NewDiscard()
	}
	return &App{
		model:     NewModel(client, cfg, log),
		altScreen: cfg.TUI.AltScreen,
		log:       log,
	}
}

// Run starts the TUI application and blocks until it exits.
func (a *App) Run() error {
	opts := []tea.ProgramOption{}
	if a.altScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	a.program = tea.NewProgram(a.model, opts...)

	// Forward termination signals as a quit so the terminal is restored.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigChan)

	go func() {
		<-sigChan
		if a.program != nil {
			a.program.Send(tea.Quit())
		}
	}()

	a.log.Info("starting interactive session")
	if _, err := a.program.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	a.log.Info("interactive session ended")
	return nil
}
