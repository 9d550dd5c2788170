package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"pickbox/internal/config"
	"pickbox/internal/domain"
	"pickbox/internal/eventbus"
	"pickbox/internal/source"
	"pickbox/internal/ui"
)

// e2eEnv makes the picker print a ready marker for the pty tests
const e2eEnv = "PICKBOX_E2E_TEST"

// pickRequest is everything the picker needs besides config
type pickRequest struct {
	Options   []domain.Option
	Query     string
	WatchPath string
	InputTTY  bool
}

// runPicker is swapped out by tests
var runPicker = runProgram

// runProgram runs the Bubble Tea program until the pick ends
func runProgram(cfg *config.Config, bus eventbus.EventBus, req pickRequest) (ui.Result, error) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer cancel()

	model := ui.NewModel(bus, cfg, req.Options)
	model.SetQuery(req.Query)

	// The picker draws on stderr so stdout only carries the result
	progOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithOutput(os.Stderr),
		tea.WithReportFocus(),
		tea.WithContext(ctx),
	}
	if cfg.UISettings.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	if req.InputTTY {
		progOpts = append(progOpts, tea.WithInputTTY())
	}

	log.Printf("Creating Bubble Tea program with %d options...", len(req.Options))
	p := tea.NewProgram(model, progOpts...)
	model.SetProgram(p)

	// Background producers reach the model through the program only
	forward := func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	}
	unsubLoaded := bus.Subscribe(eventbus.EventOptionsLoaded, forward)
	defer unsubLoaded()
	unsubError := bus.Subscribe(eventbus.EventError, forward)
	defer unsubError()

	if req.WatchPath != "" {
		watcher := source.NewWatcher(req.WatchPath, bus)
		go func() {
			if err := watcher.Start(ctx); err != nil {
				log.Printf("Watcher stopped: %v", err)
				bus.Publish(eventbus.ErrorEvent{Message: "watch options file", Err: err})
			}
		}()
	}

	if os.Getenv(e2eEnv) == "1" {
		fmt.Fprintln(os.Stderr, "__READY__")
	}

	log.Printf("Starting UI...")
	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrInterrupted) || errors.Is(err, tea.ErrProgramKilled) {
			log.Printf("UI interrupted: %v", err)
			return ui.Result{Cancelled: true}, nil
		}
		log.Printf("Error running program: %v", err)
		return ui.Result{}, fmt.Errorf("run picker: %w", err)
	}
	log.Printf("UI exited normally")

	m, ok := final.(*ui.Model)
	if !ok {
		return ui.Result{}, fmt.Errorf("unexpected model type %T", final)
	}
	return m.Result(), nil
}

// setupLogging redirects the standard logger to path. The terminal belongs to
// the picker, so a log file that cannot be opened silences logging instead.
func setupLogging(path string) func() {
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }
	}

	log.SetOutput(logFile)
	return func() {
		log.SetOutput(os.Stderr)
		_ = logFile.Close()
	}
}

// subscribeLoggers writes bus traffic worth keeping to the log
func subscribeLoggers(bus eventbus.EventBus) func() {
	unsubs := []func(){
		bus.Subscribe(eventbus.EventSelectionChanged, func(e eventbus.DomainEvent) {
			if event, ok := e.(eventbus.SelectionChangedEvent); ok {
				log.Printf("Selection changed to %q (value %q)", event.Current.Label, event.Current.Value)
			}
		}),
		bus.Subscribe(eventbus.EventOptionsLoaded, func(e eventbus.DomainEvent) {
			if event, ok := e.(eventbus.OptionsLoadedEvent); ok {
				log.Printf("Loaded %d options from %s", len(event.Options), event.Source)
			}
		}),
		bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
			if event, ok := e.(eventbus.ErrorEvent); ok {
				log.Printf("Error: %s: %v", event.Message, event.Err)
			}
		}),
		bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
			if event, ok := e.(eventbus.ConfigLoadedEvent); ok {
				log.Printf("Config loaded from %s", event.Path)
			}
		}),
		bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
			if event, ok := e.(eventbus.ConfigSavedEvent); ok {
				log.Printf("Config saved to %s", event.Path)
			}
		}),
	}

	return func() {
		for _, unsub := range unsubs {
			unsub()
		}
	}
}
