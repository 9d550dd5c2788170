package handlers

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"pickbox/internal/eventbus"
	"pickbox/internal/ui/commands"
	"pickbox/internal/ui/state"
)

// StatusTimeout is how long a status message stays on screen
const StatusTimeout = 3 * time.Second

// ClearStatusMsg asks the model to clear the status line. Seq identifies the
// status it was scheduled for; a newer status makes it stale.
type ClearStatusMsg struct {
	Seq int
}

// EventHandler handles domain events and updates state
type EventHandler struct {
	state     *state.ComboState
	executor  *commands.Executor
	statusSeq int
}

// NewEventHandler creates a new event handler
func NewEventHandler(comboState *state.ComboState, executor *commands.Executor) *EventHandler {
	return &EventHandler{
		state:    comboState,
		executor: executor,
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.OptionsLoadedEvent:
		h.executor.ExecuteReplaceOptions(e.Options)
		if e.Source != "" {
			return h.SetStatus(fmt.Sprintf("Reloaded %d options from %s", len(e.Options), e.Source), false)
		}
		return h.SetStatus(fmt.Sprintf("Loaded %d options", len(e.Options)), false)

	case eventbus.ErrorEvent:
		if e.Err != nil {
			return h.SetStatus(fmt.Sprintf("Error: %s: %v", e.Message, e.Err), true)
		}
		return h.SetStatus(fmt.Sprintf("Error: %s", e.Message), true)
	}

	return nil
}

// SetStatus shows message on the status line and schedules its removal
func (h *EventHandler) SetStatus(message string, isError bool) tea.Cmd {
	h.statusSeq++
	h.state.StatusMessage = message
	h.state.StatusIsError = isError

	seq := h.statusSeq
	return tea.Tick(StatusTimeout, func(time.Time) tea.Msg {
		return ClearStatusMsg{Seq: seq}
	})
}

// ClearStatus removes the status line unless msg belongs to an older status.
// It reports whether the line was cleared.
func (h *EventHandler) ClearStatus(msg ClearStatusMsg) bool {
	if msg.Seq != h.statusSeq {
		return false
	}
	h.state.StatusMessage = ""
	h.state.StatusIsError = false
	return true
}
