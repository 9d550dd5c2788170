package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"pickbox/internal/domain"
	"pickbox/internal/eventbus"
	"pickbox/internal/ui/logic"
	"pickbox/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor. setText keeps the text input in
// sync when a command rewrites the query.
func NewExecutor(state *state.ComboState, bus eventbus.EventBus, setText func(string)) *Executor {
	return &Executor{
		ctx: &CommandContext{
			State:     state,
			Bus:       bus,
			Navigator: logic.NewNavigator(),
			SetText:   setText,
		},
	}
}

// ExecuteAction dispatches a classified navigation action
func (e *Executor) ExecuteAction(action domain.NavigationAction) tea.Cmd {
	switch action {
	case domain.ActionOpen:
		return e.ExecuteOpen()
	case domain.ActionClose:
		return e.ExecuteClose()
	case domain.ActionCloseAndSelect:
		return e.ExecuteCommit(-1)
	case domain.ActionNone:
		return nil
	default:
		return e.ExecuteNavigate(action)
	}
}

// ExecuteNavigate creates and executes a navigate command
func (e *Executor) ExecuteNavigate(action domain.NavigationAction) tea.Cmd {
	return NewNavigateCommand(e.ctx, action).Execute()
}

// ExecuteOpen creates and executes an open command
func (e *Executor) ExecuteOpen() tea.Cmd {
	return NewOpenCommand(e.ctx).Execute()
}

// ExecuteClose closes the menu using the state's reset-on-cancel policy
func (e *Executor) ExecuteClose() tea.Cmd {
	return NewCloseCommand(e.ctx, e.ctx.State.ResetOnCancel).Execute()
}

// ExecuteBlur closes the menu after focus loss without reverting the query
func (e *Executor) ExecuteBlur() tea.Cmd {
	return NewCloseCommand(e.ctx, false).Execute()
}

// ExecuteCommit creates and executes a commit command
func (e *Executor) ExecuteCommit(index int) tea.Cmd {
	return NewCommitCommand(e.ctx, index).Execute()
}

// ExecuteFilter creates and executes a filter command
func (e *Executor) ExecuteFilter(query string) tea.Cmd {
	return NewFilterCommand(e.ctx, query).Execute()
}

// ExecuteReplaceOptions creates and executes a replace options command
func (e *Executor) ExecuteReplaceOptions(options []domain.Option) tea.Cmd {
	return NewReplaceOptionsCommand(e.ctx, options).Execute()
}

// ExecuteResize updates the drop-down height and keeps the highlight visible
func (e *Executor) ExecuteResize(height int) tea.Cmd {
	if height < 1 {
		height = 1
	}
	e.ctx.State.ViewportHeight = height
	if e.ctx.State.HasActive() {
		e.ctx.moveActive(e.ctx.State.ActiveIndex)
	}
	return nil
}
