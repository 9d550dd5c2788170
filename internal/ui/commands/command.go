package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"pickbox/internal/domain"
	"pickbox/internal/eventbus"
	"pickbox/internal/ui/logic"
	"pickbox/internal/ui/state"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	State     *state.ComboState
	Bus       eventbus.EventBus
	Navigator *logic.Navigator
	// SetText replaces the query shown in the text input
	SetText func(string)
}

func (ctx *CommandContext) publish(event eventbus.DomainEvent) {
	if ctx.Bus != nil {
		ctx.Bus.Publish(event)
	}
}

func (ctx *CommandContext) setText(text string) {
	if ctx.SetText != nil {
		ctx.SetText(text)
	}
}

// syncNavigator loads the current state into the navigator
func (ctx *CommandContext) syncNavigator() {
	s := ctx.State
	ctx.Navigator.UpdateState(s.ActiveIndex, s.ViewportOffset, s.ViewportHeight, len(s.Filtered))
}

// moveActive sets the active index through the navigator so it stays visible
func (ctx *CommandContext) moveActive(index int) {
	ctx.syncNavigator()
	ctx.State.ActiveIndex, ctx.State.ViewportOffset = ctx.Navigator.SetActiveIndex(index)
}

// NavigateCommand moves the active option
type NavigateCommand struct {
	ctx    *CommandContext
	action domain.NavigationAction
}

// NewNavigateCommand creates a new navigate command
func NewNavigateCommand(ctx *CommandContext, action domain.NavigationAction) *NavigateCommand {
	return &NavigateCommand{ctx: ctx, action: action}
}

// Execute moves the highlight. Navigation on a closed menu is a no-op.
func (c *NavigateCommand) Execute() tea.Cmd {
	s := c.ctx.State
	if !s.Open || len(s.Filtered) == 0 {
		return nil
	}
	c.ctx.syncNavigator()
	s.ActiveIndex, s.ViewportOffset = c.ctx.Navigator.Apply(c.action)
	return nil
}

// OpenCommand shows the drop-down
type OpenCommand struct {
	ctx *CommandContext
}

// NewOpenCommand creates a new open command
func NewOpenCommand(ctx *CommandContext) *OpenCommand {
	return &OpenCommand{ctx: ctx}
}

// Execute opens the menu with the committed option highlighted when it is listed
func (c *OpenCommand) Execute() tea.Cmd {
	s := c.ctx.State
	if s.Open {
		return nil
	}
	s.Open = true

	switch {
	case len(s.Filtered) == 0:
		s.ActiveIndex = -1
	case s.CommittedIndex() >= 0:
		c.ctx.moveActive(s.CommittedIndex())
	default:
		c.ctx.moveActive(s.ActiveIndex)
	}

	c.ctx.publish(eventbus.MenuOpenedEvent{ActiveIndex: s.ActiveIndex})
	return nil
}

// CloseCommand hides the drop-down, optionally reverting the query
type CloseCommand struct {
	ctx    *CommandContext
	revert bool
}

// NewCloseCommand creates a new close command. revert applies the
// reset-on-cancel policy: the query goes back to the committed label and the
// list to the full option list.
func NewCloseCommand(ctx *CommandContext, revert bool) *CloseCommand {
	return &CloseCommand{ctx: ctx, revert: revert}
}

// Execute closes the menu
func (c *CloseCommand) Execute() tea.Cmd {
	s := c.ctx.State
	if !s.Open {
		return nil
	}
	s.Open = false

	if c.revert {
		label := s.CommittedLabel()
		s.Refilter("")
		s.Query = label
		c.ctx.setText(label)
		if idx := logic.IndexOfLabel(s.Filtered, label); idx >= 0 {
			c.ctx.moveActive(idx)
		}
	}

	c.ctx.publish(eventbus.MenuClosedEvent{Reverted: c.revert})
	return nil
}

// CommitCommand commits an option of the filtered list and closes the menu
type CommitCommand struct {
	ctx   *CommandContext
	index int
}

// NewCommitCommand commits the option at index; -1 means the active option
func NewCommitCommand(ctx *CommandContext, index int) *CommitCommand {
	return &CommitCommand{ctx: ctx, index: index}
}

// Execute commits the option. An empty list just closes the menu.
func (c *CommitCommand) Execute() tea.Cmd {
	s := c.ctx.State
	index := c.index
	if index < 0 {
		index = s.ActiveIndex
	}

	wasOpen := s.Open
	s.Open = false

	if index < 0 || index >= len(s.Filtered) {
		if wasOpen {
			c.ctx.publish(eventbus.MenuClosedEvent{})
		}
		return nil
	}

	chosen := s.Filtered[index]
	previous := s.Committed
	s.Committed = &chosen
	s.StatusMessage = ""

	// The query shows the committed label; the list is narrowed to match it
	s.Refilter(chosen.Label)
	c.ctx.setText(chosen.Label)
	if idx := logic.IndexOfLabel(s.Filtered, chosen.Label); idx >= 0 {
		c.ctx.moveActive(idx)
	}

	if wasOpen {
		c.ctx.publish(eventbus.MenuClosedEvent{})
	}
	if previous == nil || previous.Label != chosen.Label || previous.Value != chosen.Value {
		c.ctx.publish(eventbus.SelectionChangedEvent{Previous: previous, Current: chosen})
	}
	return nil
}

// FilterCommand applies a new query
type FilterCommand struct {
	ctx   *CommandContext
	query string
}

// NewFilterCommand creates a new filter command
func NewFilterCommand(ctx *CommandContext, query string) *FilterCommand {
	return &FilterCommand{ctx: ctx, query: query}
}

// Execute refilters and opens the menu iff something matches
func (c *FilterCommand) Execute() tea.Cmd {
	s := c.ctx.State
	wasOpen := s.Open

	s.Refilter(c.query)
	s.Open = len(s.Filtered) > 0

	switch {
	case s.Open && !wasOpen:
		c.ctx.publish(eventbus.MenuOpenedEvent{ActiveIndex: s.ActiveIndex})
	case !s.Open && wasOpen:
		c.ctx.publish(eventbus.MenuClosedEvent{})
	}
	c.ctx.publish(eventbus.QueryChangedEvent{Query: s.Query, MatchCount: len(s.Filtered)})
	return nil
}

// ReplaceOptionsCommand swaps in a reloaded option list
type ReplaceOptionsCommand struct {
	ctx     *CommandContext
	options []domain.Option
}

// NewReplaceOptionsCommand creates a new replace options command
func NewReplaceOptionsCommand(ctx *CommandContext, options []domain.Option) *ReplaceOptionsCommand {
	return &ReplaceOptionsCommand{ctx: ctx, options: options}
}

// Execute replaces the list and keeps the highlight visible
func (c *ReplaceOptionsCommand) Execute() tea.Cmd {
	s := c.ctx.State
	s.SetOptions(c.options)
	if len(s.Filtered) == 0 {
		if s.Open {
			s.Open = false
			c.ctx.publish(eventbus.MenuClosedEvent{})
		}
	} else {
		c.ctx.moveActive(s.ActiveIndex)
	}
	return nil
}
