package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"pickbox/internal/domain"
	"pickbox/internal/ui/logic"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Prompt         string
	Input          string // rendered text input
	Query          string
	Options        []domain.Option // filtered options
	Total          int             // size of the unfiltered list
	ActiveIndex    int
	Open           bool
	Committed      *domain.Option
	ViewportOffset int
	ViewportHeight int
	StatusMessage  string
	StatusIsError  bool
	ShowHelp       bool
	ShowCount      bool
	HelpModel      help.Model
	Keys           help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles       *Styles
	optionRender *OptionRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:       styles,
		optionRender: NewOptionRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	lines := []string{r.renderInputLine(state)}

	if state.Open {
		lines = append(lines, r.renderOptionList(state)...)
	}

	if state.StatusMessage != "" {
		style := r.styles.Status
		if state.StatusIsError {
			style = r.styles.StatusError
		}
		lines = append(lines, style.Render(state.StatusMessage))
	}

	if state.ShowHelp && state.Keys != nil {
		lines = append(lines, r.styles.Help.Render(state.HelpModel.View(state.Keys)))
	}

	return strings.Join(lines, "\n")
}

// renderInputLine renders the prompt, the query and the right-aligned count
func (r *Renderer) renderInputLine(state ViewState) string {
	left := r.styles.Prompt.Render(state.Prompt) + state.Input
	if !state.ShowCount {
		return left
	}

	count := r.styles.Count.Render(fmt.Sprintf("%d/%d", len(state.Options), state.Total))

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80 // Default terminal width
	}
	paddingWidth := termWidth - lipgloss.Width(left) - lipgloss.Width(count)
	if paddingWidth < 2 {
		paddingWidth = 2
	}
	return left + strings.Repeat(" ", paddingWidth) + count
}

// renderOptionList renders the visible window of the drop-down with scroll
// indicators
func (r *Renderer) renderOptionList(state ViewState) []string {
	if len(state.Options) == 0 {
		return []string{r.styles.Empty.Render("  no matches")}
	}

	var lines []string
	if state.ViewportOffset > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("  ↑ %d more", state.ViewportOffset)))
	}

	start, end := visibleRange(state)
	for i := start; i < end; i++ {
		opt := state.Options[i]
		isCommitted := state.Committed != nil && state.Committed.Label == opt.Label
		lines = append(lines, r.optionRender.RenderOption(opt, i == state.ActiveIndex, isCommitted, state.Query, state.Width))
	}

	if below := len(state.Options) - end; below > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("  ↓ %d more", below)))
	}
	return lines
}

// RowAt maps a screen line of the rendered view to an index into
// state.Options, or -1 when the line is not an option row.
func RowAt(state ViewState, y int) int {
	if !state.Open || len(state.Options) == 0 {
		return -1
	}

	first := 1 // input line
	if state.ViewportOffset > 0 {
		first++ // "more above" indicator
	}

	start, end := visibleRange(state)
	idx := start + (y - first)
	if y < first || idx >= end {
		return -1
	}
	return idx
}

func visibleRange(state ViewState) (int, int) {
	return logic.VisibleRange(state.ViewportOffset, state.ViewportHeight, len(state.Options))
}
