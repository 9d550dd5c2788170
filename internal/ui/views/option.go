package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"pickbox/internal/domain"
	"pickbox/internal/ui/logic"
)

const (
	cursorMarker    = "▸ "
	committedMarker = "✓ "
	blankMarker     = "  "
)

// OptionRenderer handles rendering of a single drop-down row
type OptionRenderer struct {
	styles *Styles
}

// NewOptionRenderer creates a new option renderer
func NewOptionRenderer(styles *Styles) *OptionRenderer {
	return &OptionRenderer{styles: styles}
}

// RenderOption renders one row. width is the terminal width; 0 disables
// truncation.
func (r *OptionRenderer) RenderOption(opt domain.Option, isActive, isCommitted bool, query string, width int) string {
	bgColor := ""
	if isActive {
		bgColor = "238"
	}
	base := lipgloss.NewStyle()
	if bgColor != "" {
		base = base.Background(lipgloss.Color(bgColor))
	}

	marker := blankMarker
	markerStyle := base
	switch {
	case isActive:
		marker = cursorMarker
		markerStyle = r.styles.Cursor.Inherit(base)
	case isCommitted:
		marker = committedMarker
		markerStyle = r.styles.Committed.Inherit(base)
	}

	label := opt.Label
	if width > 0 {
		avail := width - runewidth.StringWidth(marker)
		if avail < 1 {
			avail = 1
		}
		label = runewidth.Truncate(label, avail, "…")
	}

	nameStyle := r.styles.Option.Inherit(base)
	if isCommitted {
		nameStyle = r.styles.Committed.Inherit(base)
	}

	return markerStyle.Render(marker) + r.highlightMatch(label, query, r.styles.Highlight.Inherit(base), nameStyle)
}

// highlightMatch highlights the first occurrence of query within text
func (r *OptionRenderer) highlightMatch(text, query string, highlightStyle, normalStyle lipgloss.Style) string {
	start, end, ok := logic.MatchSpan(text, query)
	if !ok {
		return normalStyle.Render(text)
	}

	var result []string
	if before := text[:start]; before != "" {
		result = append(result, normalStyle.Render(before))
	}
	result = append(result, highlightStyle.Render(text[start:end]))
	if after := text[end:]; after != "" {
		result = append(result, normalStyle.Render(after))
	}
	return strings.Join(result, "")
}
