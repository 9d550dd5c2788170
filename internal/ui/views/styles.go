package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Prompt      lipgloss.Style
	Dim         lipgloss.Style
	Count       lipgloss.Style
	Option      lipgloss.Style
	Committed   lipgloss.Style
	Cursor      lipgloss.Style
	Highlight   lipgloss.Style
	SelectionBg lipgloss.Style
	Scroll      lipgloss.Style
	Empty       lipgloss.Style
	Status      lipgloss.Style
	StatusError lipgloss.Style
	Help        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Prompt:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Dim:         lipgloss.NewStyle().Faint(true),
		Count:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Option:      lipgloss.NewStyle(),
		Committed:   lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		Cursor:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		SelectionBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Scroll:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Empty:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Help:        lipgloss.NewStyle().Faint(true),
	}
}
