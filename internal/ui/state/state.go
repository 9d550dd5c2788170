package state

import (
	"pickbox/internal/domain"
	"pickbox/internal/ui/logic"
)

// ComboState contains all the widget state owned by the calling layer.
// The pure functions in logic never see it; commands read it, call them and
// write the results back.
type ComboState struct {
	// Option data
	Options  []domain.Option // full list in display order
	Filtered []domain.Option // Options narrowed by Query
	Query    string

	// Navigation state
	ActiveIndex int  // index into Filtered, -1 when nothing is active
	Open        bool // drop-down visible

	// Committed selection
	Committed *domain.Option

	// UI state
	ViewportOffset int
	ViewportHeight int // rows of the drop-down
	StatusMessage  string
	StatusIsError  bool
	ResetOnCancel  bool
}

// NewComboState creates a closed combobox over options
func NewComboState(options []domain.Option, viewportHeight int) *ComboState {
	s := &ComboState{
		ActiveIndex:    -1,
		ViewportHeight: viewportHeight,
		ResetOnCancel:  true,
	}
	s.SetOptions(options)
	return s
}

// MaxIndex is the largest valid index into Filtered, -1 when it is empty
func (s *ComboState) MaxIndex() int {
	return len(s.Filtered) - 1
}

// HasActive reports whether ActiveIndex points at an option
func (s *ComboState) HasActive() bool {
	return s.ActiveIndex >= 0 && s.ActiveIndex < len(s.Filtered)
}

// ActiveOption returns the highlighted option
func (s *ComboState) ActiveOption() (domain.Option, bool) {
	if !s.HasActive() {
		return domain.Option{}, false
	}
	return s.Filtered[s.ActiveIndex], true
}

// SetOptions replaces the option list and refilters with the current query.
// The committed option is rebound to its entry in the new list by label, so
// a changed value follows the reload; one that no longer exists is dropped.
func (s *ComboState) SetOptions(options []domain.Option) {
	s.Options = append([]domain.Option(nil), options...)

	if s.Committed != nil {
		if idx := logic.IndexOfLabel(s.Options, s.Committed.Label); idx >= 0 {
			opt := s.Options[idx]
			s.Committed = &opt
		} else {
			s.Committed = nil
		}
	}

	activeLabel := ""
	if opt, ok := s.ActiveOption(); ok {
		activeLabel = opt.Label
	}
	s.Filtered = logic.FilterOptions(s.Options, s.Query)

	// Keep the highlight on the same option when it survived the reload
	s.ActiveIndex = -1
	if activeLabel != "" {
		s.ActiveIndex = logic.IndexOfLabel(s.Filtered, activeLabel)
	}
	if s.ActiveIndex < 0 && len(s.Filtered) > 0 {
		s.ActiveIndex = 0
	}
	s.ViewportOffset = 0
}

// Refilter applies query to the full list and resets the highlight
func (s *ComboState) Refilter(query string) {
	s.Query = query
	s.Filtered = logic.FilterOptions(s.Options, query)
	s.ViewportOffset = 0
	if len(s.Filtered) == 0 {
		s.ActiveIndex = -1
	} else {
		s.ActiveIndex = 0
	}
}

// CommittedIndex finds the committed option inside Filtered, or -1
func (s *ComboState) CommittedIndex() int {
	if s.Committed == nil {
		return -1
	}
	return logic.IndexOfLabel(s.Filtered, s.Committed.Label)
}

// CommittedLabel returns the label of the committed option, or ""
func (s *ComboState) CommittedLabel() string {
	if s.Committed == nil {
		return ""
	}
	return s.Committed.Label
}
