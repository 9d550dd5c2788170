package types

import "pickbox/internal/domain"

// NavigateAction carries a classified navigation intent
type NavigateAction struct {
	Action domain.NavigationAction
}

func (a NavigateAction) Type() string { return "navigate" }

// UpdateTextAction reports a changed query
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

// ClickAction commits the option at Index of the filtered list
type ClickAction struct {
	Index int
}

func (a ClickAction) Type() string { return "click" }

// BlurAction closes the drop-down after focus loss
type BlurAction struct{}

func (a BlurAction) Type() string { return "blur" }

// SubmitAction accepts the committed selection and ends the pick
type SubmitAction struct{}

func (a SubmitAction) Type() string { return "submit" }

// QuitAction ends the pick without a result
type QuitAction struct {
	Force bool // true for Ctrl+C, false for Esc on a closed menu
}

func (a QuitAction) Type() string { return "quit" }

// ShowHelpAction opens the full help
type ShowHelpAction struct{}

func (a ShowHelpAction) Type() string { return "show_help" }
