package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"pickbox/internal/config"
	"pickbox/internal/ui/state"
	"pickbox/internal/ui/views"
)

// ViewModel transforms combobox state into view-ready data
type ViewModel struct {
	state     *state.ComboState
	config    *config.Config
	width     int
	help      help.Model
	keys      help.KeyMap
	textInput *textinput.Model
}

// NewViewModel creates a new view model
func NewViewModel(comboState *state.ComboState, cfg *config.Config, textInput *textinput.Model, keys help.KeyMap) *ViewModel {
	return &ViewModel{
		state:     comboState,
		config:    cfg,
		help:      help.New(),
		keys:      keys,
		textInput: textInput,
	}
}

// SetWidth sets the current terminal width
func (vm *ViewModel) SetWidth(width int) {
	vm.width = width
	vm.help.Width = width
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	input := ""
	if vm.textInput != nil {
		input = vm.textInput.View()
	}

	return views.ViewState{
		Width:          vm.width,
		Prompt:         vm.config.Prompt,
		Input:          input,
		Query:          vm.state.Query,
		Options:        vm.state.Filtered,
		Total:          len(vm.state.Options),
		ActiveIndex:    vm.state.ActiveIndex,
		Open:           vm.state.Open,
		Committed:      vm.state.Committed,
		ViewportOffset: vm.state.ViewportOffset,
		ViewportHeight: vm.state.ViewportHeight,
		StatusMessage:  vm.state.StatusMessage,
		StatusIsError:  vm.state.StatusIsError,
		ShowHelp:       vm.config.UISettings.ShowHelp,
		ShowCount:      vm.config.UISettings.ShowCount,
		HelpModel:      vm.help,
		Keys:           vm.keys,
	}
}
