package input

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"pickbox/internal/domain"
	"pickbox/internal/ui/input/types"
	"pickbox/internal/ui/logic"
)

// Handler turns key messages into actions. Keys the classifier does not
// claim are fed to the query text input.
type Handler struct {
	keys      KeyMap
	textInput *textinput.Model
}

// New creates a handler with the default key map
func New(placeholder string) *Handler {
	ti := textinput.New()
	ti.Prompt = "" // Prompt is handled in the view
	ti.Placeholder = placeholder
	ti.Focus()

	return &Handler{
		keys:      DefaultKeyMap(),
		textInput: &ti,
	}
}

// HandleKey processes a key message and returns the resulting actions
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	switch {
	case key.Matches(msg, h.keys.Quit):
		return []types.Action{types.QuitAction{Force: true}}, nil
	case key.Matches(msg, h.keys.Help):
		return []types.Action{types.ShowHelpAction{}}, nil
	}

	k := h.keys.KeyFromMsg(msg)
	action := logic.ClassifyAction(k, ctx.IsOpen())

	switch {
	case action == domain.ActionNone:
		// Enter and Esc on a closed menu finish the pick
		if !ctx.IsOpen() {
			switch k {
			case domain.KeyEnter:
				return []types.Action{types.SubmitAction{}}, nil
			case domain.KeyEscape:
				return []types.Action{types.QuitAction{Force: false}}, nil
			}
		}
		return h.updateText(msg)

	case action.MovesActive() && !ctx.IsOpen():
		// Home/End on a closed menu move the text cursor instead
		return h.updateText(msg)
	}

	return []types.Action{types.NavigateAction{Action: action}}, nil
}

// updateText forwards msg to the text input and reports a changed value
func (h *Handler) updateText(msg tea.Msg) ([]types.Action, tea.Cmd) {
	before := h.textInput.Value()

	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)

	if after := h.textInput.Value(); after != before {
		return []types.Action{types.UpdateTextAction{Text: after}}, cmd
	}
	return nil, cmd
}

// Update handles non-keyboard messages for the text input (cursor blink)
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	return cmd
}

// Init returns the initial command for the handler
func (h *Handler) Init() tea.Cmd {
	return textinput.Blink
}

// SetText replaces the query without producing an action, cursor at the end
func (h *Handler) SetText(text string) {
	h.textInput.SetValue(text)
	h.textInput.CursorEnd()
}

// Text returns the current query
func (h *Handler) Text() string {
	return h.textInput.Value()
}

// TextInput returns the text input model for rendering
func (h *Handler) TextInput() *textinput.Model {
	return h.textInput
}

// Keys returns the key map, for the help view
func (h *Handler) Keys() KeyMap {
	return h.keys
}
