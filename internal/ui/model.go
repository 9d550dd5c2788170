package ui

import (
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"pickbox/internal/config"
	"pickbox/internal/domain"
	"pickbox/internal/eventbus"
	"pickbox/internal/ui/commands"
	"pickbox/internal/ui/handlers"
	"pickbox/internal/ui/input"
	inputtypes "pickbox/internal/ui/input/types"
	"pickbox/internal/ui/logic"
	"pickbox/internal/ui/state"
	"pickbox/internal/ui/viewmodels"
	"pickbox/internal/ui/views"
)

// chromeLines is the number of lines around the option rows: the input line,
// two scroll indicators, the status line and the help line.
const chromeLines = 5

// Result is the outcome of a pick
type Result struct {
	Selected  *domain.Option // nil when nothing was accepted
	Query     string
	Cancelled bool
}

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.ComboState

	width       int
	height      int
	sortMode    logic.SortMode
	inPagerMode bool
	quitting    bool
	result      Result

	// Handlers
	renderer     *views.Renderer
	viewModel    *viewmodels.ViewModel
	eventHandler *handlers.EventHandler
	cmdExecutor  *commands.Executor
	inputHandler *input.Handler
	helpRenderer *HelpRenderer
	helpOps      *HelpOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model over options. bus may be nil.
func NewModel(bus eventbus.EventBus, cfg *config.Config, options []domain.Option) *Model {
	sortMode, ok := logic.ParseSortMode(cfg.Sort)
	if !ok {
		log.Printf("Unknown sort mode %q, keeping source order", cfg.Sort)
	}

	comboState := state.NewComboState(logic.SortOptions(options, sortMode), cfg.MaxVisible)
	comboState.ResetOnCancel = cfg.ResetOnCancel

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        comboState,
		sortMode:     sortMode,
		renderer:     views.NewRenderer(),
		inputHandler: input.New(cfg.Placeholder),
		helpRenderer: NewHelpRenderer(),
		helpOps:      NewHelpOps(),
	}

	m.cmdExecutor = commands.NewExecutor(comboState, bus, m.inputHandler.SetText)
	m.eventHandler = handlers.NewEventHandler(comboState, m.cmdExecutor)
	m.viewModel = viewmodels.NewViewModel(comboState, cfg, m.inputHandler.TextInput(), m.inputHandler.Keys())

	if cfg.OpenOnStart {
		m.cmdExecutor.ExecuteOpen()
	}

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps.SetProgram(p)
}

// SetQuery applies an initial query as if it had been typed
func (m *Model) SetQuery(query string) {
	if query == "" {
		return
	}
	m.inputHandler.SetText(query)
	m.cmdExecutor.ExecuteFilter(query)
}

// State exposes the combobox state, for tests and the CLI
func (m *Model) State() *state.ComboState {
	return m.state
}

// Result reports how the pick ended
func (m *Model) Result() Result {
	return m.result
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return m.inputHandler.Init()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewModel.SetWidth(msg.Width)
		m.updateViewportHeight()
		return m, nil

	case tea.KeyMsg:
		ctx := &input.ModelContext{State: m.state}
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.BlurMsg:
		return m, m.processAction(inputtypes.BlurAction{})

	case tea.FocusMsg:
		return m, nil

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.quitting || m.inPagerMode {
		return ""
	}
	return m.renderer.Render(m.viewModel.BuildViewState())
}

// updateViewportHeight fits the drop-down into the terminal
func (m *Model) updateViewportHeight() {
	height := m.config.MaxVisible
	if m.height > 0 && m.height-chromeLines < height {
		height = m.height - chromeLines
	}
	if height < 1 {
		height = 1
	}
	m.cmdExecutor.ExecuteResize(height)
}

func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	log.Printf("processAction: %s", action.Type())
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		return m.cmdExecutor.ExecuteAction(a.Action)

	case inputtypes.UpdateTextAction:
		return m.cmdExecutor.ExecuteFilter(a.Text)

	case inputtypes.ClickAction:
		return m.cmdExecutor.ExecuteCommit(a.Index)

	case inputtypes.BlurAction:
		return m.cmdExecutor.ExecuteBlur()

	case inputtypes.SubmitAction:
		return m.submit()

	case inputtypes.QuitAction:
		m.result = Result{Query: m.state.Query, Cancelled: true}
		m.quitting = true
		return tea.Quit

	case inputtypes.ShowHelpAction:
		if m.program == nil {
			return nil
		}
		return m.fetchHelpPager(m.helpRenderer.RenderHelpContent())
	}
	return nil
}

// submit accepts the committed option, or an option whose label equals the
// query, and quits. Without either the list is opened instead.
func (m *Model) submit() tea.Cmd {
	var chosen *domain.Option
	if c := m.state.Committed; c != nil && c.Label == m.state.Query {
		chosen = c
	} else {
		for i := range m.state.Options {
			if strings.EqualFold(m.state.Options[i].Label, m.state.Query) {
				opt := m.state.Options[i]
				chosen = &opt
				break
			}
		}
	}

	if chosen == nil {
		if len(m.state.Filtered) > 0 {
			return m.cmdExecutor.ExecuteOpen()
		}
		return m.eventHandler.SetStatus("No matching option", true)
	}

	m.result = Result{Selected: chosen, Query: m.state.Query}
	m.quitting = true
	return tea.Quit
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if !m.config.UISettings.Mouse {
		return nil
	}

	switch {
	case msg.Button == tea.MouseButtonWheelUp && msg.Action == tea.MouseActionPress:
		return m.cmdExecutor.ExecuteNavigate(domain.ActionPrevious)

	case msg.Button == tea.MouseButtonWheelDown && msg.Action == tea.MouseActionPress:
		return m.cmdExecutor.ExecuteNavigate(domain.ActionNext)

	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionRelease:
		if idx := views.RowAt(m.viewModel.BuildViewState(), msg.Y); idx >= 0 {
			return m.processAction(inputtypes.ClickAction{Index: idx})
		}
	}
	return nil
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		event := msg.Event
		if e, ok := event.(eventbus.OptionsLoadedEvent); ok {
			e.Options = logic.SortOptions(e.Options, m.sortMode)
			event = e
		}
		return m, m.eventHandler.HandleEvent(event)

	case handlers.ClearStatusMsg:
		m.eventHandler.ClearStatus(msg)
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("Help pager failed: %v", msg.err)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	default:
		// Cursor blink and other text input messages
		return m, m.inputHandler.Update(msg)
	}
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.helpOps.ShowHelpInPager(helpContent)
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}
