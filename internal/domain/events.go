package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventOptionsLoaded    EventType = "OptionsLoaded"
	EventQueryChanged     EventType = "QueryChanged"
	EventMenuOpened       EventType = "MenuOpened"
	EventMenuClosed       EventType = "MenuClosed"
	EventSelectionChanged EventType = "SelectionChanged"
	EventError            EventType = "Error"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// OptionsLoadedEvent is emitted when an option source has been (re)read
type OptionsLoadedEvent struct {
	Source  string
	Options []Option
}

func (e OptionsLoadedEvent) Type() EventType { return EventOptionsLoaded }

// QueryChangedEvent is emitted after the option list was refiltered
type QueryChangedEvent struct {
	Query      string
	MatchCount int
}

func (e QueryChangedEvent) Type() EventType { return EventQueryChanged }

// MenuOpenedEvent is emitted when the drop-down becomes visible
type MenuOpenedEvent struct {
	ActiveIndex int
}

func (e MenuOpenedEvent) Type() EventType { return EventMenuOpened }

// MenuClosedEvent is emitted when the drop-down is hidden
type MenuClosedEvent struct {
	Reverted bool // query was reset to the committed selection
}

func (e MenuClosedEvent) Type() EventType { return EventMenuClosed }

// SelectionChangedEvent is emitted when a different option gets committed
type SelectionChangedEvent struct {
	Previous *Option
	Current  Option
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
