package domain

// Option is a single selectable item. Matching only looks at Label.
type Option struct {
	Label string
	Value string // opaque to the picker, printed on commit
}

// String returns the option label
func (o Option) String() string {
	return o.Label
}

// NavigationAction is an input-device independent intent derived from a keystroke
type NavigationAction int

const (
	ActionNone NavigationAction = iota
	ActionFirst
	ActionLast
	ActionNext
	ActionPrevious
	ActionOpen
	ActionClose
	ActionCloseAndSelect
)

func (a NavigationAction) String() string {
	switch a {
	case ActionFirst:
		return "first"
	case ActionLast:
		return "last"
	case ActionNext:
		return "next"
	case ActionPrevious:
		return "previous"
	case ActionOpen:
		return "open"
	case ActionClose:
		return "close"
	case ActionCloseAndSelect:
		return "close-and-select"
	default:
		return "none"
	}
}

// MovesActive reports whether the action changes the active index
func (a NavigationAction) MovesActive() bool {
	switch a {
	case ActionFirst, ActionLast, ActionNext, ActionPrevious:
		return true
	default:
		return false
	}
}

// Key identifies a raw keystroke independent of the terminal library
type Key string

const (
	KeyArrowDown Key = "ArrowDown"
	KeyArrowUp   Key = "ArrowUp"
	KeyHome      Key = "Home"
	KeyEnd       Key = "End"
	KeyEnter     Key = "Enter"
	KeyEscape    Key = "Escape"
	KeyTab       Key = "Tab"
	KeyPrintable Key = "Printable"
	KeyOther     Key = "Other"
)
