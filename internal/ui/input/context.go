package input

import (
	"pickbox/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State *state.ComboState
}

// IsOpen reports whether the drop-down is visible
func (c *ModelContext) IsOpen() bool {
	return c.State.Open
}
