package logic

import "pickbox/internal/domain"

// ClassifyAction maps a key and the menu state to a navigation action.
// Keys the combobox does not care about classify to ActionNone.
func ClassifyAction(key domain.Key, isOpen bool) domain.NavigationAction {
	switch key {
	case domain.KeyArrowDown:
		if isOpen {
			return domain.ActionNext
		}
		return domain.ActionOpen

	case domain.KeyArrowUp:
		if isOpen {
			return domain.ActionPrevious
		}
		return domain.ActionOpen

	case domain.KeyHome:
		return domain.ActionFirst

	case domain.KeyEnd:
		return domain.ActionLast

	case domain.KeyEnter:
		if isOpen {
			return domain.ActionCloseAndSelect
		}
		return domain.ActionNone

	case domain.KeyEscape:
		if isOpen {
			return domain.ActionClose
		}
		return domain.ActionNone
	}

	// Tab, printable characters and everything else
	return domain.ActionNone
}
