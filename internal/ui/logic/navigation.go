package logic

import (
	"pickbox/internal/domain"
)

// NextIndex computes the active index after a navigation action.
// Movement clamps at both ends instead of wrapping. Out-of-range input is
// clamped rather than rejected, and an empty list (max < 0) yields 0; callers
// must check the list length before trusting the result.
func NextIndex(current, max int, action domain.NavigationAction) int {
	if max < 0 {
		return 0
	}
	current = clamp(current, 0, max)

	switch action {
	case domain.ActionFirst:
		return 0
	case domain.ActionLast:
		return max
	case domain.ActionNext:
		return clamp(current+1, 0, max)
	case domain.ActionPrevious:
		return clamp(current-1, 0, max)
	default:
		// Open, Close, CloseAndSelect and None leave the index alone
		return current
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Navigator keeps the active option inside a scrollable window
type Navigator struct {
	activeIndex    int
	viewportOffset int
	viewportHeight int
	totalItems     int
}

// NewNavigator creates a new navigator
func NewNavigator() *Navigator {
	return &Navigator{
		activeIndex:    -1,
		viewportHeight: 1,
	}
}

// UpdateState updates the navigator's state
func (n *Navigator) UpdateState(activeIndex, viewportOffset, viewportHeight, totalItems int) {
	n.activeIndex = activeIndex
	n.viewportOffset = viewportOffset
	n.viewportHeight = viewportHeight
	n.totalItems = totalItems
}

// Apply runs a navigation action and returns the new index and offset
func (n *Navigator) Apply(action domain.NavigationAction) (int, int) {
	if n.totalItems == 0 {
		n.activeIndex = -1
		n.viewportOffset = 0
		return n.activeIndex, n.viewportOffset
	}
	return n.SetActiveIndex(NextIndex(n.activeIndex, n.totalItems-1, action))
}

// SetActiveIndex sets the active index and ensures it's visible
func (n *Navigator) SetActiveIndex(index int) (int, int) {
	if n.totalItems == 0 {
		n.activeIndex = -1
		n.viewportOffset = 0
		return n.activeIndex, n.viewportOffset
	}
	n.activeIndex = clamp(index, 0, n.totalItems-1)
	n.ensureActiveVisible()
	return n.activeIndex, n.viewportOffset
}

// VisibleRange returns the half-open range of indices shown by a window of
// height rows starting at offset over total items. Bad input is clamped.
func VisibleRange(offset, height, total int) (int, int) {
	if height < 1 {
		height = 1
	}
	start := clamp(offset, 0, max(total, 0))
	end := start + height
	if end > total {
		end = max(total, start)
	}
	return start, end
}

// ensureActiveVisible adjusts the viewport to keep the active item visible
func (n *Navigator) ensureActiveVisible() {
	height := n.viewportHeight
	if height < 1 {
		height = 1
	}

	// Active item above the window: scroll up
	if n.activeIndex < n.viewportOffset {
		n.viewportOffset = n.activeIndex
	}

	// Active item below the window: scroll down just enough
	if n.activeIndex >= n.viewportOffset+height {
		n.viewportOffset = n.activeIndex - height + 1
	}

	// Never leave empty rows at the bottom when the list can fill the window
	maxOffset := n.totalItems - height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if n.viewportOffset > maxOffset {
		n.viewportOffset = maxOffset
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
}
