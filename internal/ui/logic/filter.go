package logic

import (
	"strings"

	"pickbox/internal/domain"
)

// FilterOptions returns the options whose label contains query, ignoring case.
// The result is always a new slice in the original order; an empty query keeps
// every option. Matching is anywhere in the label, not only at its start, so
// "a" keeps "Texas".
func FilterOptions(options []domain.Option, query string) []domain.Option {
	filtered := make([]domain.Option, 0, len(options))
	if query == "" {
		return append(filtered, options...)
	}

	lowerQuery := strings.ToLower(query)
	for _, opt := range options {
		if MatchesQuery(opt, lowerQuery) {
			filtered = append(filtered, opt)
		}
	}
	return filtered
}

// MatchesQuery checks a single option against an already lowercased query
func MatchesQuery(opt domain.Option, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(opt.Label), lowerQuery)
}

// IndexOfLabel finds the first option with exactly this label, or -1
func IndexOfLabel(options []domain.Option, label string) int {
	for i, opt := range options {
		if opt.Label == label {
			return i
		}
	}
	return -1
}

// MatchSpan returns the byte range of the first case-insensitive match of query
// in label, for highlighting. ok is false when there is nothing to highlight.
func MatchSpan(label, query string) (start, end int, ok bool) {
	if query == "" {
		return 0, 0, false
	}
	lowerLabel := strings.ToLower(label)
	lowerQuery := strings.ToLower(query)
	// Lowercasing can change byte lengths for some scripts; only highlight
	// when offsets still line up with the original label.
	if len(lowerLabel) != len(label) {
		return 0, 0, false
	}
	start = strings.Index(lowerLabel, lowerQuery)
	if start < 0 {
		return 0, 0, false
	}
	return start, start + len(lowerQuery), true
}
