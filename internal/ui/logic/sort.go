package logic

import (
	"sort"
	"strings"

	"pickbox/internal/domain"
)

// SortMode controls the order options are presented in before filtering
type SortMode int

const (
	SortNone SortMode = iota // keep source order
	SortByLabel
	SortByValue
)

// ParseSortMode maps a flag or config value to a sort mode
func ParseSortMode(s string) (SortMode, bool) {
	switch strings.ToLower(s) {
	case "", "none", "source":
		return SortNone, true
	case "label", "name":
		return SortByLabel, true
	case "value":
		return SortByValue, true
	default:
		return SortNone, false
	}
}

// SortOptions returns a sorted copy of options; equal keys keep source order
func SortOptions(options []domain.Option, mode SortMode) []domain.Option {
	sorted := append([]domain.Option(nil), options...)
	switch mode {
	case SortByLabel:
		sort.SliceStable(sorted, func(i, j int) bool {
			return strings.ToLower(sorted[i].Label) < strings.ToLower(sorted[j].Label)
		})
	case SortByValue:
		sort.SliceStable(sorted, func(i, j int) bool {
			return strings.ToLower(sorted[i].Value) < strings.ToLower(sorted[j].Value)
		})
	}
	return sorted
}
