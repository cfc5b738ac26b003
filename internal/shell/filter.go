package shell

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// FilterKey is the preference store key holding the active filter.
const FilterKey = "filter"

// Filter is the sort preference applied to the product listing.
type Filter string

const (
	FilterDefault   Filter = "default"
	FilterLowToHigh Filter = "low-to-high"
	FilterHighToLow Filter = "high-to-low"
	FilterNewest    Filter = "newest"
)

var ErrUnknownFilter = errors.New("unknown filter")

var filterLabels = map[Filter]string{
	FilterDefault:   "Default",
	FilterLowToHigh: "Low to High",
	FilterHighToLow: "High to Low",
	FilterNewest:    "Newest",
}

// Filters returns every filter in display order.
func Filters() []Filter {
	return []Filter{FilterDefault, FilterLowToHigh, FilterHighToLow, FilterNewest}
}

// ParseFilter maps a persisted literal back to a Filter. Only the exact
// stored literals are accepted; surrounding whitespace is ignored.
func ParseFilter(raw string) (Filter, error) {
	f := Filter(strings.TrimSpace(raw))
	if !f.Valid() {
		if near, ok := SuggestFilter(raw); ok {
			return FilterDefault, fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownFilter, raw, near)
		}
		return FilterDefault, fmt.Errorf("%w %q", ErrUnknownFilter, raw)
	}
	return f, nil
}

// maxSuggestDistance bounds how many edits a typo may be from a filter.
const maxSuggestDistance = 2

// SuggestFilter returns the filter nearest to raw by edit distance, ignoring
// case, when it is within maxSuggestDistance edits.
func SuggestFilter(raw string) (Filter, bool) {
	needle := strings.ToLower(strings.TrimSpace(raw))
	if needle == "" {
		return "", false
	}
	best, bestDist := Filter(""), maxSuggestDistance+1
	for _, f := range Filters() {
		if d := levenshtein.ComputeDistance(needle, string(f)); d < bestDist {
			best, bestDist = f, d
		}
	}
	return best, best != ""
}

func (f Filter) Valid() bool {
	_, ok := filterLabels[f]
	return ok
}

func (f Filter) Label() string {
	if l, ok := filterLabels[f]; ok {
		return l
	}
	return string(f)
}

func (f Filter) String() string { return string(f) }
