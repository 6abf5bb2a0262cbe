package controls

import (
	"strconv"

	"github.com/gobwas/glob"

	"procman/internal/app/errors"
	"procman/internal/app/table"
)

// SortCriterion selects the display ordering
type SortCriterion string

// Sort criteria
const (
	SortByCPU    SortCriterion = "cpu"
	SortByMemory SortCriterion = "memory"
)

// ParseSort validates a user-supplied sorting criterion
func ParseSort(value string) (SortCriterion, error) {
	switch SortCriterion(value) {
	case SortByCPU:
		return SortByCPU, nil
	case SortByMemory:
		return SortByMemory, nil
	default:
		return "", errors.ErrInvalidSortCriterion
	}
}

// FilterKind selects which record field a filter inspects
type FilterKind string

// Filter kinds
const (
	FilterNone    FilterKind = "none"
	FilterUser    FilterKind = "user"
	FilterCPU     FilterKind = "cpu"
	FilterMemory  FilterKind = "memory"
	FilterCommand FilterKind = "command"
)

// Filter is a pure predicate over table records. Values are parsed once,
// when the filter is applied, not on every display cycle.
type Filter struct {
	Kind  FilterKind
	Value string

	threshold float64
	pattern   glob.Glob
}

// NoFilter matches every record
var NoFilter = Filter{Kind: FilterNone}

// ParseFilter validates a user-supplied filter criterion and value
func ParseFilter(kind FilterKind, value string) (Filter, error) {
	f := Filter{Kind: kind, Value: value}

	switch f.Kind {
	case FilterNone:
		return NoFilter, nil

	case FilterUser:
		if value == "" {
			return Filter{}, errors.ErrInvalidFilterValue
		}

	case FilterCPU, FilterMemory:
		threshold, err := strconv.ParseFloat(value, 64)
		if err != nil || threshold < 0 {
			return Filter{}, errors.ErrInvalidFilterValue
		}

		f.threshold = threshold

	case FilterCommand:
		pattern, err := glob.Compile(value)
		if err != nil {
			return Filter{}, errors.ErrInvalidFilterValue
		}

		f.pattern = pattern

	default:
		return Filter{}, errors.ErrInvalidFilterKind
	}

	return f, nil
}

// Matches reports whether rec passes the filter. User filtering is an exact
// owner match; cpu and memory are strictly-greater-than comparisons.
func (f Filter) Matches(rec table.Record) bool {
	switch f.Kind {
	case FilterUser:
		return rec.Owner == f.Value
	case FilterCPU:
		return rec.CPUPercent > f.threshold
	case FilterMemory:
		return rec.MemoryMB > f.threshold
	case FilterCommand:
		return f.pattern != nil && f.pattern.Match(rec.Command)
	default:
		return true
	}
}
