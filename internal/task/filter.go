package task

import (
	"fmt"
	"strings"
)

// Filter selects which tasks are visible.
type Filter int

const (
	// All shows every task.
	All Filter = iota
	// Active shows tasks that are not completed.
	Active
	// Completed shows completed tasks.
	Completed
)

// Filters lists every filter in display order.
var Filters = []Filter{All, Active, Completed}

// ParseFilter parses a filter name (case-insensitive, trimmed).
func ParseFilter(s string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all", "":
		return All, nil
	case "active":
		return Active, nil
	case "completed":
		return Completed, nil
	}
	return All, fmt.Errorf("invalid filter: %s", s)
}

func (f Filter) String() string {
	switch f {
	case Active:
		return "active"
	case Completed:
		return "completed"
	default:
		return "all"
	}
}

// Label returns the tab label for the filter.
func (f Filter) Label() string {
	switch f {
	case Active:
		return "Active"
	case Completed:
		return "Completed"
	default:
		return "All"
	}
}

// Match reports whether t is visible under f.
func (f Filter) Match(t Task) bool {
	switch f {
	case Active:
		return !t.Completed
	case Completed:
		return t.Completed
	default:
		return true
	}
}

// Next returns the filter after f, wrapping around.
func (f Filter) Next() Filter {
	return Filters[(int(f)+1)%len(Filters)]
}

// Prev returns the filter before f, wrapping around.
func (f Filter) Prev() Filter {
	return Filters[(int(f)+len(Filters)-1)%len(Filters)]
}

// Visible returns the tasks matching f, in sequence order.
func Visible(tasks []Task, f Filter) []Task {
	var result []Task
	for _, t := range tasks {
		if f.Match(t) {
			result = append(result, t)
		}
	}
	return result
}

// Counts returns the number of active and completed tasks.
func Counts(tasks []Task) (active, completed int) {
	for _, t := range tasks {
		if t.Completed {
			completed++
		} else {
			active++
		}
	}
	return active, completed
}
