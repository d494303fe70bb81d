package commands

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"

	"taskmgr/internal/task"
)

// TaskRef represents a parsed task reference.
type TaskRef struct {
	Num  int   // 1-based row number under a filter
	ID   int64 // raw task id
	ByID bool  // true if the reference was #<id>
}

// ErrTaskRefRequired indicates no task reference was provided.
var ErrTaskRefRequired = errors.New("task reference required")

// ParseTaskRef parses a task reference from args.
//
// Parsing rules:
// 1. If first arg is all digits → row number in the listed tasks
// 2. If first arg is #<digits> → raw task id
// 3. Otherwise → error: invalid task reference: <ref>
func ParseTaskRef(args []string) (TaskRef, error) {
	if len(args) == 0 {
		return TaskRef{}, ErrTaskRefRequired
	}
	if len(args) > 1 {
		return TaskRef{}, fmt.Errorf("unexpected argument: %s", args[1])
	}

	arg := args[0]

	if isAllDigits(arg) {
		num, err := strconv.Atoi(arg)
		if err != nil {
			return TaskRef{}, fmt.Errorf("invalid task reference: %s", arg)
		}
		return TaskRef{Num: num}, nil
	}

	if len(arg) > 1 && arg[0] == '#' && isAllDigits(arg[1:]) {
		id, err := strconv.ParseInt(arg[1:], 10, 64)
		if err != nil {
			return TaskRef{}, fmt.Errorf("invalid task reference: %s", arg)
		}
		return TaskRef{ID: id, ByID: true}, nil
	}

	return TaskRef{}, fmt.Errorf("invalid task reference: %s", arg)
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// ResolveTaskRef returns the id the reference points at.
// Row numbers count the tasks visible under filter, as `taskmgr list` shows
// them. An #<id> reference resolves to itself even when no task has that id.
func ResolveTaskRef(tasks []task.Task, filter task.Filter, ref TaskRef) (int64, error) {
	if ref.ByID {
		return ref.ID, nil
	}

	visible := task.Visible(tasks, filter)
	if ref.Num < 1 || ref.Num > len(visible) {
		return 0, fmt.Errorf("task number out of range: %d", ref.Num)
	}
	return visible[ref.Num-1].ID, nil
}
