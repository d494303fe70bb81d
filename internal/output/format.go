// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"taskmgr/internal/task"
)

// Checkbox returns the completion marker for a task.
func Checkbox(completed bool) string {
	if completed {
		return "[x]"
	}
	return "[ ]"
}

// FormatTask formats a task row.
// Format: "{N:>4}  {[ ]|[x]} {TEXT}\n"
func FormatTask(w io.Writer, num int, t task.Task) {
	fmt.Fprintf(w, "%4d  %s %s\n", num, Checkbox(t.Completed), NormalizeText(t.Text))
}

// FormatTaskWithID is FormatTask with the task id appended.
// Format: "{N:>4}  {[ ]|[x]} {TEXT}  #{ID}\n"
func FormatTaskWithID(w io.Writer, num int, t task.Task) {
	fmt.Fprintf(w, "%4d  %s %s  #%d\n", num, Checkbox(t.Completed), NormalizeText(t.Text), t.ID)
}

// FormatPlaceholder prints the message shown for an empty visible list.
func FormatPlaceholder(w io.Writer, msg string) {
	fmt.Fprintln(w, msg)
}

// FormatSummary prints the active/completed counts.
func FormatSummary(w io.Writer, tasks []task.Task) {
	active, completed := task.Counts(tasks)
	fmt.Fprintf(w, "%d active, %d completed\n", active, completed)
}

// NormalizeText normalizes task text for single-line display.
// Newlines are replaced with spaces.
func NormalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r", " ")
	return strings.ReplaceAll(text, "\n", " ")
}
