// Package task holds the task model and the pure transitions applied to a
// task sequence.
package task

import "strings"

// Task represents a single to-do item.
type Task struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Add returns tasks with a new open task appended.
// Text is trimmed; whitespace-only text leaves tasks unchanged.
func Add(tasks []Task, text string, id int64) []Task {
	text = strings.TrimSpace(text)
	if text == "" {
		return tasks
	}

	next := make([]Task, len(tasks), len(tasks)+1)
	copy(next, tasks)
	return append(next, Task{ID: id, Text: text})
}

// Toggle returns a copy of tasks with the completed flag of the task
// matching id inverted. Unknown ids leave tasks unchanged.
func Toggle(tasks []Task, id int64) []Task {
	i := indexOf(tasks, id)
	if i < 0 {
		return tasks
	}

	next := make([]Task, len(tasks))
	copy(next, tasks)
	next[i].Completed = !next[i].Completed
	return next
}

// Delete returns a copy of tasks without the task matching id.
// Unknown ids leave tasks unchanged.
func Delete(tasks []Task, id int64) []Task {
	i := indexOf(tasks, id)
	if i < 0 {
		return tasks
	}

	next := make([]Task, 0, len(tasks)-1)
	next = append(next, tasks[:i]...)
	return append(next, tasks[i+1:]...)
}

func indexOf(tasks []Task, id int64) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
