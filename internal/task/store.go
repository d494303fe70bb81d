package task

import "time"

// Store owns the authoritative task sequence for one session.
// It applies transitions and notifies subscribers when the sequence changes.
// A Store is not safe for concurrent use; it belongs to the goroutine
// handling user intents.
type Store struct {
	tasks  []Task
	now    func() time.Time
	lastID int64
	subs   []func([]Task)
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the clock used to assign task ids.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore creates a Store holding a copy of initial.
func NewStore(initial []Task, opts ...Option) *Store {
	s := &Store{
		tasks: clone(initial),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	for _, t := range s.tasks {
		if t.ID > s.lastID {
			s.lastID = t.ID
		}
	}
	return s
}

// Tasks returns a copy of the current sequence.
func (s *Store) Tasks() []Task {
	return clone(s.tasks)
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Find returns the task with the given id.
func (s *Store) Find(id int64) (Task, bool) {
	if i := indexOf(s.tasks, id); i >= 0 {
		return s.tasks[i], true
	}
	return Task{}, false
}

// Subscribe registers fn to be called with the new sequence after every change.
// Subscribers run synchronously in registration order.
func (s *Store) Subscribe(fn func([]Task)) {
	s.subs = append(s.subs, fn)
}

// Add appends a task with the given text.
// Returns the new task and true, or false if text was blank.
func (s *Store) Add(text string) (Task, bool) {
	id := s.nextID()
	next := Add(s.tasks, text, id)
	if len(next) == len(s.tasks) {
		return Task{}, false
	}
	s.lastID = id
	s.commit(next)
	return next[len(next)-1], true
}

// Toggle inverts the completed flag of the task with the given id.
// Returns false if no task matched.
func (s *Store) Toggle(id int64) bool {
	if indexOf(s.tasks, id) < 0 {
		return false
	}
	s.commit(Toggle(s.tasks, id))
	return true
}

// Delete removes the task with the given id.
// Returns false if no task matched.
func (s *Store) Delete(id int64) bool {
	if indexOf(s.tasks, id) < 0 {
		return false
	}
	s.commit(Delete(s.tasks, id))
	return true
}

func (s *Store) commit(next []Task) {
	s.tasks = next
	for _, fn := range s.subs {
		fn(clone(next))
	}
}

// nextID returns a millisecond timestamp, bumped past the last issued id
// when the clock has not advanced.
func (s *Store) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	return id
}

func clone(tasks []Task) []Task {
	out := make([]Task, len(tasks))
	copy(out, tasks)
	return out
}
