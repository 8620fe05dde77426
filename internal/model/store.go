package model

import "sync"

// Store holds the session's todos in insertion order. It lives for the
// lifetime of the todo screen and is confined to the UI interaction
// thread; the mutex follows the repository style used elsewhere rather
// than guarding a real cross-thread contract.
type Store struct {
	mu       sync.RWMutex
	todos    []Todo
	onChange func()
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// SetOnChange registers a callback invoked after every mutation. The list
// view uses it to re-render in full; there is no incremental patching.
func (s *Store) SetOnChange(fn func()) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// Add appends a todo. Duplicate titles are permitted.
func (s *Store) Add(todo Todo) {
	s.mu.Lock()
	s.todos = append(s.todos, todo)
	fn := s.onChange
	s.mu.Unlock()

	s.notify(fn)
}

// Replace swaps the entry with the given ID for the supplied value,
// preserving its position. Returns false when no entry matches.
func (s *Store) Replace(id string, todo Todo) bool {
	s.mu.Lock()
	replaced := false
	for i := range s.todos {
		if s.todos[i].ID == id {
			todo.ID = id
			s.todos[i] = todo
			replaced = true
			break
		}
	}
	fn := s.onChange
	s.mu.Unlock()

	if replaced {
		s.notify(fn)
	}
	return replaced
}

// All returns a snapshot of the current contents in insertion order.
// Callers own the returned slice.
func (s *Store) All() []Todo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]Todo, len(s.todos))
	copy(snapshot, s.todos)
	return snapshot
}

// Len reports the number of todos currently held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.todos)
}

// Clear empties the store. Called on screen teardown.
func (s *Store) Clear() {
	s.mu.Lock()
	s.todos = nil
	fn := s.onChange
	s.mu.Unlock()

	s.notify(fn)
}

func (s *Store) notify(fn func()) {
	if fn != nil {
		fn()
	}
}
