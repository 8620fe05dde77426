package model

import (
	"time"

	"github.com/google/uuid"
)

// Todo is a single task record. Values are immutable once constructed;
// edits replace the entry in the store rather than mutating it in place.
type Todo struct {
	ID          string
	Title       string
	Description string
	Priority    Priority
	CreatedAt   time.Time
}

// NewTodo constructs a todo with a fresh identity. Field validation is the
// form controller's job; this constructor assumes validated input.
func NewTodo(title, description string, priority Priority) Todo {
	return Todo{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Priority:    priority,
		CreatedAt:   time.Now(),
	}
}

// WithTitle returns a copy with the title replaced.
func (t Todo) WithTitle(title string) Todo {
	t.Title = title
	return t
}

// WithDescription returns a copy with the description replaced.
func (t Todo) WithDescription(description string) Todo {
	t.Description = description
	return t
}

// WithPriority returns a copy with the priority replaced.
func (t Todo) WithPriority(priority Priority) Todo {
	t.Priority = priority
	return t
}
