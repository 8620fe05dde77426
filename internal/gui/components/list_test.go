package components

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"tasklight/internal/model"
	"tasklight/internal/theme"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTogglesEmptyState(t *testing.T) {
	test.NewApp()
	tl := NewTodoList(theme.NewPalette())

	assert.True(t, tl.empty.Visible())

	tl.SetRows(Rows([]model.Todo{
		model.NewTodo("Occupied", "no longer empty", model.PriorityMedium),
	}))
	assert.False(t, tl.empty.Visible())

	tl.SetRows(nil)
	assert.True(t, tl.empty.Visible())
}

func TestListHoldsCurrentRows(t *testing.T) {
	test.NewApp()
	tl := NewTodoList(theme.NewPalette())

	rows := Rows([]model.Todo{
		model.NewTodo("Task A", "first of two", model.PriorityUrgent),
		model.NewTodo("Task B", "second of two", model.PriorityLow),
	})
	tl.SetRows(rows)

	require.Equal(t, rows, tl.Rows())
	assert.Equal(t, 2, tl.rowCount())
}
