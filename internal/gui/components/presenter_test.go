package components

import (
	"testing"

	fynetheme "fyne.io/fyne/v2/theme"

	"tasklight/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowsProjectEveryField(t *testing.T) {
	todos := []model.Todo{
		model.NewTodo("Buy groceries", "Milk and eggs", model.PriorityMedium),
	}

	rows := Rows(todos)
	require.Len(t, rows, 1)

	assert.Equal(t, "Buy groceries", rows[0].Title)
	assert.Equal(t, "Milk and eggs", rows[0].Description)
	assert.Equal(t, "Medium", rows[0].PriorityLabel)
	assert.Equal(t, fynetheme.ColorNamePrimary, rows[0].Color)
	assert.Equal(t, fynetheme.IconNameInfo, rows[0].Icon)
}

func TestRowsPreserveOrder(t *testing.T) {
	todos := []model.Todo{
		model.NewTodo("Task A", "first of three", model.PriorityLow),
		model.NewTodo("Task B", "second of three", model.PriorityUrgent),
		model.NewTodo("Task C", "third of three", model.PriorityHigh),
	}

	rows := Rows(todos)
	require.Len(t, rows, 3)
	assert.Equal(t, "Task A", rows[0].Title)
	assert.Equal(t, "Task B", rows[1].Title)
	assert.Equal(t, "Task C", rows[2].Title)
}

func TestRowsIdempotentOverUnchangedSnapshot(t *testing.T) {
	todos := []model.Todo{
		model.NewTodo("Stable", "render me twice", model.PriorityHigh),
		model.NewTodo("Also stable", "and me as well", model.PriorityLow),
	}

	first := Rows(todos)
	second := Rows(todos)
	assert.Equal(t, first, second)
}

func TestRowsEmptySnapshot(t *testing.T) {
	assert.Empty(t, Rows(nil))
	assert.Empty(t, Rows([]model.Todo{}))
}
