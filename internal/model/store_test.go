package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreAddPreservesInsertionOrder(t *testing.T) {
	store := NewStore()

	a := NewTodo("Task A", "first of three", PriorityHigh)
	b := NewTodo("Task B", "second of three", PriorityLow)
	c := NewTodo("Task C", "third of three", PriorityUrgent)

	store.Add(a)
	store.Add(b)
	store.Add(c)

	all := store.All()
	require.Len(t, all, 3)
	assert.Equal(t, []Todo{a, b, c}, all)
}

func TestStoreAllowsDuplicateTitles(t *testing.T) {
	store := NewStore()
	store.Add(NewTodo("Buy milk", "from the corner shop", PriorityMedium))
	store.Add(NewTodo("Buy milk", "from the corner shop", PriorityMedium))

	assert.Equal(t, 2, store.Len())
}

func TestStoreAllReturnsSnapshot(t *testing.T) {
	store := NewStore()
	store.Add(NewTodo("Original", "must stay intact", PriorityMedium))

	snapshot := store.All()
	snapshot[0].Title = "Mutated"

	assert.Equal(t, "Original", store.All()[0].Title)
}

func TestStoreReplaceKeepsPosition(t *testing.T) {
	store := NewStore()

	first := NewTodo("First", "stays in place", PriorityLow)
	second := NewTodo("Second", "gets replaced", PriorityLow)
	third := NewTodo("Third", "stays in place", PriorityLow)
	store.Add(first)
	store.Add(second)
	store.Add(third)

	ok := store.Replace(second.ID, second.WithPriority(PriorityUrgent).WithTitle("Second, urgent"))
	require.True(t, ok)

	all := store.All()
	require.Len(t, all, 3)
	assert.Equal(t, second.ID, all[1].ID)
	assert.Equal(t, "Second, urgent", all[1].Title)
	assert.Equal(t, PriorityUrgent, all[1].Priority)
}

func TestStoreReplaceUnknownIDReportsFalse(t *testing.T) {
	store := NewStore()
	store.Add(NewTodo("Only entry", "nothing else here", PriorityMedium))

	ok := store.Replace("no-such-id", NewTodo("Ghost", "never lands", PriorityLow))
	assert.False(t, ok)
	assert.Equal(t, 1, store.Len())
}

func TestStoreClearEmptiesContents(t *testing.T) {
	store := NewStore()
	store.Add(NewTodo("Doomed", "cleared on teardown", PriorityHigh))

	store.Clear()

	assert.Zero(t, store.Len())
	assert.Empty(t, store.All())
}

func TestStoreNotifiesOnMutation(t *testing.T) {
	store := NewStore()

	changes := 0
	store.SetOnChange(func() { changes++ })

	todo := NewTodo("Watched", "every mutation counts", PriorityMedium)
	store.Add(todo)
	store.Replace(todo.ID, todo.WithTitle("Watched closely"))
	store.Clear()

	assert.Equal(t, 3, changes)
}
