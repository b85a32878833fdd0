package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsEmptyText(t *testing.T) {
	for _, text := range []string{"", "   ", "\t\n"} {
		_, err := New(text)
		assert.Error(t, err, "text %q should be rejected", text)
	}
}

func TestNewAssignsIDAndStatus(t *testing.T) {
	todo, err := New("  buy milk  ")
	require.NoError(t, err)
	assert.NotEmpty(t, todo.ID)
	assert.Equal(t, "buy milk", todo.Text)
	assert.Equal(t, StatusIncomplete, todo.Status)
	assert.False(t, todo.Done())
}

func TestNewIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		todo, err := New("task")
		require.NoError(t, err)
		require.False(t, seen[todo.ID], "id %s reused", todo.ID)
		seen[todo.ID] = true
	}
}

func TestCompleteTouchesOnlyTheMatch(t *testing.T) {
	// A completed entry must survive another entry's completion.
	l := List{
		{ID: "1", Text: "one", Status: StatusDone},
		{ID: "2", Text: "two", Status: StatusIncomplete},
		{ID: "3", Text: "three", Status: StatusIncomplete},
	}

	require.NoError(t, l.Complete("3"))

	assert.Equal(t, StatusDone, l[0].Status, "previously completed entry was reset")
	assert.Equal(t, StatusIncomplete, l[1].Status)
	assert.Equal(t, StatusDone, l[2].Status)
}

func TestCompleteUnknownID(t *testing.T) {
	l := List{{ID: "1", Text: "one", Status: StatusIncomplete}}
	err := l.Complete("nope")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, StatusIncomplete, l[0].Status)
}

func TestUnfinished(t *testing.T) {
	l := List{
		{ID: "1", Text: "one", Status: StatusDone},
		{ID: "2", Text: "two", Status: StatusIncomplete},
		{ID: "3", Text: "three", Status: StatusDone},
	}

	u := l.Unfinished()
	require.Len(t, u, 1)
	assert.Equal(t, "2", u[0].ID)
	assert.Equal(t, "two", u[0].Text)
}

func TestStats(t *testing.T) {
	l := List{
		{ID: "1", Status: StatusDone},
		{ID: "2", Status: StatusIncomplete},
		{ID: "3", Status: StatusIncomplete},
	}
	done, pending := l.Stats()
	assert.Equal(t, 1, done)
	assert.Equal(t, 2, pending)
}
