package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitBoard(t *testing.T) {
	entries := []BoardEntry{
		{TeamName: "alpha", BoardName: "doing", Color: 5},
		{TeamName: "alpha", BoardName: "doing", CardName: "fix login", CardContent: "details"},
		{TeamName: "alpha", BoardName: "doing", CardName: "write docs"},
	}

	columns, cards := SplitBoard(entries)

	assert.Equal(t, []BoardColumn{{TeamName: "alpha", Name: "doing", Color: 5}}, columns)
	assert.Equal(t, []BoardCard{
		{TeamName: "alpha", Column: "doing", Name: "fix login", Content: "details"},
		{TeamName: "alpha", Column: "doing", Name: "write docs"},
	}, cards)
}

func TestSplitBoardEmpty(t *testing.T) {
	columns, cards := SplitBoard(nil)
	assert.Empty(t, columns)
	assert.Empty(t, cards)
}

func TestTaskStateValid(t *testing.T) {
	assert.True(t, TaskStateTodo.Valid())
	assert.True(t, TaskStateDoing.Valid())
	assert.True(t, TaskStateDone.Valid())
	assert.False(t, TaskState("WAITING").Valid())
	assert.False(t, TaskState("").Valid())
}

func TestValidColor(t *testing.T) {
	assert.True(t, ValidColor(0))
	assert.True(t, ValidColor(11))
	assert.False(t, ValidColor(-1))
	assert.False(t, ValidColor(12))
}
