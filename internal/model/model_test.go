package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldTellsNullFromMissing(t *testing.T) {
	var p TaskPatch
	require.NoError(t, json.Unmarshal([]byte(`{"user_id":null,"title":"x"}`), &p))

	assert.True(t, p.UserID.Set)
	assert.Nil(t, p.UserID.Value)
	assert.True(t, p.Title.Set)
	assert.False(t, p.Description.Set)
	assert.False(t, p.FileID.Set)

	cols := p.Columns()
	assert.Len(t, cols, 2)
	assert.Contains(t, cols, "user_id")
	assert.Equal(t, "x", cols["title"])
}

func TestProjectPatchColumns(t *testing.T) {
	var p ProjectPatch
	require.NoError(t, json.Unmarshal([]byte(`{"description":"d","user_id":7}`), &p))

	assert.Equal(t, map[string]any{"description": "d"}, p.Columns())
}

func TestTaskPatchDirty(t *testing.T) {
	one, two := uint(1), uint(2)
	due := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	task := &Task{UserID: &one, Title: "t", DueDate: &due}

	d := TaskPatch{UserID: Of(&one), Title: Of("t"), DueDate: Of(&due)}.Dirty(task)
	assert.Empty(t, d)

	d = TaskPatch{UserID: Of(&two), Title: Of("t2")}.Dirty(task)
	assert.True(t, d.Has("user_id"))
	assert.True(t, d.Has("title"))
	assert.False(t, d.Has("due_date"))

	d = TaskPatch{UserID: Of[*uint](nil)}.Dirty(task)
	assert.True(t, d.Has("user_id"))
}

func TestCreatedDirty(t *testing.T) {
	id := uint(3)

	assert.False(t, (&Task{Title: "t"}).CreatedDirty().Has("user_id"))
	assert.True(t, (&Task{Title: "t", UserID: &id}).CreatedDirty().Has("user_id"))
}
