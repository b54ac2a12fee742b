package mapper

import (
	"encoding/json"
	"testing"
	"time"

	"notes-app-be/internal/entity"
	"notes-app-be/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilTagsBecomeEmptyList(t *testing.T) {
	m := NewNoteMapper()
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	res := m.ToResponse(m.ToEntity(&model.Note{
		Id:        uuid.New(),
		Title:     "A",
		Content:   "B",
		CreatedAt: now,
		UpdatedAt: now,
	}))

	raw, err := json.Marshal(res)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"tags":[]`)
	assert.Contains(t, string(raw), `"createdAt":"2026-01-02T03:04:05Z"`)
}

func TestToModelCopiesTags(t *testing.T) {
	m := NewNoteMapper()
	note := &entity.Note{Id: uuid.New(), Tags: []string{"x", "x", " Y "}}

	mdl := m.ToModel(note)
	note.Tags[0] = "changed"

	// Stored exactly as given, duplicates and whitespace included
	assert.Equal(t, []string{"x", "x", " Y "}, []string(mdl.Tags))
}

func TestNilInputs(t *testing.T) {
	m := NewNoteMapper()
	assert.Nil(t, m.ToEntity(nil))
	assert.Nil(t, m.ToModel(nil))
	assert.Nil(t, m.ToResponse(nil))
	assert.Empty(t, m.ToResponses(nil))
}
