package memory

import (
	"testing"
	"time"

	"notes-app-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftRepositorySaveAssignsId(t *testing.T) {
	repo := NewDraftRepository(time.Minute)
	draft := &entity.NoteDraft{Title: "A", Tags: []string{"x"}}

	id := repo.Save(draft)
	require.NotEmpty(t, id)
	assert.Equal(t, id, draft.Id)

	got, ok := repo.Get(id)
	require.True(t, ok)
	assert.Equal(t, "A", got.Title)
	assert.True(t, got.IsNew())
}

func TestDraftRepositoryCopiesValues(t *testing.T) {
	repo := NewDraftRepository(time.Minute)
	draft := &entity.NoteDraft{Tags: []string{"x"}}
	id := repo.Save(draft)

	draft.Tags[0] = "mutated"
	got, _ := repo.Get(id)
	got.Tags = append(got.Tags, "y")

	again, _ := repo.Get(id)
	assert.Equal(t, []string{"x"}, again.Tags)
}

func TestDraftRepositoryExpiryAndDelete(t *testing.T) {
	repo := NewDraftRepository(20 * time.Millisecond)
	id := repo.Save(&entity.NoteDraft{})
	assert.Equal(t, 1, repo.Count())

	time.Sleep(40 * time.Millisecond)
	_, ok := repo.Get(id)
	assert.False(t, ok)

	id = repo.Save(&entity.NoteDraft{})
	repo.Delete(id)
	_, ok = repo.Get(id)
	assert.False(t, ok)
}
