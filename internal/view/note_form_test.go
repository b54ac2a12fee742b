package view

import (
	"errors"
	"testing"

	"notes-app-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddTag(t *testing.T) {
	f := NewNoteForm(nil)

	f.TagInput = "  work "
	assert.True(t, f.AddTag())
	assert.Equal(t, []string{"work"}, f.Tags)
	assert.Equal(t, "", f.TagInput)

	f.TagInput = "work"
	assert.False(t, f.AddTag(), "duplicate")
	assert.Equal(t, "work", f.TagInput, "input is kept when nothing was added")

	f.TagInput = "   "
	assert.False(t, f.AddTag(), "blank")

	f.TagInput = "Work"
	assert.True(t, f.AddTag(), "case sensitive")
	assert.Equal(t, []string{"work", "Work"}, f.Tags)
}

func TestRemoveTagDeletesFirstMatch(t *testing.T) {
	f := NewNoteForm(&NoteFormValues{Tags: []string{"a", "b", "a"}})

	assert.True(t, f.RemoveTag("a"))
	assert.Equal(t, []string{"b", "a"}, f.Tags)
	assert.False(t, f.RemoveTag("zzz"))
	assert.Equal(t, []string{"b", "a"}, f.Tags)
}

func TestNewNoteFormCopiesInitialTags(t *testing.T) {
	initial := &NoteFormValues{Title: "A", Content: "B", Tags: []string{"x"}}
	f := NewNoteForm(initial)
	f.RemoveTag("x")

	assert.Equal(t, []string{"x"}, initial.Tags)
	assert.Equal(t, "A", f.Title)
}

func TestSubmitPassesValues(t *testing.T) {
	f := NewNoteForm(&NoteFormValues{Title: "A", Content: "B", Tags: []string{"x"}})

	var got NoteFormValues
	err := f.Submit(func(v NoteFormValues) error {
		got = v
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, NoteFormValues{Title: "A", Content: "B", Tags: []string{"x"}}, got)

	boom := errors.New("boom")
	assert.ErrorIs(t, f.Submit(func(NoteFormValues) error { return boom }), boom)
}

func TestDraftRoundTrip(t *testing.T) {
	d := &entity.NoteDraft{Id: "d1", Title: "A", Content: "B", TagInput: "pending", Tags: []string{"x"}}

	f := NoteFormFromDraft(d)
	assert.Equal(t, "pending", f.TagInput)
	assert.True(t, f.AddTag())

	f.ApplyTo(d)
	assert.Equal(t, []string{"x", "pending"}, d.Tags)
	assert.Equal(t, "", d.TagInput)
	assert.Equal(t, "d1", d.Id)
}
