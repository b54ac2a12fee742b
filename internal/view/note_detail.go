package view

import (
	"notes-app-be/internal/dto"

	"github.com/google/uuid"
)

// UpdateAction persists an inline edit. Only title and content are sent.
type UpdateAction func(id uuid.UUID, title, content string) error

// NoteDetail toggles between read-only display and inline editing.
type NoteDetail struct {
	Note    *dto.NoteResponse
	Editing bool
	Title   string
	Content string
}

func NewNoteDetail(note *dto.NoteResponse) *NoteDetail {
	return &NoteDetail{
		Note:    note,
		Title:   note.Title,
		Content: note.Content,
	}
}

func (d *NoteDetail) Edit() {
	d.Editing = true
}

func (d *NoteDetail) Cancel() {
	d.Editing = false
	d.Title = d.Note.Title
	d.Content = d.Note.Content
}

// Save runs update and leaves edit mode whatever the outcome. The displayed
// note only picks up the edit when update succeeds.
func (d *NoteDetail) Save(update UpdateAction) error {
	err := update(d.Note.Id, d.Title, d.Content)
	d.Editing = false
	if err == nil {
		d.Note.Title = d.Title
		d.Note.Content = d.Content
	}
	return err
}
