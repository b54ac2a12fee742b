package entity

import "github.com/google/uuid"

// NoteDraft is the unsaved state of a create/edit form.
// NoteId is uuid.Nil when the draft creates a new note.
type NoteDraft struct {
	Id       string
	NoteId   uuid.UUID
	Title    string
	Content  string
	TagInput string
	Tags     []string
}

func (d *NoteDraft) IsNew() bool {
	return d.NoteId == uuid.Nil
}

func (d *NoteDraft) Clone() *NoteDraft {
	if d == nil {
		return nil
	}
	c := *d
	c.Tags = append([]string(nil), d.Tags...)
	return &c
}
