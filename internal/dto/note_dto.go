package dto

import (
	"time"

	"github.com/google/uuid"
)

type ListNotesQuery struct {
	Search string
	Tag    string
}

type CreateNoteRequest struct {
	Title   string   `json:"title" validate:"required,notblank"`
	Content string   `json:"content" validate:"required,notblank"`
	Tags    []string `json:"tags"`
}

type UpdateNoteRequest struct {
	Id      uuid.UUID `json:"-"`
	Title   string    `json:"title" validate:"required,notblank"`
	Content string    `json:"content" validate:"required,notblank"`
	Tags    []string  `json:"tags"`
}

type NoteResponse struct {
	Id        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NoteEventMessage travels over the in-process bus and the live feed.
// Note is nil for deletions.
type NoteEventMessage struct {
	Type   string        `json:"type"`
	NoteId uuid.UUID     `json:"note_id"`
	Note   *NoteResponse `json:"note,omitempty"`
}
