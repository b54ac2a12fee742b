package view

import (
	"time"

	"notes-app-be/internal/dto"
)

const (
	cardDateLayout  = "Jan 2, 2006, 03:04 PM"
	shortDateLayout = "1/2/2006"
)

// FormatDate renders a timestamp the way note cards show it.
func FormatDate(t time.Time) string {
	return t.Format(cardDateLayout)
}

// FormatShortDate is used for "Last updated" lines.
func FormatShortDate(t time.Time) string {
	return t.Format(shortDateLayout)
}

type NoteCard struct {
	Note *dto.NoteResponse
}

func NewNoteCard(note *dto.NoteResponse) NoteCard {
	return NoteCard{Note: note}
}

func (c NoteCard) Created() string {
	return FormatDate(c.Note.CreatedAt)
}

func (c NoteCard) Modified() string {
	return FormatDate(c.Note.UpdatedAt)
}

func (c NoteCard) HasTags() bool {
	return len(c.Note.Tags) > 0
}
