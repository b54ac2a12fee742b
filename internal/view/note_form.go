package view

import (
	"strings"

	"notes-app-be/internal/entity"
)

// NoteFormValues is what a submitted form hands to its action.
type NoteFormValues struct {
	Title   string
	Content string
	Tags    []string
}

// NoteForm holds create/edit form state. It performs no I/O.
type NoteForm struct {
	Title    string
	Content  string
	TagInput string
	Tags     []string
}

func NewNoteForm(initial *NoteFormValues) *NoteForm {
	f := &NoteForm{Tags: []string{}}
	if initial != nil {
		f.Title = initial.Title
		f.Content = initial.Content
		f.Tags = append(f.Tags, initial.Tags...)
	}
	return f
}

func NoteFormFromDraft(d *entity.NoteDraft) *NoteForm {
	f := NewNoteForm(&NoteFormValues{Title: d.Title, Content: d.Content, Tags: d.Tags})
	f.TagInput = d.TagInput
	return f
}

// ApplyTo copies the form state back into d.
func (f *NoteForm) ApplyTo(d *entity.NoteDraft) {
	d.Title = f.Title
	d.Content = f.Content
	d.TagInput = f.TagInput
	d.Tags = append([]string(nil), f.Tags...)
}

// AddTag appends the trimmed tag input unless it is empty or already present,
// then clears the input. It reports whether a tag was added.
func (f *NoteForm) AddTag() bool {
	tag := strings.TrimSpace(f.TagInput)
	if tag == "" || f.hasTag(tag) {
		return false
	}
	f.Tags = append(f.Tags, tag)
	f.TagInput = ""
	return true
}

func (f *NoteForm) hasTag(tag string) bool {
	for _, t := range f.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// RemoveTag deletes the first entry equal to tag.
func (f *NoteForm) RemoveTag(tag string) bool {
	for i, t := range f.Tags {
		if t == tag {
			f.Tags = append(f.Tags[:i:i], f.Tags[i+1:]...)
			return true
		}
	}
	return false
}

func (f *NoteForm) Values() NoteFormValues {
	return NoteFormValues{
		Title:   f.Title,
		Content: f.Content,
		Tags:    append([]string{}, f.Tags...),
	}
}

// Submit hands the current values to action and returns its error.
func (f *NoteForm) Submit(action func(NoteFormValues) error) error {
	return action(f.Values())
}
