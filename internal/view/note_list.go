package view

import (
	"net/url"
	"strings"

	"notes-app-be/internal/dto"
)

// NoteList filters an already loaded set of notes. It never queries the store.
type NoteList struct {
	Notes       []*dto.NoteResponse
	Search      string
	SelectedTag string
}

func NewNoteList(notes []*dto.NoteResponse, search, tag string) *NoteList {
	return &NoteList{Notes: notes, Search: search, SelectedTag: tag}
}

// AllTags returns the distinct tags of the loaded notes in first-seen order.
func (l *NoteList) AllTags() []string {
	seen := make(map[string]struct{})
	tags := []string{}
	for _, n := range l.Notes {
		for _, t := range n.Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			tags = append(tags, t)
		}
	}
	return tags
}

// Filtered applies the search text and the selected tag.
func (l *NoteList) Filtered() []*dto.NoteResponse {
	needle := strings.ToLower(l.Search)
	out := []*dto.NoteResponse{}
	for _, n := range l.Notes {
		matchesSearch := strings.Contains(strings.ToLower(n.Title), needle) ||
			strings.Contains(strings.ToLower(n.Content), needle)
		if matchesSearch && l.hasSelectedTag(n) {
			out = append(out, n)
		}
	}
	return out
}

func (l *NoteList) hasSelectedTag(n *dto.NoteResponse) bool {
	if l.SelectedTag == "" {
		return true
	}
	for _, t := range n.Tags {
		if t == l.SelectedTag {
			return true
		}
	}
	return false
}

func (l *NoteList) Cards() []NoteCard {
	filtered := l.Filtered()
	cards := make([]NoteCard, len(filtered))
	for i, n := range filtered {
		cards[i] = NewNoteCard(n)
	}
	return cards
}

// SelectTag toggles: choosing the current tag again clears the filter.
func (l *NoteList) SelectTag(tag string) {
	if tag == l.SelectedTag {
		l.SelectedTag = ""
		return
	}
	l.SelectedTag = tag
}

// ClearTag is the "All" button.
func (l *NoteList) ClearTag() {
	l.SelectedTag = ""
}

func (l *NoteList) IsSelected(tag string) bool {
	return tag == l.SelectedTag
}

// TagLink is the URL a tag button points to, keeping the search text.
func (l *NoteList) TagLink(tag string) string {
	next := *l
	next.SelectTag(tag)
	return next.link()
}

func (l *NoteList) AllLink() string {
	next := *l
	next.ClearTag()
	return next.link()
}

func (l *NoteList) link() string {
	q := url.Values{}
	if l.Search != "" {
		q.Set("q", l.Search)
	}
	if l.SelectedTag != "" {
		q.Set("tag", l.SelectedTag)
	}
	if len(q) == 0 {
		return "/"
	}
	return "/?" + q.Encode()
}
