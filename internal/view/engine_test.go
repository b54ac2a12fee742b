package view

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderListPage(t *testing.T) {
	engine := NewEngine()
	require.NoError(t, engine.Load())

	notes := sample()
	notes[0].CreatedAt = time.Date(2026, 4, 5, 14, 30, 0, 0, time.UTC)

	var buf bytes.Buffer
	err := engine.Render(&buf, "list", ListPage{Title: "Notes", List: NewNoteList(notes, "", "home")}, Layout)
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "<title>Notes · Notes</title>")
	assert.Contains(t, html, "Groceries")
	assert.Contains(t, html, "Foo sync")
	assert.NotContains(t, html, "Retro")
	assert.Contains(t, html, "Created: Apr 5, 2026, 02:30 PM")
	assert.Contains(t, html, `href="/?tag=work"`)
}

func TestRenderEmptyList(t *testing.T) {
	engine := NewEngine()
	require.NoError(t, engine.Load())

	var buf bytes.Buffer
	require.NoError(t, engine.Render(&buf, "list", ListPage{Title: "Notes", List: NewNoteList(nil, "", "")}, Layout))
	assert.Contains(t, buf.String(), "No notes found. Create a new note to get started!")
}

func TestRenderFormEscapesInput(t *testing.T) {
	engine := NewEngine()
	require.NoError(t, engine.Load())

	form := NewNoteForm(&NoteFormValues{Title: `<script>alert(1)</script>`, Tags: []string{"x"}})
	var buf bytes.Buffer
	require.NoError(t, engine.Render(&buf, "form", FormPage{Title: "New Note", DraftId: "d1", IsNew: true, Form: form}, Layout))

	html := buf.String()
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, `action="/drafts/d1"`)
	assert.Contains(t, html, `name="remove_tag" value="x"`)
}

func TestRenderDetailModes(t *testing.T) {
	engine := NewEngine()
	require.NoError(t, engine.Load())

	d := NewNoteDetail(note("Title", "Body"))
	var buf bytes.Buffer
	require.NoError(t, engine.Render(&buf, "detail", DetailPage{Title: "Title", Detail: d}, Layout))
	assert.Contains(t, buf.String(), "Back to Notes")
	assert.NotContains(t, buf.String(), "inline-edit")

	d.Edit()
	buf.Reset()
	require.NoError(t, engine.Render(&buf, "detail", DetailPage{Title: "Title", Detail: d}, Layout))
	assert.Contains(t, buf.String(), "inline-edit")
}

func TestRenderErrorPage(t *testing.T) {
	engine := NewEngine()
	var buf bytes.Buffer
	require.NoError(t, engine.Render(&buf, "error", ErrorPage{Title: "Note not found", Status: 404, Message: "Note not found"}, Layout))

	out := buf.String()
	assert.Contains(t, out, "<title>Note not found · Notes</title>")
	assert.Contains(t, out, "<h1>404</h1>")
	assert.Contains(t, out, `<a href="/">Back to Notes</a>`)
}
