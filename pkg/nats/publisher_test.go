package nats

import (
	"encoding/json"
	"testing"
	"time"

	"notes-app-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubject(t *testing.T) {
	assert.Equal(t, "notes.note_created", Subject("NOTE_CREATED"))
}

func TestEncode(t *testing.T) {
	at := time.Date(2026, 5, 4, 3, 2, 1, 0, time.UTC)
	raw, err := Encode(events.NewBaseEvent("note_updated", map[string]interface{}{"title": "A"}, at))
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "NOTE_UPDATED", got["type"])
	assert.Equal(t, "2026-05-04T03:02:01Z", got["occurred_at"])
	assert.Equal(t, map[string]interface{}{"title": "A"}, got["data"])
}
