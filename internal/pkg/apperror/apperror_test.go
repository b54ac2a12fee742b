package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		err  *AppError
		want int
	}{
		{Validation("bad"), http.StatusBadRequest},
		{NotFound("missing"), http.StatusNotFound},
		{MethodNotAllowed("nope"), http.StatusMethodNotAllowed},
		{Internal("boom", errors.New("db down")), http.StatusInternalServerError},
		{New("SOMETHING_ELSE", "?"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.err.Code), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Status())
		})
	}
}

func TestIsThroughWrapping(t *testing.T) {
	err := fmt.Errorf("controller: %w", NotFound("Note not found"))

	assert.True(t, Is(err, ErrNotFound))
	assert.False(t, Is(err, ErrValidation))
	assert.False(t, Is(errors.New("plain"), ErrNotFound))
}

func TestErrorAndUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal("Failed to fetch notes", cause)

	assert.Equal(t, "[INTERNAL_ERROR] Failed to fetch notes: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "[NOT_FOUND] Note not found", NotFound("Note not found").Error())
}
