package contract

import (
	"context"
	"errors"

	"notes-app-be/internal/entity"
	"notes-app-be/internal/repository/specification"

	"github.com/google/uuid"
)

// ErrRecordNotFound is returned by Update and Delete when no row matched.
var ErrRecordNotFound = errors.New("record not found")

type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	// Update replaces title, content, tags and updated_at. created_at is never written.
	Update(ctx context.Context, note *entity.Note) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
