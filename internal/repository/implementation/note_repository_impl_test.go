package implementation

import (
	"context"
	"testing"
	"time"

	"notes-app-be/internal/entity"
	"notes-app-be/internal/pkg/testdb"
	"notes-app-be/internal/repository/contract"
	"notes-app-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func seed(t *testing.T, repo contract.NoteRepository, title, content string, tags []string, offset time.Duration) *entity.Note {
	t.Helper()
	n := &entity.Note{
		Id:        uuid.New(),
		Title:     title,
		Content:   content,
		Tags:      tags,
		CreatedAt: base.Add(offset),
		UpdatedAt: base.Add(offset),
	}
	require.NoError(t, repo.Create(context.Background(), n))
	return n
}

func titles(notes []*entity.Note) []string {
	out := make([]string, len(notes))
	for i, n := range notes {
		out[i] = n.Title
	}
	return out
}

func TestCreateAndFindOne(t *testing.T) {
	repo := NewNoteRepository(testdb.New(t))
	ctx := context.Background()

	created := seed(t, repo, "A", "B", []string{"x", "x", " Y "}, 0)

	got, err := repo.FindOne(ctx, specification.ByID{ID: created.Id})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "A", got.Title)
	assert.Equal(t, []string{"x", "x", " Y "}, got.Tags)
	assert.True(t, got.CreatedAt.Equal(base))

	missing, err := repo.FindOne(ctx, specification.ByID{ID: uuid.New()})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestEmptyTagsRoundTrip(t *testing.T) {
	repo := NewNoteRepository(testdb.New(t))
	created := seed(t, repo, "A", "B", nil, 0)

	got, err := repo.FindOne(context.Background(), specification.ByID{ID: created.Id})
	require.NoError(t, err)
	assert.NotNil(t, got.Tags)
	assert.Empty(t, got.Tags)
}

func TestFindAllFilters(t *testing.T) {
	repo := NewNoteRepository(testdb.New(t))
	ctx := context.Background()

	seed(t, repo, "Groceries", "buy FOO bars", []string{"home"}, 1*time.Minute)
	seed(t, repo, "Foo meeting", "agenda", []string{"work"}, 2*time.Minute)
	seed(t, repo, "Standup", "nothing", []string{"work", "daily"}, 3*time.Minute)
	seed(t, repo, "100% done", "under_score", []string{"Work"}, 4*time.Minute)
	seed(t, repo, "Ärger im Büro", "ÜBERSTUNDEN", nil, 5*time.Minute)

	tests := []struct {
		name  string
		specs []specification.Specification
		want  []string
	}{
		{"no filters newest first", nil, []string{"Ärger im Büro", "100% done", "Standup", "Foo meeting", "Groceries"}},
		{"search title or content ignoring case", []specification.Specification{specification.NoteSearchQuery{Query: "foo"}}, []string{"Foo meeting", "Groceries"}},
		{"tag is exact and case sensitive", []specification.Specification{specification.HasTag{Tag: "work"}}, []string{"Standup", "Foo meeting"}},
		{"search and tag combine", []specification.Specification{specification.NoteSearchQuery{Query: "foo"}, specification.HasTag{Tag: "work"}}, []string{"Foo meeting"}},
		{"percent is literal", []specification.Specification{specification.NoteSearchQuery{Query: "%"}}, []string{"100% done"}},
		{"underscore is literal", []specification.Specification{specification.NoteSearchQuery{Query: "_"}}, []string{"100% done"}},
		{"search folds non-ascii title", []specification.Specification{specification.NoteSearchQuery{Query: "ärger"}}, []string{"Ärger im Büro"}},
		{"search folds non-ascii content", []specification.Specification{specification.NoteSearchQuery{Query: "überstunden"}}, []string{"Ärger im Büro"}},
		{"unknown tag", []specification.Specification{specification.HasTag{Tag: "nope"}}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			specs := append(append([]specification.Specification{}, tt.specs...), specification.OrderBy{Field: "created_at", Desc: true})
			notes, err := repo.FindAll(ctx, specs...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, titles(notes))

			count, err := repo.Count(ctx, tt.specs...)
			require.NoError(t, err)
			assert.EqualValues(t, len(tt.want), count)
		})
	}
}

func TestUpdateLeavesCreatedAt(t *testing.T) {
	repo := NewNoteRepository(testdb.New(t))
	ctx := context.Background()
	created := seed(t, repo, "A", "B", []string{"x"}, 0)

	later := base.Add(time.Hour)
	require.NoError(t, repo.Update(ctx, &entity.Note{
		Id:        created.Id,
		Title:     "A2",
		Content:   "B2",
		Tags:      []string{},
		CreatedAt: time.Time{},
		UpdatedAt: later,
	}))

	got, err := repo.FindOne(ctx, specification.ByID{ID: created.Id})
	require.NoError(t, err)
	assert.Equal(t, "A2", got.Title)
	assert.Empty(t, got.Tags)
	assert.True(t, got.CreatedAt.Equal(base))
	assert.True(t, got.UpdatedAt.Equal(later))
}

func TestUpdateAndDeleteMissing(t *testing.T) {
	repo := NewNoteRepository(testdb.New(t))
	ctx := context.Background()

	err := repo.Update(ctx, &entity.Note{Id: uuid.New(), Title: "A", Content: "B", UpdatedAt: base})
	assert.ErrorIs(t, err, contract.ErrRecordNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, uuid.New()), contract.ErrRecordNotFound)
}

func TestDeleteIsHard(t *testing.T) {
	repo := NewNoteRepository(testdb.New(t))
	ctx := context.Background()
	created := seed(t, repo, "A", "B", nil, 0)

	require.NoError(t, repo.Delete(ctx, created.Id))
	assert.ErrorIs(t, repo.Delete(ctx, created.Id), contract.ErrRecordNotFound)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
