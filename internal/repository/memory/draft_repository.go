package memory

import (
	"time"

	"notes-app-be/internal/entity"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// DraftRepository keeps form drafts between page requests. Values are
// copied on the way in and out so concurrent requests never share a draft.
type DraftRepository struct {
	cache *cache.Cache
}

func NewDraftRepository(ttl time.Duration) *DraftRepository {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &DraftRepository{
		cache: cache.New(ttl, 10*time.Minute),
	}
}

// Save stores the draft, assigning an id when it has none.
func (r *DraftRepository) Save(draft *entity.NoteDraft) string {
	if draft.Id == "" {
		draft.Id = uuid.NewString()
	}
	r.cache.Set(draft.Id, draft.Clone(), cache.DefaultExpiration)
	return draft.Id
}

func (r *DraftRepository) Get(draftID string) (*entity.NoteDraft, bool) {
	if x, found := r.cache.Get(draftID); found {
		return x.(*entity.NoteDraft).Clone(), true
	}
	return nil, false
}

func (r *DraftRepository) Delete(draftID string) {
	r.cache.Delete(draftID)
}

func (r *DraftRepository) Count() int {
	return r.cache.ItemCount()
}
