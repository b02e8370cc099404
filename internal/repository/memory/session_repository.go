package memory

import (
	"github.com/patrickmn/go-cache"

	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/constant"
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/pkg/store"
)

// SessionRepository is the in-memory live copy of the session, sitting in
// front of the persisted blob. Single-user, so everything hangs off the fixed
// storage key.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	// Never expires: the session is the whole application state, eviction
	// would silently reset it between requests.
	c := cache.New(cache.NoExpiration, 0)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(session *store.Session) {
	r.cache.Set(constant.StorageKey, session, cache.NoExpiration)
}

func (r *SessionRepository) Get() (*store.Session, bool) {
	if x, found := r.cache.Get(constant.StorageKey); found {
		return x.(*store.Session), true
	}
	return nil, false
}

func (r *SessionRepository) Delete() {
	r.cache.Delete(constant.StorageKey)
}
