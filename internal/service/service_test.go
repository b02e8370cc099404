package service

import (
	"context"
	"sync"

	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/pkg/logger"
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/repository/memory"
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/pkg/store"
)

// fakeSessionRepo stands in for the Redis-backed blob store.
type fakeSessionRepo struct {
	mu     sync.Mutex
	stored *store.Session
	err    error
	saves  int
}

func (f *fakeSessionRepo) Load(ctx context.Context) (*store.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.stored, nil
}

func (f *fakeSessionRepo) Save(ctx context.Context, session *store.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stored = session
	f.saves++
	return nil
}

type fakePublisher struct {
	mu       sync.Mutex
	payloads [][]byte
}

func (f *fakePublisher) Publish(ctx context.Context, payload []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.payloads = append(f.payloads, payload)
	return nil
}

func (f *fakePublisher) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.payloads)
}

func newTestSessionService(repo *fakeSessionRepo) (ISessionService, *fakePublisher) {
	pub := &fakePublisher{}
	svc := NewSessionService(memory.NewSessionRepository(), repo, pub, logger.NewNopLogger())
	return svc, pub
}
