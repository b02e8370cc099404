package implementation

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/constant"
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/repository/contract"
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/pkg/store"
)

type RedisSessionRepository struct {
	client *redis.Client
}

func NewRedisSessionRepository(client *redis.Client) contract.SessionRepository {
	return &RedisSessionRepository{client: client}
}

func (r *RedisSessionRepository) Load(ctx context.Context) (*store.Session, error) {
	raw, err := r.client.Get(ctx, constant.StorageKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var session store.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *RedisSessionRepository) Save(ctx context.Context, session *store.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}
	// No TTL: the blob lives until the next save overwrites it.
	return r.client.Set(ctx, constant.StorageKey, raw, 0).Err()
}
