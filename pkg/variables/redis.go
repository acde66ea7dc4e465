package variables

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/pageforge/pageforge/pkg/protocol"
)

// RedisStore persists variables in redis as JSON values, namespaced per
// app so published apps sharing one redis do not interfere.
type RedisStore struct {
	client *redis.Client
	appID  string
}

// NewRedisStore connects with the given URL (redis://...) and namespace.
func NewRedisStore(redisURL, appID string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	return &RedisStore{
		client: redis.NewClient(opts),
		appID:  appID,
	}, nil
}

func (s *RedisStore) Set(ctx context.Context, name string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal variable %s: %w", name, err)
	}

	err = s.client.Set(ctx, s.key(name), payload, 0).Err()
	if err != nil {
		return fmt.Errorf("failed to store variable %s: %w", name, err)
	}

	return nil
}

func (s *RedisStore) Get(ctx context.Context, name string) (any, bool, error) {
	payload, err := s.client.Get(ctx, s.key(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}

		return nil, false, fmt.Errorf("failed to read variable %s: %w", name, err)
	}

	var value any
	if err := json.Unmarshal(payload, &value); err != nil {
		return nil, false, fmt.Errorf("failed to decode variable %s: %w", name, err)
	}

	return value, true, nil
}

func (s *RedisStore) Delete(ctx context.Context, name string) error {
	err := s.client.Del(ctx, s.key(name)).Err()
	if err != nil {
		return fmt.Errorf("failed to delete variable %s: %w", name, err)
	}

	return nil
}

// Close releases the underlying connection pool.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) key(name string) string {
	return s.appID + ":" + Key(name)
}

var _ protocol.VariableStore = (*RedisStore)(nil)
