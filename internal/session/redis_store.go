package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hcanhquan/royalvietnam-backend/internal/app/model"
	"github.com/hcanhquan/royalvietnam-backend/pkg/logger"
	"github.com/redis/go-redis/v9"
)

const sessionTTL = 24 * time.Hour

// redisStore keeps sessions in Redis so they survive restarts and can be
// shared across instances.
type redisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func sessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}

func (s *redisStore) Issue(ctx context.Context, identity model.EmployeeIdentity) (string, error) {
	token := uuid.New().String()

	payload, err := json.Marshal(identity)
	if err != nil {
		return "", err
	}

	if err := s.client.Set(ctx, sessionKey(token), payload, sessionTTL).Err(); err != nil {
		logger.Error("Failed to store session in Redis", err, nil)
		return "", err
	}
	return token, nil
}

func (s *redisStore) Resolve(ctx context.Context, token string) (*model.EmployeeIdentity, error) {
	payload, err := s.client.Get(ctx, sessionKey(token)).Result()
	if err == redis.Nil {
		return nil, ErrTokenNotFound
	}
	if err != nil {
		logger.Error("Failed to read session from Redis", err, nil)
		return nil, err
	}

	var identity model.EmployeeIdentity
	if err := json.Unmarshal([]byte(payload), &identity); err != nil {
		return nil, err
	}
	return &identity, nil
}

func (s *redisStore) Revoke(ctx context.Context, token string) error {
	return s.client.Del(ctx, sessionKey(token)).Err()
}
