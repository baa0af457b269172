package chatbot

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"voyago/models"
)

const chatContextPrefix = "chat:ctx:"

// RedisContextStore keeps per-user conversation state between chatbot
// turns, keyed by user id. It is owned by the chat service and injected
// at construction.
type RedisContextStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisContextStore(client *redis.Client, ttl time.Duration) *RedisContextStore {
	return &RedisContextStore{client: client, ttl: ttl}
}

func (s *RedisContextStore) Get(ctx context.Context, userID string) (*models.ChatContext, error) {
	key := chatContextPrefix + userID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return &models.ChatContext{}, nil
	}
	if err != nil {
		return nil, err
	}
	var chatCtx models.ChatContext
	if err := json.Unmarshal([]byte(data), &chatCtx); err != nil {
		return nil, err
	}
	return &chatCtx, nil
}

func (s *RedisContextStore) Set(ctx context.Context, userID string, chatCtx *models.ChatContext) error {
	key := chatContextPrefix + userID
	b, err := json.Marshal(chatCtx)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisContextStore) Clear(ctx context.Context, userID string) error {
	key := chatContextPrefix + userID
	return s.client.Del(ctx, key).Err()
}
