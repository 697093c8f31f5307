package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/waste_complaint_system/internal/service"
)

const sessionKeyPrefix = "session:"

// SessionRepository хранит сессии администратора в Redis.
// Истечение TTL ключа и есть истечение сессии.
type SessionRepository struct {
	redisClient *redis.Client
}

func NewSessionRepository(redisClient *redis.Client) service.SessionStore {
	return &SessionRepository{
		redisClient: redisClient,
	}
}

// Create сохраняет токен сессии с заданным TTL
func (r *SessionRepository) Create(ctx context.Context, token string, ttl time.Duration) error {
	key := sessionKeyPrefix + token
	if err := r.redisClient.Set(ctx, key, "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// Exists проверяет, существует ли сессия с данным токеном
func (r *SessionRepository) Exists(ctx context.Context, token string) (bool, error) {
	key := sessionKeyPrefix + token
	if err := r.redisClient.Get(ctx, key).Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check session: %w", err)
	}
	return true, nil
}

// Delete удаляет сессию. Отсутствующий токен - не ошибка.
func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	key := sessionKeyPrefix + token
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
