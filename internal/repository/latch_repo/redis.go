package latch_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"lucky_casino/internal/repository"
)

const keyPrefix = "casino:spin:"

// releaseScript удаляет ключ, только если он всё ещё принадлежит токену
const releaseScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`

// redisClient часть redis.UniversalClient, нужная защёлке
type redisClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

type redisLatch struct {
	rdb redisClient
}

// NewRedisLatch защёлка на SET NX, общая для всех экземпляров сервера
func NewRedisLatch(rdb redis.UniversalClient) repository.SpinLatch {
	return &redisLatch{rdb: rdb}
}

func (l *redisLatch) Acquire(ctx context.Context, key string, ttl time.Duration) (string, bool, error) {
	token := uuid.NewString()
	ok, err := l.rdb.SetNX(ctx, keyPrefix+key, token, ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("acquire spin latch: %w", err)
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

func (l *redisLatch) Release(ctx context.Context, key, token string) error {
	err := l.rdb.Eval(ctx, releaseScript, []string{keyPrefix + key}, token).Err()
	if err != nil {
		return fmt.Errorf("release spin latch: %w", err)
	}
	return nil
}
