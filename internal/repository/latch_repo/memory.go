package latch_repo

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"lucky_casino/internal/repository"
)

type holder struct {
	token   string
	expires time.Time
}

type memoryLatch struct {
	mtx  sync.Mutex
	now  func() time.Time
	held map[string]holder
}

// NewMemoryLatch защёлка в памяти процесса, когда Redis не настроен
func NewMemoryLatch() repository.SpinLatch {
	return &memoryLatch{
		now:  time.Now,
		held: make(map[string]holder),
	}
}

func (l *memoryLatch) Acquire(_ context.Context, key string, ttl time.Duration) (string, bool, error) {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	now := l.now()
	if h, ok := l.held[key]; ok && now.Before(h.expires) {
		return "", false, nil
	}
	h := holder{token: uuid.NewString(), expires: now.Add(ttl)}
	l.held[key] = h
	return h.token, true, nil
}

func (l *memoryLatch) Release(_ context.Context, key, token string) error {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	if h, ok := l.held[key]; ok && h.token == token {
		delete(l.held, key)
	}
	return nil
}
