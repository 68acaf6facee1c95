package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"lucky_casino/internal/model"
	"lucky_casino/internal/repository"
)

// HoldSpin берёт защёлку игрока на время спина. Вернёт ErrSpinInProgress,
// если предыдущий спин этого игрока ещё не завершён
func HoldSpin(
	ctx context.Context,
	latch repository.SpinLatch,
	log *zap.Logger,
	game string,
	userID int,
	ttl time.Duration,
) (release func(), err error) {
	key := fmt.Sprintf("%s:%d", game, userID)

	token, ok, err := latch.Acquire(ctx, key, ttl)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, model.ErrSpinInProgress
	}

	return func() {
		// снимаем даже если клиент уже отключился
		if err := latch.Release(context.WithoutCancel(ctx), key, token); err != nil {
			log.Warn("release spin latch", zap.String("key", key), zap.Error(err))
		}
	}, nil
}

// Wait ждёт d или отмены ctx
func Wait(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
