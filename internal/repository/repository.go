package repository

import (
	"context"
	"time"

	"lucky_casino/internal/model"
)

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, sessionID string) (*model.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
	DeleteUserSessions(ctx context.Context, userID int) error
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int, err error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, id int) (*model.User, error)

	// GetBalance блокирует строку до конца транзакции
	GetBalance(ctx context.Context, id int) (int, error)
	UpdateBalance(ctx context.Context, id int, amount int) error
	RecordGame(ctx context.Context, id int, win int) error

	TopPlayers(ctx context.Context, limit int) ([]model.Player, error)
	Deactivate(ctx context.Context, id int) error
}

type DogHouseRepository interface {
	// GetState found == false, если игрок ещё не крутил Dog House
	GetState(ctx context.Context, userID int) (state model.DogHouseState, found bool, err error)
	SaveState(ctx context.Context, state model.DogHouseState) error
}

type StatsRepository interface {
	Record(game string, bet, payout int)
	Game(game string) model.GameStats
	Snapshot() []model.GameStats
}

// SpinLatch не даёт игроку запустить второй спин, пока идёт первый.
// Acquire возвращает токен владельца, Release снимает защёлку только
// по этому токену
type SpinLatch interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (token string, ok bool, err error)
	Release(ctx context.Context, key, token string) error
}
