package service

import (
	"context"

	"lucky_casino/internal/model"
)

type AuthService interface {
	Register(ctx context.Context, user *model.User) (*model.AuthData, error)
	Login(ctx context.Context, email, password string) (*model.AuthData, error)
	Refresh(ctx context.Context, data *model.AuthData) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}

type UserService interface {
	Profile(ctx context.Context, userID int) (*model.User, error)
	Deposit(ctx context.Context, userID, amount int) (balance int, err error)
	TopPlayers(ctx context.Context, limit int) ([]model.Player, error)
	Deactivate(ctx context.Context, userID int) error
}

type DogHouseService interface {
	Spin(ctx context.Context, req model.DogHouseSpin) (*model.DogHouseSpinResult, error)
	State(ctx context.Context, userID int) (*model.DogHouseState, error)
	SetBet(ctx context.Context, req model.DogHouseSpin) (*model.DogHouseState, error)
	EndBonus(ctx context.Context, userID int) (*model.DogHouseState, error)
}

type ClassicService interface {
	Spin(ctx context.Context, req model.ClassicSpin) (*model.ClassicSpinResult, error)
}

type StatsService interface {
	Snapshot() []model.GameStats
}

// OutcomeReporter канал исходов для внешних потребителей (бот, аналитика)
type OutcomeReporter interface {
	Report(ctx context.Context, outcome model.Outcome)
}
