package user

import (
	"context"
	"fmt"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"go.uber.org/zap"

	"lucky_casino/internal/model"
	"lucky_casino/internal/repository"
	"lucky_casino/internal/service"
)

const (
	defaultTopLimit = 10
	maxTopLimit     = 100
)

type serv struct {
	userRepo  repository.UserRepository
	authRepo  repository.AuthRepository
	txManager trm.Manager
	log       *zap.Logger
}

func NewUserService(
	userRepo repository.UserRepository,
	authRepo repository.AuthRepository,
	txManager trm.Manager,
	log *zap.Logger,
) service.UserService {
	return &serv{
		userRepo:  userRepo,
		authRepo:  authRepo,
		txManager: txManager,
		log:       log.Named("user"),
	}
}

// Profile данные игрока без хэша пароля
func (s *serv) Profile(ctx context.Context, userID int) (*model.User, error) {
	u, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !u.IsActive {
		return nil, model.ErrUserNotFound
	}
	u.Password = ""
	return u, nil
}

// Deposit пополнение баланса, возвращает новый баланс
func (s *serv) Deposit(ctx context.Context, userID, amount int) (int, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("%w: %d", model.ErrInvalidAmount, amount)
	}

	var balance int
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		balance, err = s.userRepo.GetBalance(txCtx, userID)
		if err != nil {
			return err
		}
		balance += amount
		return s.userRepo.UpdateBalance(txCtx, userID, balance)
	})
	if err != nil {
		return 0, err
	}

	s.log.Info("deposit", zap.Int("user_id", userID), zap.Int("amount", amount), zap.Int("balance", balance))
	return balance, nil
}

// TopPlayers рейтинг по сумме выигрышей. limit <= 0 даёт 10
func (s *serv) TopPlayers(ctx context.Context, limit int) ([]model.Player, error) {
	switch {
	case limit <= 0:
		limit = defaultTopLimit
	case limit > maxTopLimit:
		limit = maxTopLimit
	}
	return s.userRepo.TopPlayers(ctx, limit)
}

// Deactivate мягкое удаление и закрытие всех сессий
func (s *serv) Deactivate(ctx context.Context, userID int) error {
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.userRepo.Deactivate(txCtx, userID); err != nil {
			return err
		}
		return s.authRepo.DeleteUserSessions(txCtx, userID)
	})
	if err != nil {
		return err
	}

	s.log.Info("deactivated", zap.Int("user_id", userID))
	return nil
}
