package auth

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"lucky_casino/internal/model"
	"lucky_casino/pkg/pass"
)

// Login проверяет пароль и открывает новую сессию
func (s *serv) Login(ctx context.Context, email, password string) (*model.AuthData, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive || !pass.VerifyPassword(user.Password, password) {
		return nil, model.ErrInvalidCredentials
	}

	data, err := s.openSession(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	s.log.Info("login", zap.Int("user_id", user.ID))
	return data, nil
}
