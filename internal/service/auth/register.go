package auth

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"go.uber.org/zap"

	"lucky_casino/internal/model"
	"lucky_casino/pkg/pass"
)

const minPasswordLength = 6

// Register создаёт игрока со стартовым балансом и сразу открывает сессию
func (s *serv) Register(ctx context.Context, user *model.User) (*model.AuthData, error) {
	user.Name = strings.TrimSpace(user.Name)
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	if err := validate(user); err != nil {
		return nil, err
	}

	// Хэширование пароля пользователя
	passwordHash, err := pass.HashPassword(user.Password)
	if err != nil {
		return nil, err
	}
	user.Password = passwordHash
	user.Balance = s.startingBalance

	var data *model.AuthData

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		user.ID, err = s.userRepo.CreateUser(txCtx, user)
		if err != nil {
			return err
		}

		data, err = s.openSession(txCtx, user.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("registered", zap.Int("user_id", user.ID))
	return data, nil
}

func validate(user *model.User) error {
	if user.Name == "" {
		return fmt.Errorf("%w: name is required", model.ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(user.Email); err != nil {
		return fmt.Errorf("%w: bad email", model.ErrInvalidInput)
	}
	if len(user.Password) < minPasswordLength {
		return fmt.Errorf("%w: password shorter than %d", model.ErrInvalidInput, minPasswordLength)
	}
	return nil
}
