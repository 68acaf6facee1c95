package auth

import (
	"context"
	"errors"

	"lucky_casino/internal/model"
	"lucky_casino/pkg/token"
)

// Refresh новый access токен по session_id и refresh токену
func (s *serv) Refresh(ctx context.Context, data *model.AuthData) (string, error) {
	session, err := s.authRepo.GetSession(ctx, data.SessionID)
	if err != nil {
		if errors.Is(err, model.ErrSessionNotFound) {
			return "", model.ErrInvalidToken
		}
		return "", err
	}

	if s.now().After(session.ExpiresAt) {
		return "", model.ErrInvalidToken
	}

	// Верификация переданного refresh токена с хэшем из хранилища
	if !token.VerifyRefreshToken(data.RefreshToken, session.RefreshToken) {
		return "", model.ErrInvalidToken
	}

	// Деактивированный игрок не получает новых токенов
	user, err := s.userRepo.GetUserByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return "", model.ErrInvalidToken
		}
		return "", err
	}
	if !user.IsActive {
		return "", model.ErrInvalidToken
	}

	return token.GenerateAccessToken(
		user.ID,
		s.jwtConfig.AccessTokenSecretKey(),
		s.jwtConfig.AccessTokenDuration())
}

// Logout удаляет сессию. Повторный выход не ошибка
func (s *serv) Logout(ctx context.Context, sessionID string) error {
	return s.authRepo.DeleteSession(ctx, sessionID)
}
