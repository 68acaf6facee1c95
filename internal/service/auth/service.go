package auth

import (
	"context"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"lucky_casino/internal/config"
	"lucky_casino/internal/model"
	"lucky_casino/internal/repository"
	"lucky_casino/internal/service"
	"lucky_casino/pkg/token"
)

type serv struct {
	txManager       trm.Manager
	userRepo        repository.UserRepository
	authRepo        repository.AuthRepository
	jwtConfig       config.JWTConfig
	startingBalance int
	log             *zap.Logger
	now             func() time.Time
}

func NewAuthService(
	txManager trm.Manager,
	userRepo repository.UserRepository,
	authRepo repository.AuthRepository,
	jwtConfig config.JWTConfig,
	startingBalance int,
	log *zap.Logger,
) service.AuthService {
	return &serv{
		txManager:       txManager,
		userRepo:        userRepo,
		authRepo:        authRepo,
		jwtConfig:       jwtConfig,
		startingBalance: startingBalance,
		log:             log.Named("auth"),
		now:             time.Now,
	}
}

// openSession создаёт сессию и пару токенов для пользователя
func (s *serv) openSession(ctx context.Context, userID int) (*model.AuthData, error) {
	refreshToken, err := token.GenerateRefreshToken()
	if err != nil {
		return nil, err
	}

	sessionID := uuid.NewString()
	err = s.authRepo.CreateSession(ctx, &model.Session{
		ID:           sessionID,
		UserID:       userID,
		RefreshToken: token.HashRefreshToken(refreshToken),
		ExpiresAt:    s.now().Add(s.jwtConfig.RefreshTokenDuration()),
	})
	if err != nil {
		return nil, err
	}

	accessToken, err := token.GenerateAccessToken(
		userID,
		s.jwtConfig.AccessTokenSecretKey(),
		s.jwtConfig.AccessTokenDuration())
	if err != nil {
		return nil, err
	}

	return &model.AuthData{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		SessionID:    sessionID,
	}, nil
}
