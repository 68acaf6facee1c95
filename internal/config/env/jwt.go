package env

import (
	"fmt"
	"os"
	"time"

	"lucky_casino/internal/config"
)

const (
	accessTokenKeyEnvName       = "ACCESS_TOKEN"
	accessTokenDurationEnvName  = "ACCESS_TOKEN_DURATION"
	refreshTokenDurationEnvName = "REFRESH_TOKEN_DURATION"

	// HS256 ключ короче 32 байт не принимаем
	minSecretLength = 32
)

type jwtConfig struct {
	accessTokenSecretKey string
	accessTokenDuration  time.Duration
	refreshTokenDuration time.Duration
}

func NewJWTConfig() (config.JWTConfig, error) {
	secret := os.Getenv(accessTokenKeyEnvName)
	if len(secret) == 0 {
		return nil, fmt.Errorf("access token secret key not found")
	}
	if len(secret) < minSecretLength {
		return nil, fmt.Errorf("access token secret key must be at least %d bytes", minSecretLength)
	}

	accessTTL, err := requiredDuration(accessTokenDurationEnvName)
	if err != nil {
		return nil, err
	}

	refreshTTL, err := requiredDuration(refreshTokenDurationEnvName)
	if err != nil {
		return nil, err
	}

	return &jwtConfig{
		accessTokenSecretKey: secret,
		accessTokenDuration:  accessTTL,
		refreshTokenDuration: refreshTTL,
	}, nil
}

func (j *jwtConfig) AccessTokenSecretKey() []byte {
	return []byte(j.accessTokenSecretKey)
}

func (j *jwtConfig) AccessTokenDuration() time.Duration {
	return j.accessTokenDuration
}

func (j *jwtConfig) RefreshTokenDuration() time.Duration {
	return j.refreshTokenDuration
}

// requiredDuration читает обязательную переменную вида "15m", "720h"
func requiredDuration(name string) (time.Duration, error) {
	raw := os.Getenv(name)
	if len(raw) == 0 {
		return 0, fmt.Errorf("%s not found", name)
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive", name)
	}
	return d, nil
}
