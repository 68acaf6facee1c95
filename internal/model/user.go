package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID            int
	Name          string
	Email         string
	Password      string
	Balance       int
	GamesPlayed   int
	TotalWinnings int
	RegisteredAt  time.Time
	IsActive      bool
}

type UserClaims struct {
	jwt.RegisteredClaims
}

// Player строка рейтинга игроков
type Player struct {
	ID            int
	Name          string
	GamesPlayed   int
	TotalWinnings int
}
