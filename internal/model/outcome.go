package model

import "time"

const (
	GameDogHouse = "doghouse"
	GameClassic  = "slots"
)

// Outcome запись для внешнего приложения: {game, bet, win, balance}
type Outcome struct {
	ID       string    `json:"id"`
	UserID   int       `json:"user_id"`
	Game     string    `json:"game"`
	Bet      int       `json:"bet"`
	Win      int       `json:"win"`
	Balance  int       `json:"balance"`
	PlayedAt time.Time `json:"played_at"`
}
