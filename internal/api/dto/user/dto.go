package user

import "time"

type ProfileResponse struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Balance       int       `json:"balance"`
	GamesPlayed   int       `json:"games_played"`
	TotalWinnings int       `json:"total_winnings"`
	RegisteredAt  time.Time `json:"registered_at"`
}

type DepositRequest struct {
	Amount int `json:"amount"` // Сумма депозита
}

type BalanceResponse struct {
	Balance int `json:"balance"`
}

type PlayerResponse struct {
	Rank          int    `json:"rank"`
	Name          string `json:"name"`
	GamesPlayed   int    `json:"games_played"`
	TotalWinnings int    `json:"total_winnings"`
}

type GameStatsResponse struct {
	Game        string  `json:"game"`
	TotalSpins  int     `json:"total_spins"`
	TotalBet    int     `json:"total_bet"`
	TotalPayout int     `json:"total_payout"`
	CurrentRTP  float64 `json:"current_rtp"`
	WindowRTP   float64 `json:"window_rtp"`
	WindowSize  int     `json:"window_size"`
}
