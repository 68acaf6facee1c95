package converter

import (
	dto "lucky_casino/internal/api/dto/user"
	"lucky_casino/internal/model"
)

func ToProfileResponse(u model.User) dto.ProfileResponse {
	return dto.ProfileResponse{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Balance:       u.Balance,
		GamesPlayed:   u.GamesPlayed,
		TotalWinnings: u.TotalWinnings,
		RegisteredAt:  u.RegisteredAt,
	}
}

// ToLeaderboard места начинаются с 1
func ToLeaderboard(players []model.Player) []dto.PlayerResponse {
	result := make([]dto.PlayerResponse, len(players))
	for i, p := range players {
		result[i] = dto.PlayerResponse{
			Rank:          i + 1,
			Name:          p.Name,
			GamesPlayed:   p.GamesPlayed,
			TotalWinnings: p.TotalWinnings,
		}
	}
	return result
}

func ToGameStatsResponse(stats []model.GameStats) []dto.GameStatsResponse {
	result := make([]dto.GameStatsResponse, len(stats))
	for i, s := range stats {
		result[i] = dto.GameStatsResponse{
			Game:        s.Game,
			TotalSpins:  s.TotalSpins,
			TotalBet:    s.TotalBet,
			TotalPayout: s.TotalPayout,
			CurrentRTP:  s.CurrentRTP,
			WindowRTP:   s.WindowRTP,
			WindowSize:  s.WindowSize,
		}
	}
	return result
}
