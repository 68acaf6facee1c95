package converter

import (
	dto "lucky_casino/internal/api/dto/doghouse"
	"lucky_casino/internal/model"
)

func ToDogHouseSpin(userID int, req dto.SpinRequest) model.DogHouseSpin {
	return model.DogHouseSpin{
		UserID: userID,
		Bet:    req.Bet,
	}
}

func ToDogHouseSpinResponse(res model.DogHouseSpinResult) dto.SpinResponse {
	return dto.SpinResponse{
		Reels:            res.Reels,
		WinningLines:     toWinningLines(res.WinningLines),
		Win:              res.Win,
		Multiplier:       res.Multiplier,
		ScatterCount:     res.ScatterCount,
		AwardedFreeSpins: res.AwardedFreeSpins,
		FreeSpin:         res.FreeSpin,
		BonusActive:      res.BonusActive,
		FreeSpinsLeft:    res.FreeSpinsLeft,
		Bet:              res.Bet,
		Balance:          res.Balance,
	}
}

func toWinningLines(lines []model.WinningLine) []dto.WinningLine {
	result := make([]dto.WinningLine, len(lines))
	for i, l := range lines {
		result[i] = dto.WinningLine{
			Kind:      l.Kind,
			Symbol:    l.Symbol,
			Count:     l.Count,
			StartReel: l.StartReel,
			Row:       l.Row,
			Payout:    l.Payout,
		}
	}
	return result
}

func ToDogHouseStateResponse(state model.DogHouseState) dto.StateResponse {
	return dto.StateResponse{
		Bet:         state.Session.Bet,
		FreeSpins:   state.Session.FreeSpins,
		Multiplier:  state.Session.EffectiveMultiplier(),
		BonusActive: state.Session.BonusActive,
	}
}
