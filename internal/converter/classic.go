package converter

import (
	dto "lucky_casino/internal/api/dto/classic"
	"lucky_casino/internal/model"
)

func ToClassicSpin(userID int, req dto.SpinRequest) model.ClassicSpin {
	return model.ClassicSpin{
		UserID: userID,
		Bet:    req.Bet,
	}
}

func ToClassicSpinResponse(res model.ClassicSpinResult) dto.SpinResponse {
	return dto.SpinResponse{
		Symbols: res.Symbols,
		Win:     res.Win,
		Triple:  res.Triple,
		Pair:    res.Pair,
		Bet:     res.Bet,
		Balance: res.Balance,
	}
}
