package model

import "lucky_casino/internal/game/doghouse"

type DogHouseSpin struct {
	UserID int
	Bet    int
}

// DogHouseState сохранённая сессия игрока
type DogHouseState struct {
	UserID  int
	Session doghouse.Session
}

type DogHouseSpinResult struct {
	Reels            [][]string
	WinningLines     []WinningLine
	Win              int
	Multiplier       int
	ScatterCount     int
	AwardedFreeSpins int
	FreeSpin         bool // спин был бесплатным
	BonusActive      bool
	FreeSpinsLeft    int
	Bet              int
	Balance          int
}

type WinningLine struct {
	Kind      string
	Symbol    string
	Count     int
	StartReel int
	Row       int
	Payout    int
}
