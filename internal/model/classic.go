package model

type ClassicSpin struct {
	UserID int
	Bet    int
}

type ClassicSpinResult struct {
	Symbols []string
	Win     int
	Triple  bool
	Pair    bool
	Bet     int
	Balance int
}
