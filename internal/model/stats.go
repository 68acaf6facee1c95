package model

// GameStats снимок RTP по игре
type GameStats struct {
	Game        string
	TotalSpins  int
	TotalBet    int
	TotalPayout int
	CurrentRTP  float64
	WindowRTP   float64
	WindowSize  int
}
