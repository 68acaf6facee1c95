package doghouse

type SpinRequest struct {
	Bet int `json:"bet"` // 1..1000
}

type BetRequest struct {
	Bet int `json:"bet"`
}

type SpinResponse struct {
	Reels            [][]string    `json:"reels"`              // барабаны слева направо, сверху вниз
	WinningLines     []WinningLine `json:"winning_lines"`      // выигрышные серии
	Win              int           `json:"win"`                // выплата за спин
	Multiplier       int           `json:"multiplier"`         // множитель, применённый к спину
	ScatterCount     int           `json:"scatter_count"`      // 🏠 на поле
	AwardedFreeSpins int           `json:"awarded_free_spins"` // начислено в этом спине
	FreeSpin         bool          `json:"free_spin"`          // спин был бесплатным
	BonusActive      bool          `json:"bonus_active"`
	FreeSpinsLeft    int           `json:"free_spins_left"`
	Bet              int           `json:"bet"`
	Balance          int           `json:"balance"` // баланс после спина
}

type WinningLine struct {
	Kind      string `json:"kind"`
	Symbol    string `json:"symbol"`
	Count     int    `json:"count"`
	StartReel int    `json:"start_reel"`
	Row       int    `json:"row"`
	Payout    int    `json:"payout"`
}

type StateResponse struct {
	Bet         int  `json:"bet"`
	FreeSpins   int  `json:"free_spins"`
	Multiplier  int  `json:"multiplier"`
	BonusActive bool `json:"bonus_active"`
}
