package classic

type SpinRequest struct {
	Bet int `json:"bet"`
}

type SpinResponse struct {
	Symbols []string `json:"symbols"`
	Win     int      `json:"win"`
	Triple  bool     `json:"triple"`
	Pair    bool     `json:"pair"`
	Bet     int      `json:"bet"`
	Balance int      `json:"balance"`
}
