package crash

type StartRequest struct {
	Bet float64 `json:"bet"` // Размер ставки
}

type RoundResponse struct {
	Phase      string  `json:"phase"`
	Bet        float64 `json:"bet"`
	Multiplier float64 `json:"multiplier"` // Текущий или финальный множитель
	CashedOut  bool    `json:"cashed_out"`
	Crashed    bool    `json:"crashed"`

	TotalPayout float64 `json:"total_payout"`
	NetWin      float64 `json:"net_win"`
	Balance     float64 `json:"balance"`
}
