package hand

type DealRequest struct {
	Bet float64 `json:"bet"` // Размер ставки
}

type RoundResponse struct {
	Phase      string  `json:"phase"`
	Bet        float64 `json:"bet"`
	Digits     [5]int  `json:"digits"`     // Пять цифр 1-9
	Rank       string  `json:"rank"`       // Тег ранга комбинации
	Multiplier float64 `json:"multiplier"` // Множитель ранга

	TotalPayout float64 `json:"total_payout"`
	NetWin      float64 `json:"net_win"`
	Balance     float64 `json:"balance"`
}
