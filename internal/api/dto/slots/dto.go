package slots

type SpinRequest struct {
	Bet float64 `json:"bet"` // Размер ставки (положительное число)
}

type RoundResponse struct {
	Phase     string       `json:"phase"`      // idle / in_progress / resolved
	Bet       float64      `json:"bet"`        // Ставка раунда
	Board     [3][3]string `json:"board"`      // Символы (ID)
	WinRow    int          `json:"win_row"`    // Выигрышная линия, -1 если нет
	WinSymbol string       `json:"win_symbol"` // Символ выигрышной линии

	TotalPayout float64 `json:"total_payout"` // Итоговая выплата
	NetWin      float64 `json:"net_win"`      // Выплата минус ставка
	Balance     float64 `json:"balance"`      // Баланс на момент ответа
}
