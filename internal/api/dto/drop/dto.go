package drop

type DropRequest struct {
	Bet float64 `json:"bet"` // Размер ставки
}

type RoundResponse struct {
	Phase       string  `json:"phase"`
	Bet         float64 `json:"bet"`
	Path        []int   `json:"path"`         // Колонка после каждого шага
	FinalColumn int     `json:"final_column"` // Колонка после последнего шага
	SlotIndex   int     `json:"slot_index"`   // Лунка (0-7)
	Multiplier  float64 `json:"multiplier"`   // Множитель лунки

	TotalPayout float64 `json:"total_payout"`
	NetWin      float64 `json:"net_win"`
	Balance     float64 `json:"balance"`
}
