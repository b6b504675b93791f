package wheel

type SpinRequest struct {
	Bet float64 `json:"bet"` // Размер ставки
}

type RoundResponse struct {
	Phase         string  `json:"phase"`
	Bet           float64 `json:"bet"`
	AddedRotation float64 `json:"added_rotation"` // Градусы этого спина
	TotalRotation float64 `json:"total_rotation"` // Накопленный поворот
	SegmentIndex  int     `json:"segment_index"`  // Выигрышный сегмент (0-7)
	Multiplier    float64 `json:"multiplier"`     // Множитель сегмента

	TotalPayout float64 `json:"total_payout"`
	NetWin      float64 `json:"net_win"`
	Balance     float64 `json:"balance"`
}
