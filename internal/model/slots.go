package model

import "time"

// SlotsRound Раунд слотов 3x3
type SlotsRound struct {
	Phase     RoundPhase
	Bet       float64
	StartedAt time.Time

	Board     [3][3]string // Символы (ID)
	WinRow    int          // Индекс выигрышной линии (0-2), -1 если нет
	WinSymbol string       // Символ выигрышной линии

	BasePayout  float64 // База, переданная в экономику
	TotalPayout float64 // Итог с учетом настроения
	NetWin      float64 // Итог минус ставка
}
