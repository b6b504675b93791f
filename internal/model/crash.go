package model

import "time"

// CrashRound Раунд краш-игры.
// Порог краша скрыт внутри сервиса и в модель не попадает
type CrashRound struct {
	Phase     RoundPhase
	Bet       float64
	StartedAt time.Time

	Multiplier float64 // Текущий (или финальный) множитель
	CashedOut  bool    // Игрок успел забрать
	Crashed    bool    // Множитель дошел до порога

	BasePayout  float64
	TotalPayout float64
	NetWin      float64
}
