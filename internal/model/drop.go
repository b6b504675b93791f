package model

import "time"

// DropRound Раунд сброса шарика
type DropRound struct {
	Phase     RoundPhase
	Bet       float64
	StartedAt time.Time

	Path        []int   // Колонка шарика после каждого шага
	FinalColumn int     // Колонка после последнего шага (0-8)
	SlotIndex   int     // Лунка после кламинга (0-7)
	Multiplier  float64 // Множитель лунки

	BasePayout  float64
	TotalPayout float64
	NetWin      float64
}
