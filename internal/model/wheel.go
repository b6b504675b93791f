package model

import "time"

// WheelRound Раунд колеса фортуны
type WheelRound struct {
	Phase     RoundPhase
	Bet       float64
	StartedAt time.Time

	AddedRotation float64 // Градусы, добавленные этим спином
	TotalRotation float64 // Накопленный абсолютный поворот колеса
	SegmentIndex  int     // Выигрышный сегмент (0-7)
	Multiplier    float64 // Множитель сегмента

	BasePayout  float64
	TotalPayout float64
	NetWin      float64
}
