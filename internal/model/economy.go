package model

import "time"

// EconomySnapshot Копия состояния экономики для чтения (API, игровые движки)
type EconomySnapshot struct {
	Balance        float64
	CurrentMood    Mood
	EffectiveMood  Mood
	BoostUntil     *time.Time
	SessionWins    int
	LastDailyBonus *time.Time
}

// BoostActive Активен ли сейчас буст настроения
func (s EconomySnapshot) BoostActive(now time.Time) bool {
	return s.BoostUntil != nil && now.Before(*s.BoostUntil)
}
