package economy

type StateResponse struct {
	Balance        float64 `json:"balance"`                    // Текущий баланс
	CurrentMood    string  `json:"current_mood"`               // Сессионное настроение
	EffectiveMood  string  `json:"effective_mood"`             // Применяемое настроение (с учетом буста)
	MoodMultiplier float64 `json:"mood_multiplier"`            // Множитель применяемого настроения
	BoostActive    bool    `json:"boost_active"`               // Активен ли буст
	BoostUntil     *int64  `json:"boost_until,omitempty"`      // Unix-секунды окончания буста
	SessionWins    int     `json:"session_wins"`               // Побед за сессию
	LastDailyBonus *int64  `json:"last_daily_bonus,omitempty"` // Unix-секунды последнего бонуса
}

type DailyBonusResponse struct {
	Granted bool    `json:"granted"` // Выдан ли бонус этим вызовом
	Balance float64 `json:"balance"` // Баланс после
}

type BoostRequest struct {
	Seconds int `json:"seconds"` // Длительность буста в секундах
}

type RerollResponse struct {
	Mood       string  `json:"mood"`       // Новое сессионное настроение
	Multiplier float64 `json:"multiplier"` // Его множитель
}
