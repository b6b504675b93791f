package model

// RoundPhase Фаза раунда игрового движка.
// Один движок держит не более одного раунда одновременно
type RoundPhase string

const (
	// RoundIdle Раунда нет, можно начинать новый
	RoundIdle RoundPhase = "idle"
	// RoundInProgress Раунд идет, новые запросы отклоняются
	RoundInProgress RoundPhase = "in_progress"
	// RoundResolved Раунд завершен, результат доступен до следующего запуска
	RoundResolved RoundPhase = "resolved"
)
