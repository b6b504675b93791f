package repository

import "context"

// Ключи состояния экономики в хранилище
const (
	KeyBalance        = "balance"
	KeyCurrentMood    = "currentMood"
	KeySessionWins    = "sessionWins"
	KeyLastDailyBonus = "lastDailyBonusDate"
	// KeyFirstLaunch Отдельный одноразовый флаг первого запуска.
	// Не участвует в обычной загрузке состояния экономики
	KeyFirstLaunch = "firstLaunchDone"
)

// StateRepository Абстрактный key-value порт хранения состояния.
// Отсутствие ключа не является ошибкой: found == false
type StateRepository interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key string, value string) error
}
