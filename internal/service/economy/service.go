package economy

import (
	"context"
	"sync"
	"time"

	"moodcasino/internal/config"
	"moodcasino/internal/model"
	"moodcasino/internal/repository"
	"moodcasino/internal/service"
	"moodcasino/internal/service/mood"
	"moodcasino/pkg/clock"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

// Сервис экономики. Все мутации баланса, настроения и счетчиков
// проходят только через него и сериализуются одним мьютексом
type serv struct {
	mtx sync.Mutex

	cfg       config.EconomyConfig
	repo      repository.StateRepository
	txManager trm.Manager // nil при in-memory хранилище
	selector  *mood.Selector
	clk       clock.Clock

	balance        float64
	currentMood    model.Mood
	boostUntil     *time.Time
	sessionWins    int
	lastDailyBonus *time.Time
}

// NewEconomyService Создать сервис экономики.
// До вызова Load состояние пустое
func NewEconomyService(
	cfg config.EconomyConfig,
	repo repository.StateRepository,
	txManager trm.Manager,
	selector *mood.Selector,
	clk clock.Clock,
) service.EconomyService {
	return &serv{
		cfg:         cfg,
		repo:        repo,
		txManager:   txManager,
		selector:    selector,
		clk:         clk,
		currentMood: model.MoodNeutral,
	}
}

// Snapshot Копия текущего состояния для чтения
func (s *serv) Snapshot() model.EconomySnapshot {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return model.EconomySnapshot{
		Balance:        s.balance,
		CurrentMood:    s.currentMood,
		EffectiveMood:  s.effectiveMood(),
		BoostUntil:     s.boostUntil,
		SessionWins:    s.sessionWins,
		LastDailyBonus: s.lastDailyBonus,
	}
}

// EffectiveMood Настроение, применяемое при расчетах:
// hot пока буст не истек, иначе сессионное
func (s *serv) EffectiveMood() model.Mood {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.effectiveMood()
}

// Вызывается под мьютексом
func (s *serv) effectiveMood() model.Mood {
	if s.boostUntil != nil && s.clk.Now().Before(*s.boostUntil) {
		return model.MoodHot
	}
	return s.currentMood
}

// withTx Оборачивает сохранение в транзакцию, когда менеджер есть.
// In-memory режим пишет напрямую
func (s *serv) withTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.txManager == nil {
		return fn(ctx)
	}
	return s.txManager.Do(ctx, fn)
}
