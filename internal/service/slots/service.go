package slots

import (
	"math/rand"
	"sync"

	"moodcasino/internal/config"
	"moodcasino/internal/model"
	"moodcasino/internal/service"
	"moodcasino/pkg/sched"
)

type serv struct {
	mtx sync.Mutex

	cfg       config.SlotsConfig
	economy   service.EconomyService
	rng       *rand.Rand
	scheduler sched.Scheduler

	round model.SlotsRound
}

// NewSlotsService Создать движок слотов 3x3
func NewSlotsService(
	cfg config.SlotsConfig,
	economy service.EconomyService,
	rng *rand.Rand,
	scheduler sched.Scheduler,
) service.SlotsService {
	return &serv{
		cfg:       cfg,
		economy:   economy,
		rng:       rng,
		scheduler: scheduler,
		round:     model.SlotsRound{Phase: model.RoundIdle, WinRow: -1},
	}
}

// CanPlay Нет ли активного раунда и хватает ли баланса
func (s *serv) CanPlay(bet float64) bool {
	s.mtx.Lock()
	inProgress := s.round.Phase == model.RoundInProgress
	s.mtx.Unlock()
	return !inProgress && bet > 0 && s.economy.CanAfford(bet)
}

// Round Текущий раунд (копия)
func (s *serv) Round() model.SlotsRound {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.round
}
