package hand

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

	cfg       config.HandConfig
	economy   service.EconomyService
	rng       *rand.Rand
	scheduler sched.Scheduler

	round model.HandRound
}

// NewHandService Создать движок раздачи пяти цифр
func NewHandService(
	cfg config.HandConfig,
	economy service.EconomyService,
	rng *rand.Rand,
	scheduler sched.Scheduler,
) service.HandService {
	return &serv{
		cfg:       cfg,
		economy:   economy,
		rng:       rng,
		scheduler: scheduler,
		round:     model.HandRound{Phase: model.RoundIdle},
	}
}

func (s *serv) CanPlay(bet float64) bool {
	s.mtx.Lock()
	inProgress := s.round.Phase == model.RoundInProgress
	s.mtx.Unlock()
	return !inProgress && bet > 0 && s.economy.CanAfford(bet)
}

func (s *serv) Round() model.HandRound {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.round
}
