package drop

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

	cfg       config.DropConfig
	economy   service.EconomyService
	rng       *rand.Rand
	scheduler sched.Scheduler

	round model.DropRound
}

// NewDropService Создать движок сброса шарика
func NewDropService(
	cfg config.DropConfig,
	economy service.EconomyService,
	rng *rand.Rand,
	scheduler sched.Scheduler,
) service.DropService {
	return &serv{
		cfg:       cfg,
		economy:   economy,
		rng:       rng,
		scheduler: scheduler,
		round:     model.DropRound{Phase: model.RoundIdle},
	}
}

func (s *serv) CanPlay(bet float64) bool {
	s.mtx.Lock()
	inProgress := s.round.Phase == model.RoundInProgress
	s.mtx.Unlock()
	return !inProgress && bet > 0 && s.economy.CanAfford(bet)
}

func (s *serv) Round() model.DropRound {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.round
}
