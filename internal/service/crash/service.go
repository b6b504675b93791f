package crash

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

	cfg       config.CrashConfig
	economy   service.EconomyService
	rng       *rand.Rand
	scheduler sched.Scheduler

	round     model.CrashRound
	threshold float64    // Скрытый порог краша текущего раунда
	tick      sched.Cancel
}

// NewCrashService Создать движок краш-игры
func NewCrashService(
	cfg config.CrashConfig,
	economy service.EconomyService,
	rng *rand.Rand,
	scheduler sched.Scheduler,
) service.CrashService {
	return &serv{
		cfg:       cfg,
		economy:   economy,
		rng:       rng,
		scheduler: scheduler,
		round:     model.CrashRound{Phase: model.RoundIdle},
	}
}

func (s *serv) CanPlay(bet float64) bool {
	s.mtx.Lock()
	inProgress := s.round.Phase == model.RoundInProgress
	s.mtx.Unlock()
	return !inProgress && bet > 0 && s.economy.CanAfford(bet)
}

func (s *serv) Round() model.CrashRound {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.round
}
