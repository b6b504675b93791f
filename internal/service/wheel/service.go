package wheel

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

	cfg       config.WheelConfig
	economy   service.EconomyService
	rng       *rand.Rand
	scheduler sched.Scheduler

	// Накопленный абсолютный поворот колеса.
	// Каждый спин добавляет к нему новые обороты
	rotation float64

	round model.WheelRound
}

// NewWheelService Создать движок колеса на 8 сегментов
func NewWheelService(
	cfg config.WheelConfig,
	economy service.EconomyService,
	rng *rand.Rand,
	scheduler sched.Scheduler,
) service.WheelService {
	return &serv{
		cfg:       cfg,
		economy:   economy,
		rng:       rng,
		scheduler: scheduler,
		round:     model.WheelRound{Phase: model.RoundIdle},
	}
}

func (s *serv) CanPlay(bet float64) bool {
	s.mtx.Lock()
	inProgress := s.round.Phase == model.RoundInProgress
	s.mtx.Unlock()
	return !inProgress && bet > 0 && s.economy.CanAfford(bet)
}

func (s *serv) Round() model.WheelRound {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.round
}
