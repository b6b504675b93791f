package wheel

import (
	"context"
	"errors"
	"log"
	"math"
	"time"

	"moodcasino/internal/model"
)

const (
	segmentCount = 8
	segmentArc   = 360.0 / segmentCount

	// Случайный поворот за спин: 4-8 полных оборотов
	minSpinDegrees = 1440.0
	maxSpinDegrees = 2880.0
)

// Spin Крутит колесо: добавляет случайный поворот к накопленному
// и планирует расчет через время, пропорциональное повороту
func (s *serv) Spin(ctx context.Context, bet float64) (*model.WheelRound, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if bet <= 0 {
		return nil, errors.New("bet must be positive")
	}
	if s.round.Phase == model.RoundInProgress {
		return nil, errors.New("round already in progress")
	}
	if !s.economy.CanAfford(bet) {
		return nil, errors.New("not enough balance")
	}

	if err := s.economy.Debit(ctx, bet); err != nil {
		return nil, err
	}

	added := minSpinDegrees + s.rng.Float64()*(maxSpinDegrees-minSpinDegrees)
	s.rotation += added

	idx := SegmentIndex(s.rotation)
	segments := s.cfg.Segments()

	s.round = model.WheelRound{
		Phase:         model.RoundInProgress,
		Bet:           bet,
		StartedAt:     time.Now(),
		AddedRotation: added,
		TotalRotation: s.rotation,
		SegmentIndex:  idx,
		Multiplier:    segments[idx%len(segments)].Multiplier,
	}

	// Чем больше выпавший поворот, тем дольше крутится колесо
	delay := time.Duration(added * float64(s.cfg.DegreeDuration()))
	s.scheduler.AfterFunc(delay, s.settle)

	round := s.round
	return &round, nil
}

// SegmentIndex Выигрышный сегмент по абсолютному повороту колеса.
// Стрелка неподвижна, крутится само колесо, поэтому направление
// инвертируется. Количество полных оборотов на результат не влияет
func SegmentIndex(rotation float64) int {
	normalized := math.Mod(rotation, 360)
	pointer := math.Mod(360-normalized, 360)
	return int(pointer/segmentArc) % segmentCount
}

func (s *serv) settle() {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.round.Phase != model.RoundInProgress {
		return
	}

	mult := s.economy.EffectiveMood().Multiplier()
	base := s.round.Bet * s.round.Multiplier
	if err := s.economy.Credit(context.Background(), base); err != nil {
		log.Printf("wheel: failed to credit payout: %v", err)
	}

	s.round.BasePayout = base
	s.round.TotalPayout = base * mult
	s.round.NetWin = s.round.TotalPayout - s.round.Bet
	s.round.Phase = model.RoundResolved
}
