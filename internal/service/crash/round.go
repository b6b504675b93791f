package crash

import (
	"context"
	"errors"
	"log"
	"time"

	"moodcasino/internal/model"
)

// Start Запускает раунд: списывает ставку, тянет скрытый порог
// краша и стартует тики. Множитель начинается с 1.0 и растет с
// ускорением: каждый тик прибавляет 0.01 + multiplier*0.01
func (s *serv) Start(ctx context.Context, bet float64) (*model.CrashRound, error) {
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

	s.threshold = s.cfg.ThresholdMin() + s.rng.Float64()*(s.cfg.ThresholdMax()-s.cfg.ThresholdMin())
	s.round = model.CrashRound{
		Phase:      model.RoundInProgress,
		Bet:        bet,
		StartedAt:  time.Now(),
		Multiplier: 1.0,
	}

	s.tick = s.scheduler.AfterFunc(s.cfg.TickInterval(), s.onTick)

	round := s.round
	return &round, nil
}

// onTick Один шаг множителя. Крашится, как только множитель
// дошел до порога. Тики останавливаются сразу на любом из
// терминальных переходов
func (s *serv) onTick() {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.round.Phase != model.RoundInProgress {
		return
	}

	s.round.Multiplier += 0.01 + s.round.Multiplier*0.01

	if s.round.Multiplier >= s.threshold {
		// Краш: ставка сгорает, начисления нет
		s.tick = nil
		s.round.Crashed = true
		s.round.TotalPayout = 0
		s.round.NetWin = -s.round.Bet
		s.round.Phase = model.RoundResolved
		return
	}

	s.tick = s.scheduler.AfterFunc(s.cfg.TickInterval(), s.onTick)
}

// CashOut Забрать выигрыш по текущему множителю.
// Возможен только пока раунд идет и краш не случился
func (s *serv) CashOut(ctx context.Context) (*model.CrashRound, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.round.Phase != model.RoundInProgress {
		return nil, errors.New("no active round")
	}

	if s.tick != nil {
		s.tick.Stop()
		s.tick = nil
	}

	mult := s.economy.EffectiveMood().Multiplier()
	base := s.round.Bet * s.round.Multiplier
	if err := s.economy.Credit(ctx, base); err != nil {
		log.Printf("crash: failed to credit payout: %v", err)
	}

	s.round.CashedOut = true
	s.round.BasePayout = base
	s.round.TotalPayout = base * mult
	s.round.NetWin = s.round.TotalPayout - s.round.Bet
	s.round.Phase = model.RoundResolved

	round := s.round
	return &round, nil
}

// Stop Обрывает раунд без расчета (уход с экрана посреди полета).
// Тики отменяются, ставка остается списанной, событие проигрыша
// не фиксируется
func (s *serv) Stop() {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.round.Phase != model.RoundInProgress {
		return
	}

	if s.tick != nil {
		s.tick.Stop()
		s.tick = nil
	}

	s.round = model.CrashRound{Phase: model.RoundIdle}
}
