package drop

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"time"

	"moodcasino/internal/model"
)

// Drop Сбрасывает шарик из центральной колонки: фиксированное
// число дискретных шагов, на каждом колонка сдвигается на
// -1/0/+1 с равной вероятностью и клампится к краям поля
func (s *serv) Drop(ctx context.Context, bet float64) (*model.DropRound, error) {
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

	steps := s.cfg.Steps()
	slots := s.cfg.Slots()

	path, col := walkColumns(s.rng, s.cfg.Columns(), steps)
	slotIdx := slotIndexFor(col, len(slots))

	s.round = model.DropRound{
		Phase:       model.RoundInProgress,
		Bet:         bet,
		StartedAt:   time.Now(),
		Path:        path,
		FinalColumn: col,
		SlotIndex:   slotIdx,
		Multiplier:  slots[slotIdx].Multiplier,
	}

	delay := time.Duration(steps) * s.cfg.StepDelay()
	s.scheduler.AfterFunc(delay, s.settle)

	round := s.round
	return &round, nil
}

// walkColumns Случайное блуждание по колонкам от центра.
// Возвращает колонку после каждого шага и финальную колонку
func walkColumns(rng *rand.Rand, cols, steps int) ([]int, int) {
	col := cols / 2
	path := make([]int, 0, steps)
	for i := 0; i < steps; i++ {
		col += rng.Intn(3) - 1
		if col < 0 {
			col = 0
		}
		if col > cols-1 {
			col = cols - 1
		}
		path = append(path, col)
	}
	return path, col
}

// slotIndexFor Поле на одну колонку шире ряда лунок, поэтому
// крайняя правая колонка явно клампится в последнюю лунку
func slotIndexFor(col, slotCount int) int {
	if col > slotCount-1 {
		return slotCount - 1
	}
	return col
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
		log.Printf("drop: failed to credit payout: %v", err)
	}

	s.round.BasePayout = base
	s.round.TotalPayout = base * mult
	s.round.NetWin = s.round.TotalPayout - s.round.Bet
	s.round.Phase = model.RoundResolved
}
