package hand

import (
	"context"
	"errors"
	"log"
	"sort"
	"time"

	"moodcasino/internal/model"
)

// Deal Раздает пять независимых цифр 1-9 и классифицирует руку
func (s *serv) Deal(ctx context.Context, bet float64) (*model.HandRound, error) {
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

	var digits [5]int
	for i := range digits {
		digits[i] = 1 + s.rng.Intn(9)
	}

	rank := Classify(digits)

	s.round = model.HandRound{
		Phase:      model.RoundInProgress,
		Bet:        bet,
		StartedAt:  time.Now(),
		Digits:     digits,
		Rank:       rank,
		Multiplier: s.cfg.Payouts()[string(rank)],
	}

	s.scheduler.AfterFunc(s.cfg.SettleDelay(), s.settle)

	round := s.round
	return &round, nil
}

// Classify Определяет ранг руки по профилю частот значений
// (по убыванию), стрит проверяется только после фулл-хауса:
// частотные комбинации всегда старше стрита
func Classify(digits [5]int) model.HandRank {
	freq := make(map[int]int)
	for _, d := range digits {
		freq[d]++
	}

	counts := make([]int, 0, len(freq))
	for _, c := range freq {
		counts = append(counts, c)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(counts)))

	switch {
	case counts[0] == 5:
		return model.HandFiveOfAKind
	case counts[0] == 4:
		return model.HandFourOfAKind
	case counts[0] == 3 && counts[1] == 2:
		return model.HandFullHouse
	}

	if isStraight(freq) {
		return model.HandStraight
	}

	switch {
	case counts[0] == 3:
		return model.HandThreeOfAKind
	case counts[0] == 2 && counts[1] == 2:
		return model.HandTwoPair
	case counts[0] == 2:
		return model.HandOnePair
	default:
		return model.HandHighCard
	}
}

// isStraight Пять различных значений подряд: max - min == 4
func isStraight(freq map[int]int) bool {
	if len(freq) != 5 {
		return false
	}
	min, max := 10, 0
	for d := range freq {
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return max-min == 4
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
		log.Printf("hand: failed to credit payout: %v", err)
	}

	s.round.BasePayout = base
	s.round.TotalPayout = base * mult
	s.round.NetWin = s.round.TotalPayout - s.round.Bet
	s.round.Phase = model.RoundResolved
}
