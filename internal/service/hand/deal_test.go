package hand

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"

	"moodcasino/internal/model"
	"moodcasino/pkg/sched"
)

var testPayouts = map[string]float64{
	"five_of_a_kind":  12.0,
	"four_of_a_kind":  8.0,
	"full_house":      6.0,
	"straight":        4.0,
	"three_of_a_kind": 3.0,
	"two_pair":        2.0,
	"one_pair":        1.0,
	"high_card":       0.2,
}

type testCfg struct{}

func (testCfg) Payouts() map[string]float64 { return testPayouts }
func (testCfg) SettleDelay() time.Duration  { return 600 * time.Millisecond }

type fakeEconomy struct {
	mtx     sync.Mutex
	balance float64
	mood    model.Mood
	credits []float64
}

func (f *fakeEconomy) Load(context.Context) error { return nil }
func (f *fakeEconomy) EffectiveMood() model.Mood  { return f.mood }

func (f *fakeEconomy) Snapshot() model.EconomySnapshot {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	return model.EconomySnapshot{Balance: f.balance, CurrentMood: f.mood, EffectiveMood: f.mood}
}

func (f *fakeEconomy) CanAfford(amount float64) bool {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	return f.balance >= amount
}

func (f *fakeEconomy) Debit(_ context.Context, amount float64) error {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	f.balance -= amount
	return nil
}

func (f *fakeEconomy) Credit(_ context.Context, base float64) error {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	f.balance += base + base*(f.mood.Multiplier()-1)
	f.credits = append(f.credits, base)
	return nil
}

func (f *fakeEconomy) GrantDailyBonus(context.Context) (bool, error)          { return false, nil }
func (f *fakeEconomy) ActivateMoodBoost(context.Context, time.Duration) error { return nil }
func (f *fakeEconomy) RerollMood(context.Context) (model.Mood, error)         { return f.mood, nil }

func TestClassify(t *testing.T) {
	cases := []struct {
		digits [5]int
		want   model.HandRank
	}{
		{[5]int{3, 3, 3, 3, 3}, model.HandFiveOfAKind},
		{[5]int{7, 7, 7, 7, 2}, model.HandFourOfAKind},
		{[5]int{1, 2, 2, 1, 1}, model.HandFullHouse},
		{[5]int{1, 2, 3, 4, 5}, model.HandStraight},
		{[5]int{5, 9, 6, 8, 7}, model.HandStraight},
		{[5]int{4, 4, 4, 1, 9}, model.HandThreeOfAKind},
		{[5]int{2, 2, 5, 5, 9}, model.HandTwoPair},
		{[5]int{8, 8, 1, 3, 6}, model.HandOnePair},
		{[5]int{1, 3, 5, 7, 9}, model.HandHighCard},
		// Не подряд, но без повторов - это просто старшая карта
		{[5]int{1, 2, 3, 4, 9}, model.HandHighCard},
	}

	for _, c := range cases {
		if got := Classify(c.digits); got != c.want {
			t.Errorf("Classify(%v) = %v, want %v", c.digits, got, c.want)
		}
	}
}

func TestDealSettlement(t *testing.T) {
	eco := &fakeEconomy{balance: 1000, mood: model.MoodNeutral}
	manual := sched.NewManual()
	s := NewHandService(testCfg{}, eco, rand.New(rand.NewSource(17)), manual)

	bet := 10.0
	round, err := s.Deal(context.Background(), bet)
	if err != nil {
		t.Fatalf("deal: %v", err)
	}
	if eco.balance != 990 {
		t.Fatalf("balance after debit = %v, want 990", eco.balance)
	}
	for i, d := range round.Digits {
		if d < 1 || d > 9 {
			t.Fatalf("digit %d = %d, want in [1, 9]", i, d)
		}
	}
	if round.Rank != Classify(round.Digits) {
		t.Fatalf("rank = %v, Classify says %v", round.Rank, Classify(round.Digits))
	}
	if round.Multiplier != testPayouts[string(round.Rank)] {
		t.Fatalf("multiplier = %v, payout table says %v", round.Multiplier, testPayouts[string(round.Rank)])
	}

	if !manual.RunNext() {
		t.Fatal("no settlement scheduled")
	}

	done := s.Round()
	if done.Phase != model.RoundResolved {
		t.Fatalf("phase = %v, want resolved", done.Phase)
	}

	wantBase := bet * round.Multiplier
	if len(eco.credits) != 1 || eco.credits[0] != wantBase {
		t.Errorf("credited base = %v, want %v", eco.credits, wantBase)
	}
	if done.NetWin != done.TotalPayout-bet {
		t.Errorf("net win = %v, want %v", done.NetWin, done.TotalPayout-bet)
	}
}

func TestDealRejectsWhileInProgress(t *testing.T) {
	eco := &fakeEconomy{balance: 1000, mood: model.MoodNeutral}
	s := NewHandService(testCfg{}, eco, rand.New(rand.NewSource(2)), sched.NewManual())

	if _, err := s.Deal(context.Background(), 10); err != nil {
		t.Fatalf("deal: %v", err)
	}
	if _, err := s.Deal(context.Background(), 10); err == nil {
		t.Error("second deal accepted while round in progress")
	}
}
