package slots

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"

	"moodcasino/internal/config"
	"moodcasino/internal/model"
	"moodcasino/pkg/sched"
)

type testCfg struct {
	symbols []config.SymbolPayout
}

func (c testCfg) Symbols() []config.SymbolPayout { return c.symbols }
func (c testCfg) SettleDelay() time.Duration     { return time.Second }

// Фейк экономики: фиксированное настроение, запись начислений
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

func TestFindWinRowFirstMatchWins(t *testing.T) {
	cases := []struct {
		name    string
		board   [3][3]string
		wantRow int
		wantSym string
	}{
		{
			name:    "no match",
			board:   [3][3]string{{"a", "b", "c"}, {"a", "a", "b"}, {"c", "b", "a"}},
			wantRow: -1,
		},
		{
			name:    "middle row",
			board:   [3][3]string{{"a", "b", "c"}, {"x", "x", "x"}, {"c", "b", "a"}},
			wantRow: 1,
			wantSym: "x",
		},
		{
			name:    "two rows match, top one pays",
			board:   [3][3]string{{"a", "a", "a"}, {"b", "b", "b"}, {"c", "c", "c"}},
			wantRow: 0,
			wantSym: "a",
		},
	}

	for _, c := range cases {
		row, sym := findWinRow(c.board)
		if row != c.wantRow || sym != c.wantSym {
			t.Errorf("%s: findWinRow = (%d, %q), want (%d, %q)", c.name, row, sym, c.wantRow, c.wantSym)
		}
	}
}

func TestSpinRejectsInvalidBets(t *testing.T) {
	eco := &fakeEconomy{balance: 100, mood: model.MoodNeutral}
	s := NewSlotsService(
		testCfg{symbols: []config.SymbolPayout{{ID: "cherry", Payout: 2}}},
		eco,
		rand.New(rand.NewSource(1)),
		sched.NewManual(),
	)

	if _, err := s.Spin(context.Background(), 0); err == nil {
		t.Error("zero bet accepted")
	}
	if _, err := s.Spin(context.Background(), -5); err == nil {
		t.Error("negative bet accepted")
	}
	if _, err := s.Spin(context.Background(), 200); err == nil {
		t.Error("bet beyond balance accepted")
	}
}

func TestSpinRejectsWhileInProgress(t *testing.T) {
	eco := &fakeEconomy{balance: 1000, mood: model.MoodNeutral}
	s := NewSlotsService(
		testCfg{symbols: []config.SymbolPayout{{ID: "cherry", Payout: 2}}},
		eco,
		rand.New(rand.NewSource(1)),
		sched.NewManual(),
	)

	if _, err := s.Spin(context.Background(), 10); err != nil {
		t.Fatalf("spin: %v", err)
	}
	if _, err := s.Spin(context.Background(), 10); err == nil {
		t.Error("second spin accepted while round in progress")
	}
}

func TestSpinGuaranteedWinSettlement(t *testing.T) {
	// Единственный символ в таблице: любая линия совпадает,
	// платит верхняя
	cfg := testCfg{symbols: []config.SymbolPayout{{ID: "seven", Payout: 10}}}
	eco := &fakeEconomy{balance: 1000, mood: model.MoodNeutral}
	manual := sched.NewManual()
	s := NewSlotsService(cfg, eco, rand.New(rand.NewSource(3)), manual)

	bet := 20.0
	round, err := s.Spin(context.Background(), bet)
	if err != nil {
		t.Fatalf("spin: %v", err)
	}
	if round.Phase != model.RoundInProgress {
		t.Fatalf("phase = %v, want in_progress", round.Phase)
	}
	if round.WinRow != 0 || round.WinSymbol != "seven" {
		t.Fatalf("win = (%d, %q), want top row of sevens", round.WinRow, round.WinSymbol)
	}
	if eco.balance != 980 {
		t.Fatalf("balance after debit = %v, want 980", eco.balance)
	}

	if !manual.RunNext() {
		t.Fatal("no settlement scheduled")
	}

	done := s.Round()
	if done.Phase != model.RoundResolved {
		t.Fatalf("phase = %v, want resolved", done.Phase)
	}

	// Множитель настроения входит в базу начисления,
	// а экономика добавляет его еще раз сверху
	mult := model.MoodNeutral.Multiplier()
	wantBase := bet * 10 * mult
	if len(eco.credits) != 1 || eco.credits[0] != wantBase {
		t.Errorf("credited base = %v, want %v", eco.credits, wantBase)
	}
	if done.TotalPayout != wantBase*mult {
		t.Errorf("total payout = %v, want %v", done.TotalPayout, wantBase*mult)
	}
	if done.NetWin != done.TotalPayout-bet {
		t.Errorf("net win = %v, want %v", done.NetWin, done.TotalPayout-bet)
	}
}

func TestSpinOutcomeInvariants(t *testing.T) {
	cfg := testCfg{symbols: []config.SymbolPayout{
		{ID: "cherry", Payout: 2},
		{ID: "lemon", Payout: 3},
	}}
	eco := &fakeEconomy{balance: 100000, mood: model.MoodChill}
	manual := sched.NewManual()
	s := NewSlotsService(cfg, eco, rand.New(rand.NewSource(9)), manual)

	for i := 0; i < 50; i++ {
		creditsBefore := len(eco.credits)

		round, err := s.Spin(context.Background(), 10)
		if err != nil {
			t.Fatalf("spin %d: %v", i, err)
		}
		if !manual.RunNext() {
			t.Fatalf("spin %d: no settlement scheduled", i)
		}

		done := s.Round()
		if done.Phase != model.RoundResolved {
			t.Fatalf("spin %d: phase = %v, want resolved", i, done.Phase)
		}

		if round.WinRow < 0 {
			if len(eco.credits) != creditsBefore {
				t.Errorf("spin %d: losing round credited a payout", i)
			}
			if done.NetWin != -10 {
				t.Errorf("spin %d: losing net win = %v, want -10", i, done.NetWin)
			}
			continue
		}

		if len(eco.credits) != creditsBefore+1 {
			t.Errorf("spin %d: winning round did not credit exactly once", i)
		}
	}
}
