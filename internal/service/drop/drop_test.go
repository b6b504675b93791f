package drop

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

var testSlots = []config.DropSlot{
	{Multiplier: 8}, {Multiplier: 3}, {Multiplier: 1.2}, {Multiplier: 0.6},
	{Multiplier: 0.4}, {Multiplier: 0.6}, {Multiplier: 1.2}, {Multiplier: 3},
}

type testCfg struct{}

func (testCfg) Steps() int               { return 6 }
func (testCfg) Columns() int             { return 9 }
func (testCfg) Slots() []config.DropSlot { return testSlots }
func (testCfg) StepDelay() time.Duration { return 100 * time.Millisecond }

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

func TestWalkColumnsStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(13))

	for i := 0; i < 1000; i++ {
		path, final := walkColumns(rng, 9, 6)
		if len(path) != 6 {
			t.Fatalf("path length = %d, want 6", len(path))
		}
		prev := 4 // старт из центральной колонки
		for step, col := range path {
			if col < 0 || col > 8 {
				t.Fatalf("walk %d step %d: column %d out of [0, 8]", i, step, col)
			}
			diff := col - prev
			if diff < -1 || diff > 1 {
				t.Fatalf("walk %d step %d: jumped from %d to %d", i, step, prev, col)
			}
			prev = col
		}
		if final != path[len(path)-1] {
			t.Fatalf("walk %d: final column %d != last path entry %d", i, final, path[len(path)-1])
		}
	}
}

func TestSlotIndexClampsRightEdge(t *testing.T) {
	cases := []struct {
		col  int
		want int
	}{
		{0, 0},
		{4, 4},
		{7, 7},
		{8, 7}, // поле на колонку шире ряда лунок
	}

	for _, c := range cases {
		if got := slotIndexFor(c.col, 8); got != c.want {
			t.Errorf("slotIndexFor(%d, 8) = %d, want %d", c.col, got, c.want)
		}
	}
}

func TestDropSettlement(t *testing.T) {
	eco := &fakeEconomy{balance: 1000, mood: model.MoodChill}
	manual := sched.NewManual()
	s := NewDropService(testCfg{}, eco, rand.New(rand.NewSource(21)), manual)

	bet := 25.0
	round, err := s.Drop(context.Background(), bet)
	if err != nil {
		t.Fatalf("drop: %v", err)
	}
	if eco.balance != 975 {
		t.Fatalf("balance after debit = %v, want 975", eco.balance)
	}
	if round.SlotIndex != slotIndexFor(round.FinalColumn, len(testSlots)) {
		t.Fatalf("slot index %d does not match final column %d", round.SlotIndex, round.FinalColumn)
	}
	if round.Multiplier != testSlots[round.SlotIndex].Multiplier {
		t.Fatalf("round multiplier = %v, slot says %v", round.Multiplier, testSlots[round.SlotIndex].Multiplier)
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

func TestDropRejectsWhileInProgress(t *testing.T) {
	eco := &fakeEconomy{balance: 1000, mood: model.MoodNeutral}
	s := NewDropService(testCfg{}, eco, rand.New(rand.NewSource(2)), sched.NewManual())

	if _, err := s.Drop(context.Background(), 10); err != nil {
		t.Fatalf("drop: %v", err)
	}
	if _, err := s.Drop(context.Background(), 10); err == nil {
		t.Error("second drop accepted while round in progress")
	}
}
