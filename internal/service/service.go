package service

import (
	"context"
	"time"

	"moodcasino/internal/model"
)

// EconomyService Единственный владелец баланса, настроения и счетчиков.
// Игровые движки держат на него невладеющую ссылку
type EconomyService interface {
	Load(ctx context.Context) error
	Snapshot() model.EconomySnapshot
	EffectiveMood() model.Mood

	// CanAfford + Debit - явный двухшаговый контракт:
	// Debit сам не проверяет достаточность средств
	CanAfford(amount float64) bool
	Debit(ctx context.Context, amount float64) error
	Credit(ctx context.Context, baseAmount float64) error

	GrantDailyBonus(ctx context.Context) (bool, error)
	ActivateMoodBoost(ctx context.Context, d time.Duration) error
	RerollMood(ctx context.Context) (model.Mood, error)
}

type SlotsService interface {
	CanPlay(bet float64) bool
	Spin(ctx context.Context, bet float64) (*model.SlotsRound, error)
	Round() model.SlotsRound
}

type WheelService interface {
	CanPlay(bet float64) bool
	Spin(ctx context.Context, bet float64) (*model.WheelRound, error)
	Round() model.WheelRound
}

type CrashService interface {
	CanPlay(bet float64) bool
	Start(ctx context.Context, bet float64) (*model.CrashRound, error)
	CashOut(ctx context.Context) (*model.CrashRound, error)
	// Stop Отменяет тики без расчета: ставка не возвращается,
	// выигрыш не начисляется
	Stop()
	Round() model.CrashRound
}

type DropService interface {
	CanPlay(bet float64) bool
	Drop(ctx context.Context, bet float64) (*model.DropRound, error)
	Round() model.DropRound
}

type HandService interface {
	CanPlay(bet float64) bool
	Deal(ctx context.Context, bet float64) (*model.HandRound, error)
	Round() model.HandRound
}
