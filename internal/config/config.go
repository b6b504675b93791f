package config

import (
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type EconomyConfig interface {
	DefaultBalance() float64
	FirstLaunchBalance() float64
	DailyBonusAmount() float64
	DailyBonusThreshold() float64
}

// SymbolPayout Символ слотов и его множитель выплаты
type SymbolPayout struct {
	ID     string
	Payout float64
}

type SlotsConfig interface {
	Symbols() []SymbolPayout
	SettleDelay() time.Duration
}

// WheelSegment Сегмент колеса в порядке обхода
type WheelSegment struct {
	Multiplier float64
	Color      string
}

type WheelConfig interface {
	Segments() []WheelSegment
	// DegreeDuration Длительность вращения на один градус.
	// Общее время спина пропорционально выпавшему повороту
	DegreeDuration() time.Duration
}

type CrashConfig interface {
	TickInterval() time.Duration
	ThresholdMin() float64
	ThresholdMax() float64
}

// DropSlot Лунка нижнего ряда
type DropSlot struct {
	Multiplier float64
	Color      string
}

type DropConfig interface {
	Steps() int
	Columns() int
	Slots() []DropSlot
	StepDelay() time.Duration
}

type HandConfig interface {
	// Payouts Множители по тегу ранга комбинации
	Payouts() map[string]float64
	SettleDelay() time.Duration
}
