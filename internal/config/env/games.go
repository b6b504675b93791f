package env

import (
	"log"
	"os"
	"time"

	"moodcasino/internal/config"

	"gopkg.in/yaml.v3"
)

// Файл config.yaml с таблицами всех игр и экономики.
// Битый или отсутствующий файл не является фатальным: тихо
// откатываемся к встроенным значениям по умолчанию

// duration Обертка для разбора длительностей вида "50ms" из YAML
type duration time.Duration

func (d *duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = duration(parsed)
	return nil
}

type gamesFile struct {
	Economy economyYAML `yaml:"economy"`
	Slots   slotsYAML   `yaml:"slots"`
	Wheel   wheelYAML   `yaml:"wheel"`
	Crash   crashYAML   `yaml:"crash"`
	Drop    dropYAML    `yaml:"drop"`
	Hand    handYAML    `yaml:"hand"`
}

type economyYAML struct {
	DefaultBalance      float64 `yaml:"default_balance"`
	FirstLaunchBalance  float64 `yaml:"first_launch_balance"`
	DailyBonusAmount    float64 `yaml:"daily_bonus_amount"`
	DailyBonusThreshold float64 `yaml:"daily_bonus_threshold"`
}

type slotsYAML struct {
	SettleDelay duration `yaml:"settle_delay"`
	Symbols     []struct {
		ID     string  `yaml:"id"`
		Payout float64 `yaml:"payout"`
	} `yaml:"symbols"`
}

type wheelYAML struct {
	DegreeDuration duration `yaml:"degree_duration"`
	Segments       []struct {
		Multiplier float64 `yaml:"multiplier"`
		Color      string  `yaml:"color"`
	} `yaml:"segments"`
}

type crashYAML struct {
	TickInterval duration `yaml:"tick_interval"`
	ThresholdMin float64  `yaml:"threshold_min"`
	ThresholdMax float64  `yaml:"threshold_max"`
}

type dropYAML struct {
	Steps     int      `yaml:"steps"`
	Columns   int      `yaml:"columns"`
	StepDelay duration `yaml:"step_delay"`
	Slots     []struct {
		Multiplier float64 `yaml:"multiplier"`
		Color      string  `yaml:"color"`
	} `yaml:"slots"`
}

type handYAML struct {
	SettleDelay duration           `yaml:"settle_delay"`
	Payouts     map[string]float64 `yaml:"payouts"`
}

func loadGamesFile(path string) gamesFile {
	var f gamesFile
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Printf("failed to read %s, using defaults: %v", path, err)
		return f
	}
	if err := yaml.Unmarshal(raw, &f); err != nil {
		log.Printf("failed to parse %s, using defaults: %v", path, err)
		return gamesFile{}
	}
	return f
}

// ---- Economy ----

type economyConfig struct {
	raw economyYAML
}

func NewEconomyConfigFromYAML(path string) (config.EconomyConfig, error) {
	return &economyConfig{raw: loadGamesFile(path).Economy}, nil
}

func (c *economyConfig) DefaultBalance() float64 {
	if c.raw.DefaultBalance <= 0 {
		return 1000
	}
	return c.raw.DefaultBalance
}

func (c *economyConfig) FirstLaunchBalance() float64 {
	if c.raw.FirstLaunchBalance <= 0 {
		return 5000
	}
	return c.raw.FirstLaunchBalance
}

func (c *economyConfig) DailyBonusAmount() float64 {
	if c.raw.DailyBonusAmount <= 0 {
		return 500
	}
	return c.raw.DailyBonusAmount
}

func (c *economyConfig) DailyBonusThreshold() float64 {
	if c.raw.DailyBonusThreshold <= 0 {
		return 100
	}
	return c.raw.DailyBonusThreshold
}

// ---- Slots ----

type slotsConfig struct {
	raw slotsYAML
}

func NewSlotsConfigFromYAML(path string) (config.SlotsConfig, error) {
	return &slotsConfig{raw: loadGamesFile(path).Slots}, nil
}

func (c *slotsConfig) Symbols() []config.SymbolPayout {
	if len(c.raw.Symbols) == 0 {
		return []config.SymbolPayout{
			{ID: "cherry", Payout: 2},
			{ID: "lemon", Payout: 3},
			{ID: "star", Payout: 5},
			{ID: "seven", Payout: 10},
			{ID: "bar", Payout: 15},
		}
	}
	out := make([]config.SymbolPayout, len(c.raw.Symbols))
	for i, s := range c.raw.Symbols {
		out[i] = config.SymbolPayout{ID: s.ID, Payout: s.Payout}
	}
	return out
}

func (c *slotsConfig) SettleDelay() time.Duration {
	if c.raw.SettleDelay <= 0 {
		return 2 * time.Second
	}
	return time.Duration(c.raw.SettleDelay)
}

// ---- Wheel ----

type wheelConfig struct {
	raw wheelYAML
}

func NewWheelConfigFromYAML(path string) (config.WheelConfig, error) {
	return &wheelConfig{raw: loadGamesFile(path).Wheel}, nil
}

func (c *wheelConfig) Segments() []config.WheelSegment {
	if len(c.raw.Segments) == 0 {
		// Порядок сегментов соответствует разметке колеса
		return []config.WheelSegment{
			{Multiplier: 0.5, Color: "#7f8c8d"},
			{Multiplier: 1.0, Color: "#3498db"},
			{Multiplier: 2.0, Color: "#2ecc71"},
			{Multiplier: 0.8, Color: "#95a5a6"},
			{Multiplier: 5.0, Color: "#9b59b6"},
			{Multiplier: 1.5, Color: "#1abc9c"},
			{Multiplier: 10.0, Color: "#f1c40f"},
			{Multiplier: 3.0, Color: "#e67e22"},
		}
	}
	out := make([]config.WheelSegment, len(c.raw.Segments))
	for i, s := range c.raw.Segments {
		out[i] = config.WheelSegment{Multiplier: s.Multiplier, Color: s.Color}
	}
	return out
}

func (c *wheelConfig) DegreeDuration() time.Duration {
	if c.raw.DegreeDuration <= 0 {
		return 2 * time.Millisecond
	}
	return time.Duration(c.raw.DegreeDuration)
}

// ---- Crash ----

type crashConfig struct {
	raw crashYAML
}

func NewCrashConfigFromYAML(path string) (config.CrashConfig, error) {
	return &crashConfig{raw: loadGamesFile(path).Crash}, nil
}

func (c *crashConfig) TickInterval() time.Duration {
	if c.raw.TickInterval <= 0 {
		return 50 * time.Millisecond
	}
	return time.Duration(c.raw.TickInterval)
}

func (c *crashConfig) ThresholdMin() float64 {
	if c.raw.ThresholdMin <= 0 {
		return 1.2
	}
	return c.raw.ThresholdMin
}

func (c *crashConfig) ThresholdMax() float64 {
	if c.raw.ThresholdMax <= c.ThresholdMin() {
		return 8.0
	}
	return c.raw.ThresholdMax
}

// ---- Drop ----

type dropConfig struct {
	raw dropYAML
}

func NewDropConfigFromYAML(path string) (config.DropConfig, error) {
	return &dropConfig{raw: loadGamesFile(path).Drop}, nil
}

func (c *dropConfig) Steps() int {
	if c.raw.Steps <= 0 {
		return 6
	}
	return c.raw.Steps
}

func (c *dropConfig) Columns() int {
	if c.raw.Columns <= 0 {
		return 9
	}
	return c.raw.Columns
}

func (c *dropConfig) Slots() []config.DropSlot {
	if len(c.raw.Slots) == 0 {
		return []config.DropSlot{
			{Multiplier: 8.0, Color: "#e74c3c"},
			{Multiplier: 3.0, Color: "#e67e22"},
			{Multiplier: 1.2, Color: "#f1c40f"},
			{Multiplier: 0.6, Color: "#95a5a6"},
			{Multiplier: 0.4, Color: "#7f8c8d"},
			{Multiplier: 0.6, Color: "#95a5a6"},
			{Multiplier: 1.2, Color: "#f1c40f"},
			{Multiplier: 3.0, Color: "#e67e22"},
		}
	}
	out := make([]config.DropSlot, len(c.raw.Slots))
	for i, s := range c.raw.Slots {
		out[i] = config.DropSlot{Multiplier: s.Multiplier, Color: s.Color}
	}
	return out
}

func (c *dropConfig) StepDelay() time.Duration {
	if c.raw.StepDelay <= 0 {
		return 300 * time.Millisecond
	}
	return time.Duration(c.raw.StepDelay)
}

// ---- Hand ----

type handConfig struct {
	raw handYAML
}

func NewHandConfigFromYAML(path string) (config.HandConfig, error) {
	return &handConfig{raw: loadGamesFile(path).Hand}, nil
}

func (c *handConfig) Payouts() map[string]float64 {
	if len(c.raw.Payouts) == 0 {
		return map[string]float64{
			"five_of_a_kind":  12.0,
			"four_of_a_kind":  8.0,
			"full_house":      6.0,
			"straight":        4.0,
			"three_of_a_kind": 3.0,
			"two_pair":        2.0,
			"one_pair":        1.0,
			"high_card":       0.2,
		}
	}
	return c.raw.Payouts
}

func (c *handConfig) SettleDelay() time.Duration {
	if c.raw.SettleDelay <= 0 {
		return 600 * time.Millisecond
	}
	return time.Duration(c.raw.SettleDelay)
}
