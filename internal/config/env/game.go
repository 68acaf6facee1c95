package env

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"lucky_casino/internal/config"
	"lucky_casino/internal/game/classic"
	"lucky_casino/internal/game/doghouse"
)

const (
	defaultStartingBalance = 1000
	defaultSpinLatchTTL    = 30 * time.Second

	defaultMinBet      = 1
	defaultMaxBet      = 1000
	defaultDogHouseBet = 10
)

// gameFile формат config.yaml. Нулевые поля не переопределяют значения по умолчанию
type gameFile struct {
	StartingBalance int    `yaml:"starting_balance"`
	SpinLatchTTL    string `yaml:"spin_latch_ttl"`

	DogHouse struct {
		Reels          int                `yaml:"reels"`
		MinRows        int                `yaml:"min_rows"`
		MaxRows        int                `yaml:"max_rows"`
		RowCap         int                `yaml:"row_cap"`
		MinRun         int                `yaml:"min_run"`
		BonusThreshold int                `yaml:"bonus_threshold"`
		Alphabet       []string           `yaml:"alphabet"`
		Scatter        string             `yaml:"scatter"`
		Values         map[string]float64 `yaml:"values"`
		Lengths        map[int]int        `yaml:"length_multipliers"`
		FreeSpins      map[int]int        `yaml:"free_spins"`
		MinBet         int                `yaml:"min_bet"`
		MaxBet         int                `yaml:"max_bet"`
		DefaultBet     int                `yaml:"default_bet"`
		RevealDelay    string             `yaml:"reveal_delay"`
	} `yaml:"doghouse"`

	Classic struct {
		Alphabet         []string `yaml:"alphabet"`
		TripleMultiplier float64  `yaml:"triple_multiplier"`
		PairMultiplier   float64  `yaml:"pair_multiplier"`
		PairRule         string   `yaml:"pair_rule"`
		MinBet           int      `yaml:"min_bet"`
		MaxBet           int      `yaml:"max_bet"`
	} `yaml:"classic"`
}

type gameConfig struct {
	startingBalance int
	spinLatchTTL    time.Duration
	dogHouse        config.DogHouseSettings
	classic         config.ClassicSettings
}

// DefaultGameConfig встроенные таблицы, без config.yaml
func DefaultGameConfig() config.GameConfig {
	return defaultGameConfig()
}

func defaultGameConfig() *gameConfig {
	return &gameConfig{
		startingBalance: defaultStartingBalance,
		spinLatchTTL:    defaultSpinLatchTTL,
		dogHouse: config.DogHouseSettings{
			Engine:     doghouse.DefaultConfig(),
			MinBet:     defaultMinBet,
			MaxBet:     defaultMaxBet,
			DefaultBet: defaultDogHouseBet,
		},
		classic: config.ClassicSettings{
			Engine: classic.DefaultConfig(),
			MinBet: defaultMinBet,
			MaxBet: defaultMaxBet,
		},
	}
}

// NewGameConfigFromYAML читает игровые таблицы. Отсутствующий файл не ошибка
func NewGameConfigFromYAML(path string) (config.GameConfig, error) {
	cfg := defaultGameConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read game config: %w", err)
	}

	var raw gameFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse game config %s: %w", path, err)
	}

	if err := cfg.apply(raw); err != nil {
		return nil, fmt.Errorf("game config %s: %w", path, err)
	}

	return cfg, nil
}

func (cfg *gameConfig) apply(raw gameFile) error {
	if raw.StartingBalance < 0 {
		return fmt.Errorf("starting_balance must not be negative")
	}
	if raw.StartingBalance > 0 {
		cfg.startingBalance = raw.StartingBalance
	}
	if raw.SpinLatchTTL != "" {
		ttl, err := time.ParseDuration(raw.SpinLatchTTL)
		if err != nil {
			return fmt.Errorf("spin_latch_ttl: %w", err)
		}
		cfg.spinLatchTTL = ttl
	}

	if err := cfg.applyDogHouse(raw); err != nil {
		return err
	}
	return cfg.applyClassic(raw)
}

func (cfg *gameConfig) applyDogHouse(raw gameFile) error {
	src := raw.DogHouse
	dh := &cfg.dogHouse
	eng := &dh.Engine

	overrideInt(&eng.Reels, src.Reels)
	overrideInt(&eng.MinRows, src.MinRows)
	overrideInt(&eng.MaxRows, src.MaxRows)
	overrideInt(&eng.RowCap, src.RowCap)
	overrideInt(&eng.MinRun, src.MinRun)
	overrideInt(&eng.BonusThreshold, src.BonusThreshold)
	if len(src.Alphabet) > 0 {
		eng.Alphabet = make([]doghouse.Symbol, len(src.Alphabet))
		for i, s := range src.Alphabet {
			eng.Alphabet[i] = doghouse.Symbol(s)
		}
	}
	if src.Scatter != "" {
		eng.Scatter = doghouse.Symbol(src.Scatter)
	}
	for sym, v := range src.Values {
		eng.Paytable.Values[doghouse.Symbol(sym)] = decimal.NewFromFloat(v)
	}
	if len(src.Lengths) > 0 {
		eng.Paytable.LengthMultipliers = src.Lengths
	}
	if len(src.FreeSpins) > 0 {
		eng.Paytable.FreeSpins = src.FreeSpins
	}

	overrideInt(&dh.MinBet, src.MinBet)
	overrideInt(&dh.MaxBet, src.MaxBet)
	overrideInt(&dh.DefaultBet, src.DefaultBet)
	if src.RevealDelay != "" {
		d, err := time.ParseDuration(src.RevealDelay)
		if err != nil {
			return fmt.Errorf("doghouse.reveal_delay: %w", err)
		}
		dh.RevealDelay = d
	}

	if err := eng.Validate(); err != nil {
		return err
	}
	if err := validateBets(dh.MinBet, dh.MaxBet); err != nil {
		return fmt.Errorf("doghouse: %w", err)
	}
	if dh.DefaultBet < dh.MinBet || dh.DefaultBet > dh.MaxBet {
		return fmt.Errorf("doghouse: default_bet %d outside [%d, %d]", dh.DefaultBet, dh.MinBet, dh.MaxBet)
	}
	return nil
}

func (cfg *gameConfig) applyClassic(raw gameFile) error {
	src := raw.Classic
	cl := &cfg.classic

	if len(src.Alphabet) > 0 {
		cl.Engine.Alphabet = make([]classic.Symbol, len(src.Alphabet))
		for i, s := range src.Alphabet {
			cl.Engine.Alphabet[i] = classic.Symbol(s)
		}
	}
	if src.TripleMultiplier > 0 {
		cl.Engine.TripleMultiplier = decimal.NewFromFloat(src.TripleMultiplier)
	}
	if src.PairMultiplier > 0 {
		cl.Engine.PairMultiplier = decimal.NewFromFloat(src.PairMultiplier)
	}
	if src.PairRule != "" {
		cl.Engine.PairRule = classic.PairRule(src.PairRule)
	}
	overrideInt(&cl.MinBet, src.MinBet)
	overrideInt(&cl.MaxBet, src.MaxBet)

	if _, err := classic.NewEngine(cl.Engine, nil); err != nil {
		return err
	}
	if err := validateBets(cl.MinBet, cl.MaxBet); err != nil {
		return fmt.Errorf("classic: %w", err)
	}
	return nil
}

func overrideInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}

func validateBets(lo, hi int) error {
	if lo <= 0 || hi < lo {
		return fmt.Errorf("invalid bet range [%d, %d]", lo, hi)
	}
	return nil
}

func (cfg *gameConfig) StartingBalance() int {
	return cfg.startingBalance
}

func (cfg *gameConfig) SpinLatchTTL() time.Duration {
	return cfg.spinLatchTTL
}

func (cfg *gameConfig) DogHouse() config.DogHouseSettings {
	return cfg.dogHouse
}

func (cfg *gameConfig) Classic() config.ClassicSettings {
	return cfg.classic
}
