package classic

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"lucky_casino/internal/game/rng"
)

// Symbol символ классического слота
type Symbol string

// PairRule какие пары оплачиваются
type PairRule string

const (
	// PairAdjacent позиции 0-1 или 1-2
	PairAdjacent PairRule = "adjacent"
	// PairAny любые две позиции, включая 0-2
	PairAny PairRule = "any"
)

// Window сколько символов выпадает за спин
const Window = 3

var (
	ErrEmptyAlphabet   = errors.New("classic: symbol alphabet is empty")
	ErrInvalidPairRule = errors.New("classic: unknown pair rule")
	ErrInvalidBet      = errors.New("classic: bet must be positive")
)

// Config параметры слота
type Config struct {
	Alphabet         []Symbol
	TripleMultiplier decimal.Decimal
	PairMultiplier   decimal.Decimal
	PairRule         PairRule
}

// DefaultConfig правила игрового окна: три в ряд x10, соседняя пара x2
func DefaultConfig() Config {
	return Config{
		Alphabet:         []Symbol{"🍒", "🍊", "🍇", "🍓", "🍎", "🍋", "💎", "7️⃣"},
		TripleMultiplier: decimal.NewFromInt(10),
		PairMultiplier:   decimal.NewFromInt(2),
		PairRule:         PairAdjacent,
	}
}

// Outcome результат спина
type Outcome struct {
	Symbols [Window]Symbol
	Win     int
	Triple  bool
	Pair    bool
}

// Engine классический слот, без состояния
type Engine struct {
	cfg Config
	src rng.Source
}

// NewEngine создаёт слот. src == nil означает rng.Default()
func NewEngine(cfg Config, src rng.Source) (*Engine, error) {
	if len(cfg.Alphabet) == 0 {
		return nil, ErrEmptyAlphabet
	}
	if cfg.PairRule != PairAdjacent && cfg.PairRule != PairAny {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPairRule, cfg.PairRule)
	}
	if src == nil {
		src = rng.Default()
	}
	return &Engine{cfg: cfg, src: src}, nil
}

// Spin крутит барабан и считает выигрыш
func (e *Engine) Spin(bet int) (Outcome, error) {
	if bet <= 0 {
		return Outcome{}, fmt.Errorf("%w: %d", ErrInvalidBet, bet)
	}
	var symbols [Window]Symbol
	for i := range symbols {
		symbols[i] = e.cfg.Alphabet[e.src.IntN(len(e.cfg.Alphabet))]
	}
	return e.Evaluate(symbols, bet), nil
}

// Evaluate расчёт выигрыша для выпавших символов
func (e *Engine) Evaluate(s [Window]Symbol, bet int) Outcome {
	out := Outcome{Symbols: s}

	var mult decimal.Decimal
	switch {
	case s[0] == s[1] && s[1] == s[2]:
		out.Triple = true
		mult = e.cfg.TripleMultiplier
	case s[0] == s[1] || s[1] == s[2]:
		out.Pair = true
		mult = e.cfg.PairMultiplier
	case e.cfg.PairRule == PairAny && s[0] == s[2]:
		out.Pair = true
		mult = e.cfg.PairMultiplier
	default:
		return out
	}

	out.Win = int(mult.Mul(decimal.NewFromInt(int64(bet))).Floor().IntPart())
	return out
}
