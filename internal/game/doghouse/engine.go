package doghouse

import (
	"errors"
	"fmt"

	"lucky_casino/internal/game/rng"
)

var (
	ErrEmptyAlphabet        = errors.New("doghouse: symbol alphabet is empty")
	ErrInvalidReels         = errors.New("doghouse: reel count must be positive")
	ErrInvalidRows          = errors.New("doghouse: invalid row range")
	ErrInvalidMinRun        = errors.New("doghouse: minimal run must be at least 2")
	ErrScatterNotInAlphabet = errors.New("doghouse: scatter symbol is not in alphabet")
	ErrInvalidBet           = errors.New("doghouse: bet must be positive")
)

// Config параметры движка
type Config struct {
	Reels          int
	MinRows        int
	MaxRows        int
	RowCap         int // сколько строк сканируется при оценке
	MinRun         int
	BonusThreshold int // скаттеров для входа в бонус
	Alphabet       []Symbol
	Scatter        Symbol
	Paytable       Paytable
}

// DefaultConfig 6 барабанов по 5-7 символов
func DefaultConfig() Config {
	return Config{
		Reels:          6,
		MinRows:        5,
		MaxRows:        7,
		RowCap:         7,
		MinRun:         3,
		BonusThreshold: 3,
		Alphabet:       DefaultAlphabet(),
		Scatter:        SymbolHouse,
		Paytable:       DefaultPaytable(),
	}
}

// Validate проверяет конфигурацию до создания движка
func (c Config) Validate() error {
	if len(c.Alphabet) == 0 {
		return ErrEmptyAlphabet
	}
	if c.Reels <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidReels, c.Reels)
	}
	if c.MinRows <= 0 || c.MaxRows < c.MinRows || c.RowCap <= 0 {
		return fmt.Errorf("%w: rows %d..%d, cap %d", ErrInvalidRows, c.MinRows, c.MaxRows, c.RowCap)
	}
	if c.MinRun < 2 {
		return fmt.Errorf("%w: %d", ErrInvalidMinRun, c.MinRun)
	}
	for _, s := range c.Alphabet {
		if s == c.Scatter {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrScatterNotInAlphabet, c.Scatter)
}

// Outcome результат одного спина
type Outcome struct {
	Grid             Grid
	Lines            []WinningLine
	Win              int
	Multiplier       int // множитель, применённый к этому спину
	ScatterCount     int
	AwardedFreeSpins int
	BonusTriggered   bool
}

// Engine движок Dog House Megaways. Не хранит состояние игроков,
// один экземпляр обслуживает любое число сессий
type Engine struct {
	cfg Config
	src rng.Source
}

// NewEngine создаёт движок. src == nil означает rng.Default()
func NewEngine(cfg Config, src rng.Source) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		src = rng.Default()
	}
	cfg.Alphabet = append([]Symbol(nil), cfg.Alphabet...)
	return &Engine{cfg: cfg, src: src}, nil
}

// Config копия конфигурации
func (e *Engine) Config() Config {
	return e.cfg
}

// Generate новое поле
func (e *Engine) Generate() Grid {
	return Generate(e.src, e.cfg.Reels, e.cfg.MinRows, e.cfg.MaxRows, e.cfg.Alphabet)
}

// Evaluate выигрышные линии поля
func (e *Engine) Evaluate(g Grid) []WinningLine {
	return Evaluate(g, e.cfg.RowCap, e.cfg.MinRun)
}

// CountScatter скаттеры на поле
func (e *Engine) CountScatter(g Grid) int {
	return CountScatter(g, e.cfg.Scatter)
}

// Spin генерирует поле и рассчитывает его для сессии s
func (e *Engine) Spin(s Session) (Session, Outcome) {
	return e.Settle(s, e.Generate())
}

// Settle рассчитывает готовое поле: выплата с текущим множителем сессии,
// затем проверка скаттеров. Фриспины движок не списывает
func (e *Engine) Settle(s Session, g Grid) (Session, Outcome) {
	mult := s.EffectiveMultiplier()
	lines := e.Evaluate(g)

	out := Outcome{
		Grid:       g,
		Lines:      lines,
		Multiplier: mult,
	}
	if len(lines) > 0 {
		out.Win = e.cfg.Paytable.Payout(lines, s.Bet, mult)
	}
	s.TotalWinnings = out.Win

	out.ScatterCount = e.CountScatter(g)
	if out.ScatterCount >= e.cfg.BonusThreshold {
		out.AwardedFreeSpins = e.cfg.Paytable.SpinsForCount(out.ScatterCount)
		out.BonusTriggered = true
		s.FreeSpins += out.AwardedFreeSpins
		s = s.StartBonus()
	}

	return s, out
}
