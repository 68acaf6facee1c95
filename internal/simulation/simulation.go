// Package simulation прогоняет движок Dog House на фиксированном seed
// и оценивает RTP, частоту выигрышей и частоту входа в бонус.
package simulation

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"lucky_casino/internal/game/doghouse"
	"lucky_casino/internal/game/rng"
)

// DefaultConfidence уровень доверия интервалов
const DefaultConfidence = 0.95

// ctxCheckEvery как часто проверяется отмена контекста
const ctxCheckEvery = 1024

var (
	ErrInvalidSpins = errors.New("simulation: spins must be positive")
	ErrInvalidBet   = errors.New("simulation: bet must be positive")
)

type Options struct {
	Spins int
	Bet   int
	Seed  uint64
	// PlayBonus отыгрывать начисленные фриспины. Иначе бонус
	// закрывается сразу и учитывается только факт входа
	PlayBonus  bool
	Confidence float64
	// Progress вызывается после каждого платного спина
	Progress func()
}

// SymbolStat выигрыши по одному символу
type SymbolStat struct {
	Lines int
	Win   int64
}

type Report struct {
	Seed       uint64
	Confidence float64

	PaidSpins int
	FreeSpins int
	Hits      int // платные и бесплатные спины с выигрышем
	Triggers  int

	TotalBet int64
	TotalWin int64
	BaseWin  int64
	FreeWin  int64

	RTP         float64
	RtpCI       CI
	Std         float64
	HitRate     float64
	HitCI       CI
	TriggerRate float64
	TriggerCI   CI

	Symbols  map[doghouse.Symbol]SymbolStat
	Alphabet []doghouse.Symbol
	Elapsed  time.Duration
}

// Run крутит opts.Spins платных спинов. Фриспины сверх этого числа
// отыгрываются по правилам сервиса: счётчик уменьшается, ставка не списывается
func Run(ctx context.Context, cfg doghouse.Config, opts Options) (*Report, error) {
	if opts.Spins <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSpins, opts.Spins)
	}
	if opts.Bet <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBet, opts.Bet)
	}
	if opts.Confidence <= 0 || opts.Confidence >= 1 {
		opts.Confidence = DefaultConfidence
	}

	engine, err := doghouse.NewEngine(cfg, rng.NewSeeded(opts.Seed))
	if err != nil {
		return nil, err
	}
	pt := engine.Config().Paytable

	rep := &Report{
		Seed:       opts.Seed,
		Confidence: opts.Confidence,
		Symbols:    make(map[doghouse.Symbol]SymbolStat),
		Alphabet:   engine.Config().Alphabet,
	}

	// Welford по возврату на платный спин (выигрыш раунда / ставка)
	var (
		mean, m2   float64
		roundWin   int64
		roundCount int
	)
	closeRound := func() {
		roundCount++
		x := float64(roundWin) / float64(opts.Bet)
		d := x - mean
		mean += d / float64(roundCount)
		m2 += d * (x - mean)
		roundWin = 0
	}

	start := time.Now()
	sess := doghouse.NewSession(opts.Bet)

	for rep.PaidSpins < opts.Spins || (sess.BonusActive && sess.FreeSpins > 0) {
		if rep.PaidSpins%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		free := sess.BonusActive && sess.FreeSpins > 0
		if free {
			sess.FreeSpins--
			rep.FreeSpins++
		} else {
			if rep.PaidSpins > 0 {
				closeRound()
			}
			if sess.BonusActive {
				sess = sess.EndBonus()
			}
			rep.PaidSpins++
			rep.TotalBet += int64(opts.Bet)
			if opts.Progress != nil {
				opts.Progress()
			}
		}

		var out doghouse.Outcome
		sess, out = engine.Spin(sess)

		win := int64(out.Win)
		rep.TotalWin += win
		roundWin += win
		if free {
			rep.FreeWin += win
		} else {
			rep.BaseWin += win
		}
		if out.Win > 0 {
			rep.Hits++
		}
		if out.BonusTriggered {
			rep.Triggers++
		}
		for _, l := range out.Lines {
			st := rep.Symbols[l.Symbol]
			st.Lines++
			st.Win += pt.LineValue(l, sess.Bet, out.Multiplier).Floor().IntPart()
			rep.Symbols[l.Symbol] = st
		}

		if sess.BonusActive && (sess.FreeSpins == 0 || !opts.PlayBonus) {
			sess = sess.EndBonus()
		}
	}
	closeRound()

	rep.Elapsed = time.Since(start)
	rep.RTP = float64(rep.TotalWin) / float64(rep.TotalBet)
	if roundCount > 1 {
		rep.Std = math.Sqrt(m2 / float64(roundCount-1))
	}
	rep.RtpCI = meanCI(rep.RTP, rep.Std, roundCount, opts.Confidence)

	total := rep.PaidSpins + rep.FreeSpins
	rep.HitRate, rep.HitCI = proportionCI(rep.Hits, total, opts.Confidence)
	rep.TriggerRate, rep.TriggerCI = proportionCI(rep.Triggers, total, opts.Confidence)

	return rep, nil
}
