package classic

import (
	"context"
	"fmt"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"go.uber.org/zap"

	"lucky_casino/internal/config"
	"lucky_casino/internal/game/classic"
	"lucky_casino/internal/model"
	"lucky_casino/internal/repository"
	"lucky_casino/internal/service"
)

type Engine interface {
	Spin(bet int) (classic.Outcome, error)
}

type serv struct {
	engine    Engine
	settings  config.ClassicSettings
	latchTTL  time.Duration
	userRepo  repository.UserRepository
	statsRepo repository.StatsRepository
	latch     repository.SpinLatch
	reporter  service.OutcomeReporter
	txManager trm.Manager
	log       *zap.Logger
}

type Deps struct {
	Engine    Engine
	Settings  config.ClassicSettings
	LatchTTL  time.Duration
	UserRepo  repository.UserRepository
	StatsRepo repository.StatsRepository
	Latch     repository.SpinLatch
	Reporter  service.OutcomeReporter
	TxManager trm.Manager
	Log       *zap.Logger
}

// NewClassicService слот 3 символа
func NewClassicService(deps Deps) service.ClassicService {
	return &serv{
		engine:    deps.Engine,
		settings:  deps.Settings,
		latchTTL:  deps.LatchTTL,
		userRepo:  deps.UserRepo,
		statsRepo: deps.StatsRepo,
		latch:     deps.Latch,
		reporter:  deps.Reporter,
		txManager: deps.TxManager,
		log:       deps.Log.Named("classic"),
	}
}

func (s *serv) Spin(ctx context.Context, req model.ClassicSpin) (*model.ClassicSpinResult, error) {
	if req.Bet < s.settings.MinBet || req.Bet > s.settings.MaxBet {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", model.ErrInvalidBet, req.Bet, s.settings.MinBet, s.settings.MaxBet)
	}

	release, err := service.HoldSpin(ctx, s.latch, s.log, model.GameClassic, req.UserID, s.latchTTL)
	if err != nil {
		return nil, err
	}
	defer release()

	var res *model.ClassicSpinResult

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		balance, err := s.userRepo.GetBalance(txCtx, req.UserID)
		if err != nil {
			return err
		}
		if balance < req.Bet {
			return model.ErrInsufficientBalance
		}

		out, err := s.engine.Spin(req.Bet)
		if err != nil {
			return err
		}
		balance += out.Win - req.Bet

		if err := s.userRepo.UpdateBalance(txCtx, req.UserID, balance); err != nil {
			return err
		}
		if err := s.userRepo.RecordGame(txCtx, req.UserID, out.Win); err != nil {
			return err
		}

		symbols := make([]string, len(out.Symbols))
		for i, sym := range out.Symbols {
			symbols[i] = string(sym)
		}
		res = &model.ClassicSpinResult{
			Symbols: symbols,
			Win:     out.Win,
			Triple:  out.Triple,
			Pair:    out.Pair,
			Bet:     req.Bet,
			Balance: balance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.statsRepo.Record(model.GameClassic, req.Bet, res.Win)
	s.reporter.Report(ctx, model.Outcome{
		UserID:   req.UserID,
		Game:     model.GameClassic,
		Bet:      req.Bet,
		Win:      res.Win,
		Balance:  res.Balance,
		PlayedAt: time.Now(),
	})

	s.log.Info("spin",
		zap.Int("user_id", req.UserID),
		zap.Int("bet", req.Bet),
		zap.Int("win", res.Win),
		zap.Strings("symbols", res.Symbols),
	)

	return res, nil
}
