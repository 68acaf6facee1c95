package doghouse

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"lucky_casino/internal/game/doghouse"
	"lucky_casino/internal/model"
	"lucky_casino/internal/service"
)

// Spin платный или бесплатный спин игрока
func (s *serv) Spin(ctx context.Context, req model.DogHouseSpin) (*model.DogHouseSpinResult, error) {
	if err := s.validateBet(req.Bet); err != nil {
		return nil, err
	}

	release, err := service.HoldSpin(ctx, s.latch, s.log, model.GameDogHouse, req.UserID, s.latchTTL)
	if err != nil {
		return nil, err
	}
	defer release()

	var (
		res     *model.DogHouseSpinResult
		debited int
	)

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		state, err := s.loadState(txCtx, req.UserID)
		if err != nil {
			return err
		}

		balance, err := s.userRepo.GetBalance(txCtx, req.UserID)
		if err != nil {
			return err
		}

		sess := state.Session

		// Фриспин: списываем счётчик, а не баланс. Ставка остаётся той,
		// на которой бонус был выигран, ставка из запроса игнорируется
		freeSpin := sess.BonusActive && sess.FreeSpins > 0
		if freeSpin {
			sess.FreeSpins--
		} else {
			sess.Bet = req.Bet
			if sess.BonusActive {
				sess = sess.EndBonus()
			}
			if balance < req.Bet {
				return model.ErrInsufficientBalance
			}
			balance -= req.Bet
			debited = req.Bet
		}

		sess, out := s.engine.Spin(sess)
		balance += out.Win

		if sess.BonusActive && sess.FreeSpins == 0 {
			sess = sess.EndBonus()
		}

		if err := s.userRepo.UpdateBalance(txCtx, req.UserID, balance); err != nil {
			return err
		}
		if err := s.userRepo.RecordGame(txCtx, req.UserID, out.Win); err != nil {
			return err
		}

		state.Session = sess
		if err := s.repo.SaveState(txCtx, state); err != nil {
			return err
		}

		res = s.buildResult(out, sess, freeSpin, balance)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.statsRepo.Record(model.GameDogHouse, debited, res.Win)
	s.reporter.Report(ctx, model.Outcome{
		UserID:   req.UserID,
		Game:     model.GameDogHouse,
		Bet:      debited,
		Win:      res.Win,
		Balance:  res.Balance,
		PlayedAt: time.Now(),
	})

	s.log.Info("spin",
		zap.Int("user_id", req.UserID),
		zap.Int("bet", res.Bet),
		zap.Bool("free_spin", res.FreeSpin),
		zap.Int("win", res.Win),
		zap.Int("scatters", res.ScatterCount),
		zap.Int("free_spins_left", res.FreeSpinsLeft),
	)

	// пауза на анимацию барабанов. Результат уже зафиксирован, поэтому
	// при отмене ctx пауза обрывается, а не досиживается до конца
	service.Wait(ctx, s.settings.RevealDelay)

	return res, nil
}

func (s *serv) validateBet(bet int) error {
	if bet < s.settings.MinBet || bet > s.settings.MaxBet {
		return fmt.Errorf("%w: %d not in [%d, %d]", model.ErrInvalidBet, bet, s.settings.MinBet, s.settings.MaxBet)
	}
	return nil
}

func (s *serv) buildResult(out doghouse.Outcome, sess doghouse.Session, freeSpin bool, balance int) *model.DogHouseSpinResult {
	reels := make([][]string, len(out.Grid))
	for i, reel := range out.Grid {
		reels[i] = make([]string, len(reel))
		for j, sym := range reel {
			reels[i][j] = string(sym)
		}
	}

	pt := s.engine.Config().Paytable
	lines := make([]model.WinningLine, 0, len(out.Lines))
	for _, l := range out.Lines {
		lines = append(lines, model.WinningLine{
			Kind:      l.Kind,
			Symbol:    string(l.Symbol),
			Count:     l.Count,
			StartReel: l.StartReel,
			Row:       l.Row,
			Payout:    int(pt.LineValue(l, sess.Bet, out.Multiplier).Floor().IntPart()),
		})
	}

	return &model.DogHouseSpinResult{
		Reels:            reels,
		WinningLines:     lines,
		Win:              out.Win,
		Multiplier:       out.Multiplier,
		ScatterCount:     out.ScatterCount,
		AwardedFreeSpins: out.AwardedFreeSpins,
		FreeSpin:         freeSpin,
		BonusActive:      sess.BonusActive,
		FreeSpinsLeft:    sess.FreeSpins,
		Bet:              sess.Bet,
		Balance:          balance,
	}
}
