package doghouse

import (
	"context"

	"go.uber.org/zap"

	"lucky_casino/internal/game/doghouse"
	"lucky_casino/internal/model"
)

// loadState сохранённая сессия или новая со ставкой по умолчанию
func (s *serv) loadState(ctx context.Context, userID int) (model.DogHouseState, error) {
	state, found, err := s.repo.GetState(ctx, userID)
	if err != nil {
		return model.DogHouseState{}, err
	}
	if !found {
		return model.DogHouseState{
			UserID:  userID,
			Session: doghouse.NewSession(s.settings.DefaultBet),
		}, nil
	}
	return state, nil
}

// State текущая сессия игрока
func (s *serv) State(ctx context.Context, userID int) (*model.DogHouseState, error) {
	state, err := s.loadState(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// SetBet меняет ставку. Пока остаются фриспины, ставка зафиксирована
func (s *serv) SetBet(ctx context.Context, req model.DogHouseSpin) (*model.DogHouseState, error) {
	if err := s.validateBet(req.Bet); err != nil {
		return nil, err
	}

	return s.update(ctx, req.UserID, func(sess doghouse.Session) (doghouse.Session, error) {
		if sess.BonusActive && sess.FreeSpins > 0 {
			return sess, model.ErrBonusActive
		}
		return sess.WithBet(req.Bet)
	})
}

// EndBonus выход из бонуса, оставшиеся фриспины сгорают
func (s *serv) EndBonus(ctx context.Context, userID int) (*model.DogHouseState, error) {
	state, err := s.update(ctx, userID, func(sess doghouse.Session) (doghouse.Session, error) {
		if sess.BonusActive {
			s.log.Info("bonus ended", zap.Int("user_id", userID), zap.Int("forfeited", sess.FreeSpins))
		}
		return sess.EndBonus(), nil
	})
	if err != nil {
		return nil, err
	}
	return state, nil
}

func (s *serv) update(
	ctx context.Context,
	userID int,
	fn func(doghouse.Session) (doghouse.Session, error),
) (*model.DogHouseState, error) {
	var state model.DogHouseState

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		state, err = s.loadState(txCtx, userID)
		if err != nil {
			return err
		}

		state.Session, err = fn(state.Session)
		if err != nil {
			return err
		}

		return s.repo.SaveState(txCtx, state)
	})
	if err != nil {
		return nil, err
	}

	return &state, nil
}
