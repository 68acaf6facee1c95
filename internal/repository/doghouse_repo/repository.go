package doghouse_repo

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"lucky_casino/internal/model"
	"lucky_casino/internal/repository"
)

const (
	table          = "doghouse_state"
	colUserID      = "user_id"
	colBet         = "bet"
	colFreeSpins   = "free_spins"
	colMultiplier  = "multiplier"
	colBonusActive = "bonus_active"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewDogHouseRepository(dbc *pgxpool.Pool) repository.DogHouseRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// GetState - сессия Dog House игрока. Внутри транзакции строка блокируется.
// Если записи нет, found == false
func (r *repo) GetState(ctx context.Context, userID int) (model.DogHouseState, bool, error) {
	query := psql.Select(colBet, colFreeSpins, colMultiplier, colBonusActive).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		Suffix("FOR UPDATE")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return model.DogHouseState{}, false, err
	}

	state := model.DogHouseState{UserID: userID}
	s := &state.Session
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).
		QueryRow(ctx, sqlStr, args...).
		Scan(&s.Bet, &s.FreeSpins, &s.Multiplier, &s.BonusActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.DogHouseState{}, false, nil
		}
		return model.DogHouseState{}, false, fmt.Errorf("get doghouse state: %w", err)
	}

	return state, true, nil
}

// SaveState - вставка или обновление сессии
func (r *repo) SaveState(ctx context.Context, state model.DogHouseState) error {
	s := state.Session
	query := psql.Insert(table).
		Columns(colUserID, colBet, colFreeSpins, colMultiplier, colBonusActive).
		Values(state.UserID, s.Bet, s.FreeSpins, s.Multiplier, s.BonusActive).
		Suffix("ON CONFLICT (" + colUserID + ") DO UPDATE SET " +
			colBet + " = EXCLUDED." + colBet + ", " +
			colFreeSpins + " = EXCLUDED." + colFreeSpins + ", " +
			colMultiplier + " = EXCLUDED." + colMultiplier + ", " +
			colBonusActive + " = EXCLUDED." + colBonusActive)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("save doghouse state: %w", err)
	}

	return nil
}
