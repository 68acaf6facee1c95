package user_repo

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"lucky_casino/internal/model"
	"lucky_casino/internal/repository"
)

const (
	table            = "users"
	colID            = "id"
	colName          = "name"
	colEmail         = "email"
	colPasswordHash  = "password_hash"
	colBalance       = "balance"
	colGamesPlayed   = "games_played"
	colTotalWinnings = "total_winnings"
	colRegisteredAt  = "registered_at"
	colIsActive      = "is_active"

	uniqueViolation = "23505"
)

var (
	psql       = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	userFields = []string{
		colID, colName, colEmail, colPasswordHash, colBalance,
		colGamesPlayed, colTotalWinnings, colRegisteredAt, colIsActive,
	}
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewUserRepository(dbc *pgxpool.Pool) repository.UserRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// CreateUser - создает нового пользователя в БД.
// Возвращает ID созданного пользователя
func (r *repo) CreateUser(ctx context.Context, user *model.User) (int, error) {
	query := psql.Insert(table).
		Columns(colName, colEmail, colPasswordHash, colBalance).
		Values(user.Name, user.Email, user.Password, user.Balance).
		Suffix("RETURNING " + colID)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var id int
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, model.ErrEmailTaken
		}
		return 0, fmt.Errorf("create user: %w", err)
	}

	return id, nil
}

func (r *repo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.getUser(ctx, sq.Eq{colEmail: email})
}

func (r *repo) GetUserByID(ctx context.Context, id int) (*model.User, error) {
	return r.getUser(ctx, sq.Eq{colID: id})
}

func (r *repo) getUser(ctx context.Context, where sq.Eq) (*model.User, error) {
	sqlStr, args, err := psql.Select(userFields...).From(table).Where(where).ToSql()
	if err != nil {
		return nil, err
	}

	var u model.User
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(
		&u.ID, &u.Name, &u.Email, &u.Password, &u.Balance,
		&u.GamesPlayed, &u.TotalWinnings, &u.RegisteredAt, &u.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &u, nil
}

// GetBalance - баланс активного игрока, строка блокируется (FOR UPDATE)
func (r *repo) GetBalance(ctx context.Context, id int) (int, error) {
	query := psql.Select(colBalance).
		From(table).
		Where(sq.Eq{colID: id, colIsActive: true}).
		Suffix("FOR UPDATE")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var balance int
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, model.ErrUserNotFound
		}
		return 0, fmt.Errorf("get balance: %w", err)
	}

	return balance, nil
}

// UpdateBalance - записывает новый баланс
func (r *repo) UpdateBalance(ctx context.Context, id int, amount int) error {
	return r.update(ctx, id, psql.Update(table).Set(colBalance, amount))
}

// RecordGame - +1 игра и выигрыш в общую сумму
func (r *repo) RecordGame(ctx context.Context, id int, win int) error {
	return r.update(ctx, id, psql.Update(table).
		Set(colGamesPlayed, sq.Expr(colGamesPlayed+" + 1")).
		Set(colTotalWinnings, sq.Expr(colTotalWinnings+" + ?", win)))
}

// Deactivate - мягкое удаление
func (r *repo) Deactivate(ctx context.Context, id int) error {
	return r.update(ctx, id, psql.Update(table).Set(colIsActive, false))
}

func (r *repo) update(ctx context.Context, id int, query sq.UpdateBuilder) error {
	sqlStr, args, err := query.Where(sq.Eq{colID: id}).ToSql()
	if err != nil {
		return err
	}

	tag, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrUserNotFound
	}

	return nil
}

// TopPlayers - активные игроки по сумме выигрышей
func (r *repo) TopPlayers(ctx context.Context, limit int) ([]model.Player, error) {
	query := psql.Select(colID, colName, colGamesPlayed, colTotalWinnings).
		From(table).
		Where(sq.Eq{colIsActive: true}).
		OrderBy(colTotalWinnings+" DESC", colID).
		Limit(uint64(limit))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("top players: %w", err)
	}

	players, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Player, error) {
		var p model.Player
		err := row.Scan(&p.ID, &p.Name, &p.GamesPlayed, &p.TotalWinnings)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("top players: %w", err)
	}

	return players, nil
}
