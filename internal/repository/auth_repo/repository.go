package auth_repo

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
	table          = "sessions"
	colSessionID   = "session_id"
	colUserID      = "user_id"
	colRefreshHash = "refresh_hash"
	colExpiredTime = "expired_time"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewAuthRepository(dbc *pgxpool.Pool) repository.AuthRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// CreateSession - создает сессию в БД
// RefreshToken в model.Session должен быть уже захэширован
func (r *repo) CreateSession(ctx context.Context, session *model.Session) error {
	query := psql.Insert(table).
		Columns(colSessionID, colUserID, colRefreshHash, colExpiredTime).
		Values(session.ID, session.UserID, session.RefreshToken, session.ExpiresAt)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}

	return nil
}

// GetSession - сессия по ID вместе с хэшем refresh токена
func (r *repo) GetSession(ctx context.Context, sessionID string) (*model.Session, error) {
	query := psql.Select(colSessionID, colUserID, colRefreshHash, colExpiredTime).
		From(table).
		Where(sq.Eq{colSessionID: sessionID})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var s model.Session
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).
		QueryRow(ctx, sqlStr, args...).
		Scan(&s.ID, &s.UserID, &s.RefreshToken, &s.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	return &s, nil
}

// DeleteSession - удаляет сессию из БД
func (r *repo) DeleteSession(ctx context.Context, sessionID string) error {
	return r.delete(ctx, sq.Eq{colSessionID: sessionID})
}

// DeleteUserSessions - закрывает все сессии игрока
func (r *repo) DeleteUserSessions(ctx context.Context, userID int) error {
	return r.delete(ctx, sq.Eq{colUserID: userID})
}

func (r *repo) delete(ctx context.Context, where sq.Eq) error {
	sqlStr, args, err := psql.Delete(table).Where(where).ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}
