package repositories

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/team-manager/internal/logger"
	"github.com/sbilibin2017/team-manager/internal/storage"
)

//go:embed schema.sql
var schema string

var _ storage.Storage = (*PostgresStore)(nil)

// PostgresStore implements storage.Storage on PostgreSQL.
// Missing rows come back as nil records, mirroring the in-memory store.
type PostgresStore struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
	now      func() time.Time
}

// NewPostgresStore creates a store. txGetter may be nil; when it returns a transaction
// for the request context, queries run inside it.
func NewPostgresStore(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *PostgresStore {
	return &PostgresStore{db: db, txGetter: txGetter, now: time.Now}
}

// Migrate creates the tables if they do not exist yet.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, schema)
	logger.Log.Infow("schema migration", "error", err)
	return err
}

func (r *PostgresStore) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// SQLSTATE unique_violation
const uniqueViolation = "23505"

// mapConstraint turns a unique-index violation into storage.ErrAlreadyExists.
func mapConstraint(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", storage.ErrAlreadyExists, pgErr.ConstraintName)
	}
	return err
}

func newID() string {
	return uuid.NewString()
}

// logQuery logs the query in a single line along with its args, result and error.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow(
		"query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}

func getOne[T any](ctx context.Context, q sqlx.QueryerContext, query string, args ...any) (*T, error) {
	var row T
	err := sqlx.GetContext(ctx, q, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		logQuery(query, args, nil, nil)
		return nil, nil
	}
	logQuery(query, args, row, err)
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func selectAll[T any](ctx context.Context, q sqlx.QueryerContext, query string, args ...any) ([]T, error) {
	rows := []T{}
	err := sqlx.SelectContext(ctx, q, &rows, query, args...)
	logQuery(query, args, len(rows), err)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func execAffected(ctx context.Context, e sqlx.ExecerContext, query string, args ...any) (int64, error) {
	res, err := e.ExecContext(ctx, query, args...)
	var affected int64
	if res != nil {
		affected, _ = res.RowsAffected()
	}
	logQuery(query, args, affected, err)
	return affected, err
}

func deleteByID(ctx context.Context, e sqlx.ExecerContext, table, id string) (bool, error) {
	affected, err := execAffected(ctx, e, "DELETE FROM "+table+" WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
