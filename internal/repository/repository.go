package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/JDGuzman2001/chocolatin-metrics-backend/config"
	"github.com/JDGuzman2001/chocolatin-metrics-backend/internal/repository/db"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Reading struct {
	ID        int64
	Module    string
	Address   string
	Symbol    *string
	DataType  *string
	Comment   *string
	Value     *string
	Timestamp time.Time
	CreatedAt *time.Time
}

// Filter narrows the read. Empty Module and nil bounds mean "no predicate".
type Filter struct {
	Module string
	From   *time.Time
	To     *time.Time
}

// Page is a limit/offset window; zero values are not applied.
type Page struct {
	Limit  int
	Offset int
}

type Repository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewPool(ctx context.Context, config config.Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(config.PG.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}
	poolCfg.MaxConnLifetime = 30 * time.Minute
	poolCfg.MaxConnIdleTime = 5 * time.Minute
	poolCfg.PingTimeout = 30 * time.Second
	poolCfg.MaxConns = int32(config.PG.PoolMax)
	poolCfg.MinConns = min(2, poolCfg.MaxConns)
	poolCfg.HealthCheckPeriod = 1 * time.Minute
	p, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, err
	}
	err = p.Ping(ctx)
	if err != nil {
		p.Close()
		return nil, err
	}

	return p, nil
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		q:    db.New(pool),
		pool: pool,
	}
}

func (r *Repository) ListVariables(ctx context.Context, filter Filter, page Page) ([]Reading, error) {
	rows, err := r.q.ListVariables(ctx, toParams(filter, page))
	if err != nil {
		return nil, queryError(err)
	}

	readings := make([]Reading, len(rows))
	for i, row := range rows {
		readings[i] = Reading{
			ID:        row.ID,
			Module:    row.Module,
			Address:   row.Address,
			Symbol:    nullableText(row.Symbol),
			DataType:  nullableText(row.DataType),
			Comment:   nullableText(row.Comment),
			Value:     nullableText(row.Value),
			Timestamp: row.Timestamp,
			CreatedAt: row.CreatedAt,
		}
	}
	return readings, nil
}

// Close закрывает пул соединений
func (r *Repository) Close() {
	r.pool.Close()
}

// Ping проверяет доступность БД
func (r *Repository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func toParams(filter Filter, page Page) db.ListVariablesParams {
	arg := db.ListVariablesParams{
		From:   filter.From,
		To:     filter.To,
		Limit:  page.Limit,
		Offset: page.Offset,
	}
	if filter.Module != "" {
		m := filter.Module
		arg.Module = &m
	}
	return arg
}

// storageError keeps the driver error in the chain but prints only the
// server's message, without SQLSTATE codes.
type storageError struct {
	msg string
	err error
}

func (e *storageError) Error() string { return e.msg }
func (e *storageError) Unwrap() error { return e.err }

func queryError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return &storageError{msg: "query variables: " + pgErr.Message, err: err}
	}
	return fmt.Errorf("query variables: %w", err)
}

func nullableText(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	return &t.String
}
