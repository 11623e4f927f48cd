package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/JDGuzman2001/chocolatin-metrics-backend/internal/repository/db"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS chocolatin_variables_history (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	module     TEXT NOT NULL,
	address    TEXT NOT NULL,
	symbol     TEXT,
	data_type  TEXT,
	comment    TEXT,
	value      TEXT,
	timestamp  DATETIME NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_chocolatin_variables_history_timestamp
	ON chocolatin_variables_history (timestamp);
CREATE INDEX IF NOT EXISTS idx_chocolatin_variables_history_module
	ON chocolatin_variables_history (module, timestamp);
`

// SQLiteRepository serves the same reads as Repository from a local SQLite
// file. Timestamps are stored as UTC text in the driver's "sqlite" format so
// range predicates compare correctly.
type SQLiteRepository struct {
	db *sql.DB
}

// OpenSQLite opens path (":memory:" is allowed) and optionally creates the
// table. An in-memory database is pinned to one connection.
func OpenSQLite(ctx context.Context, path string, initSchema bool) (*sql.DB, error) {
	sqlDB, err := sql.Open("sqlite", path+"?_time_format=sqlite&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if path == ":memory:" {
		sqlDB.SetMaxOpenConns(1)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	if initSchema {
		if _, err := sqlDB.ExecContext(ctx, sqliteSchema); err != nil {
			sqlDB.Close()
			return nil, fmt.Errorf("init sqlite schema: %w", err)
		}
	}

	return sqlDB, nil
}

func NewSQLite(sqlDB *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: sqlDB}
}

func (r *SQLiteRepository) ListVariables(ctx context.Context, filter Filter, page Page) ([]Reading, error) {
	arg := toParams(filter, page)
	if arg.From != nil {
		from := arg.From.UTC()
		arg.From = &from
	}
	if arg.To != nil {
		to := arg.To.UTC()
		arg.To = &to
	}

	query, args := db.BuildListVariables(db.SQLite, arg)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query variables: %w", err)
	}
	defer rows.Close()

	readings := []Reading{}
	for rows.Next() {
		var (
			rd                               Reading
			symbol, dataType, comment, value sql.NullString
			createdAt                        sql.NullTime
		)
		if err := rows.Scan(
			&rd.ID, &rd.Module, &rd.Address, &symbol, &dataType,
			&comment, &value, &rd.Timestamp, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan variable: %w", err)
		}
		rd.Symbol = nullableString(symbol)
		rd.DataType = nullableString(dataType)
		rd.Comment = nullableString(comment)
		rd.Value = nullableString(value)
		rd.Timestamp = rd.Timestamp.UTC()
		if createdAt.Valid {
			t := createdAt.Time.UTC()
			rd.CreatedAt = &t
		}
		readings = append(readings, rd)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query variables: %w", err)
	}
	return readings, nil
}

func (r *SQLiteRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *SQLiteRepository) Close() {
	r.db.Close()
}

func nullableString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}
