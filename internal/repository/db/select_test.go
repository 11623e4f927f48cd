package db_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/JDGuzman2001/chocolatin-metrics-backend/internal/repository/db"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- fake DBTX ---

type fakeRows struct {
	data    [][]any
	idx     int
	scanErr error
	err     error
	closed  bool
}

func (r *fakeRows) Close()                                       { r.closed = true }
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.idx >= len(r.data) {
		return false
	}
	r.idx++
	return true
}

func (r *fakeRows) Values() ([]any, error) { return r.data[r.idx-1], nil }

func (r *fakeRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	row := r.data[r.idx-1]
	if len(row) != len(dest) {
		return errors.New("column count mismatch")
	}
	for i, v := range row {
		reflect.ValueOf(dest[i]).Elem().Set(reflect.ValueOf(v))
	}
	return nil
}

type fakeDB struct {
	query    string
	args     []any
	rows     *fakeRows
	queryErr error
}

func (f *fakeDB) Query(_ context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	f.query = sql
	f.args = args
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.rows, nil
}

func row(id int64, module string, ts time.Time, symbol pgtype.Text, createdAt *time.Time) []any {
	return []any{id, module, "0x20001000", symbol, pgtype.Text{}, pgtype.Text{}, pgtype.Text{String: "42", Valid: true}, ts, createdAt}
}

func TestListVariables_ScansRows(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	created := ts.Add(time.Second)
	fake := &fakeDB{rows: &fakeRows{data: [][]any{
		row(2, "BCM", ts, pgtype.Text{String: "rpm", Valid: true}, &created),
		row(1, "ECU", ts.Add(-time.Hour), pgtype.Text{}, nil),
	}}}

	items, err := db.New(fake).ListVariables(context.Background(), db.ListVariablesParams{Limit: 2})

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(2), items[0].ID)
	assert.Equal(t, "rpm", items[0].Symbol.String)
	assert.Equal(t, &created, items[0].CreatedAt)
	assert.False(t, items[1].Symbol.Valid)
	assert.Nil(t, items[1].CreatedAt)
	assert.True(t, fake.rows.closed)
	assert.Contains(t, fake.query, "LIMIT $1")
	assert.Equal(t, []any{int64(2)}, fake.args)
}

func TestListVariables_QueryError(t *testing.T) {
	fake := &fakeDB{queryErr: errors.New("connection refused")}

	_, err := db.New(fake).ListVariables(context.Background(), db.ListVariablesParams{})

	assert.EqualError(t, err, "connection refused")
}

func TestListVariables_ScanError(t *testing.T) {
	fake := &fakeDB{rows: &fakeRows{
		data:    [][]any{row(1, "ECU", time.Now(), pgtype.Text{}, nil)},
		scanErr: errors.New("cannot scan"),
	}}

	_, err := db.New(fake).ListVariables(context.Background(), db.ListVariablesParams{})

	assert.EqualError(t, err, "cannot scan")
	assert.True(t, fake.rows.closed)
}

func TestListVariables_RowsErr(t *testing.T) {
	fake := &fakeDB{rows: &fakeRows{err: errors.New("conn reset")}}

	items, err := db.New(fake).ListVariables(context.Background(), db.ListVariablesParams{})

	assert.EqualError(t, err, "conn reset")
	assert.Empty(t, items)
}
