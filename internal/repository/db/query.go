package db

import (
	"strconv"
	"strings"
	"time"
)

// Dialect selects placeholder and LIMIT syntax.
type Dialect int

const (
	Postgres Dialect = iota
	SQLite
)

const selectVariables = `SELECT id, module, address, symbol, data_type, comment, value, timestamp, created_at
FROM chocolatin_variables_history`

// ListVariablesParams describes one read of chocolatin_variables_history.
// Nil filters and zero Limit/Offset are omitted from the statement.
type ListVariablesParams struct {
	Module *string
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

// BuildListVariables returns the statement text and its arguments. Every
// value, including limit and offset, is passed as a bound parameter.
func BuildListVariables(d Dialect, arg ListVariablesParams) (string, []any) {
	var (
		sb    strings.Builder
		args  []any
		preds []string
	)

	bind := func(v any) string {
		args = append(args, v)
		if d == SQLite {
			return "?"
		}
		return "$" + strconv.Itoa(len(args))
	}

	// sqlite keeps timestamps as text in whatever form the writer used,
	// so both sides are compared as julian day numbers
	ts := "timestamp"
	bindTime := func(v time.Time) string { return bind(v) }
	if d == SQLite {
		ts = "julianday(timestamp)"
		bindTime = func(v time.Time) string { return "julianday(" + bind(v) + ")" }
	}

	sb.WriteString(selectVariables)

	if arg.Module != nil {
		preds = append(preds, "module = "+bind(*arg.Module))
	}
	if arg.From != nil {
		preds = append(preds, ts+" >= "+bindTime(*arg.From))
	}
	if arg.To != nil {
		preds = append(preds, ts+" <= "+bindTime(*arg.To))
	}
	if len(preds) > 0 {
		sb.WriteString("\nWHERE ")
		sb.WriteString(strings.Join(preds, " AND "))
	}

	sb.WriteString("\nORDER BY " + ts + " DESC, id DESC")

	switch {
	case arg.Limit > 0:
		sb.WriteString("\nLIMIT ")
		sb.WriteString(bind(int64(arg.Limit)))
	case arg.Offset > 0 && d == SQLite:
		// sqlite has no OFFSET without LIMIT
		sb.WriteString("\nLIMIT -1")
	}
	if arg.Offset > 0 {
		sb.WriteString("\nOFFSET ")
		sb.WriteString(bind(int64(arg.Offset)))
	}

	return sb.String(), args
}
