package db

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

type ChocolatinVariablesHistory struct {
	ID        int64
	Module    string
	Address   string
	Symbol    pgtype.Text
	DataType  pgtype.Text
	Comment   pgtype.Text
	Value     pgtype.Text
	Timestamp time.Time
	CreatedAt *time.Time
}
