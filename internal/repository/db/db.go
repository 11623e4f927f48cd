package db

import (
	"context"

	"github.com/jackc/pgx/v5"
)

type DBTX interface {
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

type Queries struct {
	db DBTX
}
