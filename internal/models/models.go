package models

import "time"

// Reading is one row of chocolatin_variables_history.
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

// Page carries the optional pagination of a list request. Zero means the
// parameter was not supplied.
type Page struct {
	Limit  int
	Offset int
}
