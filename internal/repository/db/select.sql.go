package db

import "context"

func (q *Queries) ListVariables(ctx context.Context, arg ListVariablesParams) ([]ChocolatinVariablesHistory, error) {
	query, args := BuildListVariables(Postgres, arg)
	rows, err := q.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ChocolatinVariablesHistory
	for rows.Next() {
		var i ChocolatinVariablesHistory
		if err := rows.Scan(
			&i.ID, &i.Module, &i.Address, &i.Symbol, &i.DataType,
			&i.Comment, &i.Value, &i.Timestamp, &i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
