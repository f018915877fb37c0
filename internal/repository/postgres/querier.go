// postgres/querier.go
package postgres

import (
	"context"
	"database/sql"
)

// Querier - общее подмножество *sql.DB и *sql.Tx
type Querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// querier возвращает транзакцию из контекста (если WithinTx ее открыл), иначе пул
func (p *PostgresStorage) querier(ctx context.Context) Querier {
	if tx, ok := ctx.Value(keyTxValue).(*sql.Tx); ok {
		return tx
	}
	return p.db
}
