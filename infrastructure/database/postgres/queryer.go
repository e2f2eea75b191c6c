package postgres

import (
	"context"
	"database/sql"
)

// Queryer é satisfeito por *Connection, *sql.DB e *sql.Tx. Os repositórios dependem só dele
// para rodar igual dentro e fora de transações.
type Queryer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
