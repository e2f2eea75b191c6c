// Package postgres abre a conexão com o banco que guarda as linhas de venda importadas
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/auction-sales-report/internal/config"
)

const (
	driverName      = "postgres"
	pingTimeout     = 5 * time.Second
	maxOpenConns    = 4
	connMaxIdleTime = 5 * time.Minute
)

// Conn é o que o restante do código usa do banco: consultas avulsas e transações
type Conn interface {
	Queryer
	Close() error
	RunInTransaction(ctx context.Context, fn func(tx Queryer) error) error
}

type Connection struct {
	db *sql.DB
}

var _ Conn = (*Connection)(nil)

// NewConnection abre o pool e confirma que o banco responde antes de devolvê-lo
func NewConnection(ctx context.Context, cfg config.Database) (*Connection, error) {
	db, err := sql.Open(driverName, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir conexão: %w", err)
	}

	// a geração do relatório lê um mês por vez, poucas conexões bastam
	db.SetMaxOpenConns(maxOpenConns)
	db.SetConnMaxIdleTime(connMaxIdleTime)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("banco de dados não respondeu em %s: %w", cfg.URL, err)
	}

	logrus.WithField("url", cfg.URL).Debug("Conexão com o banco de dados estabelecida")

	return NewFromDB(db), nil
}

// NewFromDB usa um *sql.DB já aberto, como o do sqlmock
func NewFromDB(db *sql.DB) *Connection {
	return &Connection{db: db}
}

func (c *Connection) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return c.db.ExecContext(ctx, query, args...)
}

func (c *Connection) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return c.db.QueryContext(ctx, query, args...)
}

func (c *Connection) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return c.db.QueryRowContext(ctx, query, args...)
}

func (c *Connection) Close() error {
	return c.db.Close()
}

// RunInTransaction executa fn dentro de uma transação. Erro ou panic em fn desfazem tudo.
func (c *Connection) RunInTransaction(ctx context.Context, fn func(tx Queryer) error) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transação: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback também falhou: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("erro ao confirmar transação: %w", err)
	}
	return nil
}
