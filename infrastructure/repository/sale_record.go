// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/auction-sales-report/infrastructure/database/postgres"
	"github.com/vfg2006/auction-sales-report/internal/domain"
	"github.com/vfg2006/auction-sales-report/internal/usecases/loading"
)

// DefaultSalesTable é a tabela usada quando SALES_TABLE não é configurada
const DefaultSalesTable = "sale_records"

//go:generate mockgen -source=sale_record.go -destination=mocks/mock_sale_record.go -package=mocks

// SaleRecordRepository lê e grava linhas de venda agrupadas por rótulo de mês
type SaleRecordRepository interface {
	ListPeriods(ctx context.Context) ([]string, error)
	ListByPeriod(ctx context.Context, period string) ([]domain.SaleRecord, error)
	InsertPeriod(ctx context.Context, period string, records []domain.SaleRecord) (int, error)
	DeletePeriod(ctx context.Context, period string) (int64, error)
}

type saleRecordRepository struct {
	db         postgres.Queryer
	table      string
	generateID func() (string, error)
}

func NewSaleRecordRepository(db postgres.Queryer, table string, generateID func() (string, error)) SaleRecordRepository {
	if table == "" {
		table = DefaultSalesTable
	}

	return &saleRecordRepository{
		db:         db,
		table:      table,
		generateID: generateID,
	}
}

func (r *saleRecordRepository) ListPeriods(ctx context.Context) ([]string, error) {
	sqlQuery, args, err := squirrel.
		Select("DISTINCT period_label").
		From(r.table).
		OrderBy("period_label ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar períodos: %w", err)
	}
	defer rows.Close()

	periods := make([]string, 0)
	for rows.Next() {
		var period string
		if err := rows.Scan(&period); err != nil {
			return nil, fmt.Errorf("erro ao ler período: %w", err)
		}
		periods = append(periods, period)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar períodos: %w", err)
	}

	return periods, nil
}

func (r *saleRecordRepository) ListByPeriod(ctx context.Context, period string) ([]domain.SaleRecord, error) {
	sqlQuery, args, err := squirrel.
		Select(
			"ctag",
			"brand_name",
			"sold",
			"profit_loss",
			"cost_after_tax",
		).
		From(r.table).
		Where(squirrel.Eq{"period_label": period}).
		OrderBy("line_number ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas de %s: %w", period, err)
	}
	defer rows.Close()

	records := make([]domain.SaleRecord, 0)
	for rows.Next() {
		var (
			tag, brand, cost sql.NullString
			sold             sql.NullBool
			profit           decimal.NullDecimal
		)

		if err := rows.Scan(&tag, &brand, &sold, &profit, &cost); err != nil {
			return nil, fmt.Errorf("erro ao ler venda de %s: %w", period, err)
		}

		records = append(records, domain.SaleRecord{
			ItemTag:    tag.String,
			BrandName:  brand.String,
			Sold:       sold.Valid && sold.Bool,
			ProfitLoss: profit,
			Cost:       loading.ParseCurrency(cost.String),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar vendas de %s: %w", period, err)
	}

	return records, nil
}

// insertBatchSize limita as linhas por INSERT: 8 parâmetros por linha ficam bem abaixo do
// limite de 65535 parâmetros do Postgres
const insertBatchSize = 1000

// InsertPeriod grava as linhas de um mês preservando a ordem de leitura em line_number. Meses
// grandes são gravados em vários INSERTs; use dentro de uma transação para manter o mês inteiro.
func (r *saleRecordRepository) InsertPeriod(ctx context.Context, period string, records []domain.SaleRecord) (int, error) {
	for start := 0; start < len(records); start += insertBatchSize {
		end := min(start+insertBatchSize, len(records))
		if err := r.insertBatch(ctx, period, start, records[start:end]); err != nil {
			return start, err
		}
	}

	return len(records), nil
}

// insertBatch grava records com line_number a partir de offset+1
func (r *saleRecordRepository) insertBatch(ctx context.Context, period string, offset int, records []domain.SaleRecord) error {
	builder := squirrel.
		Insert(r.table).
		Columns("id", "period_label", "line_number", "ctag", "brand_name", "sold", "profit_loss", "cost_after_tax").
		PlaceholderFormat(squirrel.Dollar)

	for i, record := range records {
		var cost interface{}
		if record.Cost.Valid {
			cost = record.Cost.Decimal.String()
		}

		id, err := r.generateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar id: %w", err)
		}

		builder = builder.Values(
			id,
			period,
			offset+i+1,
			record.ItemTag,
			record.BrandName,
			record.Sold,
			record.ProfitLoss,
			cost,
		)
	}

	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao inserir vendas de %s: %w", period, err)
	}

	return nil
}

func (r *saleRecordRepository) DeletePeriod(ctx context.Context, period string) (int64, error) {
	sqlQuery, args, err := squirrel.
		Delete(r.table).
		Where(squirrel.Eq{"period_label": period}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao remover vendas de %s: %w", period, err)
	}

	return result.RowsAffected()
}

const createSalesTableSQL = `CREATE TABLE IF NOT EXISTS %s (
	id             VARCHAR(16) PRIMARY KEY,
	period_label   VARCHAR(16) NOT NULL,
	line_number    INTEGER NOT NULL,
	ctag           TEXT,
	brand_name     TEXT,
	sold           BOOLEAN NOT NULL DEFAULT FALSE,
	profit_loss    NUMERIC(14, 2),
	cost_after_tax TEXT,
	created_at     TIMESTAMP NOT NULL DEFAULT NOW()
)`

// CreateSalesTable cria a tabela de vendas e o índice por período, se ainda não existirem.
// Um table vazio usa DefaultSalesTable.
func CreateSalesTable(ctx context.Context, db postgres.Queryer, table string) error {
	if table == "" {
		table = DefaultSalesTable
	}

	if _, err := db.ExecContext(ctx, fmt.Sprintf(createSalesTableSQL, table)); err != nil {
		return fmt.Errorf("erro ao criar tabela %s: %w", table, err)
	}

	index := fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s_period_idx ON %s (period_label, line_number)", table, table)
	if _, err := db.ExecContext(ctx, index); err != nil {
		return fmt.Errorf("erro ao criar índice de %s: %w", table, err)
	}

	return nil
}
