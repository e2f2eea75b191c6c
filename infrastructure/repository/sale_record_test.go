package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/auction-sales-report/internal/domain"
)

func fixedID() (string, error) {
	return "id000000001", nil
}

func newMockRepository(t *testing.T) (SaleRecordRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewSaleRecordRepository(db, "", fixedID), mock
}

func TestSaleRecordRepository_ListPeriods(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery("SELECT DISTINCT period_label FROM sale_records ORDER BY period_label ASC").
		WillReturnRows(sqlmock.NewRows([]string{"period_label"}).
			AddRow("February_25").
			AddRow("March"))

	periods, err := repo.ListPeriods(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"February_25", "March"}, periods)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleRecordRepository_ListByPeriod(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery("SELECT ctag, brand_name, sold, profit_loss, cost_after_tax FROM sale_records WHERE period_label = $1 ORDER BY line_number ASC").
		WithArgs("March").
		WillReturnRows(sqlmock.NewRows([]string{"ctag", "brand_name", "sold", "profit_loss", "cost_after_tax"}).
			AddRow("A001", "Hermes", true, "1200.50", "¥1,000").
			AddRow("A002", nil, false, nil, nil))

	records, err := repo.ListByPeriod(context.Background(), "March")

	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "A001", records[0].ItemTag)
	assert.True(t, records[0].Sold)
	assert.True(t, records[0].ProfitLoss.Decimal.Equal(decimal.RequireFromString("1200.50")))
	assert.Equal(t, "1000", records[0].Cost.Decimal.String())

	assert.Empty(t, records[1].BrandName)
	assert.False(t, records[1].Sold)
	assert.False(t, records[1].ProfitLoss.Valid)
	assert.False(t, records[1].Cost.Valid)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleRecordRepository_ListByPeriod_QueryError(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery("SELECT ctag, brand_name, sold, profit_loss, cost_after_tax FROM sale_records WHERE period_label = $1 ORDER BY line_number ASC").
		WithArgs("March").
		WillReturnError(errors.New("conexão perdida"))

	_, err := repo.ListByPeriod(context.Background(), "March")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "conexão perdida")
}

func TestSaleRecordRepository_InsertAndDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewSaleRecordRepository(db, "vendas", fixedID)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM vendas WHERE period_label = $1")).
		WithArgs("March").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO vendas (id,period_label,line_number,ctag,brand_name,sold,profit_loss,cost_after_tax) VALUES")).
		WillReturnResult(sqlmock.NewResult(0, 2))

	removed, err := repo.DeletePeriod(context.Background(), "March")
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)

	inserted, err := repo.InsertPeriod(context.Background(), "March", []domain.SaleRecord{
		{ItemTag: "A001", BrandName: "Hermes", Sold: true, ProfitLoss: decimal.NewNullDecimal(decimal.NewFromInt(10))},
		{ItemTag: "A002", BrandName: "Chanel"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)

	inserted, err = repo.InsertPeriod(context.Background(), "April", nil)
	require.NoError(t, err)
	assert.Zero(t, inserted)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleRecordRepository_InsertPeriod_Batches(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewSaleRecordRepository(db, "", fixedID)

	records := make([]domain.SaleRecord, insertBatchSize*2+500)
	for i := range records {
		records[i] = domain.SaleRecord{ItemTag: fmt.Sprintf("T%05d", i), Sold: i%2 == 0}
	}

	insert := regexp.QuoteMeta("INSERT INTO sale_records (id,period_label,line_number,ctag,brand_name,sold,profit_loss,cost_after_tax) VALUES")
	mock.ExpectExec(insert).WillReturnResult(sqlmock.NewResult(0, insertBatchSize))
	mock.ExpectExec(insert).WillReturnResult(sqlmock.NewResult(0, insertBatchSize))
	// o último lote começa na linha 2001 e tem 500 linhas
	lastBatch := make([]driver.Value, 0, 8*500)
	for i := insertBatchSize * 2; i < len(records); i++ {
		lastBatch = append(lastBatch, "id000000001", "March", int64(i+1), records[i].ItemTag, "", records[i].Sold, nil, nil)
	}
	mock.ExpectExec(insert).WithArgs(lastBatch...).WillReturnResult(sqlmock.NewResult(0, 500))

	inserted, err := repo.InsertPeriod(context.Background(), "March", records)

	require.NoError(t, err)
	assert.Equal(t, len(records), inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleRecordRepository_InsertPeriod_BatchError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewSaleRecordRepository(db, "", fixedID)
	records := make([]domain.SaleRecord, insertBatchSize+1)

	mock.ExpectExec("INSERT INTO sale_records").WillReturnResult(sqlmock.NewResult(0, insertBatchSize))
	mock.ExpectExec("INSERT INTO sale_records").WillReturnError(errors.New("disco cheio"))

	inserted, err := repo.InsertPeriod(context.Background(), "March", records)

	assert.ErrorContains(t, err, "disco cheio")
	assert.Equal(t, insertBatchSize, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSalesTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS sale_records (")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("CREATE INDEX IF NOT EXISTS sale_records_period_idx ON sale_records (period_label, line_number)")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, CreateSalesTable(context.Background(), db, ""))
	assert.NoError(t, mock.ExpectationsWereMet())
}
