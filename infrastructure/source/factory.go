// Package source escolhe a origem dos dados de vendas conforme SOURCE_BACKEND
package source

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/auction-sales-report/infrastructure/database/postgres"
	"github.com/vfg2006/auction-sales-report/infrastructure/repository"
	"github.com/vfg2006/auction-sales-report/infrastructure/source/csvdir"
	"github.com/vfg2006/auction-sales-report/infrastructure/source/database"
	"github.com/vfg2006/auction-sales-report/infrastructure/source/sheets"
	"github.com/vfg2006/auction-sales-report/internal/config"
	"github.com/vfg2006/auction-sales-report/internal/usecases/loading"
	"github.com/vfg2006/auction-sales-report/internal/usecases/reporting"
	"github.com/vfg2006/auction-sales-report/pkg/utils"
)

// Backend agrupa a fonte criada e o que precisa ser liberado no encerramento
type Backend struct {
	Source reporting.SalesSource
	Name   string
	close  func() error
}

func (b *Backend) Close() error {
	if b.close == nil {
		return nil
	}
	return b.close()
}

// New cria a fonte configurada. Para o backend postgres a conexão é aberta aqui e fechada em Close.
func New(ctx context.Context, cfg *config.Config, loader *loading.Loader) (*Backend, error) {
	labels := cfg.Source.CurrentLabels

	switch cfg.Source.Backend {
	case config.SourceBackendCSV, "":
		src, err := csvdir.New(loader, cfg.Source.HistoricalDir, cfg.Source.CurrentFiles, labels)
		if err != nil {
			return nil, err
		}
		logrus.WithField("historical_dir", cfg.Source.HistoricalDir).Info("Usando arquivos CSV como fonte")
		return &Backend{Source: src, Name: config.SourceBackendCSV}, nil

	case config.SourceBackendPostgres:
		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("erro ao conectar no banco de dados: %w", err)
		}
		repo := repository.NewSaleRecordRepository(conn, cfg.Database.SalesTable, utils.GenerateID)
		logrus.WithField("table", cfg.Database.SalesTable).Info("Usando PostgreSQL como fonte")
		return &Backend{Source: database.New(repo, labels), Name: config.SourceBackendPostgres, close: conn.Close}, nil

	case config.SourceBackendSheets:
		src, err := sheets.New(ctx, cfg.Sheets, loader, labels)
		if err != nil {
			return nil, err
		}
		logrus.WithField("spreadsheet_id", cfg.Sheets.SpreadsheetID).Info("Usando Google Sheets como fonte")
		return &Backend{Source: src, Name: config.SourceBackendSheets}, nil

	default:
		return nil, fmt.Errorf("backend de fonte não suportado: %q", cfg.Source.Backend)
	}
}
