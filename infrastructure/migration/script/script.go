// Script de importação: copia as exportações CSV configuradas (diretório histórico e arquivos do
// ciclo corrente) para a tabela de vendas usada pelo backend postgres. Cada mês é substituído
// por inteiro dentro de uma única transação.
package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/auction-sales-report/infrastructure/database/postgres"
	"github.com/vfg2006/auction-sales-report/infrastructure/repository"
	"github.com/vfg2006/auction-sales-report/infrastructure/source/csvdir"
	"github.com/vfg2006/auction-sales-report/internal/config"
	"github.com/vfg2006/auction-sales-report/internal/domain"
	"github.com/vfg2006/auction-sales-report/internal/usecases/loading"
	"github.com/vfg2006/auction-sales-report/pkg/log"
	"github.com/vfg2006/auction-sales-report/pkg/utils"
)

func main() {
	startTime := time.Now()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("erro ao carregar configuração: %v", err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Info("Iniciando script de importação...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	loader := loading.NewLoader(loading.DefaultColumns)
	src, err := csvdir.New(loader, cfg.Source.HistoricalDir, cfg.Source.CurrentFiles, cfg.Source.CurrentLabels)
	if err != nil {
		logrus.Fatalf("erro ao configurar leitura dos CSV: %v", err)
	}

	months, err := readAll(ctx, src)
	if err != nil {
		logrus.Fatalf("erro ao ler CSV: %v", err)
	}

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.Fatalf("erro ao conectar no banco de dados: %v", err)
	}
	defer conn.Close()

	if err := repository.CreateSalesTable(ctx, conn, cfg.Database.SalesTable); err != nil {
		logrus.Fatal(err)
	}

	err = conn.RunInTransaction(ctx, func(tx postgres.Queryer) error {
		repo := repository.NewSaleRecordRepository(tx, cfg.Database.SalesTable, utils.GenerateID)
		return importMonths(ctx, repo, months)
	})
	if err != nil {
		logrus.Fatalf("importação cancelada: %v", err)
	}

	logrus.WithFields(logrus.Fields{
		"months":  len(months),
		"elapsed": time.Since(startTime).String(),
	}).Info("Importação concluída")
}

func readAll(ctx context.Context, src *csvdir.Source) ([]domain.MonthlySales, error) {
	historical, err := src.HistoricalMonths(ctx)
	if err != nil {
		return nil, err
	}

	current, err := src.CurrentMonths(ctx)
	if err != nil {
		return nil, err
	}

	return append(historical, current...), nil
}

func importMonths(ctx context.Context, repo repository.SaleRecordRepository, months []domain.MonthlySales) error {
	for i, month := range months {
		removed, err := repo.DeletePeriod(ctx, month.Label)
		if err != nil {
			return err
		}

		inserted, err := repo.InsertPeriod(ctx, month.Label, month.Records)
		if err != nil {
			return err
		}

		logrus.WithFields(logrus.Fields{
			"month":    month.Label,
			"removed":  removed,
			"inserted": inserted,
		}).Infof("Progresso: %d/%d meses importados", i+1, len(months))
	}

	return nil
}
