// Comando report gera o relatório uma única vez e o escreve como JSON indentado na saída padrão
package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/auction-sales-report/infrastructure/source"
	"github.com/vfg2006/auction-sales-report/internal/config"
	"github.com/vfg2006/auction-sales-report/internal/usecases/aggregating"
	"github.com/vfg2006/auction-sales-report/internal/usecases/loading"
	"github.com/vfg2006/auction-sales-report/internal/usecases/reporting"
	"github.com/vfg2006/auction-sales-report/pkg/log"
	"github.com/vfg2006/auction-sales-report/pkg/utils"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	// stdout fica reservado para o JSON do relatório
	logrus.SetOutput(os.Stderr)

	ctx := context.Background()
	if cfg.ReportRefresh.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ReportRefresh.Timeout)
		defer cancel()
	}

	policy, err := config.BuildPolicy(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar a política de agregação")
	}

	backend, err := source.New(ctx, cfg, loading.NewLoader(loading.DefaultColumns))
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar a fonte de vendas")
	}
	defer backend.Close()

	report, err := reporting.NewService(backend.Source, aggregating.NewService(policy)).Generate(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao gerar o relatório")
		backend.Close()
		os.Exit(1)
	}

	if err := utils.WriteIndentedJSON(os.Stdout, report); err != nil {
		logrus.WithError(err).Error("Erro ao escrever o relatório")
		backend.Close()
		os.Exit(1)
	}
}
