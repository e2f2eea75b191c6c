package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/auction-sales-report/infrastructure/source"
	"github.com/vfg2006/auction-sales-report/internal/api"
	"github.com/vfg2006/auction-sales-report/internal/config"
	"github.com/vfg2006/auction-sales-report/internal/scheduler"
	"github.com/vfg2006/auction-sales-report/internal/usecases/aggregating"
	"github.com/vfg2006/auction-sales-report/internal/usecases/loading"
	"github.com/vfg2006/auction-sales-report/internal/usecases/reporting"
	"github.com/vfg2006/auction-sales-report/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	policy, err := config.BuildPolicy(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar a política de agregação")
	}

	backend, err := source.New(ctx, cfg, loading.NewLoader(loading.DefaultColumns))
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar a fonte de vendas")
	}
	defer func() {
		if err := backend.Close(); err != nil {
			logrus.WithError(err).Warn("Erro ao fechar a fonte de vendas")
		}
	}()

	reporter := reporting.NewService(backend.Source, aggregating.NewService(policy))
	refreshService := scheduler.NewReportRefreshService(reporter, cfg)

	// A primeira geração acontece antes de subir o servidor; uma falha aqui não impede a API de
	// responder, que devolve REP_001 até a próxima atualização bem-sucedida.
	if err := refreshService.RefreshReport(ctx); err != nil {
		logrus.WithError(err).Error("Erro na geração inicial do relatório")
	}

	if err := refreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização do relatório")
	} else {
		logrus.Info("Agendador de atualização do relatório iniciado com sucesso")
	}

	server := api.New(cfg, api.Dependencies{
		Reporter:   reporter,
		Scheduler:  refreshService,
		SourceName: backend.Name,
	})

	if err := server.Run(ctx); err != nil {
		logrus.WithError(err).Error("Servidor encerrado com erro")
	}
}
