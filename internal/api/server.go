// Package api expõe o relatório de vendas como JSON somente leitura
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/auction-sales-report/internal/api/handler"
	"github.com/vfg2006/auction-sales-report/internal/api/handler/router"
	"github.com/vfg2006/auction-sales-report/internal/config"
	"github.com/vfg2006/auction-sales-report/internal/usecases/reporting"
	"github.com/vfg2006/auction-sales-report/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

// Dependencies reúne o que os handlers precisam além da configuração
type Dependencies struct {
	Reporter   reporting.Reporter
	Scheduler  handler.RefreshScheduler
	SourceName string
}

func New(cfg *config.Config, deps Dependencies) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, deps),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}
}

// NewHandler monta o router com a cadeia de middlewares globais
func NewHandler(cfg *config.Config, deps Dependencies) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(deps.Reporter, deps.SourceName)...),
		router.WithRoutes(handler.Report(deps.Reporter, cfg.ReportRefresh.Timeout)...),
		router.WithRoutes(handler.CronJobs(deps.Scheduler)...),
	)

	logrus.WithField("routes", rt.Routes()).Debug("Rotas registradas")

	return alice.New(
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.AllowedOrigins),
	).Then(rt)
}

// Run atende até receber SIGINT/SIGTERM ou até ctx ser cancelado. Uma falha ao escutar na
// porta é devolvida imediatamente.
func (s *Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logrus.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("erro durante a execução do servidor: %w", err)
	case <-ctx.Done():
		logrus.Info("Sinal de encerramento recebido")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("erro durante o desligamento do servidor: %w", err)
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}
