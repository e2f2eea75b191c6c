// Package scheduler contém os serviços de agendamento para atualização do relatório
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/auction-sales-report/internal/config"
	"github.com/vfg2006/auction-sales-report/internal/usecases/reporting"
)

type ReportRefreshConfig struct {
	CronSchedule string
	Enabled      bool
	Timeout      time.Duration
}

// ReportRefreshService reexecuta o pipeline completo do relatório no horário configurado
type ReportRefreshService struct {
	scheduler *gocron.Scheduler
	reporter  reporting.Reporter
	config    ReportRefreshConfig

	// contexto do processo guardado em Start; atualizações manuais são canceladas junto com ele
	mutex   sync.RWMutex
	baseCtx context.Context
}

func NewReportRefreshService(reporter reporting.Reporter, cfg *config.Config) *ReportRefreshService {
	refreshConfig := ReportRefreshConfig{
		CronSchedule: cfg.ReportRefresh.CronSchedule, // Default: 6h da manhã todos os dias
		Enabled:      cfg.ReportRefresh.Enabled,      // Default: desabilitado
		Timeout:      cfg.ReportRefresh.Timeout,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"enabled":       refreshConfig.Enabled,
	}).Info("Configuração do agendador do relatório carregada")

	return &ReportRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		reporter:  reporter,
		config:    refreshConfig,
	}
}

func (s *ReportRefreshService) Start(ctx context.Context) error {
	s.mutex.Lock()
	s.baseCtx = ctx
	s.mutex.Unlock()

	if !s.config.Enabled {
		logrus.Info("Cron de atualização do relatório desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de atualização do relatório")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RefreshReport(ctx); err != nil {
			logrus.WithError(err).Error("Erro na atualização agendada do relatório")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do relatório: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do relatório")
		s.scheduler.Stop()
	}()

	return nil
}

// RefreshReport executa uma atualização, ignorando a chamada se outra já estiver em andamento
func (s *ReportRefreshService) RefreshReport(ctx context.Context) error {
	if s.reporter.Status().Running {
		logrus.Warn("Atualização do relatório já está em execução")
		return nil
	}

	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	startedAt := time.Now()
	report, err := s.reporter.Refresh(ctx)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"run_id":   report.RunID,
		"duration": time.Since(startedAt).String(),
	}).Info("Relatório atualizado")

	return nil
}

// TriggerManualSync inicia manualmente uma atualização em background, presa ao contexto de Start
func (s *ReportRefreshService) TriggerManualSync() {
	ctx := s.backgroundContext()
	go func() {
		if err := s.RefreshReport(ctx); err != nil {
			logrus.WithError(err).Error("Erro na atualização manual do relatório")
		}
	}()
}

func (s *ReportRefreshService) backgroundContext() context.Context {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.baseCtx == nil {
		return context.Background()
	}
	return s.baseCtx
}

// GetStatus retorna o status atual do agendador
func (s *ReportRefreshService) GetStatus() map[string]any {
	status := s.reporter.Status()

	result := map[string]any{
		"enabled":           s.config.Enabled,
		"cron_schedule":     s.config.CronSchedule,
		"running":           status.Running,
		"report_available":  status.ReportAvailable,
		"last_run_id":       status.LastRunID,
		"last_error":        status.LastError,
		"last_started_at":   status.LastStartedAt,
		"last_completed_at": status.LastCompletedAt,
	}

	if s.scheduler.IsRunning() {
		_, next := s.scheduler.NextRun()
		result["next_run_at"] = next
	}

	return result
}
