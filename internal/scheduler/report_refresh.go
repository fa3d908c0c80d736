package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-insights/internal/config"
	"github.com/vfg2006/sales-insights/pkg/log"
)

// DatasetRefresher regenera os relatórios de todos os datasets configurados
type DatasetRefresher interface {
	RefreshAll(ctx context.Context) error
}

// ReportRefreshConfig representa a configuração do agendador de atualização dos relatórios
type ReportRefreshConfig struct {
	CronSchedule string
	Enabled      bool
}

// ReportRefreshService agenda a releitura periódica dos datasets de vendas
type ReportRefreshService struct {
	scheduler              *gocron.Scheduler
	config                 ReportRefreshConfig
	refresher              DatasetRefresher
	ctx                    context.Context
	refreshRunning         bool
	refreshMutex           sync.Mutex
	lastRefreshStartedAt   time.Time
	lastRefreshCompletedAt time.Time
	lastRefreshError       error
}

// NewReportRefreshService cria o serviço de atualização a partir da config global
func NewReportRefreshService(refresher DatasetRefresher, appConfig *config.Config) *ReportRefreshService {
	refreshConfig := ReportRefreshConfig{
		CronSchedule: appConfig.Dataset.RefreshCron,
		Enabled:      appConfig.Dataset.RefreshEnabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   refreshConfig.CronSchedule,
		"refresh_enabled": refreshConfig.Enabled,
		"datasets":        len(appConfig.Dataset.Paths),
	}).Info("Configuração do agendador de relatórios carregada")

	return &ReportRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    refreshConfig,
		refresher: refresher,
		ctx:       context.Background(),
	}
}

// Start inicia o agendador
func (s *ReportRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Atualização agendada dos relatórios desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de atualização dos relatórios")

	s.refreshMutex.Lock()
	s.ctx = ctx
	s.refreshMutex.Unlock()

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(s.refreshReports)
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização dos relatórios: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização dos relatórios")
		s.scheduler.Stop()
	}()

	return nil
}

// refreshReports regenera todos os relatórios; execuções sobrepostas são ignoradas
func (s *ReportRefreshService) refreshReports() {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Info("Atualização dos relatórios já em andamento, ignorando")
		return
	}
	s.refreshRunning = true
	s.lastRefreshStartedAt = time.Now()
	ctx, _ := log.WithCorrelationID(s.ctx)
	s.refreshMutex.Unlock()

	startTime := time.Now()
	logger := log.ForContext(ctx)
	logger.Info("Iniciando atualização dos relatórios de vendas")

	err := s.refresher.RefreshAll(ctx)

	s.refreshMutex.Lock()
	s.refreshRunning = false
	s.lastRefreshCompletedAt = time.Now()
	s.lastRefreshError = err
	s.refreshMutex.Unlock()

	fields := log.Fields{"duration_ms": time.Since(startTime).Milliseconds()}
	if err != nil {
		logger.WithFields(fields).WithError(err).Error("Atualização dos relatórios concluída com falhas")
		return
	}

	logger.WithFields(fields).Info("Atualização dos relatórios concluída")
}

// TriggerManualSync inicia manualmente uma atualização dos relatórios
func (s *ReportRefreshService) TriggerManualSync() {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Info("Atualização dos relatórios já em andamento, ignorando solicitação manual")
		return
	}
	s.refreshMutex.Unlock()

	logrus.Info("Iniciando atualização manual dos relatórios")
	go s.refreshReports()
}

// GetStatus retorna o status atual da atualização
func (s *ReportRefreshService) GetStatus() map[string]any {
	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()

	lastError := ""
	if s.lastRefreshError != nil {
		lastError = s.lastRefreshError.Error()
	}

	return map[string]any{
		"refresh_running":           s.refreshRunning,
		"refresh_cron":              s.config.CronSchedule,
		"refresh_enabled":           s.config.Enabled,
		"last_refresh_started_at":   s.lastRefreshStartedAt,
		"last_refresh_completed_at": s.lastRefreshCompletedAt,
		"last_refresh_error":        lastError,
	}
}
