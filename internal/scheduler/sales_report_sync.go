package scheduler

//go:generate mockgen -source=sales_report_sync.go -destination=mocks/mock_sales_report_sync.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/market-sales-report/internal/config"
	"github.com/vfg2006/market-sales-report/internal/domain"
	"github.com/vfg2006/market-sales-report/internal/usecases/syncing"
	"github.com/vfg2006/market-sales-report/pkg/log"
)

// ErrSyncAlreadyRunning é devolvido quando uma execução ainda não terminou
var ErrSyncAlreadyRunning = errors.New("sales report sync already running")

// PipelineRunner executa uma rodada completa do pipeline de relatório
type PipelineRunner interface {
	Run(ctx context.Context, req syncing.Request) (*domain.RunSummary, error)
}

// SalesReportSyncConfig representa a configuração do agendador do relatório de vendas
type SalesReportSyncConfig struct {
	CronSchedule string
	LookbackDays int
	SyncEnabled  bool
}

// SalesReportSyncService agenda a execução do pipeline para os últimos dias fechados
type SalesReportSyncService struct {
	scheduler           *gocron.Scheduler
	config              SalesReportSyncConfig
	runner              PipelineRunner
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
	lastSummary         *domain.RunSummary
	now                 func() time.Time
}

// NewSalesReportSyncService cria uma nova instância do serviço de sincronização do relatório de vendas
func NewSalesReportSyncService(runner PipelineRunner, appConfig *config.Config) *SalesReportSyncService {
	syncConfig := SalesReportSyncConfig{
		CronSchedule: appConfig.SalesReportSync.CronSchedule,
		LookbackDays: appConfig.SalesReportSync.LookbackDays,
		SyncEnabled:  appConfig.SalesReportSync.Enabled,
	}

	if syncConfig.LookbackDays <= 0 {
		syncConfig.LookbackDays = 1
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"lookback_days": syncConfig.LookbackDays,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador do relatório de vendas carregada")

	return &SalesReportSyncService{
		scheduler:   gocron.NewScheduler(time.Local),
		config:      syncConfig,
		runner:      runner,
		syncRunning: false,
		now:         time.Now,
	}
}

// Start inicia o agendador
func (s *SalesReportSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização do relatório de vendas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do relatório de vendas")

	// Uma execução por vez: gocron não inicia outra enquanto a anterior roda
	_, err := s.scheduler.Cron(s.config.CronSchedule).SingletonMode().Do(func() {
		_ = s.syncSalesReport(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização do relatório de vendas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do relatório de vendas")
		s.scheduler.Stop()
	}()

	return nil
}

// syncSalesReport executa o pipeline para a janela configurada
func (s *SalesReportSyncService) syncSalesReport(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização do relatório de vendas já em andamento, ignorando")
		return ErrSyncAlreadyRunning
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	ctx, runID := log.WithRunID(ctx)
	dateFrom, dateTo := s.getPeriodToProcess()

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"date_from": dateFrom.Format(time.DateOnly),
		"date_to":   dateTo.Format(time.DateOnly),
	})
	logger.Info("Iniciando sincronização do relatório de vendas")

	summary, err := s.runner.Run(ctx, syncing.Request{
		DateFrom: dateFrom,
		DateTo:   dateTo,
	})

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if err != nil {
		s.lastSyncError = err.Error()
		logger.WithError(err).Error("Erro na sincronização do relatório de vendas")
		return err
	}

	s.lastSyncError = ""
	s.lastSummary = summary
	s.lastSyncCompletedAt = s.now()

	logger.WithFields(log.Fields{
		"run_id":       runID,
		"report_id":    summary.ReportID,
		"files_loaded": summary.FilesLoaded,
	}).Info("Sincronização do relatório de vendas concluída")

	return nil
}

// getPeriodToProcess devolve os últimos LookbackDays dias terminando ontem
func (s *SalesReportSyncService) getPeriodToProcess() (time.Time, time.Time) {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	dateTo := today.AddDate(0, 0, -1)
	dateFrom := dateTo.AddDate(0, 0, -(s.config.LookbackDays - 1))

	return dateFrom, dateTo
}

// TriggerManualSync inicia manualmente uma sincronização do relatório de vendas em background
func (s *SalesReportSyncService) TriggerManualSync(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização do relatório de vendas já em andamento, ignorando solicitação manual")
		return ErrSyncAlreadyRunning
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual do relatório de vendas")
	go func() {
		_ = s.syncSalesReport(ctx)
	}()

	return nil
}

// GetStatus retorna o status atual do agendador
func (s *SalesReportSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}

	if s.lastSummary != nil {
		status["last_report_id"] = s.lastSummary.ReportID
		status["last_files_loaded"] = s.lastSummary.FilesLoaded
	}

	return status
}
