package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/market-sales-report/infrastructure/database/postgres"
	"github.com/vfg2006/market-sales-report/infrastructure/integrator/market"
	"github.com/vfg2006/market-sales-report/infrastructure/integrator/market/marketclient"
	"github.com/vfg2006/market-sales-report/infrastructure/migration"
	"github.com/vfg2006/market-sales-report/infrastructure/repository"
	"github.com/vfg2006/market-sales-report/infrastructure/storage"
	"github.com/vfg2006/market-sales-report/internal/config"
	"github.com/vfg2006/market-sales-report/internal/domain"
	"github.com/vfg2006/market-sales-report/internal/usecases/fetching"
	"github.com/vfg2006/market-sales-report/internal/usecases/loading"
	"github.com/vfg2006/market-sales-report/internal/usecases/syncing"
	"github.com/vfg2006/market-sales-report/pkg/log"
	"github.com/vfg2006/market-sales-report/pkg/metrics"
)

// application agrupa as dependências montadas para os comandos
type application struct {
	cfg      *config.Config
	conn     *postgres.Connection
	recorder *metrics.PrometheusRecorder
	jobRepo  repository.ReportJobRepository
	fetcher  *fetching.Service
	loader   *loading.Service
	pipeline *syncing.Service
}

// loadConfig carrega e valida a configuração e ajusta o logger global
func loadConfig() (*config.Config, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}

	log.Configure(cfg.App.LogLevel, cfg.App.IsDevelopment())

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuração inválida: %w", err)
	}

	return cfg, nil
}

// pgconn cria uma conexão com o banco de dados e aplica as migrações pendentes
func pgconn(ctx context.Context, dbConfig config.Database) (*postgres.Connection, error) {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
	}

	if err := migration.Up(conn.DB); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("erro ao aplicar as migrações: %w", err)
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn, nil
}

func newApplication(ctx context.Context) (*application, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	conn, err := pgconn(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	recorder := metrics.NewPrometheusRecorder()

	salesReportRepo := repository.NewSalesReportRepository(conn)
	jobRepo := repository.NewReportJobRepository(conn)

	marketClient := marketclient.NewClient(cfg)
	marketIntegrator := market.New(cfg, marketClient, recorder)

	var mirror fetching.ArchiveMirror
	if cfg.ArchiveMirror.Enabled {
		minioMirror, err := storage.NewFromConfig(cfg.ArchiveMirror)
		if err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("erro ao configurar o mirror de arquivos: %w", err)
		}
		mirror = minioMirror
		logrus.WithField("bucket", minioMirror.Bucket()).Info("Mirror de arquivos habilitado")
	}

	fetcher := fetching.NewService(cfg, marketClient, mirror, recorder)
	loader := loading.NewService(cfg, salesReportRepo, recorder)
	pipeline := syncing.NewService(cfg, marketIntegrator, fetcher, loader, jobRepo, recorder)

	return &application{
		cfg:      cfg,
		conn:     conn,
		recorder: recorder,
		jobRepo:  jobRepo,
		fetcher:  fetcher,
		loader:   loader,
		pipeline: pipeline,
	}, nil
}

// Run executa o pipeline e envia as métricas da execução ao Pushgateway
func (a *application) Run(ctx context.Context, req syncing.Request) (*domain.RunSummary, error) {
	summary, runErr := a.pipeline.Run(ctx, req)
	a.pushMetrics(ctx)
	return summary, runErr
}

func (a *application) pushMetrics(ctx context.Context) {
	if err := a.recorder.Push(ctx, a.cfg.Metrics.PushgatewayURL, a.cfg.Metrics.JobName); err != nil {
		log.ForContext(ctx).WithError(err).Warn("Falha ao enviar métricas")
	}
}

func (a *application) Close() {
	if err := a.conn.Close(); err != nil {
		logrus.WithError(err).Warn("Erro ao fechar a conexão com o banco")
	}
}
