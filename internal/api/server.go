package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/market-sales-report/internal/api/handler"
	"github.com/vfg2006/market-sales-report/internal/api/handler/router"
	"github.com/vfg2006/market-sales-report/internal/config"
	"github.com/vfg2006/market-sales-report/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

// Dependencies agrupa o que o servidor de operação expõe
type Dependencies struct {
	DB       handler.Pinger
	Sync     handler.SyncController
	Jobs     handler.JobLister
	Gatherer prometheus.Gatherer
}

type Server struct {
	httpServer *http.Server
}

// New monta o servidor de operação. baseCtx é o contexto das sincronizações
// iniciadas pela API, que sobrevivem ao fim da requisição.
func New(baseCtx context.Context, cfg *config.Config, deps Dependencies) *Server {
	configs := []router.ConfigRouter{
		router.WithRoutes(handler.Healthcheck(deps.DB)...),
		router.WithRoutes(handler.SyncJobs(baseCtx, deps.Sync)...),
		router.WithRoutes(handler.ReportJobs(deps.Jobs)...),
	}
	if deps.Gatherer != nil {
		configs = append(configs, router.WithRoutes(handler.Metrics(deps.Gatherer)...))
	}

	rt := router.New(configs...)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.OpsTokenMiddleware(cfg.Server.OpsToken),
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}
}

// Handler devolve o handler HTTP com todos os middlewares
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run atende requisições até o cancelamento do contexto e então desliga o servidor
func (s *Server) Run(ctx context.Context) error {
	serveErr := make(chan error, 1)

	go func() {
		logrus.WithField("address", s.httpServer.Addr).Info("Servidor de operação iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err, ok := <-serveErr:
		if ok {
			return fmt.Errorf("erro durante a execução do servidor: %w", err)
		}
		return nil
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor de operação desligado com sucesso")
	return nil
}
