package handler

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

import (
	"context"

	"github.com/vfg2006/market-sales-report/internal/domain"
)

// Pinger verifica a disponibilidade do banco
type Pinger interface {
	Ping(ctx context.Context) error
}

// SyncController expõe o controle do agendador do relatório de vendas
type SyncController interface {
	TriggerManualSync(ctx context.Context) error
	GetStatus() map[string]any
}

// JobLister lista as execuções registradas no diário de jobs
type JobLister interface {
	ListRecent(ctx context.Context, limit uint64) ([]*domain.ReportJob, error)
}
