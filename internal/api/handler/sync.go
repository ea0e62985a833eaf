package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/vfg2006/market-sales-report/internal/scheduler"
	"github.com/vfg2006/market-sales-report/pkg/apiErrors"
	"github.com/vfg2006/market-sales-report/pkg/log"
)

// TriggerSync inicia uma sincronização fora do horário agendado.
// A execução usa baseCtx e não é interrompida ao final da requisição.
func TriggerSync(baseCtx context.Context, controller SyncController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if controller == nil {
			apiErrors.WriteError(w, apiErrors.ErrSyncDisabled, "Sincronização do relatório de vendas não disponível", nil)
			return
		}

		err := controller.TriggerManualSync(baseCtx)
		if errors.Is(err, scheduler.ErrSyncAlreadyRunning) {
			apiErrors.WriteError(w, apiErrors.ErrSyncAlreadyRunning, "Já existe uma sincronização em andamento", nil)
			return
		}
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao iniciar a sincronização manual")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao iniciar a sincronização", nil)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Sincronização iniciada com sucesso",
		})
	}
}

// GetSyncStatus retorna o status do agendador
func GetSyncStatus(controller SyncController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if controller == nil {
			apiErrors.WriteError(w, apiErrors.ErrSyncDisabled, "Sincronização do relatório de vendas não disponível", nil)
			return
		}

		writeJSON(w, http.StatusOK, controller.GetStatus())
	}
}
