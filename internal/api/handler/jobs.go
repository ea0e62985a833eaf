package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/market-sales-report/pkg/apiErrors"
	"github.com/vfg2006/market-sales-report/pkg/log"
)

const (
	defaultJobsLimit = 20
	maxJobsLimit     = 200
)

// ListJobs lista as execuções mais recentes, aceitando ?limit=N
func ListJobs(jobs JobLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := uint64(defaultJobsLimit)

		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.ParseUint(raw, 10, 64)
			if err != nil || parsed == 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser um inteiro positivo", nil)
				return
			}
			limit = min(parsed, maxJobsLimit)
		}

		result, err := jobs.ListRecent(r.Context(), limit)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao listar jobs de relatório")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar jobs", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"jobs":  result,
			"count": len(result),
		})
	}
}
