package handler

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/market-sales-report/internal/api/handler/router"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Metrics(gatherer prometheus.Gatherer) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}),
		},
	}
}

func SyncJobs(baseCtx context.Context, controller SyncController) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sync/status",
			Method:  http.MethodGet,
			Handler: GetSyncStatus(controller),
		},
		{
			Path:    "/v1/sync/trigger",
			Method:  http.MethodPost,
			Handler: TriggerSync(baseCtx, controller),
		},
	}
}

func ReportJobs(jobs JobLister) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/jobs",
			Method:  http.MethodGet,
			Handler: ListJobs(jobs),
		},
	}
}
