package handler

import (
	"net/http"

	"github.com/vfg2006/sales-insights/internal/api/handler/router"
	"github.com/vfg2006/sales-insights/internal/usecases/reporting"
	"github.com/vfg2006/sales-insights/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Datasets(service reporting.ReportService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/datasets",
			Method:  http.MethodGet,
			Handler: ListDatasets(service),
		},
		{
			Path:    "/v1/datasets/:name/report",
			Method:  http.MethodGet,
			Handler: GetReport(service),
		},
		{
			Path:    "/v1/datasets/:name/charts",
			Method:  http.MethodGet,
			Handler: GetCharts(service),
		},
		{
			Path:    "/v1/datasets/:name/refresh",
			Method:  http.MethodPost,
			Handler: RefreshDataset(service),
		},
	}
}

func Reports(service reporting.ReportService, maxUploadBytes int64) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports",
			Method:  http.MethodPost,
			Handler: CreateReport(service),
			Middlewares: []func(http.Handler) http.Handler{
				middleware.LimitBody(maxUploadBytes),
			},
		},
	}
}

func CronJobs(job RefreshJob) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/refresh/run",
			Method:  http.MethodPost,
			Handler: RunRefreshJob(job),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetRefreshJobStatus(job),
		},
	}
}
