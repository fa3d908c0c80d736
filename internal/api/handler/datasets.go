package handler

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-insights/internal/charting"
	"github.com/vfg2006/sales-insights/internal/usecases/reporting"
	"github.com/vfg2006/sales-insights/pkg/apiErrors"
	"github.com/vfg2006/sales-insights/pkg/log"
)

const defaultUploadName = "upload"

// ListDatasets retorna os datasets configurados e o último relatório de cada um
func ListDatasets(service reporting.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		datasets := service.ListDatasets()
		logger.WithField("datasets", len(datasets)).Info("datasets: listando datasets configurados")

		writeJSON(w, http.StatusOK, datasets, logger)
	})
}

// GetReport retorna o relatório completo de um dataset
func GetReport(service reporting.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := httprouter.ParamsFromContext(r.Context()).ByName("name")
		logger := log.ForContext(r.Context()).WithField("dataset", name)

		report, err := service.GetReport(r.Context(), name)
		if err != nil {
			logger.WithError(err).Error("report: erro ao obter relatório")
			writeReportError(w, err, false)
			return
		}

		writeJSON(w, http.StatusOK, report, logger)
	})
}

// GetCharts retorna as séries dos quatro gráficos do relatório
func GetCharts(service reporting.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := httprouter.ParamsFromContext(r.Context()).ByName("name")
		logger := log.ForContext(r.Context()).WithField("dataset", name)

		report, err := service.GetReport(r.Context(), name)
		if err != nil {
			logger.WithError(err).Error("charts: erro ao obter relatório")
			writeReportError(w, err, false)
			return
		}

		writeJSON(w, http.StatusOK, charting.Dashboard(report), logger)
	})
}

// RefreshDataset relê o arquivo do dataset e regenera o relatório imediatamente
func RefreshDataset(service reporting.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := httprouter.ParamsFromContext(r.Context()).ByName("name")
		logger := log.ForContext(r.Context()).WithField("dataset", name)

		report, err := service.Refresh(r.Context(), name)
		if err != nil {
			logger.WithError(err).Error("refresh: erro ao regenerar relatório")
			writeReportError(w, err, false)
			return
		}

		logger.WithField("report_id", report.ID).Info("refresh: relatório regenerado")
		writeJSON(w, http.StatusOK, report, logger)
	})
}

// CreateReport gera um relatório avulso a partir do CSV enviado no corpo da requisição
// O limite de tamanho do corpo é aplicado pela rota (middleware.LimitBody).
func CreateReport(service reporting.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimSpace(r.URL.Query().Get("name"))
		if name == "" {
			name = defaultUploadName
		}
		logger := log.ForContext(r.Context()).WithField("dataset", name)

		if r.Body == nil || r.ContentLength == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "O corpo da requisição deve conter o CSV de vendas", nil)
			return
		}

		report, err := service.BuildFromReader(r.Context(), name, r.Body)
		if err != nil {
			logger.WithError(err).Warn("reports: erro ao gerar relatório avulso")
			writeReportError(w, err, true)
			return
		}

		writeJSON(w, http.StatusCreated, report, logger)
	})
}
