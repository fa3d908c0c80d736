package handler

import (
	"net/http"

	"github.com/vfg2006/sales-insights/pkg/apiErrors"
	"github.com/vfg2006/sales-insights/pkg/log"
)

// RefreshJob é o agendador que pode ser disparado manualmente
type RefreshJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// RunRefreshJob dispara em segundo plano a atualização de todos os datasets
func RunRefreshJob(job RefreshJob) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if job == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Agendador de atualização não disponível", nil)
			return
		}

		job.TriggerManualSync()
		logger.Info("cron: atualização manual dos relatórios solicitada")

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Atualização dos relatórios iniciada",
		}, logger)
	})
}

// GetRefreshJobStatus retorna o status do agendador de atualização
func GetRefreshJobStatus(job RefreshJob) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if job == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Agendador de atualização não disponível", nil)
			return
		}

		writeJSON(w, http.StatusOK, job.GetStatus(), logger)
	})
}
