package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/sales-insights/pkg/log"
)

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		}, log.ForContext(r.Context()))
	})
}
