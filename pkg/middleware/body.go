package middleware

import (
	"net/http"

	"github.com/vfg2006/sales-insights/pkg/apiErrors"
)

// LimitBody limita o corpo da requisição a maxBytes.
// Corpos com Content-Length acima do limite são recusados antes de chegar ao handler;
// os demais (ex.: chunked) falham na leitura com *http.MaxBytesError.
func LimitBody(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxBytes {
				apiErrors.WriteError(w, apiErrors.ErrPayloadTooLarge, "Arquivo excede o tamanho máximo permitido", map[string]int64{
					"limit_bytes": maxBytes,
				})
				return
			}

			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}

			next.ServeHTTP(w, r)
		})
	}
}
