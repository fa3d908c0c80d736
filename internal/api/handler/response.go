package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-insights/internal/domain"
	"github.com/vfg2006/sales-insights/internal/usecases/reporting"
	"github.com/vfg2006/sales-insights/pkg/apiErrors"
	"github.com/vfg2006/sales-insights/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any, logger log.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.WithError(err).Error("erro ao codificar resposta")
	}
}

// writeReportError converte os erros do relatório em respostas com código.
// Em uploads, falhas de leitura são culpa do arquivo enviado e viram 400.
func writeReportError(w http.ResponseWriter, err error, upload bool) {
	var (
		schemaErr   *domain.SchemaError
		typeErr     *domain.DataTypeError
		divisionErr *domain.DivisionError
		reportErr   *reporting.ReportError
		maxBytesErr *http.MaxBytesError
	)

	switch {
	case errors.Is(err, reporting.ErrDatasetNotFound):
		apiErrors.WriteError(w, apiErrors.ErrDatasetNotFound, err.Error(), nil)

	case errors.As(err, &maxBytesErr):
		apiErrors.WriteError(w, apiErrors.ErrPayloadTooLarge, "Arquivo excede o tamanho máximo permitido", map[string]int64{
			"limit_bytes": maxBytesErr.Limit,
		})

	case errors.As(err, &schemaErr):
		apiErrors.WriteError(w, apiErrors.ErrMissingField, err.Error(), map[string]any{
			"row":   schemaErr.Row,
			"field": schemaErr.Field,
		})

	case errors.As(err, &typeErr):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFieldValue, err.Error(), map[string]any{
			"row":   typeErr.Row,
			"field": typeErr.Field,
			"value": typeErr.Value,
		})

	case errors.As(err, &divisionErr):
		apiErrors.WriteError(w, apiErrors.ErrDivisionUndefined, err.Error(), map[string]string{
			"quantity": divisionErr.Quantity,
			"divisor":  divisionErr.Divisor,
		})

	case errors.As(err, &reportErr) && reportErr.Stage == "load":
		code := apiErrors.ErrDatasetUnavailable
		if upload {
			code = apiErrors.ErrInvalidFormat
		}
		apiErr := apiErrors.FromError(err, code)
		apiErrors.WriteError(w, apiErr.Code, apiErr.Message, nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar relatório", nil)
	}
}
