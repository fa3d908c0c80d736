package reporting

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de relatórios
var (
	ErrDatasetNotFound  = errors.New("dataset not found")
	ErrDuplicateDataset = errors.New("duplicate dataset name")
	ErrGenerateID       = errors.New("error generating report ID")
)

// ReportError associa um erro ao dataset em que ele ocorreu
type ReportError struct {
	Err     error
	Dataset string
	Stage   string // "load" ou "aggregate"
}

func (e *ReportError) Error() string {
	return fmt.Sprintf("dataset %s: %s: %s", e.Dataset, e.Stage, e.Err.Error())
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

func NewReportError(err error, dataset string, stage string) *ReportError {
	return &ReportError{
		Err:     err,
		Dataset: dataset,
		Stage:   stage,
	}
}
