package reporting

import (
	"context"
	"io"
	"time"

	"github.com/vfg2006/sales-insights/internal/domain"
)

// DatasetLoader define a origem das linhas brutas de um dataset
type DatasetLoader interface {
	// Load lê o dataset armazenado em path
	Load(ctx context.Context, path string) ([]domain.RawRow, error)
	// Read lê um dataset enviado diretamente (upload)
	Read(r io.Reader) ([]domain.RawRow, error)
}

// DatasetStatus descreve um dataset configurado e o último relatório gerado para ele
type DatasetStatus struct {
	Name        string     `json:"name"`
	Path        string     `json:"path"`
	ReportID    string     `json:"report_id,omitempty"`
	GeneratedAt *time.Time `json:"generated_at,omitempty"`
}

// ReportService é a interface usada pelo servidor HTTP, pela CLI e pelo agendador
type ReportService interface {
	// GetReport retorna o relatório do dataset, gerando-o se não estiver em cache
	GetReport(ctx context.Context, name string) (*domain.SalesReport, error)

	// Refresh relê o dataset e substitui o relatório em cache
	Refresh(ctx context.Context, name string) (*domain.SalesReport, error)

	// RefreshAll regenera todos os datasets configurados
	RefreshAll(ctx context.Context) error

	// BuildFromReader gera um relatório avulso, sem cache
	BuildFromReader(ctx context.Context, name string, r io.Reader) (*domain.SalesReport, error)

	// ListDatasets lista os datasets configurados na ordem da configuração
	ListDatasets() []DatasetStatus
}
