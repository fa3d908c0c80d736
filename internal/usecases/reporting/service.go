package reporting

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/vfg2006/sales-insights/infrastructure/dataset/csvfile"
	"github.com/vfg2006/sales-insights/internal/config"
	"github.com/vfg2006/sales-insights/internal/domain"
	"github.com/vfg2006/sales-insights/internal/usecases/aggregating"
	"github.com/vfg2006/sales-insights/pkg/log"
	"github.com/vfg2006/sales-insights/pkg/utils"
	"golang.org/x/sync/errgroup"
)

type dataset struct {
	name string
	path string
}

// Service gera e mantém em cache os relatórios dos datasets configurados
type Service struct {
	loader             DatasetLoader
	datasets           []dataset
	paths              map[string]string
	reportCache        *cache.Cache
	previewRows        int
	maxConcurrentLoads int
	now                func() time.Time
	generateID         func() (string, error)
}

// NewService cria o serviço de relatórios a partir dos caminhos configurados
func NewService(cfg *config.Config, loader DatasetLoader) (ReportService, error) {
	s := &Service{
		loader:             loader,
		paths:              make(map[string]string),
		reportCache:        cache.New(cfg.Report.CacheTTL, 2*cfg.Report.CacheTTL),
		previewRows:        cfg.Report.PreviewRows,
		maxConcurrentLoads: cfg.Dataset.MaxConcurrentLoads,
		now:                time.Now,
		generateID:         utils.GenerateID,
	}

	for _, path := range cfg.Dataset.Paths {
		name := csvfile.DatasetName(path)
		if existing, ok := s.paths[name]; ok {
			return nil, fmt.Errorf("%w: %s (%s, %s)", ErrDuplicateDataset, name, existing, path)
		}
		s.paths[name] = path
		s.datasets = append(s.datasets, dataset{name: name, path: path})
	}

	if s.maxConcurrentLoads <= 0 {
		s.maxConcurrentLoads = 1
	}

	return s, nil
}

// GetReport retorna o relatório em cache ou gera um novo
func (s *Service) GetReport(ctx context.Context, name string) (*domain.SalesReport, error) {
	if _, ok := s.paths[name]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, name)
	}

	if cached, found := s.reportCache.Get(name); found {
		return cached.(*domain.SalesReport), nil
	}

	return s.Refresh(ctx, name)
}

// Refresh relê o arquivo do dataset e atualiza o cache
func (s *Service) Refresh(ctx context.Context, name string) (*domain.SalesReport, error) {
	path, ok := s.paths[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, name)
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"dataset":      name,
		"dataset_path": path,
	})

	rows, err := s.loader.Load(ctx, path)
	if err != nil {
		logger.WithError(err).Error("reporting: erro ao carregar dataset")
		return nil, NewReportError(err, name, "load")
	}

	report, err := s.build(name, rows)
	if err != nil {
		logger.WithError(err).Error("reporting: erro ao gerar relatório")
		return nil, err
	}

	s.reportCache.Set(name, report, cache.DefaultExpiration)

	logger.WithFields(log.Fields{
		"report_id":    report.ID,
		"dataset_rows": report.RecordCount,
	}).Info("reporting: relatório gerado com sucesso")

	return report, nil
}

// RefreshAll regenera todos os datasets com concorrência limitada.
// Todos os datasets são processados mesmo que algum falhe; o primeiro erro é retornado.
func (s *Service) RefreshAll(ctx context.Context) error {
	g := errgroup.Group{}
	g.SetLimit(s.maxConcurrentLoads)

	for _, ds := range s.datasets {
		ds := ds
		g.Go(func() error {
			_, err := s.Refresh(ctx, ds.name)
			return err
		})
	}

	return g.Wait()
}

// BuildFromReader gera um relatório avulso a partir de um CSV enviado
func (s *Service) BuildFromReader(ctx context.Context, name string, r io.Reader) (*domain.SalesReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := s.loader.Read(r)
	if err != nil {
		return nil, NewReportError(err, name, "load")
	}

	report, err := s.build(name, rows)
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"dataset":      name,
		"report_id":    report.ID,
		"dataset_rows": report.RecordCount,
	}).Info("reporting: relatório avulso gerado")

	return report, nil
}

// ListDatasets lista os datasets e, quando houver, o relatório em cache de cada um
func (s *Service) ListDatasets() []DatasetStatus {
	statuses := make([]DatasetStatus, 0, len(s.datasets))

	for _, ds := range s.datasets {
		status := DatasetStatus{Name: ds.name, Path: ds.path}
		if cached, found := s.reportCache.Get(ds.name); found {
			report := cached.(*domain.SalesReport)
			generatedAt := report.GeneratedAt
			status.ReportID = report.ID
			status.GeneratedAt = &generatedAt
		}
		statuses = append(statuses, status)
	}

	return statuses
}

func (s *Service) build(name string, rows []domain.RawRow) (*domain.SalesReport, error) {
	records, err := aggregating.Load(rows)
	if err != nil {
		return nil, NewReportError(err, name, "load")
	}

	report, err := aggregating.BuildFromRecords(records)
	if err != nil {
		return nil, NewReportError(err, name, "aggregate")
	}

	id, err := s.generateID()
	if err != nil {
		return nil, NewReportError(fmt.Errorf("%w: %w", ErrGenerateID, err), name, "aggregate")
	}

	report.ID = id
	report.Dataset = name
	report.GeneratedAt = s.now()
	report.Preview = aggregating.Preview(records, s.previewRows)

	return report, nil
}
