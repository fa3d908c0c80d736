package aggregating

import (
	"github.com/vfg2006/sales-insights/internal/domain"
)

// Build executa o pipeline completo sobre as linhas brutas.
// Se qualquer etapa falhar nenhuma visão é devolvida.
// ID, nome do dataset e data de geração ficam a cargo do chamador.
func Build(rows []domain.RawRow) (*domain.SalesReport, error) {
	records, err := Load(rows)
	if err != nil {
		return nil, err
	}

	return BuildFromRecords(records)
}

// BuildFromRecords monta o relatório a partir de registros já validados
func BuildFromRecords(records []domain.SalesRecord) (*domain.SalesReport, error) {
	productTotals := GroupByProduct(records)
	monthlySeries := GroupByMonth(records)
	categoryTotals := GroupByCategory(records)

	trend, err := FitTrend(monthlySeries.Values())
	if err != nil {
		return nil, err
	}

	insights, err := ComputeInsights(records, productTotals, monthlySeries, categoryTotals)
	if err != nil {
		return nil, err
	}

	return &domain.SalesReport{
		RecordCount:    len(records),
		ProductTotals:  productTotals,
		MonthlySeries:  monthlySeries,
		CategoryTotals: categoryTotals,
		Trend:          trend,
		Insights:       insights,
	}, nil
}

// Preview devolve uma cópia das primeiras n linhas do dataset
func Preview(records []domain.SalesRecord, n int) []domain.SalesRecord {
	if n <= 0 {
		return nil
	}
	if n > len(records) {
		n = len(records)
	}
	preview := make([]domain.SalesRecord, n)
	copy(preview, records[:n])
	return preview
}
