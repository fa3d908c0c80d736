package aggregating

import (
	"github.com/vfg2006/sales-insights/internal/domain"
)

// GroupByProduct soma unidades e receita por produto, na ordem da primeira ocorrência
func GroupByProduct(records []domain.SalesRecord) domain.ProductTotals {
	totals := make(domain.ProductTotals, 0)
	positions := make(map[string]int)

	for _, record := range records {
		pos, exists := positions[record.Product]
		if !exists {
			pos = len(totals)
			positions[record.Product] = pos
			totals = append(totals, domain.ProductTotal{Product: record.Product})
		}

		totals[pos].UnitsSold += record.UnitsSold
		totals[pos].Revenue += record.Revenue
	}

	return totals
}

// GroupByMonth soma a receita por mês e devolve as doze posições do calendário.
// Meses sem vendas ficam com receita zero.
func GroupByMonth(records []domain.SalesRecord) domain.MonthlySeries {
	var series domain.MonthlySeries
	for i, month := range domain.CalendarMonths() {
		series[i].Month = month
	}

	for _, record := range records {
		if !record.Month.Valid() {
			continue
		}
		series[record.Month.Index()].Revenue += record.Revenue
	}

	return series
}

// GroupByCategory soma a receita por categoria, na ordem da primeira ocorrência
func GroupByCategory(records []domain.SalesRecord) domain.CategoryTotals {
	totals := make(domain.CategoryTotals, 0)
	positions := make(map[string]int)

	for _, record := range records {
		pos, exists := positions[record.Category]
		if !exists {
			pos = len(totals)
			positions[record.Category] = pos
			totals = append(totals, domain.CategoryTotal{Category: record.Category})
		}

		totals[pos].Revenue += record.Revenue
	}

	return totals
}
