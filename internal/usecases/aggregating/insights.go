package aggregating

import (
	"github.com/vfg2006/sales-insights/internal/domain"
)

// ComputeInsights calcula os totais gerais, os melhores desempenhos e a participação de cada categoria.
// Em caso de empate o primeiro candidato vence (primeira ocorrência para produtos, ordem do calendário para meses).
func ComputeInsights(
	records []domain.SalesRecord,
	productTotals domain.ProductTotals,
	monthlySeries domain.MonthlySeries,
	categoryTotals domain.CategoryTotals,
) (domain.Insights, error) {
	var totalRevenue float64
	var totalUnits int64
	for _, record := range records {
		totalRevenue += record.Revenue
		totalUnits += record.UnitsSold
	}

	if totalUnits == 0 {
		return domain.Insights{}, &domain.DivisionError{Quantity: "average revenue per unit", Divisor: "units sold total"}
	}

	if totalRevenue == 0 {
		return domain.Insights{}, &domain.DivisionError{Quantity: "category percentage", Divisor: "revenue total"}
	}

	shares := make([]domain.CategoryShare, 0, len(categoryTotals))
	for _, category := range categoryTotals {
		shares = append(shares, domain.CategoryShare{
			Category:   category.Category,
			Revenue:    category.Revenue,
			Percentage: category.Revenue / totalRevenue * 100,
		})
	}

	return domain.Insights{
		TotalRevenue:      totalRevenue,
		TotalUnits:        totalUnits,
		AvgRevenuePerUnit: totalRevenue / float64(totalUnits),
		BestProduct:       bestProduct(productTotals),
		BestMonth:         bestMonth(monthlySeries),
		CategoryShares:    shares,
	}, nil
}

func bestProduct(totals domain.ProductTotals) domain.ProductTotal {
	if len(totals) == 0 {
		return domain.ProductTotal{}
	}

	best := totals[0]
	for _, item := range totals[1:] {
		if item.Revenue > best.Revenue {
			best = item
		}
	}
	return best
}

func bestMonth(series domain.MonthlySeries) domain.MonthRevenue {
	best := series[0]
	for _, item := range series[1:] {
		if item.Revenue > best.Revenue {
			best = item
		}
	}
	return best
}
