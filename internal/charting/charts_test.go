package charting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-insights/internal/domain"
	"github.com/vfg2006/sales-insights/internal/usecases/aggregating"
)

func buildReport(t *testing.T) *domain.SalesReport {
	t.Helper()

	report, err := aggregating.Build([]domain.RawRow{
		{"Product": "Laptop", "Category": "Electronics", "Month": "January", "Units_Sold": "10", "Revenue": "15000"},
		{"Product": "Mouse", "Category": "Accessories", "Month": "January", "Units_Sold": "1200", "Revenue": "24000"},
		{"Product": "Laptop", "Category": "Electronics", "Month": "March", "Units_Sold": "12", "Revenue": "18000"},
		{"Product": "Cable", "Category": "Accessories", "Month": "December", "Units_Sold": "300", "Revenue": "3000"},
	})
	require.NoError(t, err)

	report.ID = "abc123"
	report.Dataset = "sales"
	return report
}

func TestDashboard(t *testing.T) {
	report := buildReport(t)
	dashboard := Dashboard(report)

	assert.Equal(t, "abc123", dashboard.ReportID)
	assert.Equal(t, "sales", dashboard.Dataset)

	units := dashboard.UnitsByProduct
	assert.Equal(t, domain.ChartTypeBar, units.ChartType)
	assert.Equal(t, []string{"Laptop", "Mouse", "Cable"}, units.Labels)
	assert.Equal(t, []float64{22, 1200, 300}, units.Series[0].Values)
	assert.Equal(t, []string{"22", "1,200", "300"}, units.ValueLabels)

	monthly := dashboard.MonthlyRevenue
	assert.Equal(t, domain.ChartTypeLine, monthly.ChartType)
	require.Len(t, monthly.Labels, 12)
	assert.Equal(t, "Jan", monthly.Labels[0])
	assert.Equal(t, "Dec", monthly.Labels[11])
	require.Len(t, monthly.Series, 2)
	assert.Equal(t, 39000.0, monthly.Series[0].Values[0])
	assert.Equal(t, 0.0, monthly.Series[0].Values[1])
	assert.Equal(t, "dashed", monthly.Series[1].Style)
	assert.InDelta(t, report.Trend.Intercept, monthly.Series[1].Values[0], 1e-9)

	pie := dashboard.RevenueByCategory
	assert.Equal(t, domain.ChartTypePie, pie.ChartType)
	assert.Equal(t, 60000.0, pie.Total)
	require.Len(t, pie.Data, 2)
	assert.Equal(t, "Electronics", pie.Data[0].Label)
	assert.Equal(t, 55.0, pie.Data[0].Percentage)
	assert.Equal(t, "55.0%", pie.Data[0].Text)
	assert.Equal(t, "45.0%", pie.Data[1].Text)

	revenue := dashboard.RevenueByProduct
	assert.Equal(t, domain.ChartTypeHorizontalBar, revenue.ChartType)
	assert.Equal(t, []string{"Cable", "Mouse", "Laptop"}, revenue.Labels)
	assert.Equal(t, []string{"$3K", "$24K", "$33K"}, revenue.ValueLabels)
}

func TestThousands(t *testing.T) {
	assert.Equal(t, "$0K", Thousands(0))
	assert.Equal(t, "$2K", Thousands(1500))
	assert.Equal(t, "$125K", Thousands(125400))
}
