// Package charting prepara as séries dos gráficos do relatório de vendas.
// O desenho (cores, layout, fontes) fica com quem consome os dados.
package charting

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/vfg2006/sales-insights/internal/domain"
	"github.com/vfg2006/sales-insights/pkg/utils"
)

const (
	seriesStyleSolid  = "solid"
	seriesStyleDashed = "dashed"
)

// Dashboard monta os quatro gráficos do relatório
func Dashboard(report *domain.SalesReport) domain.Dashboard {
	return domain.Dashboard{
		ReportID:          report.ID,
		Dataset:           report.Dataset,
		UnitsByProduct:    UnitsByProduct(report.ProductTotals),
		MonthlyRevenue:    MonthlyRevenue(report.MonthlySeries, report.Trend),
		RevenueByCategory: RevenueByCategory(report.Insights),
		RevenueByProduct:  RevenueByProduct(report.ProductTotals),
	}
}

// UnitsByProduct gera o gráfico de barras de unidades vendidas por produto
func UnitsByProduct(totals domain.ProductTotals) domain.ChartData {
	labels := make([]string, len(totals))
	values := make([]float64, len(totals))
	valueLabels := make([]string, len(totals))

	for i, item := range totals {
		labels[i] = item.Product
		values[i] = float64(item.UnitsSold)
		valueLabels[i] = humanize.Comma(item.UnitsSold)
	}

	return domain.ChartData{
		ChartType:   domain.ChartTypeBar,
		Title:       "Total Sales by Product",
		XLabel:      "Products",
		YLabel:      "Units Sold",
		Labels:      labels,
		Series:      []domain.ChartSeries{{Name: "Units Sold", Values: values, Style: seriesStyleSolid}},
		ValueLabels: valueLabels,
	}
}

// MonthlyRevenue gera o gráfico de linha da receita mensal com a reta de tendência
func MonthlyRevenue(series domain.MonthlySeries, trend domain.TrendLine) domain.ChartData {
	labels := make([]string, len(series))
	for i, item := range series {
		labels[i] = item.Month.Short()
	}

	return domain.ChartData{
		ChartType: domain.ChartTypeLine,
		Title:     "Monthly Revenue Trend",
		XLabel:    "Month",
		YLabel:    "Revenue ($)",
		Labels:    labels,
		Series: []domain.ChartSeries{
			{Name: "Revenue", Values: series.Values(), Style: seriesStyleSolid},
			{Name: "Trend", Values: trend.Values(len(series)), Style: seriesStyleDashed},
		},
	}
}

// RevenueByCategory gera o gráfico de pizza da participação de cada categoria na receita
func RevenueByCategory(insights domain.Insights) domain.PieChartData {
	points := make([]domain.PieChartDataPoint, len(insights.CategoryShares))
	for i, share := range insights.CategoryShares {
		points[i] = domain.PieChartDataPoint{
			Label:      share.Category,
			Value:      share.Revenue,
			Percentage: utils.RoundWithTwoDecimalPlace(share.Percentage),
			Text:       fmt.Sprintf("%.1f%%", share.Percentage),
		}
	}

	return domain.PieChartData{
		ChartType: domain.ChartTypePie,
		Title:     "Revenue by Product Category",
		Data:      points,
		Total:     insights.TotalRevenue,
	}
}

// RevenueByProduct gera o gráfico de barras horizontais com os produtos em ordem crescente de receita
func RevenueByProduct(totals domain.ProductTotals) domain.ChartData {
	sorted := totals.SortedByRevenue()

	labels := make([]string, len(sorted))
	values := make([]float64, len(sorted))
	valueLabels := make([]string, len(sorted))

	for i, item := range sorted {
		labels[i] = item.Product
		values[i] = item.Revenue
		valueLabels[i] = Thousands(item.Revenue)
	}

	return domain.ChartData{
		ChartType:   domain.ChartTypeHorizontalBar,
		Title:       "Revenue by Product",
		XLabel:      "Revenue ($)",
		YLabel:      "Products",
		Labels:      labels,
		Series:      []domain.ChartSeries{{Name: "Revenue", Values: values, Style: seriesStyleSolid}},
		ValueLabels: valueLabels,
	}
}

// Thousands formata um valor monetário em milhares, ex.: 15000 -> "$15K"
func Thousands(value float64) string {
	return fmt.Sprintf("$%.0fK", value/1000)
}
