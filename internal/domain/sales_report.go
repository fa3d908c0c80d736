package domain

import (
	"sort"
	"time"
)

// ProductTotal acumula unidades e receita de um produto
type ProductTotal struct {
	Product   string  `json:"product"`
	UnitsSold int64   `json:"units_sold"`
	Revenue   float64 `json:"revenue"`
}

// ProductTotals mantém a ordem da primeira ocorrência de cada produto no dataset
type ProductTotals []ProductTotal

// SortedByRevenue retorna uma cópia ordenada por receita crescente (empates mantêm a ordem de entrada)
func (p ProductTotals) SortedByRevenue() ProductTotals {
	sorted := make(ProductTotals, len(p))
	copy(sorted, p)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Revenue < sorted[j].Revenue
	})
	return sorted
}

func (p ProductTotals) TotalRevenue() float64 {
	total := 0.0
	for _, item := range p {
		total += item.Revenue
	}
	return total
}

func (p ProductTotals) TotalUnits() int64 {
	var total int64
	for _, item := range p {
		total += item.UnitsSold
	}
	return total
}

type MonthRevenue struct {
	Month   Month   `json:"month"`
	Revenue float64 `json:"revenue"`
}

// MonthlySeries tem sempre doze posições, de janeiro a dezembro
type MonthlySeries [MonthsInYear]MonthRevenue

// Values retorna as receitas na ordem do calendário
func (s MonthlySeries) Values() []float64 {
	values := make([]float64, len(s))
	for i, item := range s {
		values[i] = item.Revenue
	}
	return values
}

// Revenue retorna a receita de um mês específico
func (s MonthlySeries) Revenue(m Month) float64 {
	if !m.Valid() {
		return 0
	}
	return s[m.Index()].Revenue
}

type CategoryTotal struct {
	Category string  `json:"category"`
	Revenue  float64 `json:"revenue"`
}

// CategoryTotals mantém a ordem da primeira ocorrência de cada categoria
type CategoryTotals []CategoryTotal

func (c CategoryTotals) TotalRevenue() float64 {
	total := 0.0
	for _, item := range c {
		total += item.Revenue
	}
	return total
}

// TrendLine é a reta de mínimos quadrados y = Slope*x + Intercept
type TrendLine struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
}

func (t TrendLine) At(x float64) float64 {
	return t.Slope*x + t.Intercept
}

// Values avalia a reta nos índices 0..n-1
func (t TrendLine) Values(n int) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = t.At(float64(i))
	}
	return values
}

type CategoryShare struct {
	Category   string  `json:"category"`
	Revenue    float64 `json:"revenue"`
	Percentage float64 `json:"percentage"`
}

// Insights reúne os números impressos no resumo do relatório
type Insights struct {
	TotalRevenue      float64         `json:"total_revenue"`
	TotalUnits        int64           `json:"total_units"`
	AvgRevenuePerUnit float64         `json:"avg_revenue_per_unit"`
	BestProduct       ProductTotal    `json:"best_product"`
	BestMonth         MonthRevenue    `json:"best_month"`
	CategoryShares    []CategoryShare `json:"category_shares"`
}

// SalesReport é o conjunto completo de visões derivadas de um dataset
type SalesReport struct {
	ID             string         `json:"id"`
	Dataset        string         `json:"dataset"`
	GeneratedAt    time.Time      `json:"generated_at"`
	RecordCount    int            `json:"record_count"`
	Preview        []SalesRecord  `json:"preview,omitempty"`
	ProductTotals  ProductTotals  `json:"product_totals"`
	MonthlySeries  MonthlySeries  `json:"monthly_series"`
	CategoryTotals CategoryTotals `json:"category_totals"`
	Trend          TrendLine      `json:"trend"`
	Insights       Insights       `json:"insights"`
}
