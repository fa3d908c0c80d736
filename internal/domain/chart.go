package domain

type ChartType string

const (
	ChartTypeBar           ChartType = "bar"
	ChartTypeHorizontalBar ChartType = "horizontal_bar"
	ChartTypeLine          ChartType = "line"
	ChartTypePie           ChartType = "pie"
)

// ChartSeries é uma série de valores alinhada aos rótulos do gráfico
type ChartSeries struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
	Style  string    `json:"style,omitempty"` // "solid" ou "dashed"
}

// ChartData representa os dados de um gráfico de barras ou de linhas
type ChartData struct {
	ChartType   ChartType     `json:"chart_type"`
	Title       string        `json:"title"`
	XLabel      string        `json:"x_label"`
	YLabel      string        `json:"y_label"`
	Labels      []string      `json:"labels"`
	Series      []ChartSeries `json:"series"`
	ValueLabels []string      `json:"value_labels,omitempty"`
}

// PieChartData representa os dados de um gráfico de pizza
type PieChartData struct {
	ChartType ChartType           `json:"chart_type"`
	Title     string              `json:"title"`
	Data      []PieChartDataPoint `json:"data"`
	Total     float64             `json:"total"`
}

type PieChartDataPoint struct {
	Label      string  `json:"label"`
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
	Text       string  `json:"text"`
}

// Dashboard agrupa os quatro gráficos do relatório de vendas
type Dashboard struct {
	ReportID          string       `json:"report_id"`
	Dataset           string       `json:"dataset"`
	UnitsByProduct    ChartData    `json:"units_by_product"`
	MonthlyRevenue    ChartData    `json:"monthly_revenue"`
	RevenueByCategory PieChartData `json:"revenue_by_category"`
	RevenueByProduct  ChartData    `json:"revenue_by_product"`
}
