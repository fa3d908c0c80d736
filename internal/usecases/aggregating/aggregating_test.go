package aggregating

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-insights/internal/domain"
)

func row(product, category, month, units, revenue string) domain.RawRow {
	return domain.RawRow{
		domain.FieldProduct:   product,
		domain.FieldCategory:  category,
		domain.FieldMonth:     month,
		domain.FieldUnitsSold: units,
		domain.FieldRevenue:   revenue,
	}
}

func scenarioRows() []domain.RawRow {
	return []domain.RawRow{
		row("A", "Elec", "January", "10", "100"),
		row("B", "Elec", "January", "5", "150"),
		row("A", "Elec", "February", "20", "200"),
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		rows      []domain.RawRow
		wantErr   error
		wantField string
		wantRow   int
	}{
		{
			name: "Linhas válidas - deve converter todos os campos",
			rows: scenarioRows(),
		},
		{
			name:    "Dataset vazio - não é erro de carga",
			rows:    []domain.RawRow{},
			wantErr: nil,
		},
		{
			name: "Campo ausente - deve retornar SchemaError",
			rows: []domain.RawRow{
				row("A", "Elec", "January", "10", "100"),
				{
					domain.FieldProduct:   "B",
					domain.FieldMonth:     "March",
					domain.FieldUnitsSold: "1",
					domain.FieldRevenue:   "1",
				},
			},
			wantErr:   domain.ErrSchema,
			wantField: domain.FieldCategory,
			wantRow:   2,
		},
		{
			name:      "Produto em branco - tratado como campo ausente",
			rows:      []domain.RawRow{row("  ", "Elec", "January", "10", "100")},
			wantErr:   domain.ErrSchema,
			wantField: domain.FieldProduct,
			wantRow:   1,
		},
		{
			name:      "Unidades negativas - deve retornar DataTypeError",
			rows:      []domain.RawRow{row("A", "Elec", "January", "-1", "100")},
			wantErr:   domain.ErrDataType,
			wantField: domain.FieldUnitsSold,
			wantRow:   1,
		},
		{
			name:      "Unidades fracionadas - deve retornar DataTypeError",
			rows:      []domain.RawRow{row("A", "Elec", "January", "1.5", "100")},
			wantErr:   domain.ErrDataType,
			wantField: domain.FieldUnitsSold,
			wantRow:   1,
		},
		{
			name:      "Receita não numérica - deve retornar DataTypeError",
			rows:      []domain.RawRow{row("A", "Elec", "January", "1", "abc")},
			wantErr:   domain.ErrDataType,
			wantField: domain.FieldRevenue,
			wantRow:   1,
		},
		{
			name:      "Receita NaN - deve retornar DataTypeError",
			rows:      []domain.RawRow{row("A", "Elec", "January", "1", "NaN")},
			wantErr:   domain.ErrDataType,
			wantField: domain.FieldRevenue,
			wantRow:   1,
		},
		{
			name:      "Receita negativa - deve retornar DataTypeError",
			rows:      []domain.RawRow{row("A", "Elec", "January", "1", "-0.01")},
			wantErr:   domain.ErrDataType,
			wantField: domain.FieldRevenue,
			wantRow:   1,
		},
		{
			name:      "Receita com separador de dígitos - deve retornar DataTypeError",
			rows:      []domain.RawRow{row("A", "Elec", "January", "1", "1_000")},
			wantErr:   domain.ErrDataType,
			wantField: domain.FieldRevenue,
			wantRow:   1,
		},
		{
			name:      "Receita hexadecimal - deve retornar DataTypeError",
			rows:      []domain.RawRow{row("A", "Elec", "January", "1", "0x1p3")},
			wantErr:   domain.ErrDataType,
			wantField: domain.FieldRevenue,
			wantRow:   1,
		},
		{
			name:      "Receita com sinal positivo - deve retornar DataTypeError",
			rows:      []domain.RawRow{row("A", "Elec", "January", "1", "+5")},
			wantErr:   domain.ErrDataType,
			wantField: domain.FieldRevenue,
			wantRow:   1,
		},
		{
			name:      "Receita Inf - deve retornar DataTypeError",
			rows:      []domain.RawRow{row("A", "Elec", "January", "1", "Inf")},
			wantErr:   domain.ErrDataType,
			wantField: domain.FieldRevenue,
			wantRow:   1,
		},
		{
			name:      "Unidades com sinal positivo - deve retornar DataTypeError",
			rows:      []domain.RawRow{row("A", "Elec", "January", "+3", "100")},
			wantErr:   domain.ErrDataType,
			wantField: domain.FieldUnitsSold,
			wantRow:   1,
		},
		{
			name:      "Unidades com separador de dígitos - deve retornar DataTypeError",
			rows:      []domain.RawRow{row("A", "Elec", "January", "1_000", "100")},
			wantErr:   domain.ErrDataType,
			wantField: domain.FieldUnitsSold,
			wantRow:   1,
		},
		{
			name: "Notação decimal simples - aceita",
			rows: []domain.RawRow{
				row("A", "Elec", "January", " 7 ", "1250.50"),
				row("B", "Elec", "February", "0", ".5"),
				row("C", "Elec", "March", "3", "1.5e3"),
			},
		},
		{
			name:      "Mês desconhecido - deve retornar DataTypeError",
			rows:      []domain.RawRow{row("A", "Elec", "Smarch", "1", "1")},
			wantErr:   domain.ErrDataType,
			wantField: domain.FieldMonth,
			wantRow:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := Load(tt.rows)

			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Len(t, records, len(tt.rows))
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, records)

			var schemaErr *domain.SchemaError
			var typeErr *domain.DataTypeError
			switch {
			case errors.As(err, &schemaErr):
				assert.Equal(t, tt.wantField, schemaErr.Field)
				assert.Equal(t, tt.wantRow, schemaErr.Row)
			case errors.As(err, &typeErr):
				assert.Equal(t, tt.wantField, typeErr.Field)
				assert.Equal(t, tt.wantRow, typeErr.Row)
			default:
				t.Fatalf("tipo de erro inesperado: %T", err)
			}
		})
	}
}

func TestLoad_ConvertsFields(t *testing.T) {
	records, err := Load([]domain.RawRow{row(" Laptop ", "Electronics", "mar", " 12 ", "1500.50")})
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, domain.SalesRecord{
		Product:   "Laptop",
		Category:  "Electronics",
		Month:     domain.Month(3),
		UnitsSold: 12,
		Revenue:   1500.50,
	}, records[0])
}

func TestGroupByProduct(t *testing.T) {
	records, err := Load([]domain.RawRow{
		row("Mouse", "Accessories", "January", "3", "30"),
		row("Laptop", "Electronics", "January", "1", "1000"),
		row("Mouse", "Accessories", "February", "2", "20"),
		row("Keyboard", "Accessories", "March", "4", "200"),
	})
	require.NoError(t, err)

	totals := GroupByProduct(records)

	assert.Equal(t, domain.ProductTotals{
		{Product: "Mouse", UnitsSold: 5, Revenue: 50},
		{Product: "Laptop", UnitsSold: 1, Revenue: 1000},
		{Product: "Keyboard", UnitsSold: 4, Revenue: 200},
	}, totals)

	sorted := totals.SortedByRevenue()
	assert.Equal(t, []string{"Mouse", "Keyboard", "Laptop"}, productNames(sorted))
	assert.Equal(t, "Mouse", totals[0].Product, "a ordenação não deve alterar a visão de entrada")
}

func TestProductTotals_SortedByRevenueKeepsTieOrder(t *testing.T) {
	totals := domain.ProductTotals{
		{Product: "B", Revenue: 10},
		{Product: "A", Revenue: 5},
		{Product: "C", Revenue: 5},
	}

	assert.Equal(t, []string{"A", "C", "B"}, productNames(totals.SortedByRevenue()))
}

func TestGroupByMonth_AlwaysTwelveCalendarPositions(t *testing.T) {
	records, err := Load([]domain.RawRow{
		row("A", "X", "December", "1", "40"),
		row("A", "X", "March", "1", "10"),
		row("B", "X", "March", "1", "15"),
	})
	require.NoError(t, err)

	series := GroupByMonth(records)

	require.Len(t, series, domain.MonthsInYear)
	for i, item := range series {
		assert.Equal(t, domain.Month(i+1), item.Month)
	}
	assert.Equal(t, 25.0, series.Revenue(domain.Month(3)))
	assert.Equal(t, 40.0, series.Revenue(domain.Month(12)))
	assert.Equal(t, 0.0, series.Revenue(domain.Month(1)))
	assert.Equal(t, 0.0, series.Revenue(domain.Month(7)))
}

func TestGroupByMonth_EmptyInput(t *testing.T) {
	series := GroupByMonth(nil)
	assert.Equal(t, make([]float64, domain.MonthsInYear), series.Values())
}

func TestGroupByCategory(t *testing.T) {
	records, err := Load([]domain.RawRow{
		row("Mouse", "Accessories", "January", "3", "30"),
		row("Laptop", "Electronics", "January", "1", "1000"),
		row("Keyboard", "Accessories", "March", "4", "200"),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.CategoryTotals{
		{Category: "Accessories", Revenue: 230},
		{Category: "Electronics", Revenue: 1000},
	}, GroupByCategory(records))
}

func TestGroupings_ConserveTotals(t *testing.T) {
	records, err := Load([]domain.RawRow{
		row("A", "X", "January", "1", "10.25"),
		row("B", "Y", "May", "2", "20.50"),
		row("C", "X", "May", "3", "30.75"),
		row("A", "X", "November", "4", "40.10"),
		row("D", "Z", "July", "5", "0"),
	})
	require.NoError(t, err)

	total := 0.0
	for _, record := range records {
		total += record.Revenue
	}

	monthly := 0.0
	for _, value := range GroupByMonth(records).Values() {
		monthly += value
	}

	assert.InDelta(t, total, GroupByProduct(records).TotalRevenue(), 1e-9)
	assert.InDelta(t, total, GroupByCategory(records).TotalRevenue(), 1e-9)
	assert.InDelta(t, total, monthly, 1e-9)
	assert.Equal(t, int64(15), GroupByProduct(records).TotalUnits())
}

func TestFitTrend(t *testing.T) {
	t.Run("Série perfeitamente linear", func(t *testing.T) {
		values := make([]float64, 12)
		for i := range values {
			values[i] = 100*float64(i) + 50
		}

		trend, err := FitTrend(values)
		require.NoError(t, err)
		assert.InDelta(t, 100, trend.Slope, 1e-9)
		assert.InDelta(t, 50, trend.Intercept, 1e-9)
		assert.InDelta(t, 1150, trend.At(11), 1e-9)
	})

	t.Run("Série constante - inclinação zero", func(t *testing.T) {
		trend, err := FitTrend([]float64{7, 7, 7, 7})
		require.NoError(t, err)
		assert.InDelta(t, 0, trend.Slope, 1e-12)
		assert.InDelta(t, 7, trend.Intercept, 1e-12)
	})

	t.Run("Dois pontos - reta passa pelos dois", func(t *testing.T) {
		trend, err := FitTrend([]float64{10, 30})
		require.NoError(t, err)
		assert.InDelta(t, 20, trend.Slope, 1e-12)
		assert.InDelta(t, 10, trend.Intercept, 1e-12)
	})

	t.Run("Menos de dois pontos - variância zero", func(t *testing.T) {
		_, err := FitTrend([]float64{42})
		assert.ErrorIs(t, err, domain.ErrDivisionUndefined)

		_, err = FitTrend(nil)
		assert.ErrorIs(t, err, domain.ErrDivisionUndefined)
	})
}

func TestComputeInsights_TieBreak(t *testing.T) {
	rows := []domain.RawRow{
		row("Second", "X", "March", "1", "100"),
		row("First", "X", "February", "1", "100"),
	}

	for i := 0; i < 5; i++ {
		report, err := Build(rows)
		require.NoError(t, err)
		assert.Equal(t, "Second", report.Insights.BestProduct.Product)
		assert.Equal(t, domain.Month(2), report.Insights.BestMonth.Month)
	}
}

func TestComputeInsights_DivisionUndefined(t *testing.T) {
	t.Run("Total de unidades zero", func(t *testing.T) {
		records, err := Load([]domain.RawRow{
			row("A", "X", "January", "0", "100"),
			row("B", "X", "February", "0", "50"),
		})
		require.NoError(t, err)

		_, err = ComputeInsights(records, GroupByProduct(records), GroupByMonth(records), GroupByCategory(records))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrDivisionUndefined)

		var divErr *domain.DivisionError
		require.ErrorAs(t, err, &divErr)
		assert.Equal(t, "average revenue per unit", divErr.Quantity)
	})

	t.Run("Receita total zero", func(t *testing.T) {
		records, err := Load([]domain.RawRow{row("A", "X", "January", "3", "0")})
		require.NoError(t, err)

		_, err = ComputeInsights(records, GroupByProduct(records), GroupByMonth(records), GroupByCategory(records))
		assert.ErrorIs(t, err, domain.ErrDivisionUndefined)
	})

	t.Run("Dataset vazio", func(t *testing.T) {
		report, err := Build(nil)
		assert.ErrorIs(t, err, domain.ErrDivisionUndefined)
		assert.Nil(t, report)
	})
}

func TestBuild_EndToEndScenario(t *testing.T) {
	report, err := Build(scenarioRows())
	require.NoError(t, err)

	assert.Equal(t, 3, report.RecordCount)
	assert.Equal(t, domain.ProductTotals{
		{Product: "A", UnitsSold: 30, Revenue: 300},
		{Product: "B", UnitsSold: 5, Revenue: 150},
	}, report.ProductTotals)
	assert.Equal(t, domain.CategoryTotals{{Category: "Elec", Revenue: 450}}, report.CategoryTotals)

	assert.Equal(t, 250.0, report.MonthlySeries.Revenue(domain.Month(1)))
	assert.Equal(t, 200.0, report.MonthlySeries.Revenue(domain.Month(2)))
	for m := domain.Month(3); m <= domain.MonthsInYear; m++ {
		assert.Equal(t, 0.0, report.MonthlySeries.Revenue(m), m.String())
	}

	insights := report.Insights
	assert.Equal(t, 450.0, insights.TotalRevenue)
	assert.Equal(t, int64(35), insights.TotalUnits)
	assert.InDelta(t, 12.857142857, insights.AvgRevenuePerUnit, 1e-6)
	assert.Equal(t, "A", insights.BestProduct.Product)
	assert.Equal(t, 300.0, insights.BestProduct.Revenue)
	assert.Equal(t, domain.Month(1), insights.BestMonth.Month)
	assert.Equal(t, 250.0, insights.BestMonth.Revenue)
	require.Len(t, insights.CategoryShares, 1)
	assert.InDelta(t, 100, insights.CategoryShares[0].Percentage, 1e-9)
}

func TestBuild_FailFast(t *testing.T) {
	rows := append(scenarioRows(), row("C", "Elec", "March", "x", "1"))

	report, err := Build(rows)
	assert.Nil(t, report)
	assert.ErrorIs(t, err, domain.ErrDataType)
}

func TestPreview(t *testing.T) {
	records, err := Load(scenarioRows())
	require.NoError(t, err)

	assert.Len(t, Preview(records, 2), 2)
	assert.Len(t, Preview(records, 10), 3)
	assert.Nil(t, Preview(records, 0))

	preview := Preview(records, 1)
	preview[0].Product = "changed"
	assert.Equal(t, "A", records[0].Product)
}

func productNames(totals domain.ProductTotals) []string {
	names := make([]string, len(totals))
	for i, item := range totals {
		names[i] = item.Product
	}
	return names
}
