package aggregating

import (
	"github.com/vfg2006/sales-insights/internal/domain"
)

// FitTrend ajusta uma reta por mínimos quadrados sobre os pontos (índice, valor)
func FitTrend(values []float64) (domain.TrendLine, error) {
	n := len(values)
	if n < 2 {
		return domain.TrendLine{}, &domain.DivisionError{Quantity: "trend slope", Divisor: "index variance"}
	}

	meanX := float64(n-1) / 2
	meanY := 0.0
	for _, v := range values {
		meanY += v
	}
	meanY /= float64(n)

	var covariance, variance float64
	for i, v := range values {
		dx := float64(i) - meanX
		covariance += dx * (v - meanY)
		variance += dx * dx
	}

	if variance == 0 {
		return domain.TrendLine{}, &domain.DivisionError{Quantity: "trend slope", Divisor: "index variance"}
	}

	slope := covariance / variance

	return domain.TrendLine{
		Slope:     slope,
		Intercept: meanY - slope*meanX,
	}, nil
}
