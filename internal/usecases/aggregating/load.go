// Package aggregating transforma linhas de vendas em visões derivadas (totais, séries e insights).
//
// Todas as funções do pacote são puras: não fazem I/O, não registram logs e sempre
// retornam valores novos, nunca referências ao estado do chamador.
package aggregating

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/vfg2006/sales-insights/internal/domain"
)

// Apenas notação decimal simples: strconv aceitaria também "1_000", "0x1p3" e "+5".
// O sinal negativo passa pelo padrão para ser rejeitado com o motivo "negative".
var (
	integerPattern = regexp.MustCompile(`^-?[0-9]+$`)
	decimalPattern = regexp.MustCompile(`^-?([0-9]+(\.[0-9]*)?|\.[0-9]+)([eE][-+]?[0-9]+)?$`)
)

// Load valida as linhas brutas e as converte em registros de venda.
// Nenhuma linha é descartada ou corrigida: o primeiro problema encontrado interrompe a carga.
func Load(rows []domain.RawRow) ([]domain.SalesRecord, error) {
	records := make([]domain.SalesRecord, 0, len(rows))

	for i, row := range rows {
		record, err := parseRow(i+1, row)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

func parseRow(rowNumber int, row domain.RawRow) (domain.SalesRecord, error) {
	for _, field := range domain.RequiredFields {
		if _, ok := row[field]; !ok {
			return domain.SalesRecord{}, &domain.SchemaError{Row: rowNumber, Field: field}
		}
	}

	product, err := requiredLabel(rowNumber, row, domain.FieldProduct)
	if err != nil {
		return domain.SalesRecord{}, err
	}

	category, err := requiredLabel(rowNumber, row, domain.FieldCategory)
	if err != nil {
		return domain.SalesRecord{}, err
	}

	monthLabel, err := requiredLabel(rowNumber, row, domain.FieldMonth)
	if err != nil {
		return domain.SalesRecord{}, err
	}

	month, ok := domain.ParseMonth(monthLabel)
	if !ok {
		return domain.SalesRecord{}, &domain.DataTypeError{
			Row:    rowNumber,
			Field:  domain.FieldMonth,
			Value:  monthLabel,
			Reason: "not a calendar month",
		}
	}

	units, err := parseUnits(rowNumber, row[domain.FieldUnitsSold])
	if err != nil {
		return domain.SalesRecord{}, err
	}

	revenue, err := parseRevenue(rowNumber, row[domain.FieldRevenue])
	if err != nil {
		return domain.SalesRecord{}, err
	}

	return domain.SalesRecord{
		Product:   product,
		Category:  category,
		Month:     month,
		UnitsSold: units,
		Revenue:   revenue,
	}, nil
}

// requiredLabel trata um rótulo em branco como campo ausente
func requiredLabel(rowNumber int, row domain.RawRow, field string) (string, error) {
	value := strings.TrimSpace(row[field])
	if value == "" {
		return "", &domain.SchemaError{Row: rowNumber, Field: field}
	}
	return value, nil
}

func parseUnits(rowNumber int, raw string) (int64, error) {
	value := strings.TrimSpace(raw)
	if !integerPattern.MatchString(value) {
		return 0, &domain.DataTypeError{
			Row:    rowNumber,
			Field:  domain.FieldUnitsSold,
			Value:  raw,
			Reason: "not an integer",
		}
	}

	units, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, &domain.DataTypeError{
			Row:    rowNumber,
			Field:  domain.FieldUnitsSold,
			Value:  raw,
			Reason: "not an integer",
		}
	}

	if units < 0 {
		return 0, &domain.DataTypeError{
			Row:    rowNumber,
			Field:  domain.FieldUnitsSold,
			Value:  raw,
			Reason: "negative",
		}
	}

	return units, nil
}

func parseRevenue(rowNumber int, raw string) (float64, error) {
	value := strings.TrimSpace(raw)
	if !decimalPattern.MatchString(value) {
		return 0, &domain.DataTypeError{
			Row:    rowNumber,
			Field:  domain.FieldRevenue,
			Value:  raw,
			Reason: "not a number",
		}
	}

	revenue, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(revenue) || math.IsInf(revenue, 0) {
		return 0, &domain.DataTypeError{
			Row:    rowNumber,
			Field:  domain.FieldRevenue,
			Value:  raw,
			Reason: "not a number",
		}
	}

	if revenue < 0 {
		return 0, &domain.DataTypeError{
			Row:    rowNumber,
			Field:  domain.FieldRevenue,
			Value:  raw,
			Reason: "negative",
		}
	}

	return revenue, nil
}
