package domain

import (
	"errors"
	"fmt"
)

// Tipos de erro do agregador de vendas
var (
	ErrSchema            = errors.New("required field missing")
	ErrDataType          = errors.New("invalid field value")
	ErrDivisionUndefined = errors.New("division undefined")
)

// SchemaError indica que um campo obrigatório não existe em uma linha
type SchemaError struct {
	Row   int    // Linha de dados (1 = primeira linha após o cabeçalho)
	Field string // Campo ausente
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("row %d: %s: %q", e.Row, ErrSchema, e.Field)
}

func (e *SchemaError) Unwrap() error {
	return ErrSchema
}

// DataTypeError indica que um campo não pode ser interpretado (número inválido, negativo ou mês desconhecido)
type DataTypeError struct {
	Row    int
	Field  string
	Value  string
	Reason string
}

func (e *DataTypeError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("row %d: %s %q in %s: %s", e.Row, ErrDataType, e.Value, e.Field, e.Reason)
	}
	return fmt.Sprintf("row %d: %s %q in %s", e.Row, ErrDataType, e.Value, e.Field)
}

func (e *DataTypeError) Unwrap() error {
	return ErrDataType
}

// DivisionError indica que um insight depende de uma divisão por um total zerado
type DivisionError struct {
	Quantity string // Valor que seria calculado
	Divisor  string // Total que ficou zerado
}

func (e *DivisionError) Error() string {
	return fmt.Sprintf("%s: %s requires a non-zero %s", ErrDivisionUndefined, e.Quantity, e.Divisor)
}

func (e *DivisionError) Unwrap() error {
	return ErrDivisionUndefined
}
