package domain

// Nomes das colunas do dataset de vendas (contrato externo, devem bater exatamente)
const (
	FieldProduct   = "Product"
	FieldCategory  = "Category"
	FieldMonth     = "Month"
	FieldUnitsSold = "Units_Sold"
	FieldRevenue   = "Revenue"
)

// RequiredFields lista os campos obrigatórios na ordem das colunas do CSV
var RequiredFields = []string{FieldProduct, FieldCategory, FieldMonth, FieldUnitsSold, FieldRevenue}

// RawRow é uma linha do dataset ainda não validada, indexada pelo nome da coluna
type RawRow map[string]string

// SalesRecord representa uma linha validada de vendas mensais de um produto
type SalesRecord struct {
	Product   string  `json:"product"`
	Category  string  `json:"category"`
	Month     Month   `json:"month"`
	UnitsSold int64   `json:"units_sold"`
	Revenue   float64 `json:"revenue"`
}
