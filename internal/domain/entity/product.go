package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// UOM unidad de medida. Precision = decimales admitidos en sus cantidades.
type UOM struct {
	ID        string
	Symbol    string
	Precision int32
}

// Represents indica si qty se expresa sin pérdida con la precisión de la UOM.
func (u UOM) Represents(qty decimal.Decimal) bool {
	return qty.Equal(qty.Round(u.Precision))
}

// Product producto con su unidad de medida base (CU).
type Product struct {
	ID        string
	Value     string // código/SKU
	Name      string
	UOM       UOM
	CreatedAt time.Time
	UpdatedAt time.Time
}
