package dto

import "time"

// UOMResponse unidad de medida.
type UOMResponse struct {
	ID        string `json:"id"`
	Symbol    string `json:"symbol"`
	Precision int32  `json:"precision"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        string      `json:"id"`
	Value     string      `json:"value"`
	Name      string      `json:"name"`
	UOM       UOMResponse `json:"uom"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
