package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectLineRef línea de proyecto que origina una reserva.
type ProjectLineRef struct {
	ProjectID string `json:"project_id" validate:"required,max=64"`
	LineID    string `json:"line_id" validate:"required,max=64"`
}

// CreateHUReservationRequest entrada para reservar cantidad de una HU.
// Debe informarse exactamente uno de SalesOrderLineID o ProjectLine.
type CreateHUReservationRequest struct {
	HUID             string          `json:"hu_id" validate:"required,max=64"`
	ProductID        string          `json:"product_id" validate:"required,max=64"`
	Qty              decimal.Decimal `json:"qty" validate:"gt=0"`
	SalesOrderLineID *string         `json:"sales_order_line_id" validate:"omitempty,min=1,max=64"`
	ProjectLine      *ProjectLineRef `json:"project_line" validate:"omitempty"`
}

// HUReservationResponse salida de una reserva.
type HUReservationResponse struct {
	ID               string          `json:"id"`
	HUID             string          `json:"hu_id"`
	ProductID        string          `json:"product_id"`
	Qty              decimal.Decimal `json:"qty"`
	DocRef           string          `json:"doc_ref"`
	SalesOrderLineID *string         `json:"sales_order_line_id,omitempty"`
	ProjectLine      *ProjectLineRef `json:"project_line,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

// HUReservationListResponse reservas de una HU.
type HUReservationListResponse struct {
	Items []HUReservationResponse `json:"items"`
}
