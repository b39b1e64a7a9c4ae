package dto

import "github.com/shopspring/decimal"

// RemoveQtyRequest entrada para quitar cantidad de una HU durante el picking.
// QtyCU se expresa en la unidad base del producto.
type RemoveQtyRequest struct {
	ProductID string          `json:"product_id" validate:"required,min=1,max=64"`
	QtyCU     decimal.Decimal `json:"qty_cu" validate:"gt=0"`
}

// RemoveQtyResponse salida de la operación.
type RemoveQtyResponse struct {
	HUID                string          `json:"hu_id"`
	ProductID           string          `json:"product_id"`
	QtyRequested        decimal.Decimal `json:"qty_requested"`
	QtyAllocated        decimal.Decimal `json:"qty_allocated"`
	HUDestroyed         bool            `json:"hu_destroyed"`
	DeletedCandidateIDs []string        `json:"deleted_candidate_ids"`
	ReleasedSlotIDs     []string        `json:"released_slot_ids"`
}
