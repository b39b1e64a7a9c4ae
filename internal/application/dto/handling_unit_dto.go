package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// HUStorageResponse cantidad de un producto dentro de la HU.
type HUStorageResponse struct {
	ProductID string          `json:"product_id"`
	UOMID     string          `json:"uom_id"`
	Qty       decimal.Decimal `json:"qty"`
}

// HandlingUnitResponse salida de una HU con su contenido.
type HandlingUnitResponse struct {
	ID          string              `json:"id"`
	Value       string              `json:"value"`
	WarehouseID string              `json:"warehouse_id"`
	Status      string              `json:"status"`
	Capacity    *decimal.Decimal    `json:"capacity,omitempty"`
	Storage     []HUStorageResponse `json:"storage"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// HUTrxLineResponse línea de transacción de HU.
type HUTrxLineResponse struct {
	ID          string          `json:"id"`
	TrxID       string          `json:"trx_id"`
	ProductID   string          `json:"product_id"`
	UOMID       string          `json:"uom_id"`
	Qty         decimal.Decimal `json:"qty"`
	Date        time.Time       `json:"date"`
	RefTable    string          `json:"ref_table,omitempty"`
	RefRecordID string          `json:"ref_record_id,omitempty"`
}

// HUTrxLineListResponse líneas de una HU.
type HUTrxLineListResponse struct {
	Items []HUTrxLineResponse `json:"items"`
}
