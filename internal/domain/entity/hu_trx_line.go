package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TableRecordReference referencia opaca a un registro (tabla + id), para trazabilidad.
type TableRecordReference struct {
	TableName string
	RecordID  string
}

// IsZero true si no referencia nada.
func (r TableRecordReference) IsZero() bool {
	return r.TableName == "" && r.RecordID == ""
}

// HUTrxLine línea de transacción de HU: un delta de cantidad (negativo en origen, positivo en destino).
// Las líneas de un mismo movimiento comparten TrxID.
type HUTrxLine struct {
	ID        string
	TrxID     string
	HUID      string
	ProductID string
	UOMID     string
	Qty       decimal.Decimal
	Date      time.Time
	Ref       TableRecordReference
	CreatedAt time.Time
}
