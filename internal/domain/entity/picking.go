package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-hu/pkg/refenum"
)

// PickingCandidateStatus estado de un candidato de picking.
type PickingCandidateStatus string

const (
	PickingCandidateInProgress PickingCandidateStatus = "IP"
	PickingCandidateProcessed  PickingCandidateStatus = "PR"
	PickingCandidateClosed     PickingCandidateStatus = "CL"
)

var pickingCandidateStatusIndex = refenum.NewIndex("PickingCandidateStatus",
	PickingCandidateInProgress, PickingCandidateProcessed, PickingCandidateClosed,
)

func (s PickingCandidateStatus) Code() string { return string(s) }

// PickingCandidateStatusOfCode resuelve el código de estado.
func PickingCandidateStatusOfCode(code string) (PickingCandidateStatus, error) {
	return pickingCandidateStatusIndex.OfCode(code)
}

// TablePickingCandidates nombre de tabla usado en referencias de trazabilidad.
const TablePickingCandidates = "picking_candidates"

// PickingCandidate picking preparado (aún no finalizado) que vincula una HU con un slot de picking.
type PickingCandidate struct {
	ID                 string
	HUID               string
	PickingSlotID      string // vacío si no hay slot
	ShipmentScheduleID string
	QtyPicked          decimal.Decimal
	Status             PickingCandidateStatus
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ExtractPickingSlotIDs devuelve los slots distintos (no vacíos) en orden de aparición.
func ExtractPickingSlotIDs(candidates []*PickingCandidate) []string {
	seen := make(map[string]struct{}, len(candidates))
	ids := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c.PickingSlotID == "" {
			continue
		}
		if _, ok := seen[c.PickingSlotID]; ok {
			continue
		}
		seen[c.PickingSlotID] = struct{}{}
		ids = append(ids, c.PickingSlotID)
	}
	return ids
}

// PickingCandidateIDs ids en el mismo orden.
func PickingCandidateIDs(candidates []*PickingCandidate) []string {
	ids := make([]string, 0, len(candidates))
	for _, c := range candidates {
		ids = append(ids, c.ID)
	}
	return ids
}

// PickingSlotStatus estado de un slot de picking.
type PickingSlotStatus string

const (
	PickingSlotFree      PickingSlotStatus = "F"
	PickingSlotAllocated PickingSlotStatus = "A"
)

var pickingSlotStatusIndex = refenum.NewIndex("PickingSlotStatus", PickingSlotFree, PickingSlotAllocated)

func (s PickingSlotStatus) Code() string { return string(s) }

// PickingSlotStatusOfCode resuelve el código de estado.
func PickingSlotStatusOfCode(code string) (PickingSlotStatus, error) {
	return pickingSlotStatusIndex.OfCode(code)
}

// PickingSlot ubicación física reservada para preparar mercancía pickeada.
// PartnerID es el cliente al que el slot está asignado mientras está Allocated.
type PickingSlot struct {
	ID          string
	Code        string
	WarehouseID string
	Status      PickingSlotStatus
	PartnerID   *string
	UpdatedAt   time.Time
}

// Release libera el slot (sin cliente, Free). Devuelve false si ya estaba libre.
func (s *PickingSlot) Release(now time.Time) bool {
	if s.Status == PickingSlotFree && s.PartnerID == nil {
		return false
	}
	s.Status = PickingSlotFree
	s.PartnerID = nil
	s.UpdatedAt = now
	return true
}
