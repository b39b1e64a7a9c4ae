package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")

	// Handling units y picking.
	ErrHUNotFound          = errors.New("unidad de manipulación no encontrada")
	ErrHUNotActive         = errors.New("la unidad de manipulación no está activa")
	ErrHUNotEmpty          = errors.New("la unidad de manipulación aún contiene cantidad")
	ErrProductNotFound     = errors.New("producto no encontrado")
	ErrNoSourceHUs         = errors.New("no hay unidades origen para la unidad de manipulación")
	ErrNoPickingCandidates = errors.New("no hay candidatos de picking")

	// Reservas.
	ErrInvalidDocRef = errors.New("debe indicarse uno y solo un documento de reserva")
)

// PreconditionError error de precondición: se lanza antes de mutar estado y no es reintentable.
// Envuelve un error sentinela (errors.Is funciona) y agrega parámetros de contexto.
type PreconditionError struct {
	Err    error
	Params map[string]string
}

// NewPreconditionError construye el error con pares clave/valor ("hu_id", id, ...).
func NewPreconditionError(err error, kv ...string) *PreconditionError {
	params := make(map[string]string, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		params[kv[i]] = kv[i+1]
	}
	return &PreconditionError{Err: err, Params: params}
}

func (e *PreconditionError) Error() string {
	if len(e.Params) == 0 {
		return e.Err.Error()
	}
	keys := make([]string, 0, len(e.Params))
	for k := range e.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", k, e.Params[k]))
	}
	return fmt.Sprintf("%s (%s)", e.Err.Error(), strings.Join(parts, ", "))
}

func (e *PreconditionError) Unwrap() error { return e.Err }

// IsPrecondition indica si err es (o envuelve) un PreconditionError.
func IsPrecondition(err error) bool {
	var pe *PreconditionError
	return errors.As(err, &pe)
}
