// Package stepdata registro tipado "identificador de escenario -> registro" para tests de
// comportamiento: un paso crea registros con un alias (p. ej. "hu_1") y pasos posteriores los
// recuperan por ese alias.
package stepdata

import (
	"fmt"
	"testing"
)

// Table registros de un tipo T indexados por identificador; extractID obtiene el id de dominio.
type Table[ID comparable, T any] struct {
	name      string
	extractID func(T) ID
	records   map[string]T
	order     []string
}

// New crea una tabla vacía.
func New[ID comparable, T any](name string, extractID func(T) ID) *Table[ID, T] {
	return &Table[ID, T]{
		name:      name,
		extractID: extractID,
		records:   make(map[string]T),
	}
}

// Put registra un registro nuevo; un identificador repetido es error.
func (t *Table[ID, T]) Put(identifier string, record T) error {
	if _, ok := t.records[identifier]; ok {
		return fmt.Errorf("%s: identificador %q ya registrado", t.name, identifier)
	}
	t.records[identifier] = record
	t.order = append(t.order, identifier)
	return nil
}

// PutOrReplace registra o reemplaza (p. ej. tras recargar el registro desde la BD).
func (t *Table[ID, T]) PutOrReplace(identifier string, record T) {
	if _, ok := t.records[identifier]; !ok {
		t.order = append(t.order, identifier)
	}
	t.records[identifier] = record
}

// Get devuelve el registro o error si el identificador no existe.
func (t *Table[ID, T]) Get(identifier string) (T, error) {
	record, ok := t.records[identifier]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%s: identificador %q no encontrado", t.name, identifier)
	}
	return record, nil
}

// GetOptional como Get pero sin error.
func (t *Table[ID, T]) GetOptional(identifier string) (T, bool) {
	record, ok := t.records[identifier]
	return record, ok
}

// GetID devuelve el id de dominio del registro.
func (t *Table[ID, T]) GetID(identifier string) (ID, error) {
	record, err := t.Get(identifier)
	if err != nil {
		var zero ID
		return zero, err
	}
	return t.extractID(record), nil
}

// MustGet Get que corta el test si no existe.
func (t *Table[ID, T]) MustGet(tb testing.TB, identifier string) T {
	tb.Helper()
	record, err := t.Get(identifier)
	if err != nil {
		tb.Fatal(err)
	}
	return record
}

// MustGetID GetID que corta el test si no existe.
func (t *Table[ID, T]) MustGetID(tb testing.TB, identifier string) ID {
	tb.Helper()
	return t.extractID(t.MustGet(tb, identifier))
}

// Identifiers identificadores en orden de registro.
func (t *Table[ID, T]) Identifiers() []string {
	return append([]string(nil), t.order...)
}

// Records registros en orden de registro.
func (t *Table[ID, T]) Records() []T {
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.records[id])
	}
	return out
}
