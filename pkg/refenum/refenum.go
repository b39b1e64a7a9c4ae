package refenum

import (
	"fmt"
	"sort"
)

// Coded es un valor de enumeración cerrada que se persiste por su código (lista de referencia).
type Coded interface {
	comparable
	Code() string
}

// Index tabla código -> valor, construida una sola vez al iniciar el proceso.
type Index[T Coded] struct {
	name   string
	byCode map[string]T
}

// NewIndex indexa los valores por código. Hace panic si hay códigos repetidos o vacíos:
// es un error de programación, no de datos.
func NewIndex[T Coded](name string, values ...T) *Index[T] {
	byCode := make(map[string]T, len(values))
	for _, v := range values {
		code := v.Code()
		if code == "" {
			panic(fmt.Sprintf("refenum %s: código vacío", name))
		}
		if _, dup := byCode[code]; dup {
			panic(fmt.Sprintf("refenum %s: código duplicado %q", name, code))
		}
		byCode[code] = v
	}
	return &Index[T]{name: name, byCode: byCode}
}

// OfCode devuelve el valor para el código; un código desconocido es error (nunca un default).
func (i *Index[T]) OfCode(code string) (T, error) {
	if v, ok := i.byCode[code]; ok {
		return v, nil
	}
	var zero T
	return zero, &UnknownCodeError{Enum: i.name, Code: code}
}

// Codes lista los códigos conocidos en orden alfabético.
func (i *Index[T]) Codes() []string {
	codes := make([]string, 0, len(i.byCode))
	for c := range i.byCode {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

// UnknownCodeError código que no pertenece a la lista de referencia.
type UnknownCodeError struct {
	Enum string
	Code string
}

func (e *UnknownCodeError) Error() string {
	return fmt.Sprintf("%s: código desconocido %q", e.Enum, e.Code)
}
