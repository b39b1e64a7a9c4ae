package repository

import (
	"context"

	"github.com/jhoicas/Inventario-hu/internal/domain/entity"
)

// ProductRepository define el puerto de lectura de productos con su UOM (DIP).
// GetByID devuelve (nil, nil) si no existe.
type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Product, error)
}
