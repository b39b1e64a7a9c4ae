package usecase

import (
	"context"

	"github.com/jhoicas/Inventario-hu/internal/application/dto"
	"github.com/jhoicas/Inventario-hu/internal/application/picking"
)

// ProductUseCase consulta de productos (a través de la caché si está configurada).
type ProductUseCase struct {
	products picking.ProductLookup
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(products picking.ProductLookup) *ProductUseCase {
	return &ProductUseCase{products: products}
}

// GetByID obtiene un producto por ID. (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return &dto.ProductResponse{
		ID:    p.ID,
		Value: p.Value,
		Name:  p.Name,
		UOM: dto.UOMResponse{
			ID:        p.UOM.ID,
			Symbol:    p.UOM.Symbol,
			Precision: p.UOM.Precision,
		},
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}, nil
}
