package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Inventario-hu/internal/application/picking"
	"github.com/jhoicas/Inventario-hu/internal/domain/entity"
	"github.com/jhoicas/Inventario-hu/pkg/logger"
)

var _ picking.ProductLookup = (*ProductCache)(nil)

const productKeyPrefix = "hu:product:"

// store subconjunto de redis.Cmdable usado por la caché.
type store interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// ProductCache decora un ProductLookup con Redis. Solo se cachean productos existentes; si Redis
// falla se lee del origen y se registra un warn.
type ProductCache struct {
	next picking.ProductLookup
	rdb  store
	ttl  time.Duration
	log  *logger.Logger
}

// NewProductCache construye la caché sobre next.
func NewProductCache(next picking.ProductLookup, rdb store, ttl time.Duration, log *logger.Logger) *ProductCache {
	return &ProductCache{next: next, rdb: rdb, ttl: ttl, log: log}
}

type cachedProduct struct {
	ID        string    `json:"id"`
	Value     string    `json:"value"`
	Name      string    `json:"name"`
	UOMID     string    `json:"uom_id"`
	UOMSymbol string    `json:"uom_symbol"`
	Precision int32     `json:"precision"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GetByID devuelve el producto desde Redis o, si no está, desde next (y lo guarda).
func (c *ProductCache) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	key := productKeyPrefix + id
	raw, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cp cachedProduct
		if jsonErr := json.Unmarshal(raw, &cp); jsonErr == nil {
			return cp.toEntity(), nil
		}
		c.log.Warn().Str("key", key).Msg("entrada de caché de producto corrupta")
	case !errors.Is(err, redis.Nil):
		c.log.Warn().Err(err).Str("product_id", id).Msg("redis no disponible, lectura directa")
	}

	p, err := c.next.GetByID(ctx, id)
	if err != nil || p == nil {
		return p, err
	}
	if b, err := json.Marshal(fromEntity(p)); err == nil {
		if err := c.rdb.Set(ctx, key, b, c.ttl).Err(); err != nil {
			c.log.Warn().Err(err).Str("product_id", id).Msg("no se pudo cachear el producto")
		}
	}
	return p, nil
}

func fromEntity(p *entity.Product) cachedProduct {
	return cachedProduct{
		ID:        p.ID,
		Value:     p.Value,
		Name:      p.Name,
		UOMID:     p.UOM.ID,
		UOMSymbol: p.UOM.Symbol,
		Precision: p.UOM.Precision,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (cp cachedProduct) toEntity() *entity.Product {
	return &entity.Product{
		ID:        cp.ID,
		Value:     cp.Value,
		Name:      cp.Name,
		UOM:       entity.UOM{ID: cp.UOMID, Symbol: cp.UOMSymbol, Precision: cp.Precision},
		CreatedAt: cp.CreatedAt,
		UpdatedAt: cp.UpdatedAt,
	}
}
