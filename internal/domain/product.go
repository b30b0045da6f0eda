package domain

import (
	"context"
	"errors"
)

// ErrProductNotFound signals that a lookup matched no row. Handlers
// translate it to a 404 once, at the HTTP boundary.
var ErrProductNotFound = errors.New("product not found")

type ProductRepository interface {
	GetProductByCode(ctx context.Context, code int64) (*Product, error)
	ListProducts(ctx context.Context, limit, offset int) ([]Product, error)
	// GetProductsByIDs returns the subset of products whose prd_id is in ids,
	// keyed by prd_id. Missing ids are simply absent from the map.
	GetProductsByIDs(ctx context.Context, ids []int64) (map[int64]Product, error)
}
