package usecase

import (
	"context"

	"github.com/TanakaTsuyoshi-10/step4backend/internal/cache"
	"github.com/TanakaTsuyoshi-10/step4backend/internal/domain"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultListLimit applies when the client sends no limit or an
	// unusable one.
	DefaultListLimit = 100
	// MaxListLimit caps a single listing page.
	MaxListLimit = 1000
)

type ProductUseCase interface {
	GetProductByCode(ctx context.Context, code int64) (*domain.Product, error)
	ListProducts(ctx context.Context, limit, offset int) ([]domain.Product, error)
}

type productUseCase struct {
	productRepo domain.ProductRepository
	cache       *cache.ProductCache
	log         *logrus.Logger
}

func NewProductUseCase(repo domain.ProductRepository, productCache *cache.ProductCache, logger *logrus.Logger) ProductUseCase {
	return &productUseCase{
		productRepo: repo,
		cache:       productCache,
		log:         logger,
	}
}

func (uc *productUseCase) GetProductByCode(ctx context.Context, code int64) (*domain.Product, error) {
	uc.log.Infof("Use Case: Product lookup started: code=%d", code)

	if product, ok := uc.cache.Get(ctx, code); ok {
		uc.log.Infof("Use Case: Product lookup served from cache: prd_id=%d, name=%s", product.PrdID, product.Name)
		return product, nil
	}

	product, err := uc.productRepo.GetProductByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	uc.cache.Set(ctx, product)

	uc.log.Infof("Use Case: Product lookup succeeded: prd_id=%d, name=%s", product.PrdID, product.Name)
	return product, nil
}

func (uc *productUseCase) ListProducts(ctx context.Context, limit, offset int) ([]domain.Product, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	uc.log.Infof("Use Case: Product listing started: limit=%d, offset=%d", limit, offset)
	products, err := uc.productRepo.ListProducts(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	uc.log.Infof("Use Case: Product listing succeeded: count=%d", len(products))
	return products, nil
}
