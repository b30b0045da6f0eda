package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/TanakaTsuyoshi-10/step4backend/internal/domain"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type postgresProductRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresProductRepository(db *sql.DB, logger *logrus.Logger) domain.ProductRepository {
	return &postgresProductRepository{
		db:  db,
		log: logger,
	}
}

func (r *postgresProductRepository) GetProductByCode(ctx context.Context, code int64) (*domain.Product, error) {
	query := `
        SELECT prd_id, code, name, price, tax_cd
        FROM products
        WHERE code = $1`
	product := &domain.Product{}

	err := r.db.QueryRowContext(ctx, query, code).Scan(
		&product.PrdID,
		&product.Code,
		&product.Name,
		&product.Price,
		&product.TaxCd,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Product with code %d not found", code)
			return nil, domain.ErrProductNotFound
		}
		r.log.Errorf("Failed to get product by code %d: %v", code, err)
		return nil, fmt.Errorf("could not get product by code: %w", err)
	}

	return product, nil
}

func (r *postgresProductRepository) ListProducts(ctx context.Context, limit, offset int) ([]domain.Product, error) {
	query := `
        SELECT prd_id, code, name, price, tax_cd
        FROM products
        ORDER BY prd_id ASC
        LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		r.log.Errorf("Failed to list products with limit %d, offset %d: %v", limit, offset, err)
		return nil, fmt.Errorf("could not list products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var product domain.Product
		if err := rows.Scan(&product.PrdID, &product.Code, &product.Name, &product.Price, &product.TaxCd); err != nil {
			r.log.Errorf("Failed to scan product row: %v", err)
			return nil, fmt.Errorf("error scanning product data: %w", err)
		}
		products = append(products, product)
	}
	if err = rows.Err(); err != nil {
		r.log.Errorf("Error during products list iteration: %v", err)
		return nil, fmt.Errorf("error iterating products: %w", err)
	}
	r.log.Infof("Retrieved %d products (limit: %d, offset: %d)", len(products), limit, offset)
	return products, nil
}

func (r *postgresProductRepository) GetProductsByIDs(ctx context.Context, ids []int64) (map[int64]domain.Product, error) {
	products := make(map[int64]domain.Product, len(ids))
	if len(ids) == 0 {
		return products, nil
	}

	query := `
        SELECT prd_id, code, name, price, tax_cd
        FROM products
        WHERE prd_id = ANY($1)`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		r.log.Errorf("Failed to get products by ids %v: %v", ids, err)
		return nil, fmt.Errorf("could not get products by ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var product domain.Product
		if err := rows.Scan(&product.PrdID, &product.Code, &product.Name, &product.Price, &product.TaxCd); err != nil {
			r.log.Errorf("Failed to scan product row: %v", err)
			return nil, fmt.Errorf("error scanning product data: %w", err)
		}
		products[product.PrdID] = product
	}
	if err = rows.Err(); err != nil {
		r.log.Errorf("Error during products by ids iteration: %v", err)
		return nil, fmt.Errorf("error iterating products: %w", err)
	}
	return products, nil
}
