package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/esit/ecommerce-api/internal/dto"
	"github.com/esit/ecommerce-api/internal/model"
)

type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	Update(ctx context.Context, id int64, patch dto.ProductPatch) (*model.Product, error)
	Delete(ctx context.Context, id int64) (*model.Product, error)
}

type pgProductRepo struct{ pool *pgxpool.Pool }

func NewProductRepository(pool *pgxpool.Pool) ProductRepository {
	return &pgProductRepo{pool: pool}
}

const productColumns = `id, name, description, price, category_id, stock, sku, status, created_at, updated_at`

func scanProduct(row pgx.Row) (*model.Product, error) {
	p := &model.Product{}
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.CategoryID,
		&p.Stock, &p.SKU, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *pgProductRepo) Create(ctx context.Context, product *model.Product) error {
	query := `INSERT INTO products (name, description, price, category_id, stock, sku, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
			  RETURNING id, created_at, updated_at`
	err := r.pool.QueryRow(ctx, query,
		product.Name, product.Description, product.Price, product.CategoryID,
		product.Stock, product.SKU, product.Status,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return wrapErr("create product", err)
	}
	return nil
}

func (r *pgProductRepo) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	product, err := scanProduct(r.pool.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("get product", err)
	}
	return product, nil
}

func (r *pgProductRepo) Update(ctx context.Context, id int64, patch dto.ProductPatch) (*model.Product, error) {
	b := psql.Update("products")
	changed := false
	if patch.Name != nil {
		b, changed = b.Set("name", *patch.Name), true
	}
	if patch.Description != nil {
		b, changed = b.Set("description", *patch.Description), true
	}
	if patch.Price != nil {
		b, changed = b.Set("price", *patch.Price), true
	}
	if patch.CategoryID != nil {
		b, changed = b.Set("category_id", *patch.CategoryID), true
	}
	if patch.Stock != nil {
		b, changed = b.Set("stock", *patch.Stock), true
	}
	if patch.SKU != nil {
		b, changed = b.Set("sku", *patch.SKU), true
	}
	if patch.Status != nil {
		b, changed = b.Set("status", *patch.Status), true
	}
	if !changed {
		return r.GetByID(ctx, id)
	}

	query, args, err := b.Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + productColumns).
		ToSql()
	if err != nil {
		return nil, wrapErr("build product update", err)
	}

	product, err := scanProduct(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("update product", err)
	}
	return product, nil
}

func (r *pgProductRepo) Delete(ctx context.Context, id int64) (*model.Product, error) {
	product, err := scanProduct(r.pool.QueryRow(ctx,
		`DELETE FROM products WHERE id = $1 RETURNING `+productColumns, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("delete product", err)
	}
	return product, nil
}
