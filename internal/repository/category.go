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

type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) error
	GetByID(ctx context.Context, id int64) (*model.Category, error)
	Update(ctx context.Context, id int64, patch dto.CategoryPatch) (*model.Category, error)
	Delete(ctx context.Context, id int64) (*model.Category, error)
}

type pgCategoryRepo struct{ pool *pgxpool.Pool }

func NewCategoryRepository(pool *pgxpool.Pool) CategoryRepository {
	return &pgCategoryRepo{pool: pool}
}

const categoryColumns = `id, name, description, status, created_at, updated_at`

func scanCategory(row pgx.Row) (*model.Category, error) {
	c := &model.Category{}
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *pgCategoryRepo) Create(ctx context.Context, category *model.Category) error {
	query := `INSERT INTO categories (name, description, status, created_at, updated_at)
			  VALUES ($1, $2, $3, NOW(), NOW())
			  RETURNING id, created_at, updated_at`
	err := r.pool.QueryRow(ctx, query,
		category.Name, category.Description, category.Status,
	).Scan(&category.ID, &category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		return wrapErr("create category", err)
	}
	return nil
}

func (r *pgCategoryRepo) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	category, err := scanCategory(r.pool.QueryRow(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("get category", err)
	}
	return category, nil
}

func (r *pgCategoryRepo) Update(ctx context.Context, id int64, patch dto.CategoryPatch) (*model.Category, error) {
	b := psql.Update("categories")
	changed := false
	if patch.Name != nil {
		b, changed = b.Set("name", *patch.Name), true
	}
	if patch.Description != nil {
		b, changed = b.Set("description", *patch.Description), true
	}
	if patch.Status != nil {
		b, changed = b.Set("status", *patch.Status), true
	}
	if !changed {
		return r.GetByID(ctx, id)
	}

	query, args, err := b.Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + categoryColumns).
		ToSql()
	if err != nil {
		return nil, wrapErr("build category update", err)
	}

	category, err := scanCategory(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("update category", err)
	}
	return category, nil
}

func (r *pgCategoryRepo) Delete(ctx context.Context, id int64) (*model.Category, error) {
	category, err := scanCategory(r.pool.QueryRow(ctx,
		`DELETE FROM categories WHERE id = $1 RETURNING `+categoryColumns, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("delete category", err)
	}
	return category, nil
}
