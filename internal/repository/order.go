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

type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	Update(ctx context.Context, id int64, patch dto.OrderPatch) (*model.Order, error)
	Delete(ctx context.Context, id int64) (*model.Order, error)
}

type pgOrderRepo struct{ pool *pgxpool.Pool }

func NewOrderRepository(pool *pgxpool.Pool) OrderRepository {
	return &pgOrderRepo{pool: pool}
}

const orderColumns = `id, user_id, order_date, status, total, payment_method, created_at, updated_at`

func scanOrder(row pgx.Row) (*model.Order, error) {
	o := &model.Order{}
	err := row.Scan(
		&o.ID, &o.UserID, &o.OrderDate, &o.Status, &o.Total,
		&o.PaymentMethod, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *pgOrderRepo) Create(ctx context.Context, order *model.Order) error {
	query := `INSERT INTO orders (user_id, order_date, status, total, payment_method, created_at, updated_at)
			  VALUES ($1, NOW(), $2, $3, $4, NOW(), NOW())
			  RETURNING id, order_date, created_at, updated_at`
	err := r.pool.QueryRow(ctx, query,
		order.UserID, order.Status, order.Total, order.PaymentMethod,
	).Scan(&order.ID, &order.OrderDate, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return wrapErr("create order", err)
	}
	return nil
}

func (r *pgOrderRepo) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	order, err := scanOrder(r.pool.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("get order", err)
	}
	return order, nil
}

func (r *pgOrderRepo) Update(ctx context.Context, id int64, patch dto.OrderPatch) (*model.Order, error) {
	b := psql.Update("orders")
	changed := false
	if patch.Status != nil {
		b, changed = b.Set("status", *patch.Status), true
	}
	if patch.Total != nil {
		b, changed = b.Set("total", *patch.Total), true
	}
	if patch.PaymentMethod != nil {
		b, changed = b.Set("payment_method", *patch.PaymentMethod), true
	}
	if !changed {
		return r.GetByID(ctx, id)
	}

	query, args, err := b.Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + orderColumns).
		ToSql()
	if err != nil {
		return nil, wrapErr("build order update", err)
	}

	order, err := scanOrder(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("update order", err)
	}
	return order, nil
}

func (r *pgOrderRepo) Delete(ctx context.Context, id int64) (*model.Order, error) {
	order, err := scanOrder(r.pool.QueryRow(ctx,
		`DELETE FROM orders WHERE id = $1 RETURNING `+orderColumns, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("delete order", err)
	}
	return order, nil
}
