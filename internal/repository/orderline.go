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

type OrderLineRepository interface {
	Create(ctx context.Context, line *model.OrderLine) error
	GetByID(ctx context.Context, id int64) (*model.OrderLine, error)
	Update(ctx context.Context, id int64, patch dto.OrderLinePatch) (*model.OrderLine, error)
	Delete(ctx context.Context, id int64) (*model.OrderLine, error)
}

type pgOrderLineRepo struct{ pool *pgxpool.Pool }

func NewOrderLineRepository(pool *pgxpool.Pool) OrderLineRepository {
	return &pgOrderLineRepo{pool: pool}
}

const orderLineColumns = `id, order_id, product_id, quantity, unit_price, subtotal`

func scanOrderLine(row pgx.Row) (*model.OrderLine, error) {
	l := &model.OrderLine{}
	err := row.Scan(&l.ID, &l.OrderID, &l.ProductID, &l.Quantity, &l.UnitPrice, &l.Subtotal)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (r *pgOrderLineRepo) Create(ctx context.Context, line *model.OrderLine) error {
	query := `INSERT INTO order_lines (order_id, product_id, quantity, unit_price, subtotal)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`
	err := r.pool.QueryRow(ctx, query,
		line.OrderID, line.ProductID, line.Quantity, line.UnitPrice, line.Subtotal,
	).Scan(&line.ID)
	if err != nil {
		return wrapErr("create order line", err)
	}
	return nil
}

func (r *pgOrderLineRepo) GetByID(ctx context.Context, id int64) (*model.OrderLine, error) {
	line, err := scanOrderLine(r.pool.QueryRow(ctx,
		`SELECT `+orderLineColumns+` FROM order_lines WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("get order line", err)
	}
	return line, nil
}

func (r *pgOrderLineRepo) Update(ctx context.Context, id int64, patch dto.OrderLinePatch) (*model.OrderLine, error) {
	b := psql.Update("order_lines")
	changed := false
	if patch.Quantity != nil {
		b, changed = b.Set("quantity", *patch.Quantity), true
	}
	if patch.UnitPrice != nil {
		b, changed = b.Set("unit_price", *patch.UnitPrice), true
	}
	if patch.Subtotal != nil {
		b, changed = b.Set("subtotal", *patch.Subtotal), true
	}
	if !changed {
		return r.GetByID(ctx, id)
	}

	query, args, err := b.Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + orderLineColumns).
		ToSql()
	if err != nil {
		return nil, wrapErr("build order line update", err)
	}

	line, err := scanOrderLine(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("update order line", err)
	}
	return line, nil
}

func (r *pgOrderLineRepo) Delete(ctx context.Context, id int64) (*model.OrderLine, error) {
	line, err := scanOrderLine(r.pool.QueryRow(ctx,
		`DELETE FROM order_lines WHERE id = $1 RETURNING `+orderLineColumns, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("delete order line", err)
	}
	return line, nil
}
