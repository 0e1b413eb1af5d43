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

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, id int64, patch dto.UserPatch) (*model.User, error)
	Delete(ctx context.Context, id int64) (*model.User, error)
}

type pgUserRepo struct{ pool *pgxpool.Pool }

func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &pgUserRepo{pool: pool}
}

const userColumns = `id, name, email, password_hash, address, phone, status, created_at, updated_at`

func scanUser(row pgx.Row) (*model.User, error) {
	u := &model.User{}
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.Password, &u.Address,
		&u.Phone, &u.Status, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *pgUserRepo) Create(ctx context.Context, user *model.User) error {
	query := `INSERT INTO users (name, email, password_hash, address, phone, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
			  RETURNING id, created_at, updated_at`
	err := r.pool.QueryRow(ctx, query,
		user.Name, user.Email, user.Password, user.Address, user.Phone, user.Status,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return wrapErr("create user", err)
	}
	return nil
}

func (r *pgUserRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	user, err := scanUser(r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("get user by id", err)
	}
	return user, nil
}

func (r *pgUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := scanUser(r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("get user by email", err)
	}
	return user, nil
}

func (r *pgUserRepo) Update(ctx context.Context, id int64, patch dto.UserPatch) (*model.User, error) {
	b := psql.Update("users")
	changed := false
	if patch.Name != nil {
		b, changed = b.Set("name", *patch.Name), true
	}
	if patch.Email != nil {
		b, changed = b.Set("email", *patch.Email), true
	}
	if patch.Password != nil {
		b, changed = b.Set("password_hash", *patch.Password), true
	}
	if patch.Address != nil {
		b, changed = b.Set("address", *patch.Address), true
	}
	if patch.Phone != nil {
		b, changed = b.Set("phone", *patch.Phone), true
	}
	if patch.Status != nil {
		b, changed = b.Set("status", *patch.Status), true
	}
	if !changed {
		return r.GetByID(ctx, id)
	}

	query, args, err := b.Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + userColumns).
		ToSql()
	if err != nil {
		return nil, wrapErr("build user update", err)
	}

	user, err := scanUser(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("update user", err)
	}
	return user, nil
}

func (r *pgUserRepo) Delete(ctx context.Context, id int64) (*model.User, error) {
	user, err := scanUser(r.pool.QueryRow(ctx,
		`DELETE FROM users WHERE id = $1 RETURNING `+userColumns, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("delete user", err)
	}
	return user, nil
}
