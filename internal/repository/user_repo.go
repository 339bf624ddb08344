package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"credopass/internal/lib"
	"credopass/internal/models"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	Upsert(ctx context.Context, user *models.User) (*models.User, error)
	GetById(ctx context.Context, userID uuid.UUID) (*models.User, error)
	List(ctx context.Context, limit, offset int) ([]*models.User, error)
	Update(ctx context.Context, userID uuid.UUID, patch models.UserPatch) (*models.User, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

type UserRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewUserRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *UserRepo {
	return &UserRepo{
		db:     db,
		getter: c,
	}
}

const userColumns = `id, email, first_name, last_name, phone, created_at, updated_at`

func (r *UserRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	const op = "user_repo.Create"

	query := `
		INSERT INTO users (id, email, first_name, last_name, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now(), now())
		RETURNING ` + userColumns

	var created models.User
	err := r.getter.DefaultTrOrDB(ctx, r.db).
		QueryRowxContext(ctx, query, user.ID, user.Email, user.FirstName, user.LastName, user.Phone).
		StructScan(&created)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrUserExists
		}
		return nil, lib.Err(op, err)
	}

	return &created, nil
}

// Upsert inserts the user or overwrites the row with the same id.
// Zero timestamps fall back to now(); created_at is never moved on conflict.
func (r *UserRepo) Upsert(ctx context.Context, user *models.User) (*models.User, error) {
	const op = "user_repo.Upsert"

	query := `
		INSERT INTO users (id, email, first_name, last_name, phone, created_at, updated_at)
		VALUES (
			$1, $2, $3, $4, $5,
			COALESCE($6, now()),
			COALESCE($7, now())
		)
		ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			phone = EXCLUDED.phone,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + userColumns

	var saved models.User
	err := r.getter.DefaultTrOrDB(ctx, r.db).
		QueryRowxContext(
			ctx, query,
			user.ID, user.Email, user.FirstName, user.LastName, user.Phone,
			nullTime(user.CreatedAt), nullTime(user.UpdatedAt),
		).
		StructScan(&saved)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrUserExists
		}
		return nil, lib.Err(op, err)
	}

	return &saved, nil
}

func nullTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func (r *UserRepo) GetById(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	const op = "user_repo.GetById"

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var user models.User
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &user, nil
}

func (r *UserRepo) List(ctx context.Context, limit, offset int) ([]*models.User, error) {
	const op = "user_repo.List"

	query := `
		SELECT ` + userColumns + `
		FROM users
		ORDER BY last_name, first_name, id
		LIMIT $1 OFFSET $2
	`

	users := []*models.User{}
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &users, query, limit, offset)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return users, nil
}

func (r *UserRepo) Update(ctx context.Context, userID uuid.UUID, patch models.UserPatch) (*models.User, error) {
	const op = "user_repo.Update"

	query := `
		UPDATE users SET
			email = COALESCE($2, email),
			first_name = COALESCE($3, first_name),
			last_name = COALESCE($4, last_name),
			phone = CASE WHEN $5 THEN NULL ELSE COALESCE($6, phone) END,
			updated_at = now()
		WHERE id = $1
		RETURNING ` + userColumns

	var updated models.User
	err := r.getter.DefaultTrOrDB(ctx, r.db).
		QueryRowxContext(
			ctx, query,
			userID, patch.Email, patch.FirstName, patch.LastName, patch.ClearPhone, patch.Phone,
		).
		StructScan(&updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		if isUniqueViolation(err) {
			return nil, ErrUserExists
		}
		return nil, lib.Err(op, err)
	}

	return &updated, nil
}

func (r *UserRepo) Delete(ctx context.Context, userID uuid.UUID) error {
	const op = "user_repo.Delete"

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return lib.Err(op, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return lib.Err(op, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
