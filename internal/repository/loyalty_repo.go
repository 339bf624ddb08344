package repo

import (
	"context"
	"database/sql"
	"errors"

	"credopass/internal/lib"
	"credopass/internal/models"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type LoyaltyRepository interface {
	AddPoints(ctx context.Context, orgID, userID uuid.UUID, points int) (*models.LoyaltyAccount, error)
	SetTier(ctx context.Context, orgID, userID uuid.UUID, tier string) error
	Get(ctx context.Context, orgID, userID uuid.UUID) (*models.LoyaltyAccount, error)
}

type LoyaltyRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewLoyaltyRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *LoyaltyRepo {
	return &LoyaltyRepo{
		db:     db,
		getter: c,
	}
}

// AddPoints creates the account on first use and returns the new balance.
func (r *LoyaltyRepo) AddPoints(ctx context.Context, orgID, userID uuid.UUID, points int) (*models.LoyaltyAccount, error) {
	const op = "loyalty_repo.AddPoints"

	query := `
		INSERT INTO loyalty_accounts (organization_id, user_id, points, tier, updated_at)
		VALUES ($1, $2, $3, 'bronze', now())
		ON CONFLICT (organization_id, user_id) DO UPDATE SET
			points = loyalty_accounts.points + EXCLUDED.points,
			updated_at = now()
		RETURNING organization_id, user_id, points, tier, updated_at;
	`

	var account models.LoyaltyAccount
	err := r.getter.DefaultTrOrDB(ctx, r.db).QueryRowxContext(ctx, query, orgID, userID, points).StructScan(&account)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return &account, nil
}

func (r *LoyaltyRepo) SetTier(ctx context.Context, orgID, userID uuid.UUID, tier string) error {
	const op = "loyalty_repo.SetTier"

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(
		ctx,
		`UPDATE loyalty_accounts SET tier = $3 WHERE organization_id = $1 AND user_id = $2`,
		orgID, userID, tier,
	)
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

func (r *LoyaltyRepo) Get(ctx context.Context, orgID, userID uuid.UUID) (*models.LoyaltyAccount, error) {
	const op = "loyalty_repo.Get"

	query := `
		SELECT organization_id, user_id, points, tier, updated_at
		FROM loyalty_accounts
		WHERE organization_id = $1 AND user_id = $2;
	`

	var account models.LoyaltyAccount
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &account, query, orgID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &account, nil
}
