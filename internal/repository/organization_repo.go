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

type OrganizationRepository interface {
	Create(ctx context.Context, org *models.Organization) (*models.Organization, error)
	GetById(ctx context.Context, orgID uuid.UUID) (*models.Organization, error)
}

type OrganizationRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewOrganizationRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *OrganizationRepo {
	return &OrganizationRepo{
		db:     db,
		getter: c,
	}
}

func (r *OrganizationRepo) Create(ctx context.Context, org *models.Organization) (*models.Organization, error) {
	const op = "organization_repo.Create"

	query := `
		INSERT INTO organizations (id, name, created_at, updated_at)
		VALUES ($1, $2, now(), now())
		RETURNING id, name, created_at, updated_at;
	`

	var created models.Organization
	err := r.getter.DefaultTrOrDB(ctx, r.db).QueryRowxContext(ctx, query, org.ID, org.Name).StructScan(&created)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrOrgExists
		}
		return nil, lib.Err(op, err)
	}

	return &created, nil
}

func (r *OrganizationRepo) GetById(ctx context.Context, orgID uuid.UUID) (*models.Organization, error) {
	const op = "organization_repo.GetById"

	query := `
		SELECT id, name, created_at, updated_at
		FROM organizations
		WHERE id = $1;
	`

	var org models.Organization
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &org, query, orgID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &org, nil
}
