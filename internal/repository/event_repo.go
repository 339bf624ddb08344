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

type EventRepository interface {
	Create(ctx context.Context, event *models.Event) (*models.Event, error)
	GetById(ctx context.Context, eventID uuid.UUID) (*models.Event, error)
	ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]*models.Event, error)
	SetStatus(ctx context.Context, eventID uuid.UUID, status string) (*models.Event, error)
	Delete(ctx context.Context, eventID uuid.UUID) error

	AddMember(ctx context.Context, eventID, userID uuid.UUID) (*models.EventMember, error)
	IsMember(ctx context.Context, eventID, userID uuid.UUID) (bool, error)
	GetMemberUsers(ctx context.Context, eventID uuid.UUID) ([]*models.MemberUser, error)
}

type EventRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewEventRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *EventRepo {
	return &EventRepo{
		db:     db,
		getter: c,
	}
}

const eventColumns = `id, organization_id, name, location, starts_at, ends_at, status, created_at, updated_at`

func (r *EventRepo) Create(ctx context.Context, event *models.Event) (*models.Event, error) {
	const op = "event_repo.Create"

	query := `
		INSERT INTO events (id, organization_id, name, location, starts_at, ends_at, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
		RETURNING ` + eventColumns

	var created models.Event
	err := r.getter.DefaultTrOrDB(ctx, r.db).
		QueryRowxContext(
			ctx, query,
			event.ID, event.OrganizationID, event.Name, event.Location,
			event.StartsAt, event.EndsAt, event.Status,
		).
		StructScan(&created)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, ErrReferenceNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &created, nil
}

func (r *EventRepo) GetById(ctx context.Context, eventID uuid.UUID) (*models.Event, error) {
	const op = "event_repo.GetById"

	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	var event models.Event
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &event, query, eventID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &event, nil
}

func (r *EventRepo) ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]*models.Event, error) {
	const op = "event_repo.ListByOrganization"

	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE organization_id = $1
		ORDER BY starts_at DESC
	`

	events := []*models.Event{}
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &events, query, orgID)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return events, nil
}

func (r *EventRepo) SetStatus(ctx context.Context, eventID uuid.UUID, status string) (*models.Event, error) {
	const op = "event_repo.SetStatus"

	query := `
		UPDATE events SET status = $2, updated_at = now()
		WHERE id = $1
		RETURNING ` + eventColumns

	var event models.Event
	err := r.getter.DefaultTrOrDB(ctx, r.db).QueryRowxContext(ctx, query, eventID, status).StructScan(&event)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &event, nil
}

func (r *EventRepo) Delete(ctx context.Context, eventID uuid.UUID) error {
	const op = "event_repo.Delete"

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, `DELETE FROM events WHERE id = $1`, eventID)
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

func (r *EventRepo) AddMember(ctx context.Context, eventID, userID uuid.UUID) (*models.EventMember, error) {
	const op = "event_repo.AddMember"

	query := `
		INSERT INTO event_members (event_id, user_id, registered_at)
		VALUES ($1, $2, now())
		RETURNING event_id, user_id, registered_at;
	`

	var member models.EventMember
	err := r.getter.DefaultTrOrDB(ctx, r.db).QueryRowxContext(ctx, query, eventID, userID).StructScan(&member)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrMemberExists
		}
		if isForeignKeyViolation(err) {
			return nil, ErrReferenceNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &member, nil
}

func (r *EventRepo) IsMember(ctx context.Context, eventID, userID uuid.UUID) (bool, error) {
	const op = "event_repo.IsMember"

	query := `SELECT EXISTS (SELECT 1 FROM event_members WHERE event_id = $1 AND user_id = $2)`

	var exists bool
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &exists, query, eventID, userID)
	if err != nil {
		return false, lib.Err(op, err)
	}

	return exists, nil
}

func (r *EventRepo) GetMemberUsers(ctx context.Context, eventID uuid.UUID) ([]*models.MemberUser, error) {
	const op = "event_repo.GetMemberUsers"

	query := `
		SELECT u.id, u.email, u.first_name, u.last_name, u.phone, u.created_at, u.updated_at, m.registered_at
		FROM event_members m
		JOIN users u ON u.id = m.user_id
		WHERE m.event_id = $1
		ORDER BY m.registered_at, u.id
	`

	members := []*models.MemberUser{}
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &members, query, eventID)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return members, nil
}
