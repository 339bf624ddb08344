package repo

import (
	"context"

	"credopass/internal/lib"
	"credopass/internal/models"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type AttendanceRepository interface {
	Create(ctx context.Context, a *models.Attendance) (*models.Attendance, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*models.Attendance, error)
	GetEventStats(ctx context.Context, eventID uuid.UUID) (*models.EventStatistics, error)
}

type AttendanceRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewAttendanceRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *AttendanceRepo {
	return &AttendanceRepo{
		db:     db,
		getter: c,
	}
}

func (r *AttendanceRepo) Create(ctx context.Context, a *models.Attendance) (*models.Attendance, error) {
	const op = "attendance_repo.Create"

	query := `
		INSERT INTO attendance (id, event_id, user_id, method, checked_in_at)
		VALUES ($1, $2, $3, $4, now())
		RETURNING id, event_id, user_id, method, checked_in_at;
	`

	var created models.Attendance
	err := r.getter.DefaultTrOrDB(ctx, r.db).
		QueryRowxContext(ctx, query, a.ID, a.EventID, a.UserID, a.Method).
		StructScan(&created)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrAlreadyCheckedIn
		}
		if isForeignKeyViolation(err) {
			return nil, ErrReferenceNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &created, nil
}

func (r *AttendanceRepo) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*models.Attendance, error) {
	const op = "attendance_repo.ListByEvent"

	query := `
		SELECT id, event_id, user_id, method, checked_in_at
		FROM attendance
		WHERE event_id = $1
		ORDER BY checked_in_at
	`

	rows := []*models.Attendance{}
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &rows, query, eventID)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return rows, nil
}

func (r *AttendanceRepo) GetEventStats(ctx context.Context, eventID uuid.UUID) (*models.EventStatistics, error) {
	const op = "attendance_repo.GetEventStats"

	query := `
		SELECT
		(SELECT COUNT(*) FROM event_members WHERE event_id = $1) as member_count,
		COUNT(*) as checked_in_count,
		COUNT(CASE WHEN method = 'qr' THEN 1 END) as qr_count,
		COUNT(CASE WHEN method = 'manual' THEN 1 END) as manual_count
		FROM attendance
		WHERE event_id = $1
	`

	var res models.EventStatistics
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &res, query, eventID)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return &res, nil
}
