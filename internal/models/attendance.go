package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	CheckinMethodQR     = "qr"
	CheckinMethodManual = "manual"
)

type Attendance struct {
	ID          uuid.UUID `db:"id"`
	EventID     uuid.UUID `db:"event_id"`
	UserID      uuid.UUID `db:"user_id"`
	Method      string    `db:"method"`
	CheckedInAt time.Time `db:"checked_in_at"`
}

type EventStatistics struct {
	MemberCount  int `db:"member_count"`
	CheckedIn    int `db:"checked_in_count"`
	QRCheckins   int `db:"qr_count"`
	ManualChecks int `db:"manual_count"`
}
