package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventStatusDraft     = "draft"
	EventStatusScheduled = "scheduled"
	EventStatusOngoing   = "ongoing"
	EventStatusCompleted = "completed"
	EventStatusCancelled = "cancelled"
)

type Event struct {
	ID             uuid.UUID `db:"id"`
	OrganizationID uuid.UUID `db:"organization_id"`
	Name           string    `db:"name"`
	Location       *string   `db:"location"`
	StartsAt       time.Time `db:"starts_at"`
	EndsAt         time.Time `db:"ends_at"`
	Status         string    `db:"status"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// AcceptsCheckins reports whether attendees may check in right now.
func (e *Event) AcceptsCheckins() bool {
	return e.Status == EventStatusScheduled || e.Status == EventStatusOngoing
}

type EventMember struct {
	EventID      uuid.UUID `db:"event_id"`
	UserID       uuid.UUID `db:"user_id"`
	RegisteredAt time.Time `db:"registered_at"`
}

// MemberUser is a registered member joined with the user row.
type MemberUser struct {
	User
	RegisteredAt time.Time `db:"registered_at"`
}
