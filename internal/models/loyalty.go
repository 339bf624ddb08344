package models

import (
	"time"

	"github.com/google/uuid"
)

type LoyaltyAccount struct {
	OrganizationID uuid.UUID `db:"organization_id"`
	UserID         uuid.UUID `db:"user_id"`
	Points         int       `db:"points"`
	Tier           string    `db:"tier"`
	UpdatedAt      time.Time `db:"updated_at"`
}
