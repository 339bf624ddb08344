package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `db:"id"`
	Email     string    `db:"email"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	Phone     *string   `db:"phone"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// UserPatch holds a partial update. Nil fields are left untouched;
// ClearPhone sets phone to NULL.
type UserPatch struct {
	Email      *string
	FirstName  *string
	LastName   *string
	Phone      *string
	ClearPhone bool
}
