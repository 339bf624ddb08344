package repo

import (
	"errors"

	"github.com/lib/pq"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

var (
	ErrNotFound          = errors.New("resource not found")
	ErrUserExists        = errors.New("user with this email already exists")
	ErrOrgExists         = errors.New("organization with this name already exists")
	ErrMemberExists      = errors.New("user is already a member of this event")
	ErrAlreadyCheckedIn  = errors.New("user has already checked in to this event")
	ErrReferenceNotFound = errors.New("referenced resource not found")
)

// pgErrCode returns the postgres error code of err, or "" if err is not a *pq.Error.
func pgErrCode(err error) string {
	pgErr := &pq.Error{}
	if errors.As(err, &pgErr) {
		return string(pgErr.Code)
	}
	return ""
}

func isUniqueViolation(err error) bool {
	return pgErrCode(err) == uniqueViolationCode
}

func isForeignKeyViolation(err error) bool {
	return pgErrCode(err) == foreignKeyViolationCode
}
