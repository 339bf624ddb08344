package checkin

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

const qrPrefix = "credopass"

var ErrInvalidQR = errors.New("qr code is not a valid credopass pass")

// EncodeQR renders the payload printed on a member's pass.
func EncodeQR(eventID, userID uuid.UUID) string {
	return qrPrefix + ":" + eventID.String() + ":" + userID.String()
}

// ParseQR reads a payload produced by EncodeQR.
func ParseQR(code string) (eventID, userID uuid.UUID, err error) {
	parts := strings.Split(strings.TrimSpace(code), ":")
	if len(parts) != 3 || parts[0] != qrPrefix {
		return uuid.Nil, uuid.Nil, ErrInvalidQR
	}

	eventID, err = uuid.Parse(parts[1])
	if err != nil {
		return uuid.Nil, uuid.Nil, ErrInvalidQR
	}
	userID, err = uuid.Parse(parts[2])
	if err != nil {
		return uuid.Nil, uuid.Nil, ErrInvalidQR
	}

	return eventID, userID, nil
}
