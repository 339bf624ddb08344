package checkin_test

import (
	"testing"

	"credopass/internal/service/checkin"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQR_RoundTrip(t *testing.T) {
	eventID, userID := uuid.New(), uuid.New()

	code := checkin.EncodeQR(eventID, userID)
	assert.Equal(t, "credopass:"+eventID.String()+":"+userID.String(), code)

	gotEvent, gotUser, err := checkin.ParseQR("  " + code + "\n")
	require.NoError(t, err)
	assert.Equal(t, eventID, gotEvent)
	assert.Equal(t, userID, gotUser)
}

func TestParseQR_Invalid(t *testing.T) {
	id := uuid.NewString()
	cases := map[string]string{
		"empty":        "",
		"wrong prefix": "pass:" + id + ":" + id,
		"missing part": "credopass:" + id,
		"extra part":   "credopass:" + id + ":" + id + ":x",
		"bad event":    "credopass:nope:" + id,
		"bad user":     "credopass:" + id + ":nope",
	}

	for name, code := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := checkin.ParseQR(code)
			assert.ErrorIs(t, err, checkin.ErrInvalidQR)
		})
	}
}
