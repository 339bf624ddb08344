package api_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"credopass/internal/http/api"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validID = "3f2504e0-4f89-11d3-9a0c-0305e82c3301"

func validUser() api.UserSchema {
	return api.UserSchema{
		ID:        validID,
		Email:     "ada@example.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
	}
}

func failedTags(t *testing.T, err error) map[string]string {
	t.Helper()

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)

	tags := make(map[string]string, len(verrs))
	for _, e := range verrs {
		tags[e.Field()] = e.Tag()
	}
	return tags
}

func TestUserSchema_Valid(t *testing.T) {
	assert.NoError(t, api.Validate(validUser()))
}

func TestUserSchema_RejectsNonUUIDID(t *testing.T) {
	u := validUser()
	u.ID = "user-42"

	tags := failedTags(t, api.Validate(u))
	assert.Equal(t, "uuid", tags["id"])
}

func TestUserSchema_RejectsMalformedEmail(t *testing.T) {
	for _, email := range []string{"ada", "ada@", "@example.com", "ada example.com"} {
		t.Run(email, func(t *testing.T) {
			u := validUser()
			u.Email = email

			tags := failedTags(t, api.Validate(u))
			assert.Equal(t, "email", tags["email"])
		})
	}
}

func TestUserSchema_FirstNameLength(t *testing.T) {
	u := validUser()
	u.FirstName = ""
	tags := failedTags(t, api.Validate(u))
	assert.Contains(t, tags, "firstName")

	u.FirstName = "A"
	assert.NoError(t, api.Validate(u))
}

func TestUserSchema_PhoneMayBeNull(t *testing.T) {
	var u api.UserSchema
	body := `{"id":"` + validID + `","email":"ada@example.com","firstName":"Ada","lastName":"L","phone":null}`
	require.NoError(t, json.Unmarshal([]byte(body), &u))

	assert.Nil(t, u.Phone)
	assert.NoError(t, api.Validate(u))
}

func TestUserCreateRequest_DropsIDAndTimestamps(t *testing.T) {
	body := `{
		"id": "` + validID + `",
		"createdAt": "2020-01-01T00:00:00Z",
		"updatedAt": "2020-01-01T00:00:00Z",
		"email": "ada@example.com",
		"firstName": "Ada",
		"lastName": "Lovelace"
	}`

	var req api.UserCreateRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	require.NoError(t, api.Validate(req))

	out, err := json.Marshal(req)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(out, &fields))
	assert.NotContains(t, fields, "id")
	assert.NotContains(t, fields, "createdAt")
	assert.NotContains(t, fields, "updatedAt")
	assert.Equal(t, "ada@example.com", fields["email"])
}

func TestUserUpdateRequest_AcceptsEmptyObject(t *testing.T) {
	var req api.UserUpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{}`), &req))

	assert.NoError(t, api.Validate(req))
	assert.Zero(t, req.Patch())
}

func TestUserUpdateRequest_ValidatesPresentFields(t *testing.T) {
	var req api.UserUpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"email":"nope","firstName":""}`), &req))

	tags := failedTags(t, api.Validate(req))
	assert.Equal(t, "email", tags["email"])
	assert.Equal(t, "min", tags["firstName"])
}

func TestUserUpdateRequest_Phone(t *testing.T) {
	cases := []struct {
		name      string
		body      string
		wantPhone *string
		wantClear bool
	}{
		{"absent", `{}`, nil, false},
		{"null clears", `{"phone":null}`, nil, true},
		{"value sets", `{"phone":"+15550100"}`, func() *string { s := "+15550100"; return &s }(), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var req api.UserUpdateRequest
			require.NoError(t, json.Unmarshal([]byte(c.body), &req))

			patch := req.Patch()
			assert.Equal(t, c.wantPhone, patch.Phone)
			assert.Equal(t, c.wantClear, patch.ClearPhone)
		})
	}
}

func TestNullString_Marshal(t *testing.T) {
	out, err := json.Marshal(api.UserUpdateRequest{})
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(out))

	out, err = json.Marshal(api.UserUpdateRequest{Phone: api.NullString{Set: true}})
	require.NoError(t, err)
	assert.Equal(t, `{"phone":null}`, string(out))

	out, err = json.Marshal(api.UserUpdateRequest{Phone: api.NewNullString("123")})
	require.NoError(t, err)
	assert.Equal(t, `{"phone":"123"}`, string(out))
}

func TestUserInsertRequest_OptionalIDAndTimestamps(t *testing.T) {
	base := `"email":"ada@example.com","firstName":"Ada","lastName":"Lovelace"`
	bodies := map[string]string{
		"bare":            `{` + base + `}`,
		"with id":         `{"id":"` + validID + `",` + base + `}`,
		"with timestamps": `{"createdAt":"2024-05-01T10:00:00Z","updatedAt":"2024-05-02T10:00:00Z",` + base + `}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			var req api.UserInsertRequest
			require.NoError(t, json.Unmarshal([]byte(body), &req))
			assert.NoError(t, api.Validate(req))
		})
	}

	var req api.UserInsertRequest
	require.NoError(t, json.Unmarshal([]byte(`{"id":"42",`+base+`}`), &req))
	tags := failedTags(t, api.Validate(req))
	assert.Equal(t, "uuid", tags["id"])
}

func TestEventCreateRequest_Window(t *testing.T) {
	starts := time.Date(2026, 10, 20, 18, 0, 0, 0, time.UTC)
	req := api.EventCreateRequest{
		OrganizationID: validID,
		Name:           "Meetup",
		StartsAt:       starts,
		EndsAt:         starts,
	}
	assert.NoError(t, api.Validate(req))

	req.EndsAt = starts.Add(-time.Second)
	tags := failedTags(t, api.Validate(req))
	assert.Equal(t, "gtefield", tags["endsAt"])

	req.EndsAt = starts.Add(time.Hour)
	req.Status = "ongoing"
	tags = failedTags(t, api.Validate(req))
	assert.Equal(t, "oneof", tags["status"])
}

func TestCheckinRequest_ExactlyOneIdentity(t *testing.T) {
	assert.NoError(t, api.Validate(api.CheckinRequest{UserID: validID}))
	assert.NoError(t, api.Validate(api.CheckinRequest{QRCode: "credopass:a:b"}))
	assert.Error(t, api.Validate(api.CheckinRequest{}))
	assert.Error(t, api.Validate(api.CheckinRequest{UserID: validID, QRCode: "credopass:a:b"}))
}

func TestValidationError_Message(t *testing.T) {
	u := validUser()
	u.ID = "x"
	u.Email = "y"

	var verrs validator.ValidationErrors
	require.ErrorAs(t, api.Validate(u), &verrs)

	resp := api.ValidationError(verrs)
	assert.Equal(t, api.ErrValidationErr, resp.Error.Code)
	assert.True(t, strings.Contains(resp.Error.Message, "field 'id' must be a valid UUID"))
	assert.True(t, strings.Contains(resp.Error.Message, "field 'email' must be a valid email"))
	require.NotNil(t, resp.Error.Cause)
	assert.Equal(t, resp.Error.Message, resp.Error.Cause.Detail)
	assert.Empty(t, resp.Error.Cause.Stack)
}

func TestUUIDFields_AcceptUppercase(t *testing.T) {
	const upper = "3F2504E0-4F89-11D3-9A0C-0305E82C3301"

	u := validUser()
	u.ID = upper
	assert.NoError(t, api.Validate(u))

	id := upper
	assert.NoError(t, api.Validate(api.UserInsertRequest{
		ID: &id, Email: "ada@example.com", FirstName: "Ada", LastName: "L",
	}))
	assert.NoError(t, api.Validate(api.AddMemberRequest{UserID: upper}))
	assert.NoError(t, api.Validate(api.CheckinRequest{UserID: upper}))
}

func TestUUIDFields_RejectNonCanonicalForms(t *testing.T) {
	for _, id := range []string{
		"3f2504e04f8911d39a0c0305e82c3301",
		"{3f2504e0-4f89-11d3-9a0c-0305e82c3301}",
		"urn:uuid:3f2504e0-4f89-11d3-9a0c-0305e82c3301",
		"3f2504e0-4f89-11d3-9a0c-0305e82c330z",
	} {
		t.Run(id, func(t *testing.T) {
			tags := failedTags(t, api.Validate(api.AddMemberRequest{UserID: id}))
			assert.Equal(t, "uuid", tags["userId"])
		})
	}
}

func TestUserUpdateRequest_PhoneLength(t *testing.T) {
	long := strings.Repeat("1", 100)

	var req api.UserUpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"phone":"`+long+`"}`), &req))
	tags := failedTags(t, api.Validate(req))
	assert.Equal(t, "max", tags["phone"])

	create := api.UserCreateRequest{Email: "ada@example.com", FirstName: "Ada", LastName: "L", Phone: &long}
	tags = failedTags(t, api.Validate(create))
	assert.Equal(t, "max", tags["phone"])

	require.NoError(t, json.Unmarshal([]byte(`{"phone":"+15550100"}`), &req))
	assert.NoError(t, api.Validate(req))

	req = api.UserUpdateRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"phone":null}`), &req))
	assert.NoError(t, api.Validate(req))
}
