package api

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"time"

	"credopass/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	// the builtin uuid tag only accepts lowercase hex
	if err := v.RegisterValidation("uuid", isUUID); err != nil {
		panic(err)
	}

	// NullString validates as its value; unset and null count as empty
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if n, ok := field.Interface().(NullString); ok && n.Valid {
			return n.Value
		}
		return nil
	}, NullString{})

	return v
}

// isUUID accepts the canonical 36 character form in either case.
func isUUID(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// Validate checks s against its `validate` tags.
func Validate(s any) error {
	return validate.Struct(s)
}

// NullString tells apart a missing field, an explicit null and a value.
type NullString struct {
	Value string
	Valid bool
	Set   bool
}

func NewNullString(s string) NullString {
	return NullString{Value: s, Valid: true, Set: true}
}

func (n *NullString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(data, []byte("null")) {
		n.Value, n.Valid = "", false
		return nil
	}
	if err := json.Unmarshal(data, &n.Value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

func (n NullString) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

func (n NullString) IsZero() bool {
	return !n.Set
}

// UserSchema is the full user as read from the API.
type UserSchema struct {
	ID        string    `json:"id"        validate:"required,uuid"`
	Email     string    `json:"email"     validate:"required,email"`
	FirstName string    `json:"firstName" validate:"required,min=1"`
	LastName  string    `json:"lastName"  validate:"required,min=1"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserCreateRequest has no id or timestamps, so any supplied are dropped on decode.
type UserCreateRequest struct {
	Email     string  `json:"email"     validate:"required,email"`
	FirstName string  `json:"firstName" validate:"required,min=1"`
	LastName  string  `json:"lastName"  validate:"required,min=1"`
	Phone     *string `json:"phone"     validate:"omitempty,max=32"`
}

type UserUpdateRequest struct {
	Email     *string    `json:"email,omitempty"     validate:"omitempty,email"`
	FirstName *string    `json:"firstName,omitempty" validate:"omitempty,min=1"`
	LastName  *string    `json:"lastName,omitempty"  validate:"omitempty,min=1"`
	Phone     NullString `json:"phone,omitzero"      validate:"omitempty,max=32"`
}

// UserInsertRequest is used for upserts: id and timestamps are optional.
type UserInsertRequest struct {
	ID        *string    `json:"id,omitempty"        validate:"omitempty,uuid"`
	Email     string     `json:"email"               validate:"required,email"`
	FirstName string     `json:"firstName"           validate:"required,min=1"`
	LastName  string     `json:"lastName"            validate:"required,min=1"`
	Phone     *string    `json:"phone"               validate:"omitempty,max=32"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

func NewUserSchema(u *models.User) UserSchema {
	return UserSchema{
		ID:        u.ID.String(),
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// Patch converts the request into a model patch. Call Validate first.
func (r UserUpdateRequest) Patch() models.UserPatch {
	p := models.UserPatch{
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
	}
	if r.Phone.Set {
		if r.Phone.Valid {
			phone := r.Phone.Value
			p.Phone = &phone
		} else {
			p.ClearPhone = true
		}
	}
	return p
}

type OrganizationSchema struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type OrganizationCreateRequest struct {
	Name string `json:"name" validate:"required,min=1,max=128"`
}

func NewOrganizationSchema(o *models.Organization) OrganizationSchema {
	return OrganizationSchema{
		ID:        o.ID.String(),
		Name:      o.Name,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

type EventSchema struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organizationId"`
	Name           string    `json:"name"`
	Location       *string   `json:"location"`
	StartsAt       time.Time `json:"startsAt"`
	EndsAt         time.Time `json:"endsAt"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type EventCreateRequest struct {
	OrganizationID string    `json:"organizationId" validate:"required,uuid"`
	Name           string    `json:"name"           validate:"required,min=1,max=128"`
	Location       *string   `json:"location"       validate:"omitempty,max=256"`
	StartsAt       time.Time `json:"startsAt"       validate:"required"`
	EndsAt         time.Time `json:"endsAt"         validate:"required,gtefield=StartsAt"`
	Status         string    `json:"status"         validate:"omitempty,oneof=draft scheduled"`
}

type EventStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft scheduled ongoing completed cancelled"`
}

func NewEventSchema(e *models.Event) EventSchema {
	return EventSchema{
		ID:             e.ID.String(),
		OrganizationID: e.OrganizationID.String(),
		Name:           e.Name,
		Location:       e.Location,
		StartsAt:       e.StartsAt,
		EndsAt:         e.EndsAt,
		Status:         e.Status,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

type MemberSchema struct {
	User         UserSchema `json:"user"`
	RegisteredAt time.Time  `json:"registeredAt"`
}

type AddMemberRequest struct {
	UserID string `json:"userId" validate:"required,uuid"`
}

type CheckinRequest struct {
	UserID string `json:"userId" validate:"required_without=QRCode,omitempty,uuid"`
	QRCode string `json:"qrCode" validate:"required_without=UserID,excluded_with=UserID"`
}

type AttendanceSchema struct {
	ID          string    `json:"id"`
	EventID     string    `json:"eventId"`
	UserID      string    `json:"userId"`
	Method      string    `json:"method"`
	CheckedInAt time.Time `json:"checkedInAt"`
}

func NewAttendanceSchema(a *models.Attendance) AttendanceSchema {
	return AttendanceSchema{
		ID:          a.ID.String(),
		EventID:     a.EventID.String(),
		UserID:      a.UserID.String(),
		Method:      a.Method,
		CheckedInAt: a.CheckedInAt,
	}
}

type LoyaltySchema struct {
	OrganizationID string    `json:"organizationId"`
	UserID         string    `json:"userId"`
	Points         int       `json:"points"`
	Tier           string    `json:"tier" validate:"oneof=bronze silver gold platinum"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func NewLoyaltySchema(a *models.LoyaltyAccount) LoyaltySchema {
	return LoyaltySchema{
		OrganizationID: a.OrganizationID.String(),
		UserID:         a.UserID.String(),
		Points:         a.Points,
		Tier:           a.Tier,
		UpdatedAt:      a.UpdatedAt,
	}
}
