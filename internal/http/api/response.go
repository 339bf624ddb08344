package api

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	ErrInternalErr          = "INTERNAL_ERROR"
	ErrValidationErr        = "VALIDATION_ERROR"
	ErrBadRequest           = "BAD_REQUEST"
	ErrUnauthorized         = "UNAUTHORIZED"
	ErrForbidden            = "FORBIDDEN"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeUserExists       = "USER_EXISTS"
	ErrCodeOrgExists        = "ORGANIZATION_EXISTS"
	ErrCodeMemberExists     = "MEMBER_EXISTS"
	ErrCodeNotMember        = "NOT_A_MEMBER"
	ErrCodeCheckedIn        = "ALREADY_CHECKED_IN"
	ErrCodeCheckinInFlight  = "CHECKIN_IN_PROGRESS"
	ErrCodeEventClosed      = "EVENT_CLOSED"
	ErrCodeInvalidQR        = "INVALID_QR"
	ErrCodeQREventMismatch  = "QR_EVENT_MISMATCH"
	ErrCodeInvalidEventTime = "INVALID_EVENT_TIME"
)

type UserResponse struct {
	User UserSchema `json:"user"`
}

type UsersResponse struct {
	Users  []UserSchema `json:"users"`
	Limit  int          `json:"limit"`
	Offset int          `json:"offset"`
}

type OrganizationResponse struct {
	Organization OrganizationSchema `json:"organization"`
}

type EventResponse struct {
	Event EventSchema `json:"event"`
}

type EventsResponse struct {
	Events []EventSchema `json:"events"`
}

type MembersResponse struct {
	EventID string         `json:"eventId"`
	Members []MemberSchema `json:"members"`
}

type AttendanceResponse struct {
	EventID    string             `json:"eventId"`
	Attendance []AttendanceSchema `json:"attendance"`
}

type CheckinResponse struct {
	Attendance AttendanceSchema `json:"attendance"`
	Loyalty    LoyaltySchema    `json:"loyalty"`
}

type LoyaltyResponse struct {
	Loyalty LoyaltySchema `json:"loyalty"`
}

type EventStatsResponse struct {
	EventID   string `json:"eventId"`
	Members   int    `json:"members"`
	CheckedIn int    `json:"checkedIn"`
	QR        int    `json:"qr"`
	Manual    int    `json:"manual"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Cause   *ErrorCause `json:"cause,omitempty"`
}

type ErrorCause struct {
	Detail string `json:"detail"`
	Stack  string `json:"stack,omitempty"`
}

func Error(code string, msg string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: msg,
			Cause:   &ErrorCause{Detail: msg},
		},
	}
}

func InternalError() ErrorResponse {
	return Error(ErrInternalErr, "internal server error")
}

func ValidationError(errs validator.ValidationErrors) ErrorResponse {
	var errMsgs []string
	for _, err := range errs {
		switch err.ActualTag() {
		case "required", "required_without":
			errMsgs = append(errMsgs, fmt.Sprintf("field '%s' is required", err.Field()))
		case "min":
			errMsgs = append(
				errMsgs,
				fmt.Sprintf("field '%s' must be at least %s characters", err.Field(), err.Param()),
			)
		case "max":
			errMsgs = append(
				errMsgs,
				fmt.Sprintf("field '%s' must be no more than %s characters", err.Field(), err.Param()),
			)
		case "uuid":
			errMsgs = append(errMsgs, fmt.Sprintf("field '%s' must be a valid UUID", err.Field()))
		case "email":
			errMsgs = append(errMsgs, fmt.Sprintf("field '%s' must be a valid email", err.Field()))
		case "oneof":
			errMsgs = append(errMsgs, fmt.Sprintf("field '%s' must be one of [%s]", err.Field(), err.Param()))
		case "gtefield":
			errMsgs = append(errMsgs, fmt.Sprintf("field '%s' must not be before '%s'", err.Field(), err.Param()))
		case "excluded_with":
			errMsgs = append(errMsgs, fmt.Sprintf("field '%s' can not be combined with '%s'", err.Field(), err.Param()))
		default:
			errMsgs = append(errMsgs, fmt.Sprintf("field '%s' is not valid", err.Field()))
		}
	}

	return Error(ErrValidationErr, strings.Join(errMsgs, ", "))
}
