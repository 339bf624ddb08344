package checkin

import (
	"context"
	"errors"

	"credopass/internal/http/api"
	"credopass/internal/loyalty"
	"credopass/internal/models"
	"credopass/internal/service"

	"github.com/google/uuid"
)

var (
	ErrEventClosed       = errors.New("event is not open for check-in")
	ErrNotMember         = errors.New("user is not registered for this event")
	ErrCheckinInProgress = errors.New("check-in for this user is already in progress")
	ErrQREventMismatch   = errors.New("qr code belongs to a different event")
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=EventReader
type EventReader interface {
	GetById(ctx context.Context, eventID uuid.UUID) (*models.Event, error)
	IsMember(ctx context.Context, eventID, userID uuid.UUID) (bool, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=AttendanceCreator
type AttendanceCreator interface {
	Create(ctx context.Context, a *models.Attendance) (*models.Attendance, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=LoyaltyUpdater
type LoyaltyUpdater interface {
	AddPoints(ctx context.Context, orgID, userID uuid.UUID, points int) (*models.LoyaltyAccount, error)
	SetTier(ctx context.Context, orgID, userID uuid.UUID, tier string) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=CheckinLocker
type CheckinLocker interface {
	Acquire(ctx context.Context, eventID, userID uuid.UUID) (token string, ok bool, err error)
	Release(ctx context.Context, eventID, userID uuid.UUID, token string) error
}

type CheckinService struct {
	trm               service.TransactionManager
	eventReader       EventReader
	attendanceCreator AttendanceCreator
	loyaltyUpdater    LoyaltyUpdater
	locker            CheckinLocker
	pointsPerCheckin  int
}

func NewCheckinService(
	trm service.TransactionManager,
	eventReader EventReader,
	attendanceCreator AttendanceCreator,
	loyaltyUpdater LoyaltyUpdater,
	locker CheckinLocker,
	pointsPerCheckin int,
) *CheckinService {
	return &CheckinService{
		trm:               trm,
		eventReader:       eventReader,
		attendanceCreator: attendanceCreator,
		loyaltyUpdater:    loyaltyUpdater,
		locker:            locker,
		pointsPerCheckin:  pointsPerCheckin,
	}
}

// CheckIn records attendance for a member either from a scanned pass or a
// manual lookup, and credits loyalty points to the event's organization.
func (s *CheckinService) CheckIn(ctx context.Context, eventID uuid.UUID, req api.CheckinRequest) (*api.CheckinResponse, error) {
	userID, method, err := resolveAttendee(eventID, req)
	if err != nil {
		return nil, err
	}

	token, acquired, err := s.locker.Acquire(ctx, eventID, userID)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, ErrCheckinInProgress
	}
	// the key expires on its own if Release fails
	defer func() { _ = s.locker.Release(context.WithoutCancel(ctx), eventID, userID, token) }()

	resp := &api.CheckinResponse{}

	err = s.trm.Do(ctx, func(ctx context.Context) error {
		event, err := s.eventReader.GetById(ctx, eventID)
		if err != nil {
			return err
		}
		if !event.AcceptsCheckins() {
			return ErrEventClosed
		}

		member, err := s.eventReader.IsMember(ctx, eventID, userID)
		if err != nil {
			return err
		}
		if !member {
			return ErrNotMember
		}

		attendance, err := s.attendanceCreator.Create(ctx, &models.Attendance{
			ID:      uuid.New(),
			EventID: eventID,
			UserID:  userID,
			Method:  method,
		})
		if err != nil {
			return err
		}

		account, err := s.loyaltyUpdater.AddPoints(ctx, event.OrganizationID, userID, s.pointsPerCheckin)
		if err != nil {
			return err
		}

		tier := loyalty.ForPoints(account.Points).String()
		if tier != account.Tier {
			if err := s.loyaltyUpdater.SetTier(ctx, event.OrganizationID, userID, tier); err != nil {
				return err
			}
			account.Tier = tier
		}

		resp.Attendance = api.NewAttendanceSchema(attendance)
		resp.Loyalty = api.NewLoyaltySchema(account)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// IssueQR returns the pass payload for a registered member.
func (s *CheckinService) IssueQR(ctx context.Context, eventID, userID uuid.UUID) (string, error) {
	if _, err := s.eventReader.GetById(ctx, eventID); err != nil {
		return "", err
	}

	member, err := s.eventReader.IsMember(ctx, eventID, userID)
	if err != nil {
		return "", err
	}
	if !member {
		return "", ErrNotMember
	}

	return EncodeQR(eventID, userID), nil
}

func resolveAttendee(eventID uuid.UUID, req api.CheckinRequest) (uuid.UUID, string, error) {
	if req.QRCode != "" {
		qrEventID, userID, err := ParseQR(req.QRCode)
		if err != nil {
			return uuid.Nil, "", err
		}
		if qrEventID != eventID {
			return uuid.Nil, "", ErrQREventMismatch
		}
		return userID, models.CheckinMethodQR, nil
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return uuid.Nil, "", err
	}
	return userID, models.CheckinMethodManual, nil
}
