package event

import (
	"context"
	"errors"

	"credopass/internal/http/api"
	"credopass/internal/models"
	"credopass/internal/service"

	"github.com/google/uuid"
)

var ErrInvalidEventTime = errors.New("event can not end before it starts")

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=EventStore
type EventStore interface {
	Create(ctx context.Context, event *models.Event) (*models.Event, error)
	GetById(ctx context.Context, eventID uuid.UUID) (*models.Event, error)
	ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]*models.Event, error)
	SetStatus(ctx context.Context, eventID uuid.UUID, status string) (*models.Event, error)
	Delete(ctx context.Context, eventID uuid.UUID) error
	AddMember(ctx context.Context, eventID, userID uuid.UUID) (*models.EventMember, error)
	GetMemberUsers(ctx context.Context, eventID uuid.UUID) ([]*models.MemberUser, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=UserGetter
type UserGetter interface {
	GetById(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=AttendanceProvider
type AttendanceProvider interface {
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*models.Attendance, error)
	GetEventStats(ctx context.Context, eventID uuid.UUID) (*models.EventStatistics, error)
}

type EventService struct {
	trm                service.TransactionManager
	eventStore         EventStore
	userGetter         UserGetter
	attendanceProvider AttendanceProvider
}

func NewEventService(
	trm service.TransactionManager,
	eventStore EventStore,
	userGetter UserGetter,
	attendanceProvider AttendanceProvider,
) *EventService {
	return &EventService{
		trm:                trm,
		eventStore:         eventStore,
		userGetter:         userGetter,
		attendanceProvider: attendanceProvider,
	}
}

func (s *EventService) Create(ctx context.Context, req api.EventCreateRequest) (*api.EventSchema, error) {
	orgID, err := uuid.Parse(req.OrganizationID)
	if err != nil {
		return nil, err
	}
	if req.EndsAt.Before(req.StartsAt) {
		return nil, ErrInvalidEventTime
	}

	status := req.Status
	if status == "" {
		status = models.EventStatusDraft
	}

	created, err := s.eventStore.Create(ctx, &models.Event{
		ID:             uuid.New(),
		OrganizationID: orgID,
		Name:           req.Name,
		Location:       req.Location,
		StartsAt:       req.StartsAt,
		EndsAt:         req.EndsAt,
		Status:         status,
	})
	if err != nil {
		return nil, err
	}

	resp := api.NewEventSchema(created)
	return &resp, nil
}

func (s *EventService) Get(ctx context.Context, eventID uuid.UUID) (*api.EventSchema, error) {
	event, err := s.eventStore.GetById(ctx, eventID)
	if err != nil {
		return nil, err
	}

	resp := api.NewEventSchema(event)
	return &resp, nil
}

func (s *EventService) List(ctx context.Context, orgID uuid.UUID) (*api.EventsResponse, error) {
	events, err := s.eventStore.ListByOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}

	resp := &api.EventsResponse{
		Events: make([]api.EventSchema, 0, len(events)),
	}
	for _, e := range events {
		resp.Events = append(resp.Events, api.NewEventSchema(e))
	}

	return resp, nil
}

func (s *EventService) SetStatus(ctx context.Context, eventID uuid.UUID, status string) (*api.EventSchema, error) {
	event, err := s.eventStore.SetStatus(ctx, eventID, status)
	if err != nil {
		return nil, err
	}

	resp := api.NewEventSchema(event)
	return &resp, nil
}

func (s *EventService) Delete(ctx context.Context, eventID uuid.UUID) error {
	return s.eventStore.Delete(ctx, eventID)
}

func (s *EventService) AddMember(ctx context.Context, eventID, userID uuid.UUID) (*api.MemberSchema, error) {
	resp := &api.MemberSchema{}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		if _, err := s.eventStore.GetById(ctx, eventID); err != nil {
			return err
		}

		user, err := s.userGetter.GetById(ctx, userID)
		if err != nil {
			return err
		}

		member, err := s.eventStore.AddMember(ctx, eventID, userID)
		if err != nil {
			return err
		}

		resp.User = api.NewUserSchema(user)
		resp.RegisteredAt = member.RegisteredAt
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (s *EventService) GetMembers(ctx context.Context, eventID uuid.UUID) (*api.MembersResponse, error) {
	resp := &api.MembersResponse{
		EventID: eventID.String(),
		Members: []api.MemberSchema{},
	}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		if _, err := s.eventStore.GetById(ctx, eventID); err != nil {
			return err
		}

		members, err := s.eventStore.GetMemberUsers(ctx, eventID)
		if err != nil {
			return err
		}

		for _, m := range members {
			resp.Members = append(resp.Members, api.MemberSchema{
				User:         api.NewUserSchema(&m.User),
				RegisteredAt: m.RegisteredAt,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (s *EventService) GetAttendance(ctx context.Context, eventID uuid.UUID) (*api.AttendanceResponse, error) {
	resp := &api.AttendanceResponse{
		EventID:    eventID.String(),
		Attendance: []api.AttendanceSchema{},
	}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		if _, err := s.eventStore.GetById(ctx, eventID); err != nil {
			return err
		}

		rows, err := s.attendanceProvider.ListByEvent(ctx, eventID)
		if err != nil {
			return err
		}

		for _, a := range rows {
			resp.Attendance = append(resp.Attendance, api.NewAttendanceSchema(a))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (s *EventService) GetStats(ctx context.Context, eventID uuid.UUID) (*api.EventStatsResponse, error) {
	resp := &api.EventStatsResponse{
		EventID: eventID.String(),
	}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		if _, err := s.eventStore.GetById(ctx, eventID); err != nil {
			return err
		}

		stats, err := s.attendanceProvider.GetEventStats(ctx, eventID)
		if err != nil {
			return err
		}

		resp.Members = stats.MemberCount
		resp.CheckedIn = stats.CheckedIn
		resp.QR = stats.QRCheckins
		resp.Manual = stats.ManualChecks
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}
