package event_test

import (
	"context"
	"testing"
	"time"

	"credopass/internal/http/api"
	"credopass/internal/models"
	repo "credopass/internal/repository"
	"credopass/internal/service/event"
	"credopass/internal/service/mocks"
	"credopass/internal/service/servicetest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var starts = time.Date(2026, 10, 20, 18, 0, 0, 0, time.UTC)

func TestEventService_Create_DefaultsToDraft(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New()
	eventStore := mocks.NewEventStore(t)

	eventStore.On("Create", ctx, mock.MatchedBy(func(e *models.Event) bool {
		return e.OrganizationID == orgID && e.Status == models.EventStatusDraft
	})).Return(func(_ context.Context, e *models.Event) (*models.Event, error) {
		return e, nil
	}).Once()

	svc := event.NewEventService(servicetest.IdleManager(t), eventStore, mocks.NewUserGetter(t), mocks.NewAttendanceProvider(t))
	resp, err := svc.Create(ctx, api.EventCreateRequest{
		OrganizationID: orgID.String(),
		Name:           "Meetup",
		StartsAt:       starts,
		EndsAt:         starts.Add(time.Hour),
	})

	require.NoError(t, err)
	assert.Equal(t, models.EventStatusDraft, resp.Status)
	assert.Equal(t, orgID.String(), resp.OrganizationID)
}

func TestEventService_Create_EndsBeforeStart(t *testing.T) {
	svc := event.NewEventService(servicetest.IdleManager(t), mocks.NewEventStore(t), mocks.NewUserGetter(t), mocks.NewAttendanceProvider(t))

	_, err := svc.Create(context.Background(), api.EventCreateRequest{
		OrganizationID: uuid.NewString(),
		Name:           "Backwards",
		StartsAt:       starts,
		EndsAt:         starts.Add(-time.Minute),
	})

	assert.ErrorIs(t, err, event.ErrInvalidEventTime)
}

func TestEventService_List(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New()
	eventStore := mocks.NewEventStore(t)

	eventStore.On("ListByOrganization", ctx, orgID).Return([]*models.Event{
		{ID: uuid.New(), OrganizationID: orgID, Name: "One"},
		{ID: uuid.New(), OrganizationID: orgID, Name: "Two"},
	}, nil).Once()

	svc := event.NewEventService(servicetest.IdleManager(t), eventStore, mocks.NewUserGetter(t), mocks.NewAttendanceProvider(t))
	resp, err := svc.List(ctx, orgID)

	require.NoError(t, err)
	require.Len(t, resp.Events, 2)
	assert.Equal(t, "Two", resp.Events[1].Name)
}

func TestEventService_AddMember_Success(t *testing.T) {
	ctx := context.Background()
	eventID, userID := uuid.New(), uuid.New()
	registered := time.Now().UTC()

	eventStore := mocks.NewEventStore(t)
	userGetter := mocks.NewUserGetter(t)
	trm := servicetest.RunningManager(t, ctx, nil)

	eventStore.On("GetById", ctx, eventID).Return(&models.Event{ID: eventID}, nil).Once()
	userGetter.On("GetById", ctx, userID).Return(&models.User{ID: userID, FirstName: "Ada"}, nil).Once()
	eventStore.On("AddMember", ctx, eventID, userID).
		Return(&models.EventMember{EventID: eventID, UserID: userID, RegisteredAt: registered}, nil).Once()

	svc := event.NewEventService(trm, eventStore, userGetter, mocks.NewAttendanceProvider(t))
	resp, err := svc.AddMember(ctx, eventID, userID)

	require.NoError(t, err)
	assert.Equal(t, "Ada", resp.User.FirstName)
	assert.Equal(t, registered, resp.RegisteredAt)
}

func TestEventService_AddMember_Duplicate(t *testing.T) {
	ctx := context.Background()
	eventID, userID := uuid.New(), uuid.New()

	eventStore := mocks.NewEventStore(t)
	userGetter := mocks.NewUserGetter(t)
	trm := servicetest.RunningManager(t, ctx, repo.ErrMemberExists)

	eventStore.On("GetById", ctx, eventID).Return(&models.Event{ID: eventID}, nil).Once()
	userGetter.On("GetById", ctx, userID).Return(&models.User{ID: userID}, nil).Once()
	eventStore.On("AddMember", ctx, eventID, userID).Return(nil, repo.ErrMemberExists).Once()

	svc := event.NewEventService(trm, eventStore, userGetter, mocks.NewAttendanceProvider(t))
	_, err := svc.AddMember(ctx, eventID, userID)

	assert.ErrorIs(t, err, repo.ErrMemberExists)
}

func TestEventService_GetMembers_UnknownEvent(t *testing.T) {
	ctx := context.Background()
	eventID := uuid.New()

	eventStore := mocks.NewEventStore(t)
	trm := servicetest.RunningManager(t, ctx, repo.ErrNotFound)

	eventStore.On("GetById", ctx, eventID).Return(nil, repo.ErrNotFound).Once()

	svc := event.NewEventService(trm, eventStore, mocks.NewUserGetter(t), mocks.NewAttendanceProvider(t))
	_, err := svc.GetMembers(ctx, eventID)

	assert.ErrorIs(t, err, repo.ErrNotFound)
	eventStore.AssertNotCalled(t, "GetMemberUsers", mock.Anything, mock.Anything)
}

func TestEventService_GetMembers_Empty(t *testing.T) {
	ctx := context.Background()
	eventID := uuid.New()

	eventStore := mocks.NewEventStore(t)
	trm := servicetest.RunningManager(t, ctx, nil)

	eventStore.On("GetById", ctx, eventID).Return(&models.Event{ID: eventID}, nil).Once()
	eventStore.On("GetMemberUsers", ctx, eventID).Return([]*models.MemberUser{}, nil).Once()

	svc := event.NewEventService(trm, eventStore, mocks.NewUserGetter(t), mocks.NewAttendanceProvider(t))
	resp, err := svc.GetMembers(ctx, eventID)

	require.NoError(t, err)
	assert.NotNil(t, resp.Members)
	assert.Empty(t, resp.Members)
}

func TestEventService_GetAttendance(t *testing.T) {
	ctx := context.Background()
	eventID := uuid.New()

	eventStore := mocks.NewEventStore(t)
	attendanceProvider := mocks.NewAttendanceProvider(t)
	trm := servicetest.RunningManager(t, ctx, nil)

	eventStore.On("GetById", ctx, eventID).Return(&models.Event{ID: eventID}, nil).Once()
	attendanceProvider.On("ListByEvent", ctx, eventID).Return([]*models.Attendance{
		{ID: uuid.New(), EventID: eventID, UserID: uuid.New(), Method: models.CheckinMethodQR},
	}, nil).Once()

	svc := event.NewEventService(trm, eventStore, mocks.NewUserGetter(t), attendanceProvider)
	resp, err := svc.GetAttendance(ctx, eventID)

	require.NoError(t, err)
	require.Len(t, resp.Attendance, 1)
	assert.Equal(t, "qr", resp.Attendance[0].Method)
}

func TestEventService_GetStats(t *testing.T) {
	ctx := context.Background()
	eventID := uuid.New()

	eventStore := mocks.NewEventStore(t)
	attendanceProvider := mocks.NewAttendanceProvider(t)
	trm := servicetest.RunningManager(t, ctx, nil)

	eventStore.On("GetById", ctx, eventID).Return(&models.Event{ID: eventID}, nil).Once()
	attendanceProvider.On("GetEventStats", ctx, eventID).Return(&models.EventStatistics{
		MemberCount:  12,
		CheckedIn:    7,
		QRCheckins:   5,
		ManualChecks: 2,
	}, nil).Once()

	svc := event.NewEventService(trm, eventStore, mocks.NewUserGetter(t), attendanceProvider)
	resp, err := svc.GetStats(ctx, eventID)

	require.NoError(t, err)
	assert.Equal(t, &api.EventStatsResponse{
		EventID:   eventID.String(),
		Members:   12,
		CheckedIn: 7,
		QR:        5,
		Manual:    2,
	}, resp)
}
