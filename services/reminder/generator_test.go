package reminder

import (
	"context"
	"errors"
	"testing"
	"time"

	"beacon/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockEventRepo struct{ mock.Mock }

func (m *mockEventRepo) ListStartingBetween(ctx context.Context, from, to time.Time) ([]models.Event, error) {
	args := m.Called(ctx, from, to)
	if evs, _ := args.Get(0).([]models.Event); evs != nil {
		return evs, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockEventRepo) MarkReminded(ctx context.Context, eventIDs []string) error {
	return m.Called(ctx, eventIDs).Error(0)
}

type mockNotificationRepo struct{ mock.Mock }

func (m *mockNotificationRepo) Create(ctx context.Context, collection string, n models.Notification) (string, error) {
	args := m.Called(ctx, collection, n)
	return args.String(0), args.Error(1)
}
func (m *mockNotificationRepo) CountUnread(ctx context.Context, collection, recipientID string) (int, error) {
	args := m.Called(ctx, collection, recipientID)
	return args.Int(0), args.Error(1)
}

func newTestGenerator(now time.Time) (*DefaultGenerator, *mockEventRepo, *mockNotificationRepo) {
	eventRepo := &mockEventRepo{}
	notifRepo := &mockNotificationRepo{}
	gen := &DefaultGenerator{
		Events:        eventRepo,
		Notifications: notifRepo,
		Now:           func() time.Time { return now },
	}
	return gen, eventRepo, notifRepo
}

// --- tests ---

func TestRunQueriesTheHourWideWindow(t *testing.T) {
	gen, eventRepo, _ := newTestGenerator(runTime)
	ctx := context.Background()

	eventRepo.On("ListStartingBetween", ctx, runTime.Add(time.Hour), runTime.Add(2*time.Hour)).
		Return([]models.Event{}, nil).Once()

	require.NoError(t, gen.Run(ctx))
	eventRepo.AssertExpectations(t)
}

func TestRunFlaggedEventsProduceNoWrites(t *testing.T) {
	gen, eventRepo, notifRepo := newTestGenerator(runTime)
	ctx := context.Background()

	eventRepo.On("ListStartingBetween", ctx, mock.Anything, mock.Anything).
		Return([]models.Event{
			{ID: "e-1", Name: "Done", StartTime: runTime.Add(90 * time.Minute), ReminderSent: true, Attendees: []string{"U1"}},
		}, nil).Once()

	require.NoError(t, gen.Run(ctx))

	eventRepo.AssertNotCalled(t, "MarkReminded", mock.Anything, mock.Anything)
	notifRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestRunLaunchScenario(t *testing.T) {
	gen, eventRepo, notifRepo := newTestGenerator(runTime)
	ctx := context.Background()

	launch := models.Event{
		ID:        "e-launch",
		Name:      "Launch",
		CreatorID: "C1",
		Attendees: []string{"U1", "U2"},
		StartTime: runTime.Add(90 * time.Minute),
	}

	eventRepo.On("ListStartingBetween", ctx, mock.Anything, mock.Anything).
		Return([]models.Event{launch}, nil).Once()
	eventRepo.On("MarkReminded", ctx, []string{"e-launch"}).Return(nil).Once()
	notifRepo.On("Create", ctx, mock.Anything, mock.Anything).Return("id", nil).Times(3)

	require.NoError(t, gen.Run(ctx))

	// Exactly one flag batch, exactly three record creations.
	eventRepo.AssertNumberOfCalls(t, "MarkReminded", 1)
	notifRepo.AssertNumberOfCalls(t, "Create", 3)

	recipients := map[string]string{}
	for _, call := range notifRepo.Calls {
		collection := call.Arguments.String(1)
		record := call.Arguments.Get(2).(models.Notification)
		recipients[record.RecipientID] = collection
		assert.Equal(t, models.StatusUnread, record.Status)
		assert.Equal(t, "event/e-launch", record.ActionLink)
	}
	assert.Equal(t, map[string]string{
		"C1": models.CreatorNotifications,
		"U1": models.UserNotifications,
		"U2": models.UserNotifications,
	}, recipients)
}

func TestRunCreateFailureSurfacesButDoesNotStopSiblings(t *testing.T) {
	gen, eventRepo, notifRepo := newTestGenerator(runTime)
	ctx := context.Background()

	ev := models.Event{
		ID:        "e-1",
		Name:      "Meetup",
		CreatorID: "C1",
		Attendees: []string{"U1"},
		StartTime: runTime.Add(90 * time.Minute),
	}

	eventRepo.On("ListStartingBetween", ctx, mock.Anything, mock.Anything).
		Return([]models.Event{ev}, nil).Once()
	eventRepo.On("MarkReminded", ctx, []string{"e-1"}).Return(nil).Once()
	notifRepo.On("Create", ctx, models.CreatorNotifications, mock.Anything).
		Return("", errors.New("write rejected")).Once()
	notifRepo.On("Create", ctx, models.UserNotifications, mock.Anything).
		Return("id", nil).Once()

	err := gen.Run(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write rejected")

	// The flag batch and the sibling create still ran.
	eventRepo.AssertNumberOfCalls(t, "MarkReminded", 1)
	notifRepo.AssertNumberOfCalls(t, "Create", 2)
}

func TestRunListFailureReturnsError(t *testing.T) {
	gen, eventRepo, notifRepo := newTestGenerator(runTime)
	ctx := context.Background()

	eventRepo.On("ListStartingBetween", ctx, mock.Anything, mock.Anything).
		Return(nil, errors.New("query failed")).Once()

	require.Error(t, gen.Run(ctx))
	notifRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}
