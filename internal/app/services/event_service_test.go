package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajni12071985-debug/pragati/internal/app/models"
	"github.com/rajni12071985-debug/pragati/internal/app/models/dto"
	"github.com/rajni12071985-debug/pragati/internal/pkg/apperrors"
)

func boolPtr(b bool) *bool { return &b }

func newEventFixture() (*fakeEvents, *fakeNotifications, *EventService) {
	events := newFakeEvents(&models.Event{
		ID:               "evt-1",
		Name:             "Tech Fest",
		Date:             "2026-02-14",
		RequiredStudents: 10,
	})
	notifications := &fakeNotifications{}
	students := newFakeStudents(&models.Student{ID: "stu-1", RollNumber: "2024BTCS010"})
	return events, notifications, NewEventService(events, students, notifications)
}

func TestCreateEvent_BroadcastsToAllStudents(t *testing.T) {
	_, notifications, svc := newEventFixture()

	event, err := svc.CreateEvent(context.Background(), dto.CreateEventRequest{
		Name:             "Hackathon",
		Description:      "48 hour build",
		Date:             "2026-03-01",
		Category:         "technical",
		RequiredStudents: 40,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	require.Len(t, notifications.broadcasts, 1)
	assert.Equal(t, "New event: Hackathon", notifications.broadcasts[0])
}

func TestCreateEvent_BroadcastFailureKeepsEvent(t *testing.T) {
	events, notifications, svc := newEventFixture()
	notifications.failWith = assert.AnError

	event, err := svc.CreateEvent(context.Background(), dto.CreateEventRequest{
		Name: "Hackathon",
		Date: "2026-03-01",
	})

	require.NoError(t, err)
	assert.Contains(t, events.byID, event.ID)
}

func TestSetInterest_MovesStudentBetweenSets(t *testing.T) {
	events, _, svc := newEventFixture()

	err := svc.SetInterest(context.Background(), dto.EventInterestRequest{
		EventID:    "evt-1",
		StudentID:  "stu-1",
		Interested: boolPtr(true),
	})
	require.NoError(t, err)
	assert.True(t, events.interested["evt-1"]["stu-1"])

	err = svc.SetInterest(context.Background(), dto.EventInterestRequest{
		EventID:    "evt-1",
		StudentID:  "stu-1",
		Interested: boolPtr(false),
	})
	require.NoError(t, err)
	assert.False(t, events.interested["evt-1"]["stu-1"])
	assert.Equal(t, 2, events.interestCalls)
}

func TestSetInterest_RequiresExplicitStance(t *testing.T) {
	_, _, svc := newEventFixture()

	err := svc.SetInterest(context.Background(), dto.EventInterestRequest{
		EventID:   "evt-1",
		StudentID: "stu-1",
	})

	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestSetInterest_UnknownEventOrStudent(t *testing.T) {
	_, _, svc := newEventFixture()

	err := svc.SetInterest(context.Background(), dto.EventInterestRequest{
		EventID:    "evt-missing",
		StudentID:  "stu-1",
		Interested: boolPtr(true),
	})
	assert.ErrorIs(t, err, apperrors.ErrEventNotFound)

	err = svc.SetInterest(context.Background(), dto.EventInterestRequest{
		EventID:    "evt-1",
		StudentID:  "stu-missing",
		Interested: boolPtr(true),
	})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestInterestedStudents_ReportsCountAgainstCapacity(t *testing.T) {
	events, _, svc := newEventFixture()
	events.interested["evt-1"]["stu-1"] = true

	resp, err := svc.InterestedStudents(context.Background(), "evt-1")

	require.NoError(t, err)
	assert.Equal(t, "Tech Fest", resp.EventName)
	assert.Equal(t, 10, resp.RequiredStudents)
	assert.Equal(t, 1, resp.InterestedCount)
}
