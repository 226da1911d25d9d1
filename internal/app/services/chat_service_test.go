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

type fakeMessages struct {
	byTeam map[string][]models.Message
}

func newFakeMessages() *fakeMessages {
	return &fakeMessages{byTeam: make(map[string][]models.Message)}
}

func (f *fakeMessages) ListByTeam(_ context.Context, teamID string) ([]models.Message, error) {
	return f.byTeam[teamID], nil
}

func (f *fakeMessages) Create(_ context.Context, message *models.Message) error {
	f.byTeam[message.TeamID] = append(f.byTeam[message.TeamID], *message)
	return nil
}

func (f *fakeMessages) GetByID(_ context.Context, teamID, messageID string) (*models.Message, error) {
	for _, m := range f.byTeam[teamID] {
		if m.ID == messageID {
			found := m
			return &found, nil
		}
	}
	return nil, apperrors.ErrMessageNotFound
}

func (f *fakeMessages) Delete(_ context.Context, teamID, messageID string) error {
	msgs := f.byTeam[teamID]
	for i, m := range msgs {
		if m.ID == messageID {
			f.byTeam[teamID] = append(msgs[:i], msgs[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrMessageNotFound
}

type fakePublisher struct {
	rooms    []string
	payloads []interface{}
}

func (f *fakePublisher) Broadcast(room string, payload interface{}) {
	f.rooms = append(f.rooms, room)
	f.payloads = append(f.payloads, payload)
}

func newChatFixture() (*fakeMessages, *fakePublisher, *ChatService) {
	teams := newFakeTeams(&models.Team{
		ID:        "team-1",
		LeaderID:  "stu-leader",
		Status:    models.StatusApproved,
		MemberIDs: []string{"stu-member"},
	})
	students := newFakeStudents(
		&models.Student{ID: "stu-member", Name: "Member", RollNumber: "2024BTCS002"},
		&models.Student{ID: "stu-outsider", Name: "Outsider", RollNumber: "2024BTCS003"},
	)
	messages := newFakeMessages()
	publisher := &fakePublisher{}
	return messages, publisher, NewChatService(messages, teams, students, publisher)
}

func TestSend_StoresAndBroadcasts(t *testing.T) {
	messages, publisher, svc := newChatFixture()

	message, err := svc.Send(context.Background(), "team-1", dto.SendMessageRequest{
		StudentID: "stu-member",
		Message:   "  practice at 6pm  ",
	})

	require.NoError(t, err)
	assert.Equal(t, "practice at 6pm", message.Message)
	assert.Equal(t, "Member", message.StudentName)
	require.Len(t, messages.byTeam["team-1"], 1)
	require.Len(t, publisher.rooms, 1)
	assert.Equal(t, "team-1", publisher.rooms[0])
	assert.Equal(t, message, publisher.payloads[0])
}

func TestSend_NonMemberForbidden(t *testing.T) {
	_, publisher, svc := newChatFixture()

	_, err := svc.Send(context.Background(), "team-1", dto.SendMessageRequest{
		StudentID: "stu-outsider",
		Message:   "let me in",
	})

	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	assert.Empty(t, publisher.rooms)
}

func TestSend_BlankMessageRejected(t *testing.T) {
	messages, _, svc := newChatFixture()

	_, err := svc.Send(context.Background(), "team-1", dto.SendMessageRequest{
		StudentID: "stu-member",
		Message:   "   ",
	})

	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	assert.Empty(t, messages.byTeam["team-1"])
}

func TestHistory_UnknownTeam(t *testing.T) {
	_, _, svc := newChatFixture()

	_, err := svc.History(context.Background(), "team-missing")

	assert.ErrorIs(t, err, apperrors.ErrTeamNotFound)
}

func TestDelete_AuthorOnly(t *testing.T) {
	messages, _, svc := newChatFixture()
	require.NoError(t, messages.Create(context.Background(), &models.Message{
		ID: "msg-1", TeamID: "team-1", StudentID: "stu-member", Message: "hello",
	}))

	err := svc.Delete(context.Background(), "team-1", "msg-1", "stu-outsider")
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	require.Len(t, messages.byTeam["team-1"], 1)

	require.NoError(t, svc.Delete(context.Background(), "team-1", "msg-1", "stu-member"))
	assert.Empty(t, messages.byTeam["team-1"])

	err = svc.Delete(context.Background(), "team-1", "msg-1", "stu-member")
	assert.ErrorIs(t, err, apperrors.ErrMessageNotFound)
}
