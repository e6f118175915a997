package slack

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockSlackClient simulates Slack webhook API
type MockSlackClient struct {
	shouldFail bool
	messages   []Message
}

func (m *MockSlackClient) SendMessage(ctx context.Context, msg Message) error {
	if m.shouldFail {
		return ErrSlackSendFailed
	}
	m.messages = append(m.messages, msg)
	return nil
}

func TestNewUserRegistrationNotification(t *testing.T) {
	client := &MockSlackClient{}
	service := NewService(client)

	t.Run("Success - Send new user registration notification", func(t *testing.T) {
		err := service.NotifyNewUser(context.Background(), "clipzilla", "clip@example.com", "clipper")

		require.NoError(t, err)
		assert.Len(t, client.messages, 1)

		msg := client.messages[0]
		assert.Contains(t, msg.Text, "New User")
		assert.Contains(t, msg.Text, "clipzilla")
		assert.Contains(t, msg.Text, "clip@example.com")
		assert.Contains(t, msg.Text, "clipper")
	})

	t.Run("Failure - Slack API error", func(t *testing.T) {
		failingClient := &MockSlackClient{shouldFail: true}
		failingService := NewService(failingClient)

		err := failingService.NotifyNewUser(context.Background(), "clipzilla", "clip@example.com", "clipper")

		require.Error(t, err)
		assert.Equal(t, ErrSlackSendFailed, err)
	})
}

func TestMissionBudgetExhaustedNotification(t *testing.T) {
	client := &MockSlackClient{}
	service := NewService(client)

	t.Run("Success - Send budget exhausted notification", func(t *testing.T) {
		err := service.NotifyMissionBudgetExhausted(context.Background(), 42, "Gaming highlights", 500)

		require.NoError(t, err)
		assert.Len(t, client.messages, 1)

		msg := client.messages[0]
		assert.Contains(t, msg.Text, "Budget Exhausted")
		assert.Contains(t, msg.Text, "#42")
		assert.Contains(t, msg.Text, "Gaming highlights")
		assert.Contains(t, msg.Text, "500.00")
	})
}

func TestPayoutRequestedNotification(t *testing.T) {
	client := &MockSlackClient{}
	service := NewService(client)

	t.Run("Success - Send payout requested notification", func(t *testing.T) {
		err := service.NotifyPayoutRequested(context.Background(), "clip@example.com", 37.50)

		require.NoError(t, err)
		assert.Len(t, client.messages, 1)

		msg := client.messages[0]
		assert.Contains(t, msg.Text, "Payout Requested")
		assert.Contains(t, msg.Text, "clip@example.com")
		assert.Contains(t, msg.Text, "37.50")
	})
}

func TestMilestoneApprovedNotification(t *testing.T) {
	client := &MockSlackClient{}
	service := NewService(client)

	t.Run("Success - Send milestone approved notification", func(t *testing.T) {
		err := service.NotifyMilestoneApproved(context.Background(), 7, 100000, 12)

		require.NoError(t, err)
		assert.Len(t, client.messages, 1)

		msg := client.messages[0]
		assert.Contains(t, msg.Text, "Milestone Approved")
		assert.Contains(t, msg.Text, "#7")
		assert.Contains(t, msg.Text, "100000")
		assert.Contains(t, msg.Text, "12.00")
	})
}

func TestIsEnabled(t *testing.T) {
	t.Run("Enabled when client is provided", func(t *testing.T) {
		client := &MockSlackClient{}
		service := NewService(client)

		assert.True(t, service.IsEnabled())
	})

	t.Run("Disabled when client is nil", func(t *testing.T) {
		service := NewService(nil)

		assert.False(t, service.IsEnabled())
	})
}
