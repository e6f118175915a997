package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleModeNeverErrors(t *testing.T) {
	s := NewService("noreply@cliptokk.com", "ClipTokk", "https://cliptokk.com", "")
	assert.False(t, s.useSendGrid)

	require.NoError(t, s.SendVerificationEmail("user@example.com", "user", "tok123"))
	require.NoError(t, s.SendMilestoneApprovedEmail("user@example.com", "user", "Clip my stream", 10000, 4.20))
	require.NoError(t, s.SendMilestoneRejectedEmail("user@example.com", "user", "Clip my stream", ""))
	require.NoError(t, s.SendPayoutConfirmationEmail("user@example.com", "user", 25.50))
}

func TestSendGridModeEnabledByKey(t *testing.T) {
	s := NewService("noreply@cliptokk.com", "ClipTokk", "https://cliptokk.com", "SG.fake-key")
	assert.True(t, s.useSendGrid)
}
