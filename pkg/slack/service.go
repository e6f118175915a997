package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var (
	// ErrSlackSendFailed is returned when Slack API fails
	ErrSlackSendFailed = errors.New("failed to send Slack notification")
)

// Message represents a Slack message
type Message struct {
	Text string `json:"text"`
}

// SlackClient is an interface for sending Slack notifications
type SlackClient interface {
	SendMessage(ctx context.Context, msg Message) error
}

// WebhookClient implements SlackClient using Slack webhooks
type WebhookClient struct {
	webhookURL string
	httpClient *http.Client
}

// NewWebhookClient creates a new Slack webhook client
func NewWebhookClient(webhookURL string) *WebhookClient {
	return &WebhookClient{
		webhookURL: webhookURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SendMessage sends a message to Slack via webhook
func (c *WebhookClient) SendMessage(ctx context.Context, msg Message) error {
	if c.webhookURL == "" {
		return fmt.Errorf("slack webhook URL not configured")
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.webhookURL, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ErrSlackSendFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ErrSlackSendFailed
	}

	return nil
}

// Service handles Slack notifications for the ops channel
type Service struct {
	client SlackClient
}

// NewService creates a new Slack service
func NewService(client SlackClient) *Service {
	return &Service{
		client: client,
	}
}

// IsEnabled returns true if Slack notifications are enabled
func (s *Service) IsEnabled() bool {
	return s.client != nil
}

// NotifyNewUser sends a notification when a new user registers
func (s *Service) NotifyNewUser(ctx context.Context, pseudo, email, role string) error {
	if !s.IsEnabled() {
		return nil // Silently skip if not enabled
	}

	text := fmt.Sprintf("👤 *New User Registration*\n"+
		"• Pseudo: %s\n"+
		"• Email: %s\n"+
		"• Role: %s",
		pseudo, email, role)

	msg := Message{Text: text}
	return s.client.SendMessage(ctx, msg)
}

// NotifyMissionBudgetExhausted sends a notification when a mission runs out of budget
func (s *Service) NotifyMissionBudgetExhausted(ctx context.Context, missionID int, title string, totalBudget float64) error {
	if !s.IsEnabled() {
		return nil
	}

	text := fmt.Sprintf("💶 *Mission Budget Exhausted*\n"+
		"• Mission: #%d %s\n"+
		"• Budget: %.2f EUR\n"+
		"• Status: completed",
		missionID, title, totalBudget)

	msg := Message{Text: text}
	return s.client.SendMessage(ctx, msg)
}

// NotifyPayoutRequested sends a notification when a clipper requests a payout
func (s *Service) NotifyPayoutRequested(ctx context.Context, userEmail string, amount float64) error {
	if !s.IsEnabled() {
		return nil
	}

	text := fmt.Sprintf("💸 *Payout Requested*\n"+
		"• Clipper: %s\n"+
		"• Amount: %.2f EUR",
		userEmail, amount)

	msg := Message{Text: text}
	return s.client.SendMessage(ctx, msg)
}

// NotifyMilestoneApproved sends a notification when an admin approves a milestone
func (s *Service) NotifyMilestoneApproved(ctx context.Context, milestoneID, views int, earnings float64) error {
	if !s.IsEnabled() {
		return nil
	}

	text := fmt.Sprintf("✅ *Milestone Approved*\n"+
		"• Milestone: #%d\n"+
		"• Views: %d\n"+
		"• Earnings: %.2f EUR",
		milestoneID, views, earnings)

	msg := Message{Text: text}
	return s.client.SendMessage(ctx, msg)
}
