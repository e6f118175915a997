// Package email sends transactional mail: account verification and
// milestone decision notifications. With no SendGrid key configured it
// logs to the console instead, which is what local development wants.
package email

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Service handles email sending
type Service struct {
	fromEmail   string
	fromName    string
	baseURL     string
	sendGridKey string
	useSendGrid bool
}

// NewService creates a new email service. If sendGridAPIKey is empty,
// emails are logged to console (development mode).
func NewService(fromEmail, fromName, baseURL, sendGridAPIKey string) *Service {
	useSendGrid := sendGridAPIKey != ""
	if useSendGrid {
		log.Printf("✅ Email service initialized with SendGrid")
	} else {
		log.Printf("⚠️  Email service in console-only mode (set SENDGRID_API_KEY for production)")
	}

	return &Service{
		fromEmail:   fromEmail,
		fromName:    fromName,
		baseURL:     baseURL,
		sendGridKey: sendGridAPIKey,
		useSendGrid: useSendGrid,
	}
}

// SendVerificationEmail sends an email verification link
func (s *Service) SendVerificationEmail(toEmail, toName, token string) error {
	verificationURL := fmt.Sprintf("%s/verify-email/%s", s.baseURL, token)

	subject := "Verify your ClipTokk account"
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Welcome to ClipTokk!</h2>
			<p>Hi %s,</p>
			<p>Please verify your email address by clicking the button below:</p>
			<p><a href="%s" style="background-color: #fe2c55; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Verify Email</a></p>
			<p>Or copy and paste this link into your browser:</p>
			<p><a href="%s">%s</a></p>
			<p><strong>This link will expire in 24 hours.</strong></p>
			<p>If you didn't create an account, you can safely ignore this email.</p>
			<p>Thanks,<br>The ClipTokk Team</p>
		</body>
		</html>
	`, toName, verificationURL, verificationURL, verificationURL)

	plainText := fmt.Sprintf(`
Hi %s,

Welcome to ClipTokk! Please verify your email address by clicking the link below:

%s

This link will expire in 24 hours.

If you didn't create an account, you can safely ignore this email.

Thanks,
The ClipTokk Team
	`, toName, verificationURL)

	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, toName, subject, body, plainText)
	}
	return s.logEmailToConsole(toEmail, toName, subject, verificationURL)
}

// SendMilestoneApprovedEmail notifies a clipper their declaration was
// approved and earnings credited.
func (s *Service) SendMilestoneApprovedEmail(toEmail, toName, missionTitle string, palier int, amount float64) error {
	subject := fmt.Sprintf("Your %d views milestone was approved", palier)
	walletURL := fmt.Sprintf("%s/wallet", s.baseURL)
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Milestone approved 🎉</h2>
			<p>Hi %s,</p>
			<p>Your %d views milestone on <strong>%s</strong> was approved.</p>
			<p><strong>%.2f EUR</strong> has been credited to your wallet.</p>
			<p><a href="%s">View your wallet</a></p>
			<p>Keep clipping,<br>The ClipTokk Team</p>
		</body>
		</html>
	`, toName, palier, missionTitle, amount, walletURL)

	plainText := fmt.Sprintf(`
Hi %s,

Your %d views milestone on %q was approved. %.2f EUR has been credited to your wallet.

%s

Keep clipping,
The ClipTokk Team
	`, toName, palier, missionTitle, amount, walletURL)

	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, toName, subject, body, plainText)
	}
	return s.logEmailToConsole(toEmail, toName, subject, walletURL)
}

// SendMilestoneRejectedEmail notifies a clipper their declaration was
// rejected, with the admin's reason when one was given.
func (s *Service) SendMilestoneRejectedEmail(toEmail, toName, missionTitle, reason string) error {
	subject := "Your milestone declaration was rejected"
	if reason == "" {
		reason = "The declared view count could not be verified."
	}
	body := fmt.Sprintf(`
		<html>
		<body>
			<p>Hi %s,</p>
			<p>Your milestone declaration on <strong>%s</strong> was rejected.</p>
			<p>Reason: %s</p>
			<p>You can declare again once your clip actually reaches the tier.</p>
			<p>The ClipTokk Team</p>
		</body>
		</html>
	`, toName, missionTitle, reason)

	plainText := fmt.Sprintf(`
Hi %s,

Your milestone declaration on %q was rejected.

Reason: %s

You can declare again once your clip actually reaches the tier.

The ClipTokk Team
	`, toName, missionTitle, reason)

	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, toName, subject, body, plainText)
	}
	return s.logEmailToConsole(toEmail, toName, subject, reason)
}

// SendPayoutConfirmationEmail confirms a payout left the platform.
func (s *Service) SendPayoutConfirmationEmail(toEmail, toName string, amount float64) error {
	subject := "Your payout is on its way"
	body := fmt.Sprintf(`
		<html>
		<body>
			<p>Hi %s,</p>
			<p>Your payout of <strong>%.2f EUR</strong> has been sent.</p>
			<p>Depending on your bank it can take a few business days to arrive.</p>
			<p>The ClipTokk Team</p>
		</body>
		</html>
	`, toName, amount)

	plainText := fmt.Sprintf(`
Hi %s,

Your payout of %.2f EUR has been sent. Depending on your bank it can take a few business days to arrive.

The ClipTokk Team
	`, toName, amount)

	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, toName, subject, body, plainText)
	}
	return s.logEmailToConsole(toEmail, toName, subject, fmt.Sprintf("%.2f EUR", amount))
}

// sendViaSendGrid sends email using SendGrid API
func (s *Service) sendViaSendGrid(toEmail, toName, subject, htmlBody, plainTextBody string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(toName, toEmail)

	message := mail.NewSingleEmail(from, subject, to, plainTextBody, htmlBody)

	client := sendgrid.NewSendClient(s.sendGridKey)
	response, err := client.Send(message)
	if err != nil {
		log.Printf("❌ SendGrid error: %v", err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	if response.StatusCode >= 400 {
		log.Printf("❌ SendGrid returned error status %d: %s", response.StatusCode, response.Body)
		return fmt.Errorf("sendgrid returned error status: %d", response.StatusCode)
	}

	log.Printf("✅ Email sent successfully to %s (SendGrid status: %d)", toEmail, response.StatusCode)
	return nil
}

// logEmailToConsole prints the email instead of sending it
func (s *Service) logEmailToConsole(toEmail, toName, subject, detail string) error {
	log.Printf("📧 [EMAIL] To: %s <%s>", toName, toEmail)
	log.Printf("   From: %s <%s>", s.fromName, s.fromEmail)
	log.Printf("   Subject: %s", subject)
	log.Printf("   %s", detail)
	return nil
}
