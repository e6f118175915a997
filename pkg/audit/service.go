// Package audit records who did what: auth events, mission and submission
// activity, and every admin validation decision.
package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/cliptokk/api/ent"
	"github.com/cliptokk/api/ent/auditlog"
)

// Service handles audit logging
type Service struct {
	db *ent.Client
}

// NewService creates a new audit service
func NewService(db *ent.Client) *Service {
	return &Service{
		db: db,
	}
}

// LogEntry represents an audit log entry
type LogEntry struct {
	UserID       *int
	Action       auditlog.Action
	ResourceType *string
	ResourceID   *string
	IPAddress    *string
	UserAgent    *string
	Metadata     map[string]interface{}
	Severity     auditlog.Severity
	Description  *string
}

// Log creates a new audit log entry
func (s *Service) Log(ctx context.Context, entry LogEntry) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	create := s.db.AuditLog.Create().
		SetAction(entry.Action).
		SetSeverity(entry.Severity)

	if entry.UserID != nil {
		create = create.SetUserID(*entry.UserID)
	}
	if entry.ResourceType != nil {
		create = create.SetResourceType(*entry.ResourceType)
	}
	if entry.ResourceID != nil {
		create = create.SetResourceID(*entry.ResourceID)
	}
	if entry.IPAddress != nil {
		create = create.SetIPAddress(*entry.IPAddress)
	}
	if entry.UserAgent != nil {
		create = create.SetUserAgent(*entry.UserAgent)
	}
	if entry.Description != nil {
		create = create.SetDescription(*entry.Description)
	}
	if entry.Metadata != nil {
		create = create.SetMetadata(entry.Metadata)
	}

	_, err := create.Save(ctx)
	return err
}

// LogUserLogin logs a user login event
func (s *Service) LogUserLogin(ctx context.Context, userID int, ipAddress, userAgent string) error {
	desc := "User logged in successfully"
	return s.Log(ctx, LogEntry{
		UserID:      &userID,
		Action:      auditlog.ActionUserLogin,
		IPAddress:   &ipAddress,
		UserAgent:   &userAgent,
		Severity:    auditlog.SeverityInfo,
		Description: &desc,
	})
}

// LogUserLogout logs a user logout event
func (s *Service) LogUserLogout(ctx context.Context, userID int, ipAddress, userAgent string) error {
	desc := "User logged out"
	return s.Log(ctx, LogEntry{
		UserID:      &userID,
		Action:      auditlog.ActionUserLogout,
		IPAddress:   &ipAddress,
		UserAgent:   &userAgent,
		Severity:    auditlog.SeverityInfo,
		Description: &desc,
	})
}

// LogUserRegister logs a new account registration
func (s *Service) LogUserRegister(ctx context.Context, userID int, ipAddress, userAgent string) error {
	desc := "New account registered"
	return s.Log(ctx, LogEntry{
		UserID:      &userID,
		Action:      auditlog.ActionUserRegister,
		IPAddress:   &ipAddress,
		UserAgent:   &userAgent,
		Severity:    auditlog.SeverityInfo,
		Description: &desc,
	})
}

// LogMissionCreate logs a mission launch
func (s *Service) LogMissionCreate(ctx context.Context, userID, missionID int, ipAddress, userAgent string) error {
	resourceType := "mission"
	resourceID := fmt.Sprintf("%d", missionID)
	return s.Log(ctx, LogEntry{
		UserID:       &userID,
		Action:       auditlog.ActionMissionCreate,
		ResourceType: &resourceType,
		ResourceID:   &resourceID,
		IPAddress:    &ipAddress,
		UserAgent:    &userAgent,
		Severity:     auditlog.SeverityInfo,
	})
}

// LogSubmissionCreate logs a new clip submission
func (s *Service) LogSubmissionCreate(ctx context.Context, userID, submissionID int, ipAddress, userAgent string) error {
	resourceType := "submission"
	resourceID := fmt.Sprintf("%d", submissionID)
	return s.Log(ctx, LogEntry{
		UserID:       &userID,
		Action:       auditlog.ActionSubmissionCreate,
		ResourceType: &resourceType,
		ResourceID:   &resourceID,
		IPAddress:    &ipAddress,
		UserAgent:    &userAgent,
		Severity:     auditlog.SeverityInfo,
	})
}

// LogMilestoneDecision logs an admin validation decision. Money moves on
// approval, so both outcomes are kept at warning severity for review.
func (s *Service) LogMilestoneDecision(ctx context.Context, adminID, milestoneID int, approved bool, amount float64, ipAddress, userAgent string) error {
	action := auditlog.ActionMilestoneReject
	desc := "Milestone declaration rejected"
	if approved {
		action = auditlog.ActionMilestoneApprove
		desc = fmt.Sprintf("Milestone approved, %.2f EUR credited", amount)
	}
	resourceType := "milestone"
	resourceID := fmt.Sprintf("%d", milestoneID)
	return s.Log(ctx, LogEntry{
		UserID:       &adminID,
		Action:       action,
		ResourceType: &resourceType,
		ResourceID:   &resourceID,
		IPAddress:    &ipAddress,
		UserAgent:    &userAgent,
		Severity:     auditlog.SeverityWarning,
		Description:  &desc,
		Metadata:     map[string]interface{}{"amount": amount},
	})
}

// LogWalletPayout logs a payout request
func (s *Service) LogWalletPayout(ctx context.Context, userID, transactionID int, amount float64, ipAddress, userAgent string) error {
	resourceType := "wallet_transaction"
	resourceID := fmt.Sprintf("%d", transactionID)
	desc := fmt.Sprintf("Payout of %.2f EUR requested", amount)
	return s.Log(ctx, LogEntry{
		UserID:       &userID,
		Action:       auditlog.ActionWalletPayout,
		ResourceType: &resourceType,
		ResourceID:   &resourceID,
		IPAddress:    &ipAddress,
		UserAgent:    &userAgent,
		Severity:     auditlog.SeverityWarning,
		Description:  &desc,
		Metadata:     map[string]interface{}{"amount": amount},
	})
}

// LogWalletRecharge logs a wallet recharge
func (s *Service) LogWalletRecharge(ctx context.Context, userID, transactionID int, amount float64, ipAddress, userAgent string) error {
	resourceType := "wallet_transaction"
	resourceID := fmt.Sprintf("%d", transactionID)
	desc := fmt.Sprintf("Recharge of %.2f EUR started", amount)
	return s.Log(ctx, LogEntry{
		UserID:       &userID,
		Action:       auditlog.ActionWalletRecharge,
		ResourceType: &resourceType,
		ResourceID:   &resourceID,
		IPAddress:    &ipAddress,
		UserAgent:    &userAgent,
		Severity:     auditlog.SeverityInfo,
		Description:  &desc,
		Metadata:     map[string]interface{}{"amount": amount},
	})
}

// GetUserLogs retrieves recent audit logs for a user
func (s *Service) GetUserLogs(ctx context.Context, userID int, limit int) ([]*ent.AuditLog, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.db.AuditLog.Query().
		Where(auditlog.UserID(userID)).
		Order(ent.Desc(auditlog.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
}

// GetRecentLogs retrieves the most recent audit logs across all users
func (s *Service) GetRecentLogs(ctx context.Context, limit int) ([]*ent.AuditLog, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.db.AuditLog.Query().
		Order(ent.Desc(auditlog.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
}
