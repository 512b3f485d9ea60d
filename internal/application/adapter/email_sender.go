// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ResendID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// CreditCardAlert describes a month whose credit-card spend reached the red limit.
type CreditCardAlert struct {
	UserID   uuid.UUID
	Month    string
	Spent    decimal.Decimal
	RedLimit decimal.Decimal
}

// BudgetAlertNotifier tells a user about budget thresholds being crossed.
type BudgetAlertNotifier interface {
	NotifyCreditCardRed(ctx context.Context, alert CreditCardAlert) error
}
