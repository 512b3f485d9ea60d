// Package email provides email sending functionality via Resend.
package email

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/life-manager/backend/internal/application/adapter"
	domainerror "github.com/life-manager/backend/internal/domain/error"
	"github.com/life-manager/backend/internal/integration/email/templates"
)

const creditCardAlertSubject = "Alerta: cartão de crédito no vermelho - Life Manager"

// AlertNotifier e-mails budget alerts to the owner of the budget.
type AlertNotifier struct {
	users      adapter.UserRepository
	sender     adapter.EmailSender
	renderer   *templates.Renderer
	appBaseURL string
}

// NewAlertNotifier creates a notifier sending through sender.
func NewAlertNotifier(users adapter.UserRepository, sender adapter.EmailSender, renderer *templates.Renderer, appBaseURL string) *AlertNotifier {
	return &AlertNotifier{
		users:      users,
		sender:     sender,
		renderer:   renderer,
		appBaseURL: strings.TrimRight(appBaseURL, "/"),
	}
}

// NotifyCreditCardRed sends the red-light alert for the month in alert.
func (n *AlertNotifier) NotifyCreditCardRed(ctx context.Context, alert adapter.CreditCardAlert) error {
	user, err := n.users.FindByID(ctx, alert.UserID)
	if err != nil {
		return fmt.Errorf("failed to load alert recipient: %w", err)
	}

	// Build template data
	data := templates.CreditCardAlertData{
		UserName:     user.Name,
		Month:        displayMonth(alert.Month),
		Spent:        formatBRL(alert.Spent),
		RedLimit:     formatBRL(alert.RedLimit),
		DashboardURL: n.appBaseURL + "/finance",
	}
	if excess := alert.Spent.Sub(alert.RedLimit); excess.IsPositive() {
		data.Excess = formatBRL(excess)
	}

	// Render template
	html, text, err := n.renderer.Render(templates.CreditCardAlert, data)
	if err != nil {
		return domainerror.NewEmailError(domainerror.ErrCodeTemplateRenderFailed, "failed to render credit card alert", err)
	}

	// Send email
	result, err := n.sender.Send(ctx, adapter.SendEmailInput{
		To:      user.Email,
		Name:    user.Name,
		Subject: creditCardAlertSubject,
		HTML:    html,
		Text:    text,
	})
	if err != nil {
		return err
	}

	slog.Info("Credit card alert sent", "userID", alert.UserID, "month", alert.Month, "resendID", result.ResendID)
	return nil
}

// NoopNotifier drops every alert. Used when e-mail is not configured.
type NoopNotifier struct{}

// NotifyCreditCardRed does nothing.
func (NoopNotifier) NotifyCreditCardRed(context.Context, adapter.CreditCardAlert) error {
	return nil
}

// displayMonth turns "2026-03" into "03/2026". Other input is returned as is.
func displayMonth(month string) string {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return month
	}
	return t.Format("01/2006")
}

// formatBRL renders d with two decimals, "." thousands and "," decimal separators.
func formatBRL(d decimal.Decimal) string {
	fixed := d.Abs().StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if d.IsNegative() {
		b.WriteByte('-')
	}
	// Group thousands
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	b.WriteByte(',')
	b.WriteString(frac)
	return b.String()
}

var (
	_ adapter.BudgetAlertNotifier = (*AlertNotifier)(nil)
	_ adapter.BudgetAlertNotifier = NoopNotifier{}
)
