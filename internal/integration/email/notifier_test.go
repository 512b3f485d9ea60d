package email

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/life-manager/backend/internal/application/adapter"
	"github.com/life-manager/backend/internal/domain/entity"
	domainerror "github.com/life-manager/backend/internal/domain/error"
	"github.com/life-manager/backend/internal/integration/email/templates"
)

type singleUserRepo struct {
	user *entity.User
}

func (r *singleUserRepo) Create(context.Context, *entity.User) error { return nil }

func (r *singleUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if r.user == nil || r.user.ID != id {
		return nil, domainerror.ErrUserNotFound
	}
	return r.user, nil
}

func (r *singleUserRepo) FindByEmail(context.Context, string) (*entity.User, error) {
	return nil, domainerror.ErrUserNotFound
}

func (r *singleUserRepo) ExistsByEmail(context.Context, string) (bool, error) { return false, nil }

type recordingSender struct {
	sent []adapter.SendEmailInput
	err  error
}

func (s *recordingSender) Send(_ context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.sent = append(s.sent, input)
	return &adapter.SendEmailResult{ResendID: "test-id"}, nil
}

func newTestNotifier(t *testing.T, sender adapter.EmailSender) (*AlertNotifier, *entity.User) {
	t.Helper()
	renderer, err := templates.NewRenderer()
	require.NoError(t, err)

	user := entity.NewUser("ana@example.com", "Ana", "hash")
	return NewAlertNotifier(&singleUserRepo{user: user}, sender, renderer, "https://app.example.com/"), user
}

func TestAlertNotifierSendsRenderedEmail(t *testing.T) {
	sender := &recordingSender{}
	notifier, user := newTestNotifier(t, sender)

	err := notifier.NotifyCreditCardRed(context.Background(), adapter.CreditCardAlert{
		UserID:   user.ID,
		Month:    "2026-03",
		Spent:    decimal.RequireFromString("7250"),
		RedLimit: decimal.RequireFromString("7100"),
	})
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)

	msg := sender.sent[0]
	assert.Equal(t, "ana@example.com", msg.To)
	assert.Equal(t, creditCardAlertSubject, msg.Subject)
	assert.Contains(t, msg.Text, "03/2026")
	assert.Contains(t, msg.Text, "R$ 7.250,00")
	assert.Contains(t, msg.Text, "R$ 7.100,00")
	assert.Contains(t, msg.Text, "Excedente: R$ 150,00")
	assert.Contains(t, msg.HTML, "https://app.example.com/finance")
}

func TestAlertNotifierUnknownUser(t *testing.T) {
	sender := &recordingSender{}
	notifier, _ := newTestNotifier(t, sender)

	err := notifier.NotifyCreditCardRed(context.Background(), adapter.CreditCardAlert{UserID: uuid.New()})
	assert.ErrorIs(t, err, domainerror.ErrUserNotFound)
	assert.Empty(t, sender.sent)
}

func TestAlertNotifierPropagatesSendFailure(t *testing.T) {
	sendErr := errors.New("boom")
	notifier, user := newTestNotifier(t, &recordingSender{err: sendErr})

	err := notifier.NotifyCreditCardRed(context.Background(), adapter.CreditCardAlert{
		UserID:   user.ID,
		Month:    "2026-03",
		Spent:    decimal.NewFromInt(7100),
		RedLimit: decimal.NewFromInt(7100),
	})
	assert.ErrorIs(t, err, sendErr)
}

func TestFormatBRL(t *testing.T) {
	tests := map[string]string{
		"0":          "0,00",
		"12.5":       "12,50",
		"999.999":    "1.000,00",
		"1234567.89": "1.234.567,89",
		"-5825":      "-5.825,00",
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, formatBRL(decimal.RequireFromString(in)))
		})
	}
}

func TestIsPermanentError(t *testing.T) {
	assert.True(t, isPermanentError(errors.New("422 validation_error: invalid `to` field")))
	assert.True(t, isPermanentError(errors.New("Unauthorized")))
	assert.False(t, isPermanentError(errors.New("429 rate limit exceeded")))
	assert.False(t, isPermanentError(nil))
	assert.False(t, strings.Contains(displayMonth("bad"), "/"))
}
