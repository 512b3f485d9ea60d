// Package auth contains the sign-up, sign-in and session use cases.
package auth

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/life-manager/backend/internal/application/adapter"
	"github.com/life-manager/backend/internal/domain/entity"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// UserOutput represents the signed-in user.
type UserOutput struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionOutput is returned by every use case that opens a session.
type SessionOutput struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	ExpiresIn    int         `json:"expires_in"`
	User         *UserOutput `json:"user,omitempty"`
}

func toUserOutput(u *entity.User) *UserOutput {
	return &UserOutput{ID: u.ID, Email: u.Email, Name: u.Name, CreatedAt: u.CreatedAt}
}

func newSession(pair *adapter.TokenPair, user *entity.User) *SessionOutput {
	out := &SessionOutput{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}
	if user != nil {
		out.User = toUserOutput(user)
	}
	return out
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
