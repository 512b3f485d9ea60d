// Package auth contains the sign-up, sign-in and session use cases.
package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/life-manager/backend/internal/application/adapter"
	"github.com/life-manager/backend/internal/application/readthrough"
)

// SignOutInput represents the input for sign-out.
type SignOutInput struct {
	UserID       uuid.UUID
	RefreshToken string
}

// SignOutUseCase ends a session.
type SignOutUseCase struct {
	tokenService adapter.TokenService
	cache        adapter.QueryCache
}

// NewSignOutUseCase creates a new SignOutUseCase instance.
func NewSignOutUseCase(tokenService adapter.TokenService, cache adapter.QueryCache) *SignOutUseCase {
	return &SignOutUseCase{tokenService: tokenService, cache: cache}
}

// Execute invalidates the refresh token and drops every cached query of the user.
// It never fails: an already invalid token is fine.
func (uc *SignOutUseCase) Execute(ctx context.Context, input SignOutInput) {
	if input.RefreshToken != "" {
		if err := uc.tokenService.InvalidateRefreshToken(ctx, input.RefreshToken); err != nil {
			slog.Debug("Refresh token already invalid", "userID", input.UserID, "error", err)
		}
	}
	readthrough.Invalidate(ctx, uc.cache, input.UserID, adapter.AllTables...)
}
