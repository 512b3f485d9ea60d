// Package auth contains the sign-up, sign-in and session use cases.
package auth

import (
	"context"
	"fmt"

	"github.com/life-manager/backend/internal/application/adapter"
	domainerror "github.com/life-manager/backend/internal/domain/error"
)

// RefreshSessionUseCase rotates a refresh token.
type RefreshSessionUseCase struct {
	tokenService adapter.TokenService
}

// NewRefreshSessionUseCase creates a new RefreshSessionUseCase instance.
func NewRefreshSessionUseCase(tokenService adapter.TokenService) *RefreshSessionUseCase {
	return &RefreshSessionUseCase{tokenService: tokenService}
}

// Execute invalidates the presented refresh token and issues a new pair.
func (uc *RefreshSessionUseCase) Execute(ctx context.Context, refreshToken string) (*SessionOutput, error) {
	claims, err := uc.tokenService.ValidateRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"invalid or expired refresh token",
			domainerror.ErrInvalidToken,
		)
	}

	// Check if token has been invalidated
	valid, err := uc.tokenService.IsRefreshTokenValid(ctx, refreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to check token validity: %w", err)
	}
	if !valid {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"refresh token has been revoked",
			domainerror.ErrInvalidToken,
		)
	}

	// Rotate: the old refresh token cannot be used again
	if err := uc.tokenService.InvalidateRefreshToken(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to invalidate old token: %w", err)
	}

	pair, err := uc.tokenService.GenerateTokenPair(ctx, claims.UserID, claims.Email, false)
	if err != nil {
		return nil, fmt.Errorf("failed to generate new tokens: %w", err)
	}

	return newSession(pair, nil), nil
}
