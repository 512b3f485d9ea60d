// Package auth contains the sign-up, sign-in and session use cases.
package auth

import (
	"context"
	"fmt"

	"github.com/life-manager/backend/internal/application/adapter"
	domainerror "github.com/life-manager/backend/internal/domain/error"
)

// SignInInput represents the input for sign-in.
type SignInInput struct {
	Email      string
	Password   string
	RememberMe bool
}

// SignInUseCase handles credential checks and session creation.
type SignInUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewSignInUseCase creates a new SignInUseCase instance.
func NewSignInUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *SignInUseCase {
	return &SignInUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute signs the user in. Unknown emails and wrong passwords return the
// same error.
func (uc *SignInUseCase) Execute(ctx context.Context, input SignInInput) (*SessionOutput, error) {
	invalid := domainerror.NewAuthError(
		domainerror.ErrCodeInvalidCredentials,
		"invalid email or password",
		domainerror.ErrInvalidCredentials,
	)

	// Find user by email
	user, err := uc.userRepo.FindByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		return nil, invalid
	}

	// Verify password
	if err := uc.passwordService.VerifyPassword(user.PasswordHash, input.Password); err != nil {
		return nil, invalid
	}

	// Generate tokens
	pair, err := uc.tokenService.GenerateTokenPair(ctx, user.ID, user.Email, input.RememberMe)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return newSession(pair, user), nil
}
