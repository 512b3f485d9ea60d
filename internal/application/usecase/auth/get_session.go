// Package auth contains the sign-up, sign-in and session use cases.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/life-manager/backend/internal/application/adapter"
	domainerror "github.com/life-manager/backend/internal/domain/error"
)

// GetSessionUseCase returns the user behind an access token.
type GetSessionUseCase struct {
	userRepo adapter.UserRepository
}

// NewGetSessionUseCase creates a new GetSessionUseCase instance.
func NewGetSessionUseCase(userRepo adapter.UserRepository) *GetSessionUseCase {
	return &GetSessionUseCase{userRepo: userRepo}
}

// Execute loads the current user.
func (uc *GetSessionUseCase) Execute(ctx context.Context, userID uuid.UUID) (*UserOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewAuthError(domainerror.ErrCodeUserNotFound, "user not found", domainerror.ErrUserNotFound)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return toUserOutput(user), nil
}
