package adapters

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type memoryTokenRepo struct {
	saved       map[string]time.Time
	invalidated map[string]bool
}

func newMemoryTokenRepo() *memoryTokenRepo {
	return &memoryTokenRepo{saved: map[string]time.Time{}, invalidated: map[string]bool{}}
}

func (r *memoryTokenRepo) SaveRefreshToken(_ context.Context, token string, _ uuid.UUID, expiresAt time.Time) error {
	r.saved[token] = expiresAt
	return nil
}

func (r *memoryTokenRepo) IsRefreshTokenValid(_ context.Context, token string) (bool, error) {
	_, ok := r.saved[token]
	return ok && !r.invalidated[token], nil
}

func (r *memoryTokenRepo) InvalidateRefreshToken(_ context.Context, token string) error {
	r.invalidated[token] = true
	return nil
}

func (r *memoryTokenRepo) DeleteExpired(_ context.Context, before time.Time) (int64, error) {
	var deleted int64
	for token, expiresAt := range r.saved {
		if expiresAt.Before(before) {
			delete(r.saved, token)
			deleted++
		}
	}
	return deleted, nil
}

func TestTokenService(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryTokenRepo()
	svc := NewTokenService("test-secret", DefaultTokenDurations(), repo)
	userID := uuid.New()

	first, err := svc.GenerateTokenPair(ctx, userID, "ana@example.com", false)
	require.NoError(t, err)
	second, err := svc.GenerateTokenPair(ctx, userID, "ana@example.com", false)
	require.NoError(t, err)

	assert.NotEqual(t, first.RefreshToken, second.RefreshToken, "tokens issued together must differ")
	assert.Len(t, repo.saved, 2)
	assert.Equal(t, 900, first.ExpiresIn)

	claims, err := svc.ValidateAccessToken(ctx, first.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)

	_, err = svc.ValidateAccessToken(ctx, first.RefreshToken)
	assert.Error(t, err, "refresh token is not an access token")
	_, err = svc.ValidateRefreshToken(ctx, first.AccessToken)
	assert.Error(t, err, "access token is not a refresh token")

	other := NewTokenService("other-secret", DefaultTokenDurations(), repo)
	_, err = other.ValidateAccessToken(ctx, first.AccessToken)
	assert.Error(t, err)

	remember, err := svc.GenerateTokenPair(ctx, userID, "ana@example.com", true)
	require.NoError(t, err)
	assert.Equal(t, int((7 * 24 * time.Hour).Seconds()), remember.ExpiresIn)

	require.NoError(t, svc.InvalidateRefreshToken(ctx, first.RefreshToken))
	valid, err := svc.IsRefreshTokenValid(ctx, first.RefreshToken)
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestTokenServiceRejectsExpired(t *testing.T) {
	ctx := context.Background()
	svc := NewTokenService("test-secret", DefaultTokenDurations(), newMemoryTokenRepo()).(*tokenService)
	svc.now = func() time.Time { return time.Now().UTC().Add(-time.Hour) }

	pair, err := svc.GenerateTokenPair(ctx, uuid.New(), "ana@example.com", false)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(ctx, pair.AccessToken)
	assert.Error(t, err)
}

func TestPasswordService(t *testing.T) {
	svc := NewPasswordService(bcrypt.MinCost)

	assert.Error(t, svc.ValidatePasswordStrength("short"))
	assert.Error(t, svc.ValidatePasswordStrength(strings.Repeat("a", 73)))
	assert.NoError(t, svc.ValidatePasswordStrength("longenough"))
	assert.NoError(t, svc.ValidatePasswordStrength("ççççççççç"))

	hash, err := svc.HashPassword("longenough")
	require.NoError(t, err)
	assert.NoError(t, svc.VerifyPassword(hash, "longenough"))
	assert.Error(t, svc.VerifyPassword(hash, "wrong-password"))
}

func TestTokenSweeper(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryTokenRepo()
	now := time.Now().UTC()
	repo.saved["expired"] = now.Add(-time.Minute)
	repo.saved["live"] = now.Add(time.Hour)

	sweeper := NewTokenSweeper(repo, 0)
	assert.Equal(t, DefaultSweepInterval, sweeper.interval)

	assert.Equal(t, int64(1), sweeper.SweepNow(ctx))
	assert.Contains(t, repo.saved, "live")
	assert.NotContains(t, repo.saved, "expired")
}
