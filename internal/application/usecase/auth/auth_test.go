package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/life-manager/backend/internal/application/adapter"
	"github.com/life-manager/backend/internal/domain/entity"
	domainerror "github.com/life-manager/backend/internal/domain/error"
)

type memoryUserRepo struct {
	users map[string]*entity.User
}

func (r *memoryUserRepo) Create(_ context.Context, u *entity.User) error {
	r.users[u.Email] = u
	return nil
}

func (r *memoryUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *memoryUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return u, nil
}

func (r *memoryUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := r.users[email]
	return ok, nil
}

type plainPasswords struct{}

func (plainPasswords) HashPassword(p string) (string, error) { return "hashed:" + p, nil }

func (plainPasswords) VerifyPassword(hash, p string) error {
	if hash != "hashed:"+p {
		return errors.New("mismatch")
	}
	return nil
}

func (plainPasswords) ValidatePasswordStrength(p string) error {
	if len(p) < 8 {
		return errors.New("too short")
	}
	return nil
}

type fakeTokens struct {
	issued  map[string]uuid.UUID
	revoked map[string]bool
	counter int
}

func newFakeTokens() *fakeTokens {
	return &fakeTokens{issued: map[string]uuid.UUID{}, revoked: map[string]bool{}}
}

func (f *fakeTokens) GenerateTokenPair(_ context.Context, userID uuid.UUID, _ string, rememberMe bool) (*adapter.TokenPair, error) {
	f.counter++
	refresh := uuid.NewString()
	f.issued[refresh] = userID
	expires := 900
	if rememberMe {
		expires = 3600
	}
	return &adapter.TokenPair{AccessToken: "access-" + refresh, RefreshToken: refresh, ExpiresIn: expires}, nil
}

func (f *fakeTokens) ValidateAccessToken(context.Context, string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not used")
}

func (f *fakeTokens) ValidateRefreshToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	userID, ok := f.issued[token]
	if !ok {
		return nil, errors.New("unknown token")
	}
	return &adapter.TokenClaims{UserID: userID, ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func (f *fakeTokens) InvalidateRefreshToken(_ context.Context, token string) error {
	f.revoked[token] = true
	return nil
}

func (f *fakeTokens) IsRefreshTokenValid(_ context.Context, token string) (bool, error) {
	return !f.revoked[token], nil
}

type countingCache struct {
	invalidated []string
}

func (c *countingCache) Get(context.Context, uuid.UUID, string, string) ([]byte, int64, bool, error) {
	return nil, 0, false, nil
}

func (c *countingCache) Set(context.Context, uuid.UUID, string, int64, string, []byte) error {
	return nil
}

func (c *countingCache) Invalidate(_ context.Context, _ uuid.UUID, tables ...string) error {
	c.invalidated = append(c.invalidated, tables...)
	return nil
}

func assertAuthCode(t *testing.T, err error, want domainerror.AuthErrorCode) {
	t.Helper()
	var authErr *domainerror.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	if authErr.Code != want {
		t.Errorf("code = %s, want %s", authErr.Code, want)
	}
}

func TestSignUp(t *testing.T) {
	repo := &memoryUserRepo{users: map[string]*entity.User{}}
	uc := NewSignUpUseCase(repo, plainPasswords{}, newFakeTokens())
	ctx := context.Background()

	tests := []struct {
		name  string
		input SignUpInput
		want  domainerror.AuthErrorCode
	}{
		{"missing email", SignUpInput{Password: "secret123"}, domainerror.ErrCodeMissingFields},
		{"missing password", SignUpInput{Email: "a@b.com"}, domainerror.ErrCodeMissingFields},
		{"bad email", SignUpInput{Email: "not-an-email", Password: "secret123"}, domainerror.ErrCodeInvalidEmail},
		{"short password", SignUpInput{Email: "a@b.com", Password: "short"}, domainerror.ErrCodeWeakPassword},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, tt.input)
			assertAuthCode(t, err, tt.want)
		})
	}

	session, err := uc.Execute(ctx, SignUpInput{Email: "  Maria@Example.com ", Password: "secret123"})
	if err != nil {
		t.Fatalf("sign up: %v", err)
	}
	if session.User.Email != "maria@example.com" || session.User.Name != "maria" {
		t.Errorf("user = %+v, want normalized email and derived name", session.User)
	}
	if session.AccessToken == "" || session.RefreshToken == "" {
		t.Error("expected a token pair")
	}

	_, err = uc.Execute(ctx, SignUpInput{Email: "maria@example.com", Password: "another123"})
	assertAuthCode(t, err, domainerror.ErrCodeEmailExists)
}

func TestSignInIsGeneric(t *testing.T) {
	repo := &memoryUserRepo{users: map[string]*entity.User{}}
	tokens := newFakeTokens()
	ctx := context.Background()
	if _, err := NewSignUpUseCase(repo, plainPasswords{}, tokens).Execute(ctx, SignUpInput{Email: "joao@example.com", Password: "secret123"}); err != nil {
		t.Fatalf("sign up: %v", err)
	}
	uc := NewSignInUseCase(repo, plainPasswords{}, tokens)

	_, errUnknown := uc.Execute(ctx, SignInInput{Email: "nobody@example.com", Password: "secret123"})
	_, errWrong := uc.Execute(ctx, SignInInput{Email: "joao@example.com", Password: "wrong-pass"})
	assertAuthCode(t, errUnknown, domainerror.ErrCodeInvalidCredentials)
	assertAuthCode(t, errWrong, domainerror.ErrCodeInvalidCredentials)
	if errUnknown.Error() != errWrong.Error() {
		t.Errorf("errors differ: %q vs %q", errUnknown, errWrong)
	}

	session, err := uc.Execute(ctx, SignInInput{Email: "JOAO@example.com", Password: "secret123", RememberMe: true})
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if session.ExpiresIn != 3600 {
		t.Errorf("expires in = %d, want remember-me expiry", session.ExpiresIn)
	}
}

func TestRefreshRotatesToken(t *testing.T) {
	tokens := newFakeTokens()
	ctx := context.Background()
	pair, _ := tokens.GenerateTokenPair(ctx, uuid.New(), "x@y.com", false)
	uc := NewRefreshSessionUseCase(tokens)

	rotated, err := uc.Execute(ctx, pair.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if rotated.RefreshToken == pair.RefreshToken {
		t.Error("refresh token must rotate")
	}

	_, err = uc.Execute(ctx, pair.RefreshToken)
	assertAuthCode(t, err, domainerror.ErrCodeInvalidToken)

	_, err = uc.Execute(ctx, "garbage")
	assertAuthCode(t, err, domainerror.ErrCodeInvalidToken)
}

func TestSignOutClearsCache(t *testing.T) {
	tokens := newFakeTokens()
	cache := &countingCache{}
	ctx := context.Background()
	userID := uuid.New()
	pair, _ := tokens.GenerateTokenPair(ctx, userID, "x@y.com", false)

	NewSignOutUseCase(tokens, cache).Execute(ctx, SignOutInput{UserID: userID, RefreshToken: pair.RefreshToken})

	if !tokens.revoked[pair.RefreshToken] {
		t.Error("refresh token should be revoked")
	}
	if len(cache.invalidated) != len(adapter.AllTables) {
		t.Errorf("invalidated %v, want every table", cache.invalidated)
	}
}

func TestGetSession(t *testing.T) {
	repo := &memoryUserRepo{users: map[string]*entity.User{}}
	user := entity.NewUser("ana@example.com", "Ana", "hash")
	repo.users[user.Email] = user
	uc := NewGetSessionUseCase(repo)

	out, err := uc.Execute(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if out.Name != "Ana" {
		t.Errorf("name = %s, want Ana", out.Name)
	}

	_, err = uc.Execute(context.Background(), uuid.New())
	assertAuthCode(t, err, domainerror.ErrCodeUserNotFound)
}
