package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskvault/taskboard/internal/core/domain"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo(users ...*domain.User) *stubUserRepo {
	r := &stubUserRepo{users: make(map[string]*domain.User)}
	for _, u := range users {
		r.users[u.Email] = u
	}
	return r
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return string(hash)
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo(&domain.User{
		ID:           "u1",
		Email:        "carol@example.com",
		PasswordHash: mustHash(t, "s3cret"),
		Name:         "Carol",
		Role:         domain.RoleAdmin,
	})
	svc := NewAuthService(repo, "secret", 2*time.Hour)

	result, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.AccessToken == "" {
		t.Fatalf("expected token, got empty")
	}
	if result.User == nil || result.User.ID != "u1" {
		t.Fatalf("unexpected user: %+v", result.User)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(result.AccessToken, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["sub"] != "u1" || claims["email"] != "carol@example.com" || claims["name"] != "Carol" || claims["role"] != "ADMIN" {
		t.Fatalf("unexpected claims: %v", claims)
	}
}

func TestAuthService_Login_TokenExpiresInTwoHours(t *testing.T) {
	repo := newStubUserRepo(&domain.User{
		ID:           "u1",
		Email:        "carol@example.com",
		PasswordHash: mustHash(t, "s3cret"),
		Role:         domain.RoleWorker,
	})
	// tokenTTL <= 0 falls back to the fixed 2-hour validity window.
	svc := NewAuthService(repo, "secret", 0)

	before := time.Now()
	result, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(result.AccessToken, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	}); err != nil {
		t.Fatalf("parse token: %v", err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		t.Fatalf("exp claim: %v", err)
	}
	ttl := exp.Sub(before)
	if ttl < 2*time.Hour-time.Minute || ttl > 2*time.Hour+time.Minute {
		t.Fatalf("expected ~2h validity, got %v", ttl)
	}
}

func TestAuthService_Login_IndistinguishableFailures(t *testing.T) {
	repo := newStubUserRepo(&domain.User{
		ID:           "u1",
		Email:        "dave@example.com",
		PasswordHash: mustHash(t, "goodpass"),
		Role:         domain.RoleWorker,
	})
	svc := NewAuthService(repo, "secret", 2*time.Hour)

	_, wrongPassErr := svc.Login(context.Background(), "dave@example.com", "badpass")
	_, unknownEmailErr := svc.Login(context.Background(), "ghost@example.com", "whatever")

	if !errors.Is(wrongPassErr, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPassErr)
	}
	if !errors.Is(unknownEmailErr, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknownEmailErr)
	}
	// Account enumeration guard: both failures must read identically.
	if wrongPassErr.Error() != unknownEmailErr.Error() {
		t.Fatalf("failure messages differ: %q vs %q", wrongPassErr, unknownEmailErr)
	}
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", 2*time.Hour)

	if _, err := svc.Login(context.Background(), "", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "a@b.com", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
