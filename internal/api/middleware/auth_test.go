package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/taskvault/taskboard/internal/core/domain"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, method jwt.SigningMethod, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func runAuth(t *testing.T, authHeader string) (echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(testSecret)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return c, handler(c)
}

func TestAuth_ValidToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "u1",
		"email": "eve@example.com",
		"name":  "Eve",
		"role":  "MANAGER",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	c, err := runAuth(t, "Bearer "+token)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	if sub, _ := c.Get("sub").(string); sub != "u1" {
		t.Fatalf("expected sub u1, got %v", c.Get("sub"))
	}
	if email, _ := c.Get("email").(string); email != "eve@example.com" {
		t.Fatalf("unexpected email: %v", c.Get("email"))
	}
	if role, _ := c.Get("role").(domain.Role); role != domain.RoleManager {
		t.Fatalf("expected role MANAGER, got %v", c.Get("role"))
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	_, err := runAuth(t, "")
	assertHTTPError(t, err, http.StatusUnauthorized, "missing token")
}

func TestAuth_MalformedHeader(t *testing.T) {
	for _, header := range []string{"Bearer", "Token abc", "abc"} {
		_, err := runAuth(t, header)
		assertHTTPError(t, err, http.StatusUnauthorized, "missing token")
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	_, err := runAuth(t, "Bearer not-a-jwt")
	assertHTTPError(t, err, http.StatusUnauthorized, "invalid token")
}

func TestAuth_WrongSecret(t *testing.T) {
	token := signToken(t, "other-secret", jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	_, err := runAuth(t, "Bearer "+token)
	assertHTTPError(t, err, http.StatusUnauthorized, "invalid token")
}

func TestAuth_ExpiredToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"exp": time.Now().Add(-time.Minute).Unix(),
	})
	_, err := runAuth(t, "Bearer "+token)
	assertHTTPError(t, err, http.StatusUnauthorized, "invalid token")
}

func assertHTTPError(t *testing.T, err error, code int, message string) {
	t.Helper()
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if httpErr.Code != code {
		t.Fatalf("expected status %d, got %d", code, httpErr.Code)
	}
	if httpErr.Message != message {
		t.Fatalf("expected message %q, got %v", message, httpErr.Message)
	}
}
