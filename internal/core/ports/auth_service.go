package ports

import (
	"context"

	"github.com/taskvault/taskboard/internal/core/domain"
)

// LoginResult carries the issued session token and the authenticated user.
type LoginResult struct {
	AccessToken string
	User        *domain.User
}

// AuthService verifies credentials and issues signed session tokens.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}
