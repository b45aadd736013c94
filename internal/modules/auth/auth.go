package auth

import (
	"context"

	"github.com/Moustafa-Elbaloty/souq-backend/internal/modules/user"
	"github.com/google/uuid"
)

// Service defines the interface for authentication-related business logic.
type Service interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// Principal is the trusted identity attached to a request after token
// verification. Downstream services authorize against it; they never parse
// tokens themselves.
type Principal struct {
	AccountID uuid.UUID
	Role      user.Role
}
