package user

import (
	"context"

	"github.com/Moustafa-Elbaloty/souq-backend/internal/dbx"
	"github.com/google/uuid"
)

// Repository defines the interface for account data storage.
type Repository interface {
	CreateUser(ctx context.Context, u *User) error
	GetUserByID(ctx context.Context, id string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	RoleRegistry
}

// RoleRegistry is the sole mutator of an account's role. SetRole takes the
// transaction handle of the lifecycle operation it runs inside; no other
// subsystem writes the role column.
type RoleRegistry interface {
	SetRole(ctx context.Context, tx dbx.DBTX, accountID uuid.UUID, role Role) error
}
