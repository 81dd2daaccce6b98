package repository

import (
	"context"
	"time"

	"github.com/oualidazemray/Bellavista1.0-sub002/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	UpdatePassword(ctx context.Context, id, hash string) error

	// SetVerificationToken stores a fresh opaque token and its expiry on the
	// user row, replacing any previous one.
	SetVerificationToken(ctx context.Context, id, token string, expiresAt time.Time) error

	// ConsumeVerificationToken flips the verified flag and clears the token
	// in a single conditional update, so a token can be consumed at most
	// once. Returns ErrTokenExpired when the token exists but is past its
	// expiry, ErrTokenNotFound when no row carries it.
	ConsumeVerificationToken(ctx context.Context, token string) (userID string, err error)

	// SearchClients returns up to limit CLIENT-role users whose email
	// contains q, case-insensitive.
	SearchClients(ctx context.Context, q string, limit int) ([]entity.User, error)
}
