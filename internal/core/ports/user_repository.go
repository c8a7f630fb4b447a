package ports

import (
	"context"

	"github.com/rakeshkurk50/EndWebsite/internal/core/domain"
)

// UserRepository defines the persistence gateway for user records. It is the
// exclusive owner of record storage; all other components go through it.
type UserRepository interface {
	// FindConflict returns an existing record whose email or username matches
	// (first match by storage order), or nil when none does. Best-effort
	// pre-insert guard only: the unique index remains the final arbiter.
	FindConflict(ctx context.Context, email, username string) (*domain.User, error)

	// Insert persists a new record, assigning its id and creation time.
	// A unique-index violation surfaces as *domain.DuplicateKeyError.
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)

	// ListAll returns every record ordered by creation time descending.
	ListAll(ctx context.Context) ([]domain.User, error)

	// EnsureIndexes creates the unique indexes on email and username.
	// Idempotent; must succeed before the service accepts traffic.
	EnsureIndexes(ctx context.Context) error

	// Ping reports storage connectivity.
	Ping(ctx context.Context) error
}
