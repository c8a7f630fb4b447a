package ports

import (
	"context"

	"github.com/rakeshkurk50/EndWebsite/internal/core/domain"
)

// RegisterInput is the raw field set submitted by the client, before
// normalization. Field order matters: required-field errors enumerate
// missing fields in this order.
type RegisterInput struct {
	FirstName string `validate:"notblank"`
	LastName  string `validate:"notblank"`
	Mobile    string `validate:"notblank,mobile"`
	Email     string `validate:"notblank,emailshape"`
	Username  string `validate:"notblank"`
	Password  string `validate:"notblank"`
	Address   string
	Street    string
	City      string
	State     string
	Country   string
}

type UserService interface {
	// Register runs the full pipeline: connectivity check, normalization,
	// validation, duplicate pre-check, insert.
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)

	// List returns all users, newest first.
	List(ctx context.Context) ([]domain.User, error)
}
