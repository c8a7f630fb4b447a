package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/rakeshkurk50/EndWebsite/internal/core/domain"
	"github.com/rakeshkurk50/EndWebsite/internal/core/ports"
)

type userService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

// NewUserService returns a UserService backed by the given repository.
func NewUserService(repo ports.UserRepository, log zerolog.Logger) ports.UserService {
	return &userService{repo: repo, log: log}
}

// Register runs the registration pipeline. Each stage returns an explicit
// error mapped to a response code at the HTTP boundary:
//
//	connectivity  → domain.ErrNotConnected
//	validation    → *domain.ValidationError
//	pre-check hit → domain.ErrUserExists
//	index race    → *domain.DuplicateKeyError (from the repository)
//
// The pre-check is a UX optimization only; the unique index at insert time is
// the authoritative duplicate arbiter.
func (s *userService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	if err := s.repo.Ping(ctx); err != nil {
		s.log.Error().Err(err).Msg("storage unreachable")
		return nil, domain.ErrNotConnected
	}

	in = normalizeRegistration(in)
	if err := validateRegistration(in); err != nil {
		return nil, err
	}

	// Password is deliberately absent from this payload log.
	s.log.Debug().
		Str("username", in.Username).
		Str("email", in.Email).
		Str("mobile", in.Mobile).
		Msg("registration payload")

	existing, err := s.repo.FindConflict(ctx, in.Email, in.Username)
	if err != nil {
		return nil, fmt.Errorf("register: conflict check: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrUserExists
	}

	user := &domain.User{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Mobile:    in.Mobile,
		Email:     in.Email,
		Address:   in.Address,
		Street:    in.Street,
		City:      in.City,
		State:     in.State,
		Country:   in.Country,
		Username:  in.Username,
		Password:  in.Password,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("id", created.ID).Str("username", created.Username).Msg("user registered")
	return created, nil
}

// List returns every user, newest first. Read-only and idempotent.
func (s *userService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
