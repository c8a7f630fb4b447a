package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/rakeshkurk50/EndWebsite/internal/core/domain"
	"github.com/rakeshkurk50/EndWebsite/internal/core/ports"
)

type stubUserRepo struct {
	users   []domain.User
	nextID  int
	pingErr error

	// insertErr, when set, is returned by Insert regardless of state.
	insertErr error
	// findErr, when set, is returned by FindConflict.
	findErr error
	// listErr, when set, is returned by ListAll.
	listErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{nextID: 1}
}

func (r *stubUserRepo) FindConflict(_ context.Context, email, username string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for i := range r.users {
		if r.users[i].Email == email || r.users[i].Username == username {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) Insert(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.insertErr != nil {
		return nil, r.insertErr
	}
	// Mirror the unique indexes: the stub is the final arbiter too.
	for i := range r.users {
		if r.users[i].Email == user.Email {
			return nil, &domain.DuplicateKeyError{Fields: []string{"email"}}
		}
		if r.users[i].Username == user.Username {
			return nil, &domain.DuplicateKeyError{Fields: []string{"username"}}
		}
	}
	stored := *user
	stored.ID = fmt.Sprintf("user-%d", r.nextID)
	r.nextID++
	r.users = append(r.users, stored)
	return &stored, nil
}

func (r *stubUserRepo) ListAll(_ context.Context) ([]domain.User, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]domain.User, len(r.users))
	copy(out, r.users)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubUserRepo) EnsureIndexes(_ context.Context) error { return nil }

func (r *stubUserRepo) Ping(_ context.Context) error { return r.pingErr }

func newTestService(repo ports.UserRepository) ports.UserService {
	return NewUserService(repo, zerolog.Nop())
}

func TestUserService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestService(repo)

	user, err := svc.Register(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected generated id")
	}
	if user.Email != "ann@example.com" || user.Mobile != "5551234567" {
		t.Fatalf("unexpected stored record: %+v", user)
	}
	if user.CreatedAt.IsZero() {
		t.Fatalf("expected createdAt to be set")
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected exactly one record, got %d", len(repo.users))
	}
}

func TestUserService_Register_NormalizesBeforeStore(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestService(repo)

	in := validInput()
	in.Mobile = "(555) 123-4567"
	in.Email = "  Ann@Example.COM "
	in.Username = " annlee "

	user, err := svc.Register(context.Background(), in)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Mobile != "5551234567" || user.Email != "ann@example.com" || user.Username != "annlee" {
		t.Fatalf("normalization not applied before store: %+v", user)
	}
}

func TestUserService_Register_ValidationFailureInsertsNothing(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestService(repo)

	in := validInput()
	in.Mobile = "12345"

	_, err := svc.Register(context.Background(), in)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(repo.users) != 0 {
		t.Fatalf("expected zero records on failure, got %d", len(repo.users))
	}
}

func TestUserService_Register_ConflictOnSecondSubmission(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestService(repo)

	if _, err := svc.Register(context.Background(), validInput()); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}

	// Same email, different username: pre-check catches it.
	in := validInput()
	in.Username = "someoneelse"
	if _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected exactly one record, got %d", len(repo.users))
	}
}

func TestUserService_Register_NormalizedEmailHitsPreCheck(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestService(repo)

	if _, err := svc.Register(context.Background(), validInput()); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}

	// Mixed case and whitespace normalize to an existing email.
	in := validInput()
	in.Email = " ANN@Example.com "
	in.Username = "different"
	if _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists after normalization, got %v", err)
	}
}

func TestUserService_Register_DuplicateKeyPassesThrough(t *testing.T) {
	repo := newStubUserRepo()
	repo.insertErr = &domain.DuplicateKeyError{Fields: []string{"email"}}
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), validInput())
	var dke *domain.DuplicateKeyError
	if !errors.As(err, &dke) {
		t.Fatalf("expected DuplicateKeyError, got %v", err)
	}
	if dke.Error() != "duplicate value for field(s): email" {
		t.Fatalf("unexpected message: %q", dke.Error())
	}
}

func TestUserService_Register_Unavailable(t *testing.T) {
	repo := newStubUserRepo()
	repo.pingErr = errors.New("no reachable servers")
	svc := newTestService(repo)

	if _, err := svc.Register(context.Background(), validInput()); !errors.Is(err, domain.ErrNotConnected) {
		t.Fatalf("expected ErrNotConnected, got %v", err)
	}
}

func TestUserService_Register_ConflictCheckFailureWrapped(t *testing.T) {
	repo := newStubUserRepo()
	repo.findErr = errors.New("cursor timeout")
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), validInput())
	if err == nil || errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected wrapped storage error, got %v", err)
	}
}

func TestUserService_List_NewestFirstRoundTrip(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestService(repo)

	base := time.Now().UTC()
	for i, name := range []string{"first", "second", "third"} {
		repo.users = append(repo.users, domain.User{
			ID:        name,
			Username:  name,
			Email:     name + "@example.com",
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		})
	}

	users, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(users) != 3 || users[0].Username != "third" || users[2].Username != "first" {
		t.Fatalf("expected newest first, got %+v", users)
	}

	again, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("second List returned error: %v", err)
	}
	for i := range users {
		if users[i].ID != again[i].ID {
			t.Fatalf("expected identical results on repeated read")
		}
	}
}

func TestUserService_RegisterThenList_RoundTrip(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestService(repo)

	older := validInput()
	older.Email = "old@example.com"
	older.Username = "older"
	if _, err := svc.Register(context.Background(), older); err != nil {
		t.Fatalf("seed registration failed: %v", err)
	}
	// Force a distinct, later creation time for the second record.
	repo.users[0].CreatedAt = repo.users[0].CreatedAt.Add(-time.Minute)

	created, err := svc.Register(context.Background(), validInput())
	if err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	users, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(users) != 2 || users[0].ID != created.ID {
		t.Fatalf("expected newly created record first, got %+v", users)
	}
	got := users[0]
	if got.FirstName != "Ann" || got.LastName != "Lee" || got.Mobile != "5551234567" ||
		got.Email != "ann@example.com" || got.Username != "annlee" {
		t.Fatalf("submitted fields not intact: %+v", got)
	}
}

func TestUserService_List_Error(t *testing.T) {
	repo := newStubUserRepo()
	repo.listErr = errors.New("boom")
	svc := newTestService(repo)

	if _, err := svc.List(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
}
