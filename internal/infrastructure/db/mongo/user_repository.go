package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rakeshkurk50/EndWebsite/internal/core/domain"
)

const usersCollection = "users"

// UserRepository is the MongoDB-backed persistence gateway for user records.
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

// userDoc mirrors the users collection layout. Field names are fixed by the
// persisted schema; do not rename.
type userDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	FirstName string             `bson:"firstName"`
	LastName  string             `bson:"lastName"`
	Mobile    string             `bson:"mobile"`
	Email     string             `bson:"email"`
	Address   string             `bson:"address,omitempty"`
	Street    string             `bson:"street,omitempty"`
	City      string             `bson:"city,omitempty"`
	State     string             `bson:"state,omitempty"`
	Country   string             `bson:"country,omitempty"`
	Username  string             `bson:"username"`
	Password  string             `bson:"password"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func toDoc(u *domain.User) userDoc {
	return userDoc{
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Mobile:    u.Mobile,
		Email:     u.Email,
		Address:   u.Address,
		Street:    u.Street,
		City:      u.City,
		State:     u.State,
		Country:   u.Country,
		Username:  u.Username,
		Password:  u.Password,
		CreatedAt: u.CreatedAt,
	}
}

func (d userDoc) toUser() domain.User {
	return domain.User{
		ID:        d.ID.Hex(),
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Mobile:    d.Mobile,
		Email:     d.Email,
		Address:   d.Address,
		Street:    d.Street,
		City:      d.City,
		State:     d.State,
		Country:   d.Country,
		Username:  d.Username,
		Password:  d.Password,
		CreatedAt: d.CreatedAt.UTC(),
	}
}

// FindConflict returns the first record matching the given email or username,
// or nil when no record conflicts.
func (r *UserRepository) FindConflict(ctx context.Context, email, username string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"$or": bson.A{
		bson.M{"email": email},
		bson.M{"username": username},
	}}

	var doc userDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find conflict: %w", err)
	}
	user := doc.toUser()
	return &user, nil
}

// Insert persists a new user. A unique-index violation on email or username
// is mapped to *domain.DuplicateKeyError naming the colliding field(s) when
// they can be derived from the server error.
func (r *UserRepository) Insert(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toDoc(user)
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC()
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, &domain.DuplicateKeyError{Fields: duplicateFields(err)}
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	stored := *user
	stored.CreatedAt = doc.CreatedAt
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		stored.ID = oid.Hex()
	}
	return &stored, nil
}

// ListAll returns every user ordered by creation time descending.
func (r *UserRepository) ListAll(ctx context.Context) ([]domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []userDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}

	users := make([]domain.User, 0, len(docs))
	for _, d := range docs {
		users = append(users, d.toUser())
	}
	return users, nil
}

// EnsureIndexes creates the unique indexes backing the email and username
// invariants. Idempotent; a failure here must abort startup so the service
// never runs without its uniqueness guarantee.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}
	return nil
}

// Ping verifies storage connectivity with a short deadline.
func (r *UserRepository) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return r.coll.Database().Client().Ping(ctx, nil)
}

// dupIndexPattern extracts the index name from a duplicate-key server message,
// e.g. "... index: email_1 dup key: { email: \"a@b.c\" }".
var dupIndexPattern = regexp.MustCompile(`index:\s+([\w.]+)_\d+\s+dup key`)

// duplicateFields derives the colliding field name(s) from a duplicate-key
// error. Empty when the message is unparseable; the error message then
// reports "unknown".
func duplicateFields(err error) []string {
	var fields []string
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if m := dupIndexPattern.FindStringSubmatch(e.Message); m != nil {
				fields = append(fields, m[1])
			}
		}
	}
	if fields == nil {
		if m := dupIndexPattern.FindStringSubmatch(err.Error()); m != nil {
			fields = append(fields, m[1])
		}
	}
	return fields
}
