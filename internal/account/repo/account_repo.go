// Package repo implements the account repository on MongoDB. Uniqueness of
// email, username and uid is enforced by unique indexes, making the store
// the authoritative backstop for concurrent registrations that pass the
// in-workflow pre-checks.
package repo

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wssapp/account-service/internal/account"
	"github.com/wssapp/account-service/internal/account/entity"
)

const collectionName = "users"

// AccountRepo provides data access for the users collection.
type AccountRepo struct {
	coll *mongo.Collection
}

func NewAccountRepo(db *mongo.Database) *AccountRepo {
	return &AccountRepo{coll: db.Collection(collectionName)}
}

// EnsureIndexes creates the unique indexes (idempotent). Must run before the
// service starts accepting registrations.
func (r *AccountRepo) EnsureIndexes(ctx context.Context) error {
	models := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_email")},
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_username")},
		{Keys: bson.D{{Key: "uid", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_uid")},
		{Keys: bson.D{{Key: "suid", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_suid")},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, models); err != nil {
		return fmt.Errorf("create indexes: %w", err)
	}
	return nil
}

// Insert stores a new account record. A violated unique index is mapped to
// the matching duplicate sentinel so the workflow can surface the same
// reason as its pre-checks.
func (r *AccountRepo) Insert(ctx context.Context, a *entity.Account) error {
	_, err := r.coll.InsertOne(ctx, a)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			msg := err.Error()
			switch {
			case strings.Contains(msg, "uniq_username"):
				return account.ErrDuplicateUsername
			case strings.Contains(msg, "uniq_email"):
				return account.ErrDuplicateEmail
			}
			return fmt.Errorf("insert account: duplicate key: %w", err)
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

func (r *AccountRepo) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *AccountRepo) FindByUsername(ctx context.Context, username string) (*entity.Account, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *AccountRepo) FindBySecureID(ctx context.Context, secureID string) (*entity.Account, error) {
	return r.findOne(ctx, bson.M{"suid": secureID})
}

func (r *AccountRepo) findOne(ctx context.Context, filter bson.M) (*entity.Account, error) {
	var a entity.Account
	err := r.coll.FindOne(ctx, filter).Decode(&a)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, account.ErrNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	return &a, nil
}

// ListAll returns every account record.
func (r *AccountRepo) ListAll(ctx context.Context) ([]*entity.Account, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer cur.Close(ctx)

	var out []*entity.Account
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode accounts: %w", err)
	}
	return out, nil
}

// DeleteAll removes every account record and returns the number removed.
func (r *AccountRepo) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("delete accounts: %w", err)
	}
	return res.DeletedCount, nil
}
