package account

import (
	"context"
	"errors"

	"github.com/wssapp/account-service/internal/account/entity"
)

// Repository-level sentinel errors. Callers match with errors.Is.
var (
	ErrNotFound          = errors.New("account not found")
	ErrDuplicateEmail    = errors.New("email already in use")
	ErrDuplicateUsername = errors.New("username already in use")
)

// Repository provides data access for account records. Find methods return
// ErrNotFound when no record matches; Insert returns one of the duplicate
// sentinels when a store-side uniqueness constraint is violated.
type Repository interface {
	Insert(ctx context.Context, a *entity.Account) error
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)
	FindByUsername(ctx context.Context, username string) (*entity.Account, error)
	FindBySecureID(ctx context.Context, secureID string) (*entity.Account, error)
	ListAll(ctx context.Context) ([]*entity.Account, error)
	DeleteAll(ctx context.Context) (int64, error)
}
