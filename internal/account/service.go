// Package account implements the account workflows: registration,
// authentication and the username policy behind them.
package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/wssapp/account-service/internal/account/entity"
	"github.com/wssapp/account-service/pkg/utilities"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrLoginFieldsMissing = errors.New("email and password required")
)

// MissingFieldError reports the first registration field found empty.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return "missing field: " + e.Field
}

// UsernameRejectedError carries the policy reason a username was refused.
type UsernameRejectedError struct {
	Reason UsernameReason
}

func (e *UsernameRejectedError) Error() string {
	return "username rejected: " + string(e.Reason)
}

// Service orchestrates the account lifecycle flows.
type Service struct {
	repo      Repository
	hasher    PasswordHasher
	validator *UsernameValidator
	logger    *zap.SugaredLogger
}

func NewService(repo Repository, hasher PasswordHasher, validator *UsernameValidator, logger *zap.SugaredLogger) *Service {
	if hasher == nil {
		hasher = PBKDF2Hasher{}
	}
	return &Service{repo: repo, hasher: hasher, validator: validator, logger: logger}
}

func (s *Service) usernameExists(ctx context.Context, username string) (bool, error) {
	_, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Register runs the full registration workflow and returns the created
// record. Validation failures come back as MissingFieldError,
// UsernameRejectedError or ErrDuplicateEmail; anything else is a store or
// crypto failure the caller should treat as internal.
func (s *Service) Register(ctx context.Context, email, username, displayName, password string) (*entity.Account, error) {
	// First missing field wins, checked in the original submission order.
	for _, f := range []struct{ name, value string }{
		{"displayname", displayName},
		{"username", username},
		{"password", password},
		{"email", email},
	} {
		if f.value == "" {
			return nil, &MissingFieldError{Field: f.name}
		}
	}

	reason, err := s.validator.Validate(ctx, username, true, s.usernameExists)
	if err != nil {
		return nil, fmt.Errorf("username lookup: %w", err)
	}
	if reason != UsernameOK {
		return nil, &UsernameRejectedError{Reason: reason}
	}

	// Fast-path duplicate check; the unique index is the real guarantee.
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("email lookup: %w", err)
	}

	secureID, err := utilities.NewSecureID()
	if err != nil {
		return nil, fmt.Errorf("generate secure id: %w", err)
	}
	salt, err := s.hasher.GenerateSalt()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	acc := &entity.Account{
		PublicID:     utilities.NewPublicID(),
		SecureID:     secureID,
		Email:        email,
		Username:     username,
		DisplayName:  displayName,
		PasswordHash: s.hasher.Derive(password, salt),
		Salt:         salt,
		JoinedAt:     now,
		Joined:       utilities.PrettyDate(now),
		Role:         entity.RoleUser,
	}

	if err := s.repo.Insert(ctx, acc); err != nil {
		// A concurrent registration may win the race between the pre-checks
		// and the insert; surface the index violation as the usual reason.
		if errors.Is(err, ErrDuplicateUsername) {
			return nil, &UsernameRejectedError{Reason: UsernameOccupied}
		}
		if errors.Is(err, ErrDuplicateEmail) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	s.logger.Infow("account created", "username", username)
	return acc, nil
}

// Authenticate verifies an email/password pair and returns the public id as
// the identity claim. Unknown email and wrong password are indistinguishable
// to the caller.
func (s *Service) Authenticate(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", ErrLoginFieldsMissing
	}

	acc, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("email lookup: %w", err)
	}

	if !s.hasher.Verify(password, acc.Salt, acc.PasswordHash) {
		return "", ErrInvalidCredentials
	}
	return acc.PublicID, nil
}

// GetBySecureID returns the account keyed by its public-safe identifier.
func (s *Service) GetBySecureID(ctx context.Context, secureID string) (*entity.Account, error) {
	return s.repo.FindBySecureID(ctx, secureID)
}

// ListAll returns every account record.
func (s *Service) ListAll(ctx context.Context) ([]*entity.Account, error) {
	return s.repo.ListAll(ctx)
}

// DeleteAll removes every account record and returns the number removed.
func (s *Service) DeleteAll(ctx context.Context) (int64, error) {
	return s.repo.DeleteAll(ctx)
}
