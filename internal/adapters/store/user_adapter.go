package store

import (
	"context"
	"strings"

	"github.com/chargepilot/chargepilot/backend/internal/domain/entities"
	"github.com/chargepilot/chargepilot/backend/internal/domain/repositories"
	"github.com/chargepilot/chargepilot/backend/internal/infrastructure/clients/jsonfile"
	apperrors "github.com/chargepilot/chargepilot/backend/pkg/errors"
)

// UserAdapter implements repositories.UserRepository on the flat-file store.
type UserAdapter struct {
	client *jsonfile.Client
}

// NewUserAdapter creates a new user adapter.
func NewUserAdapter(client *jsonfile.Client) repositories.UserRepository {
	return &UserAdapter{client: client}
}

// Create appends a new user. Emails are unique, case-insensitively.
func (a *UserAdapter) Create(ctx context.Context, user *entities.User) error {
	return a.client.Update(func(db *jsonfile.Database) error {
		for _, u := range db.Users {
			if strings.EqualFold(u.Email, user.Email) {
				return apperrors.NewConflictError("email already registered")
			}
		}
		clone := *user
		db.Users = append(db.Users, &clone)
		return nil
	})
}

// GetByID returns the user with the given id.
func (a *UserAdapter) GetByID(ctx context.Context, id string) (*entities.User, error) {
	var found *entities.User
	err := a.client.View(func(db *jsonfile.Database) error {
		for _, u := range db.Users {
			if u.ID == id {
				clone := *u
				found = &clone
				return nil
			}
		}
		return apperrors.NewNotFoundError("user not found")
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// GetByEmail returns the user with the given email, case-insensitively.
func (a *UserAdapter) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var found *entities.User
	err := a.client.View(func(db *jsonfile.Database) error {
		for _, u := range db.Users {
			if strings.EqualFold(u.Email, email) {
				clone := *u
				found = &clone
				return nil
			}
		}
		return apperrors.NewNotFoundError("user not found")
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// Update replaces the stored user record.
func (a *UserAdapter) Update(ctx context.Context, user *entities.User) error {
	return a.client.Update(func(db *jsonfile.Database) error {
		for i, u := range db.Users {
			if u.ID == user.ID {
				clone := *user
				db.Users[i] = &clone
				return nil
			}
		}
		return apperrors.NewNotFoundError("user not found")
	})
}

// Count returns the total number of users.
func (a *UserAdapter) Count(ctx context.Context) (int, error) {
	var n int
	err := a.client.View(func(db *jsonfile.Database) error {
		n = len(db.Users)
		return nil
	})
	return n, err
}
