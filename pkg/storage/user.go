package storage

import (
	"context"
	"scanrunner/pkg/domain"
)

// UserStorage defines read access to task owners.
type UserStorage interface {
	// UserByID fetches a user by its ID. Returns nil when not found.
	UserByID(ctx context.Context, ID domain.UserID) (*domain.User, error)
}
