package storage

import (
	"context"
	"scanrunner/pkg/domain"
)

// ProfileStorage defines read access to scan profiles.
type ProfileStorage interface {
	// TaskProfiles returns the profiles associated with a task, ordered by profile ID.
	TaskProfiles(ctx context.Context, taskID domain.ScanTaskID) ([]domain.ScanProfile, error)
	// DefaultProfile returns the user's default profile, falling back to the
	// global default (a default profile without owner). Returns nil when neither exists.
	DefaultProfile(ctx context.Context, userID domain.UserID) (*domain.ScanProfile, error)
}
