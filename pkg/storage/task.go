package storage

import (
	"context"
	"scanrunner/pkg/domain"
)

// TaskStorage defines the operations on scan tasks.
type TaskStorage interface {
	// ScanTaskByID fetches a scan task by its ID. Returns nil when not found.
	ScanTaskByID(ctx context.Context, ID domain.ScanTaskID) (*domain.ScanTask, error)
	// ClaimTask moves a free task to in_process in one conditional update.
	// It reports false when the task is missing or another run holds it.
	ClaimTask(ctx context.Context, ID domain.ScanTaskID) (bool, error)
	// SetTaskStatus sets the slot status of a task and refreshes last_updated.
	// Setting the status a task already has is not an error.
	SetTaskStatus(ctx context.Context, ID domain.ScanTaskID, status domain.TaskStatus) error
}
