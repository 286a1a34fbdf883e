package v1handler

import (
	"context"
	"scanrunner/pkg/domain"
)

//go:generate mockgen -package mockv1handler -source=interface.go -destination=mock/mockv1handler.go *

// Canceller stops scans on behalf of their owner.
type Canceller interface {
	Cancel(ctx context.Context, scanID domain.ScanID) (*domain.Scan, error)
}

// Enqueuer queues new scans for a task.
type Enqueuer interface {
	Enqueue(ctx context.Context, taskID domain.ScanTaskID, data string) (*domain.Scan, error)
}
