package orchestrator

import (
	"context"
	"scanrunner/internal/profile"
	"scanrunner/pkg/domain"
)

//go:generate mockgen -package mockorchestrator -source=interface.go -destination=mock/mockorchestrator.go *

// Locator allocates the directory a run writes its report into.
type Locator interface {
	Allocate(ctx context.Context, scan domain.Scan) (string, error)
}

// ProfileResolver picks and materializes the scan profile of a task.
type ProfileResolver interface {
	Resolve(ctx context.Context, task domain.ScanTask, baseDir string, reportFile string) (profile.Resolution, error)
}

// Ingester stores the findings of a finished report.
type Ingester interface {
	Ingest(ctx context.Context, scan domain.Scan, path string) (int, error)
}

// Notifier tells the task owner a scan finished.
type Notifier interface {
	Notify(ctx context.Context, scan domain.Scan) error
}
