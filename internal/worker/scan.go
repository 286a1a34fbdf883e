package worker

import (
	"context"
	"errors"
	"fmt"
	"scanrunner/internal/queue"
	"scanrunner/pkg/domain"
	"scanrunner/pkg/logger"
	"scanrunner/pkg/serrors"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

//go:generate mockgen -package mockworker -source=scan.go -destination=mock/mockworker.go *

// Runner executes a queued scan to completion.
type Runner interface {
	Run(ctx context.Context, scanID domain.ScanID) error
}

// ScanWorker is a River worker running one scan per job. Scanner runs take
// far longer than River's default job timeout, so it disables the timeout
// and relies on the runner's own limit.
type ScanWorker struct {
	river.WorkerDefaults[queue.RunScanArgs]

	runner Runner
}

// NewScanWorker constructs a ScanWorker using the provided runner.
func NewScanWorker(runner Runner) *ScanWorker {
	return &ScanWorker{runner: runner}
}

// Timeout disables River's job timeout.
func (w *ScanWorker) Timeout(*river.Job[queue.RunScanArgs]) time.Duration { return -1 }

// Work runs the scan of the job. A scan that no longer exists or already
// finished cancels the job instead of failing it.
func (w *ScanWorker) Work(ctx context.Context, job *river.Job[queue.RunScanArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID))

	if err := w.runner.Run(ctx, job.Args.ScanID); err != nil {
		if errors.Is(err, serrors.ErrNotFound) || errors.Is(err, serrors.ErrConflict) {
			logger.Warn(ctx, "scan can not be run, cancelling job",
				zap.Int64("scanID", int64(job.Args.ScanID)), zap.Error(err))

			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error in running scan", zap.Int64("scanID", int64(job.Args.ScanID)), zap.Error(err))

		return fmt.Errorf("could not run scan: %w", err)
	}

	return nil
}
