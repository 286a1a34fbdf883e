// Package queue turns a scan task into a queued scan and the job that runs it.
package queue

import (
	"context"
	"fmt"
	"scanrunner/pkg/domain"
	"scanrunner/pkg/logger"
	"scanrunner/pkg/serrors"
	"scanrunner/pkg/storage"

	"go.uber.org/zap"
)

// Queue enqueues scans.
type Queue struct {
	storage storage.Storage
}

// New creates a Queue backed by the provided storage.
func New(storage storage.Storage) *Queue {
	return &Queue{storage: storage}
}

// Enqueue stores a new in-process scan for the task and adds the job that
// runs it, both in one transaction. A task whose slot is taken, or which
// already has a queued or running job, returns ErrConflict and stores nothing.
func (q *Queue) Enqueue(ctx context.Context, taskID domain.ScanTaskID, data string) (*domain.Scan, error) {
	var scan *domain.Scan
	if err := q.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		task, err := tx.ScanTaskByID(ctx, taskID)
		if err != nil {
			return fmt.Errorf("could not get scan task: %w", err)
		}
		if task == nil {
			return serrors.With(serrors.ErrNotFound, "scan task %d not found", taskID)
		}
		if !task.IsFree() {
			return serrors.With(serrors.ErrConflict, "scan task %d is busy", taskID)
		}

		res, err := tx.StoreScans(ctx, domain.Scan{
			TaskID: taskID,
			Data:   data,
			Status: domain.ScanStatusInProcess,
		})
		if err != nil {
			return fmt.Errorf("could not store scan: %w", err)
		}
		scan = &res[0]

		jobAdded, err := tx.AddJob(ctx, RunScanArgs{ScanID: scan.ID, TaskID: taskID}, nil)
		if err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}
		// river unique jobs keep one unfinished job per task; returning an
		// error rolls the new scan back
		if !jobAdded {
			return serrors.With(serrors.ErrConflict, "scan task %d already has a queued scan", taskID)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not enqueue scan: %w", err)
	}

	logger.Info(ctx, "scan queued", zap.Int64("scanID", int64(scan.ID)), zap.Int64("taskID", int64(taskID)))

	return scan, nil
}
