package postgres

import (
	"context"
	"fmt"
	"scanrunner/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	tasksTable = "scan_tasks"
)

// ScanTaskByID returns a scan task by its ID.
func (p *PgSQL) ScanTaskByID(ctx context.Context, id domain.ScanTaskID) (*domain.ScanTask, error) {
	var row PgTask
	found, err := p.Builder.From(tasksTable).
		Where(goqu.I("id").Eq(int64(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not get scan task by id from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// SetTaskStatus sets the task slot status. Updating a missing task is a no-op.
func (p *PgSQL) SetTaskStatus(ctx context.Context, id domain.ScanTaskID, status domain.TaskStatus) error {
	_, err := p.Builder.Update(tasksTable).
		Set(goqu.Record{
			"status":       string(status),
			"last_updated": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(int64(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not set scan task status in pg: %w", err)
	}

	return nil
}

// ClaimTask sets a free task to in_process. Concurrent claims of one task
// are serialized by the row lock of the update, so exactly one succeeds.
func (p *PgSQL) ClaimTask(ctx context.Context, id domain.ScanTaskID) (bool, error) {
	res, err := p.Builder.Update(tasksTable).
		Set(goqu.Record{
			"status":       string(domain.TaskStatusInProcess),
			"last_updated": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("id").Eq(int64(id)),
			goqu.I("status").Eq(string(domain.TaskStatusFree)),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not claim scan task in pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read claimed scan task count: %w", err)
	}

	return affected == 1, nil
}
