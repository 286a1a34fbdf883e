package postgres

import (
	"context"
	"fmt"
	"scanrunner/pkg/domain"
	"scanrunner/pkg/storage"

	"github.com/doug-martin/goqu/v9"
)

const (
	scansTable = "scans"
)

func (p *PgSQL) StoreScans(ctx context.Context, scans ...domain.Scan) ([]domain.Scan, error) {
	if len(scans) == 0 {
		return nil, nil
	}

	pgScans := make([]PgScan, len(scans))
	for i := range scans {
		pgScans[i].FromDomain(scans[i])
	}

	var result []PgScan
	if err := p.Builder.Insert(scansTable).
		Rows(pgScans).
		Returning(&PgScan{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store scans into pg: %w", err)
	}

	return pgScansToDomain(result), nil
}

// ScanByID returns a scan by its ID.
func (p *PgSQL) ScanByID(ctx context.Context, id domain.ScanID) (*domain.Scan, error) {
	var row PgScan
	found, err := p.Builder.From(scansTable).
		Where(goqu.I("id").Eq(int64(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not get scan by id from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpdateScan applies updates in a single statement. The status guard is
// evaluated by the database, so a concurrent cancellation is never lost.
func (p *PgSQL) UpdateScan(ctx context.Context, id domain.ScanID, updates storage.ScanUpdates) (*domain.Scan, error) {
	rec := goqu.Record{}
	if updates.Status != "" {
		if len(updates.KeepStatuses) > 0 {
			keep := make([]string, len(updates.KeepStatuses))
			for i, s := range updates.KeepStatuses {
				keep[i] = string(s)
			}

			rec["status"] = goqu.Case().
				When(goqu.I("status").In(keep), goqu.I("status")).
				Else(string(updates.Status))
		} else {
			rec["status"] = string(updates.Status)
		}
	}
	if updates.AppendMessage != "" {
		// plain concatenation, callers carry their own separators
		rec["result_message"] = goqu.L("COALESCE(result_message, '') || ?", updates.AppendMessage)
	}
	if updates.Started {
		rec["started_at"] = goqu.L("CURRENT_TIMESTAMP")
	}
	if updates.Finished {
		rec["finished_at"] = goqu.L("CURRENT_TIMESTAMP")
	}
	if len(rec) == 0 {
		return p.ScanByID(ctx, id)
	}

	var row PgScan
	found, err := p.Builder.Update(scansTable).
		Set(rec).
		Where(goqu.I("id").Eq(int64(id))).
		Returning(&PgScan{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update scan in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
