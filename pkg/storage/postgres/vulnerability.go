package postgres

import (
	"context"
	"fmt"
	"scanrunner/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	vulnerabilitiesTable = "vulnerabilities"
)

// StoreVulnerabilities inserts findings, skipping those already stored for the
// same scan and report id, and returns the number of inserted rows.
func (p *PgSQL) StoreVulnerabilities(ctx context.Context, vulns ...domain.Vulnerability) (int, error) {
	if len(vulns) == 0 {
		return 0, nil
	}

	rows, err := domainVulnerabilitiesToPg(vulns)
	if err != nil {
		return 0, err
	}

	res, err := p.Builder.Insert(vulnerabilitiesTable).
		Rows(rows).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not store vulnerabilities into pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not count stored vulnerabilities: %w", err)
	}

	return int(affected), nil
}

// ScanVulnerabilities returns the findings of a scan ordered by ID.
func (p *PgSQL) ScanVulnerabilities(ctx context.Context, scanID domain.ScanID) ([]domain.Vulnerability, error) {
	var rows []PgVulnerability
	if err := p.Builder.From(vulnerabilitiesTable).
		Where(goqu.I("scan_id").Eq(int64(scanID))).
		Order(goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch scan vulnerabilities from pg: %w", err)
	}

	return pgVulnerabilitiesToDomain(rows)
}
