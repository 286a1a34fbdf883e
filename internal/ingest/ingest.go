// Package ingest turns scanner reports into stored vulnerabilities.
package ingest

import (
	"context"
	"fmt"
	"os"
	"scanrunner/pkg/domain"
	"scanrunner/pkg/logger"
	"scanrunner/pkg/serrors"
	"scanrunner/pkg/storage"

	"go.uber.org/zap"
)

// Ingester stores the findings of a report against its scan.
type Ingester struct {
	storage storage.Storage
}

// New creates an Ingester.
func New(storage storage.Storage) *Ingester {
	return &Ingester{storage: storage}
}

// Ingest parses the report at path and stores its findings for scan. It
// returns the number of stored findings; a report without findings is a
// success. An absent, unreadable or malformed report returns ErrReportParse
// and stores nothing.
func (i *Ingester) Ingest(ctx context.Context, scan domain.Scan, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, serrors.Wrap(serrors.ErrReportParse, err, "could not open report")
	}
	defer f.Close()

	report, err := ParseReport(f)
	if err != nil {
		return 0, err
	}

	for idx := range report.Vulnerabilities {
		report.Vulnerabilities[idx].ScanID = scan.ID
	}

	stored := 0
	if err := i.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		n, err := tx.StoreVulnerabilities(ctx, report.Vulnerabilities...)
		if err != nil {
			return fmt.Errorf("could not store vulnerabilities: %w", err)
		}
		stored = n

		return nil
	}); err != nil {
		return 0, fmt.Errorf("could not ingest report: %w", err)
	}

	logger.Info(ctx, "report ingested",
		zap.String("report", path),
		zap.Int("found", len(report.Vulnerabilities)),
		zap.Int("stored", stored))

	return stored, nil
}
