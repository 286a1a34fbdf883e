package storage

import (
	"context"
	"scanrunner/pkg/domain"
)

// VulnerabilityStorage defines the operations on vulnerabilities.
type VulnerabilityStorage interface {
	// StoreVulnerabilities inserts findings and returns how many rows were
	// created. Findings already stored for the same (scan, report id) are skipped.
	StoreVulnerabilities(ctx context.Context, vulns ...domain.Vulnerability) (int, error)
	// ScanVulnerabilities returns all findings of a scan ordered by ID.
	ScanVulnerabilities(ctx context.Context, scanID domain.ScanID) ([]domain.Vulnerability, error)
}
