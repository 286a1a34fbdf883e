package storage

import (
	"context"
	"scanrunner/pkg/domain"
)

// ScanUpdates describes changes applied atomically to a single scan.
type ScanUpdates struct {
	// Status is the new status. An empty value leaves the status unchanged.
	Status domain.ScanStatus
	// KeepStatuses lists current statuses that Status must not overwrite. It
	// lets "done" lose against a concurrent "fail" and vice versa without a
	// read-modify-write cycle.
	KeepStatuses []domain.ScanStatus
	// AppendMessage is appended to the scan's result message. Existing text is never replaced.
	AppendMessage string
	// Started stamps started_at with the current time.
	Started bool
	// Finished stamps finished_at with the current time.
	Finished bool
}

// ScanStorage defines the operations on scans.
type ScanStorage interface {
	// StoreScans inserts one or more scans and returns the stored rows.
	StoreScans(ctx context.Context, scans ...domain.Scan) ([]domain.Scan, error)
	// ScanByID fetches a scan by its ID. Returns nil when not found.
	ScanByID(ctx context.Context, ID domain.ScanID) (*domain.Scan, error)
	// UpdateScan applies updates to a single scan and returns the updated row,
	// or nil when the scan does not exist.
	UpdateScan(ctx context.Context, ID domain.ScanID, updates ScanUpdates) (*domain.Scan, error)
}
