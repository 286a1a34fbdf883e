package v1handler

import (
	"context"
	"fmt"
	"scanrunner/internal/api/specs/v1specs"
	"scanrunner/pkg/domain"
	"scanrunner/pkg/serrors"
	"time"
)

func optTime(t time.Time) v1specs.OptDateTime {
	var out v1specs.OptDateTime
	if !t.IsZero() {
		out.SetTo(t.UTC())
	}

	return out
}

// DomainScanToV1Specs converts a scan and, when given, its vulnerabilities.
func DomainScanToV1Specs(in *domain.Scan, vulns []domain.Vulnerability) *v1specs.Scan {
	out := &v1specs.Scan{
		ID:            int64(in.ID),
		TaskID:        int64(in.TaskID),
		Data:          in.Data,
		Status:        v1specs.ScanStatus(in.Status),
		ResultMessage: in.ResultMessage,
		StartedAt:     optTime(in.StartedAt),
		FinishedAt:    optTime(in.FinishedAt),
		CreatedAt:     in.CreatedAt.UTC(),
	}

	if vulns != nil {
		out.Vulnerabilities = make([]v1specs.Vulnerability, 0, len(vulns))
	}
	for _, v := range vulns {
		headers := make([]v1specs.RequestHeader, 0, len(v.Request.Headers))
		for _, hdr := range v.Request.Headers {
			headers = append(headers, v1specs.RequestHeader{Field: hdr.Field, Content: hdr.Content})
		}

		out.Vulnerabilities = append(out.Vulnerabilities, v1specs.Vulnerability{
			ID:          int64(v.ID),
			ReportID:    v.ReportID,
			Name:        v.Name,
			Severity:    v.Severity,
			Plugin:      v.Plugin,
			Method:      v.Method,
			Description: v.Description,
			Request: v1specs.CapturedRequest{
				ID:      v.Request.ID,
				Status:  v.Request.Status,
				Headers: headers,
			},
		})
	}

	return out
}

// GetScan returns a scan and its vulnerabilities.
func (h *Handler) GetScan(ctx context.Context, params v1specs.GetScanParams) (*v1specs.Scan, error) {
	scan, err := h.authorizeScan(ctx, domain.ScanID(params.ID))
	if err != nil {
		return nil, err
	}

	vulns, err := h.deps.Storage.ScanVulnerabilities(ctx, scan.ID)
	if err != nil {
		return nil, fmt.Errorf("could not get scan vulnerabilities: %w", err)
	}
	if vulns == nil {
		vulns = []domain.Vulnerability{}
	}

	return DomainScanToV1Specs(scan, vulns), nil
}

// CancelScan stops a queued or running scan.
func (h *Handler) CancelScan(ctx context.Context, params v1specs.CancelScanParams) (*v1specs.Scan, error) {
	scan, err := h.authorizeScan(ctx, domain.ScanID(params.ID))
	if err != nil {
		return nil, err
	}

	stopped, err := h.deps.Canceller.Cancel(ctx, scan.ID)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return DomainScanToV1Specs(stopped, nil), nil
}

// EnqueueScan queues a new scan of a task.
func (h *Handler) EnqueueScan(
	ctx context.Context,
	req *v1specs.EnqueueScanRequest,
	params v1specs.EnqueueScanParams) (*v1specs.Scan, error) {
	taskID := domain.ScanTaskID(params.ID)

	task, err := h.deps.Storage.ScanTaskByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("could not get scan task: %w", err)
	}
	if err := authorizeTask(ctx, task); err != nil {
		return nil, err
	}

	scan, err := h.deps.Enqueuer.Enqueue(ctx, taskID, req.Data.Or(""))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return DomainScanToV1Specs(scan, nil), nil
}

// authorizeScan loads the scan and checks the caller owns its task.
func (h *Handler) authorizeScan(ctx context.Context, id domain.ScanID) (*domain.Scan, error) {
	scan, err := h.deps.Storage.ScanByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get scan: %w", err)
	}
	if scan == nil {
		return nil, serrors.With(serrors.ErrNotFound, "scan %d not found", id)
	}

	task, err := h.deps.Storage.ScanTaskByID(ctx, scan.TaskID)
	if err != nil {
		return nil, fmt.Errorf("could not get scan task: %w", err)
	}
	if err := authorizeTask(ctx, task); err != nil {
		return nil, err
	}

	return scan, nil
}

func authorizeTask(ctx context.Context, task *domain.ScanTask) error {
	if task == nil {
		return serrors.With(serrors.ErrNotFound, "scan task not found")
	}

	uid, ok := UserID(ctx)
	if !ok {
		return serrors.KindOnly(serrors.ErrUnauthorized)
	}
	if task.UserID != uid {
		return serrors.With(serrors.ErrForbidden, "scan task %d belongs to another user", task.ID)
	}

	return nil
}
