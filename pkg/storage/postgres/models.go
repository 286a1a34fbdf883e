package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"scanrunner/pkg/domain"
	"time"
)

type PgUser struct {
	ID           int64  `db:"id"`
	Email        string `db:"email"`
	Notification int    `db:"notification"`
}

func (p *PgUser) ToDomain() *domain.User {
	return &domain.User{
		ID:           domain.UserID(p.ID),
		Email:        p.Email,
		Notification: p.Notification,
	}
}

type PgTask struct {
	ID          int64          `db:"id"`
	UserID      int64          `db:"user_id"`
	Name        string         `db:"name"`
	Target      string         `db:"target"`
	Status      string         `db:"status"`
	Cron        sql.NullString `db:"cron"`
	LastUpdated time.Time      `db:"last_updated"`
}

func (p *PgTask) ToDomain() *domain.ScanTask {
	return &domain.ScanTask{
		ID:          domain.ScanTaskID(p.ID),
		UserID:      domain.UserID(p.UserID),
		Name:        p.Name,
		Target:      p.Target,
		Status:      domain.TaskStatus(p.Status),
		Cron:        p.Cron.String,
		LastUpdated: p.LastUpdated,
	}
}

type PgScan struct {
	ID     int64 `db:"id"      goqu:"skipinsert"`
	TaskID int64 `db:"task_id"`

	Data          string `db:"data"`
	Status        string `db:"status"`
	ResultMessage string `db:"result_message"`

	StartedAt  sql.NullTime `db:"started_at"`
	FinishedAt sql.NullTime `db:"finished_at"`
	CreatedAt  time.Time    `db:"created_at" goqu:"skipinsert"`
}

func (p *PgScan) ToDomain() *domain.Scan {
	return &domain.Scan{
		ID:            domain.ScanID(p.ID),
		TaskID:        domain.ScanTaskID(p.TaskID),
		Data:          p.Data,
		Status:        domain.ScanStatus(p.Status),
		ResultMessage: p.ResultMessage,
		StartedAt:     p.StartedAt.Time,
		FinishedAt:    p.FinishedAt.Time,
		CreatedAt:     p.CreatedAt,
	}
}

func (p *PgScan) FromDomain(scan domain.Scan) {
	status := scan.Status
	if status == "" {
		status = domain.ScanStatusInProcess
	}

	*p = PgScan{
		TaskID:        int64(scan.TaskID),
		Data:          scan.Data,
		Status:        string(status),
		ResultMessage: scan.ResultMessage,
		StartedAt: sql.NullTime{
			Time:  scan.StartedAt,
			Valid: !scan.StartedAt.IsZero(),
		},
		FinishedAt: sql.NullTime{
			Time:  scan.FinishedAt,
			Valid: !scan.FinishedAt.IsZero(),
		},
	}
}

type PgProfile struct {
	ID        int64         `db:"id"`
	UserID    sql.NullInt64 `db:"user_id"`
	Name      string        `db:"name"`
	Body      string        `db:"body"`
	IsDefault bool          `db:"is_default"`
}

func (p *PgProfile) ToDomain() domain.ScanProfile {
	return domain.ScanProfile{
		ID:        domain.ProfileID(p.ID),
		UserID:    domain.UserID(p.UserID.Int64),
		Name:      p.Name,
		Body:      p.Body,
		IsDefault: p.IsDefault,
	}
}

type PgVulnerability struct {
	ID       int64  `db:"id"        goqu:"skipinsert"`
	ScanID   int64  `db:"scan_id"`
	ReportID string `db:"report_id"`

	Method      string          `db:"method"`
	Name        string          `db:"name"`
	Plugin      string          `db:"plugin"`
	Severity    string          `db:"severity"`
	Description string          `db:"description"`
	Request     json.RawMessage `db:"request"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgVulnerability) ToDomain() (domain.Vulnerability, error) {
	var request domain.HTTPRequest
	if len(p.Request) > 0 {
		if err := json.Unmarshal(p.Request, &request); err != nil {
			return domain.Vulnerability{}, fmt.Errorf("could not unmarshal vulnerability request: %w", err)
		}
	}

	return domain.Vulnerability{
		ID:          domain.VulnerabilityID(p.ID),
		ScanID:      domain.ScanID(p.ScanID),
		ReportID:    p.ReportID,
		Method:      p.Method,
		Name:        p.Name,
		Plugin:      p.Plugin,
		Severity:    p.Severity,
		Description: p.Description,
		Request:     request,
		CreatedAt:   p.CreatedAt,
	}, nil
}

func (p *PgVulnerability) FromDomain(vuln domain.Vulnerability) error {
	request, err := json.Marshal(vuln.Request)
	if err != nil {
		return fmt.Errorf("could not marshal vulnerability request: %w", err)
	}

	*p = PgVulnerability{
		ScanID:      int64(vuln.ScanID),
		ReportID:    vuln.ReportID,
		Method:      vuln.Method,
		Name:        vuln.Name,
		Plugin:      vuln.Plugin,
		Severity:    vuln.Severity,
		Description: vuln.Description,
		Request:     request,
	}

	return nil
}

func pgScansToDomain(scans []PgScan) []domain.Scan {
	out := make([]domain.Scan, 0, len(scans))
	for _, scan := range scans {
		out = append(out, *scan.ToDomain())
	}

	return out
}

func domainVulnerabilitiesToPg(vulns []domain.Vulnerability) ([]PgVulnerability, error) {
	out := make([]PgVulnerability, len(vulns))
	for i := range out {
		if err := out[i].FromDomain(vulns[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func pgVulnerabilitiesToDomain(vulns []PgVulnerability) ([]domain.Vulnerability, error) {
	out := make([]domain.Vulnerability, 0, len(vulns))
	for _, vuln := range vulns {
		d, err := vuln.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, d)
	}

	return out, nil
}
