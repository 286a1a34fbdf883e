package domain

import "time"

// VulnerabilityID uniquely identifies a stored finding.
type VulnerabilityID int64

// Header is a single HTTP header captured by the scanner.
type Header struct {
	Field   string `json:"field"`
	Content string `json:"content"`
}

// HTTPRequest is the request snapshot attached to a finding.
type HTTPRequest struct {
	ID string `json:"id"`
	// Status is the HTTP status line.
	Status  string   `json:"status"`
	Headers []Header `json:"headers"`
}

// Vulnerability is one finding extracted from a scanner report. It is unique
// per (ScanID, ReportID).
type Vulnerability struct {
	ID     VulnerabilityID `json:"id"`
	ScanID ScanID          `json:"scanId"`
	// ReportID is the identifier the scanner assigned inside its report.
	ReportID    string      `json:"reportId"`
	Method      string      `json:"method"`
	Name        string      `json:"name"`
	Plugin      string      `json:"plugin"`
	Severity    string      `json:"severity"`
	Description string      `json:"description"`
	Request     HTTPRequest `json:"request"`
	CreatedAt   time.Time   `json:"createdAt"`
}
