package domain

import "time"

// ScanID uniquely identifies one execution attempt of a scan task.
type ScanID int64

// ScanStatus represents the lifecycle state of a scan.
type ScanStatus string

const (
	// ScanStatusInProcess indicates the scan is queued or its scanner is running.
	ScanStatusInProcess ScanStatus = "in_process"
	// ScanStatusDone indicates the scanner finished and its report was ingested.
	ScanStatusDone ScanStatus = "done"
	// ScanStatusFail indicates the scan failed or was stopped by a user.
	ScanStatusFail ScanStatus = "fail"
)

// IsTerminal reports whether s is done or fail.
func (s ScanStatus) IsTerminal() bool {
	return s == ScanStatusDone || s == ScanStatusFail
}

// Scan is one execution attempt of a ScanTask.
type Scan struct {
	ID     ScanID     `json:"id"`
	TaskID ScanTaskID `json:"taskId"`
	// Data is an opaque payload supplied by whoever queued the scan.
	Data   string     `json:"data"`
	Status ScanStatus `json:"status"`
	// ResultMessage accumulates diagnostics. It is only ever appended to.
	ResultMessage string `json:"resultMessage"`

	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
	CreatedAt  time.Time `json:"createdAt"`
}
