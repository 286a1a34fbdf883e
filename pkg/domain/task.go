package domain

import "time"

// ScanTaskID uniquely identifies a scan task.
type ScanTaskID int64

// TaskStatus is the slot status of a scan task. Values other than the ones
// declared here are treated as busy.
type TaskStatus string

const (
	// TaskStatusFree means no scan currently runs for the task.
	TaskStatusFree TaskStatus = "free"
	// TaskStatusInProcess means a scan holds the task slot.
	TaskStatusInProcess TaskStatus = "in_process"
)

// ScanTask is a unit of scheduled work: a target scanned with one or more profiles.
type ScanTask struct {
	ID     ScanTaskID `json:"id"`
	UserID UserID     `json:"userId"`
	Name   string     `json:"name"`
	// Target is the scan subject, usually a URL.
	Target string     `json:"target"`
	Status TaskStatus `json:"status"`
	// Cron is the optional recurrence expression. It is owned by the scheduler.
	Cron        string    `json:"cron,omitempty"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// IsFree reports whether the task slot is free.
func (t ScanTask) IsFree() bool { return t.Status == TaskStatusFree }
