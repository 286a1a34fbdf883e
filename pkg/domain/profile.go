package domain

// ProfileID uniquely identifies a scan profile.
type ProfileID int64

// ScanProfile is a named scanner configuration. Body is a template rendered
// into the profile file handed to the scanner.
type ScanProfile struct {
	ID     ProfileID `json:"id"`
	UserID UserID    `json:"userId"`
	Name   string    `json:"name"`
	Body   string    `json:"body"`
	// IsDefault marks the profile used when a task has no associated profile.
	IsDefault bool `json:"isDefault"`
}

// ProfileTask associates a profile with a scan task.
type ProfileTask struct {
	TaskID    ScanTaskID `json:"taskId"`
	ProfileID ProfileID  `json:"profileId"`
}
