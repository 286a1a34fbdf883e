package queue

import (
	"scanrunner/pkg/domain"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// RunScanArgs are the arguments of the job that runs one queued scan.
type RunScanArgs struct {
	ScanID domain.ScanID `json:"scanId"`
	// TaskID is unique across unfinished jobs, so a task never has two
	// scans queued or running at once.
	TaskID domain.ScanTaskID `json:"taskId" river:"unique"`
}

// Kind returns the River job kind used to register and dispatch the scan worker.
func (args RunScanArgs) Kind() string { return "RunScan" }

// InsertOpts makes a run a single attempt. A failed scan is never retried
// automatically; it is queued again as a new scan.
func (args RunScanArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
