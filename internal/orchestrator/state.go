package orchestrator

import (
	"scanrunner/internal/process"
	"scanrunner/pkg/domain"
)

// State is the lifecycle position of a single run.
type State int

const (
	StateCreated State = iota
	StateLaunching
	StateRunning
	StateSucceeded
	StateCancelled
	StateFailed
	StateFinalized
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateLaunching:
		return "launching"
	case StateRunning:
		return "running"
	case StateSucceeded:
		return "succeeded"
	case StateCancelled:
		return "cancelled"
	case StateFailed:
		return "failed"
	case StateFinalized:
		return "finalized"
	default:
		return "unknown"
	}
}

// classify maps the scanner result and the scan status observed after the
// process exited to the outcome of the run. An abnormal exit wins over a
// cancellation. A process that did not finish cleanly, e.g. on timeout, is
// abnormal even with a zero exit code.
func classify(result process.Result, current domain.ScanStatus) State {
	switch {
	case result.ExitCode != 0 || result.Err != nil:
		return StateFailed
	case current == domain.ScanStatusFail:
		return StateCancelled
	default:
		return StateSucceeded
	}
}
