package orchestrator_test

import (
	"context"
	"os/exec"
	"scanrunner/internal/orchestrator"
	"scanrunner/internal/process"
	"scanrunner/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		exitCode int
		err      error
		status   domain.ScanStatus
		want     orchestrator.State
	}{
		{name: "clean exit", exitCode: 0, status: domain.ScanStatusInProcess, want: orchestrator.StateSucceeded},
		{name: "clean exit after cancel", exitCode: 0, status: domain.ScanStatusFail, want: orchestrator.StateCancelled},
		{name: "abnormal exit", exitCode: 2, status: domain.ScanStatusInProcess, want: orchestrator.StateFailed},
		{name: "abnormal exit wins over cancel", exitCode: 1, status: domain.ScanStatusFail, want: orchestrator.StateFailed},
		{name: "killed by signal", exitCode: -9, status: domain.ScanStatusInProcess, want: orchestrator.StateFailed},
		{
			name:   "timed out with clean exit",
			err:    context.DeadlineExceeded,
			status: domain.ScanStatusInProcess,
			want:   orchestrator.StateFailed,
		},
		{
			name:   "output left open after clean exit",
			err:    exec.ErrWaitDelay,
			status: domain.ScanStatusFail,
			want:   orchestrator.StateFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, orchestrator.Classify(process.Result{ExitCode: tt.exitCode, Err: tt.err}, tt.status))
		})
	}
}

func TestState_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "created", orchestrator.StateCreated.String())
	require.Equal(t, "cancelled", orchestrator.StateCancelled.String())
	require.Equal(t, "finalized", orchestrator.StateFinalized.String())
	require.Equal(t, "unknown", orchestrator.State(99).String())
}
