package worker_test

import (
	"context"
	"errors"
	"scanrunner/internal/queue"
	"scanrunner/internal/worker"
	mockworker "scanrunner/internal/worker/mock"
	"scanrunner/pkg/domain"
	"scanrunner/pkg/logger"
	"scanrunner/pkg/serrors"
	"testing"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func makeJob(id int64, args queue.RunScanArgs) *river.Job[queue.RunScanArgs] {
	return &river.Job[queue.RunScanArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   args,
	}
}

func TestScanWorker_Work_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mockworker.NewMockRunner(ctrl)
	w := worker.NewScanWorker(runner)

	runner.EXPECT().Run(gomock.Any(), domain.ScanID(7)).Return(nil)

	require.NoError(t, w.Work(context.Background(), makeJob(1, queue.RunScanArgs{ScanID: 7, TaskID: 3})))
}

func TestScanWorker_Work_CancelsJob(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "scan not found", err: serrors.With(serrors.ErrNotFound, "scan 7 not found")},
		{name: "scan already finished", err: serrors.With(serrors.ErrConflict, "scan 7 already finished")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			runner := mockworker.NewMockRunner(ctrl)
			w := worker.NewScanWorker(runner)

			runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(tt.err)

			err := w.Work(context.Background(), makeJob(2, queue.RunScanArgs{ScanID: 7}))
			require.Error(t, err)
			var cancelErr *river.JobCancelError
			require.ErrorAs(t, err, &cancelErr)
		})
	}
}

func TestScanWorker_Work_GenericErrorWrapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mockworker.NewMockRunner(ctrl)
	w := worker.NewScanWorker(runner)

	runErr := serrors.With(serrors.ErrProfileNotFound, "no profile")
	runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(runErr)

	err := w.Work(context.Background(), makeJob(3, queue.RunScanArgs{ScanID: 8}))
	require.ErrorIs(t, err, runErr)
	var cancelErr *river.JobCancelError
	require.NotErrorAs(t, err, &cancelErr, "did not expect JobCancelError")
	require.False(t, errors.Is(err, serrors.ErrNotFound))
}

func TestScanWorker_Timeout(t *testing.T) {
	w := worker.NewScanWorker(nil)
	require.Negative(t, w.Timeout(makeJob(4, queue.RunScanArgs{})))
}
