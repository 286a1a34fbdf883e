package queue_test

import (
	"context"
	"errors"
	"scanrunner/internal/queue"
	"scanrunner/pkg/domain"
	"scanrunner/pkg/serrors"
	"scanrunner/pkg/storage"
	mockstorage "scanrunner/pkg/storage/mock"
	"testing"

	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var freeTask = domain.ScanTask{ID: 3, UserID: 1, Target: "https://example.com", Status: domain.TaskStatusFree}

func newTestQueue(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, *queue.Queue) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)

	return ctrl, st, queue.New(st)
}

// helper to wire Storage.WithTx to execute callback with a MockAllStorage.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func storeWithID(id domain.ScanID) func(context.Context, ...domain.Scan) ([]domain.Scan, error) {
	return func(_ context.Context, scans ...domain.Scan) ([]domain.Scan, error) {
		ret := append([]domain.Scan(nil), scans...)
		ret[0].ID = id

		return ret, nil
	}
}

func TestQueue_Enqueue_JobAdded(t *testing.T) {
	t.Parallel()
	ctrl, st, q := newTestQueue(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ScanTaskByID(gomock.Any(), freeTask.ID).Return(&freeTask, nil)
		tx.EXPECT().StoreScans(gomock.Any(), domain.Scan{
			TaskID: freeTask.ID,
			Data:   "manual",
			Status: domain.ScanStatusInProcess,
		}).DoAndReturn(storeWithID(9))
		tx.EXPECT().AddJob(gomock.Any(), queue.RunScanArgs{ScanID: 9, TaskID: freeTask.ID}, gomock.Nil()).
			Return(true, nil)
	})

	scan, err := q.Enqueue(context.Background(), freeTask.ID, "manual")
	require.NoError(t, err)
	require.Equal(t, domain.ScanID(9), scan.ID)
	require.Equal(t, domain.ScanStatusInProcess, scan.Status)
}

func TestQueue_Enqueue_DuplicateJob(t *testing.T) {
	t.Parallel()
	ctrl, st, q := newTestQueue(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ScanTaskByID(gomock.Any(), freeTask.ID).Return(&freeTask, nil)
		tx.EXPECT().StoreScans(gomock.Any(), gomock.Any()).DoAndReturn(storeWithID(10))
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, nil)
	})

	_, err := q.Enqueue(context.Background(), freeTask.ID, "")
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestQueue_Enqueue_BusyTask(t *testing.T) {
	t.Parallel()
	ctrl, st, q := newTestQueue(t)

	busy := freeTask
	busy.Status = domain.TaskStatusInProcess
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ScanTaskByID(gomock.Any(), freeTask.ID).Return(&busy, nil)
	})

	_, err := q.Enqueue(context.Background(), freeTask.ID, "")
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestQueue_Enqueue_TaskNotFound(t *testing.T) {
	t.Parallel()
	ctrl, st, q := newTestQueue(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ScanTaskByID(gomock.Any(), freeTask.ID).Return(nil, nil)
	})

	_, err := q.Enqueue(context.Background(), freeTask.ID, "")
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestQueue_Enqueue_StorageErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")

	t.Run("store scans", func(t *testing.T) {
		t.Parallel()
		ctrl, st, q := newTestQueue(t)

		expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().ScanTaskByID(gomock.Any(), freeTask.ID).Return(&freeTask, nil)
			tx.EXPECT().StoreScans(gomock.Any(), gomock.Any()).Return(nil, boom)
		})

		_, err := q.Enqueue(context.Background(), freeTask.ID, "")
		require.ErrorIs(t, err, boom)
	})

	t.Run("add job", func(t *testing.T) {
		t.Parallel()
		ctrl, st, q := newTestQueue(t)

		expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().ScanTaskByID(gomock.Any(), freeTask.ID).Return(&freeTask, nil)
			tx.EXPECT().StoreScans(gomock.Any(), gomock.Any()).DoAndReturn(storeWithID(11))
			tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, boom)
		})

		_, err := q.Enqueue(context.Background(), freeTask.ID, "")
		require.ErrorIs(t, err, boom)
	})

	t.Run("begin tx", func(t *testing.T) {
		t.Parallel()
		_, st, q := newTestQueue(t)

		st.EXPECT().WithTx(gomock.Any(), gomock.Any()).Return(boom)

		_, err := q.Enqueue(context.Background(), freeTask.ID, "")
		require.ErrorIs(t, err, boom)
	})
}

func TestRunScanArgs_InsertOpts(t *testing.T) {
	t.Parallel()

	args := queue.RunScanArgs{ScanID: 1, TaskID: 2}
	opts := args.InsertOpts()

	require.Equal(t, "RunScan", args.Kind())
	require.Equal(t, 1, opts.MaxAttempts)
	require.True(t, opts.UniqueOpts.ByArgs)
	require.NotContains(t, opts.UniqueOpts.ByState, rivertype.JobStateCompleted)
}
