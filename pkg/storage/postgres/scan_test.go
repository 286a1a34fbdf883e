package postgres_test

import (
	"context"
	"scanrunner/pkg/domain"
	"scanrunner/pkg/storage"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_StoreScans(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	taskID := seedTask(t, pgSQL, seedUser(t, pgSQL, "owner@example.com", 0), "https://example.com")

	t.Run("store single scan defaults to in process", func(t *testing.T) {
		t.Parallel()

		res, err := pgSQL.StoreScans(ctx, domain.Scan{TaskID: taskID, Data: "manual"})
		require.NoError(t, err)
		require.Len(t, res, 1)
		require.NotZero(t, res[0].ID)
		require.Equal(t, domain.ScanStatusInProcess, res[0].Status)
		require.Equal(t, "manual", res[0].Data)
		require.True(t, res[0].StartedAt.IsZero())
		require.False(t, res[0].CreatedAt.IsZero())
	})

	t.Run("store multiple scans", func(t *testing.T) {
		t.Parallel()

		res, err := pgSQL.StoreScans(ctx, domain.Scan{TaskID: taskID}, domain.Scan{TaskID: taskID})
		require.NoError(t, err)
		require.Len(t, res, 2)
		require.NotEqual(t, res[0].ID, res[1].ID)
	})

	t.Run("store empty scans", func(t *testing.T) {
		t.Parallel()

		res, err := pgSQL.StoreScans(ctx)
		require.NoError(t, err)
		require.Empty(t, res)
	})
}

func TestPgSQL_ScanByID(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	taskID := seedTask(t, pgSQL, seedUser(t, pgSQL, "owner@example.com", 0), "https://example.com")

	stored, err := pgSQL.StoreScans(ctx, domain.Scan{TaskID: taskID})
	require.NoError(t, err)

	scan, err := pgSQL.ScanByID(ctx, stored[0].ID)
	require.NoError(t, err)
	require.NotNil(t, scan)
	require.Equal(t, taskID, scan.TaskID)

	missing, err := pgSQL.ScanByID(ctx, stored[0].ID+1000)
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_UpdateScan(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	taskID := seedTask(t, pgSQL, seedUser(t, pgSQL, "owner@example.com", 0), "https://example.com")

	newScan := func(t *testing.T) domain.ScanID {
		t.Helper()

		stored, err := pgSQL.StoreScans(ctx, domain.Scan{TaskID: taskID})
		require.NoError(t, err)

		return stored[0].ID
	}

	t.Run("stamps start and finish", func(t *testing.T) {
		t.Parallel()

		id := newScan(t)
		scan, err := pgSQL.UpdateScan(ctx, id, storage.ScanUpdates{Started: true})
		require.NoError(t, err)
		require.False(t, scan.StartedAt.IsZero())
		require.True(t, scan.FinishedAt.IsZero())

		scan, err = pgSQL.UpdateScan(ctx, id, storage.ScanUpdates{Status: domain.ScanStatusDone, Finished: true})
		require.NoError(t, err)
		require.Equal(t, domain.ScanStatusDone, scan.Status)
		require.False(t, scan.FinishedAt.IsZero())
	})

	t.Run("appends messages", func(t *testing.T) {
		t.Parallel()

		id := newScan(t)
		_, err := pgSQL.UpdateScan(ctx, id, storage.ScanUpdates{AppendMessage: "first"})
		require.NoError(t, err)
		scan, err := pgSQL.UpdateScan(ctx, id, storage.ScanUpdates{AppendMessage: "second"})
		require.NoError(t, err)
		require.Equal(t, "firstsecond", scan.ResultMessage)

		// an empty message leaves the text untouched
		scan, err = pgSQL.UpdateScan(ctx, id, storage.ScanUpdates{Status: domain.ScanStatusDone})
		require.NoError(t, err)
		require.Equal(t, "firstsecond", scan.ResultMessage)
	})

	t.Run("done never overwrites fail", func(t *testing.T) {
		t.Parallel()

		id := newScan(t)
		_, err := pgSQL.UpdateScan(ctx, id, storage.ScanUpdates{Status: domain.ScanStatusFail})
		require.NoError(t, err)

		scan, err := pgSQL.UpdateScan(ctx, id, storage.ScanUpdates{
			Status:        domain.ScanStatusDone,
			KeepStatuses:  []domain.ScanStatus{domain.ScanStatusFail},
			AppendMessage: "finished",
		})
		require.NoError(t, err)
		require.Equal(t, domain.ScanStatusFail, scan.Status)
		require.Equal(t, "finished", scan.ResultMessage)
	})

	t.Run("guard allows other statuses", func(t *testing.T) {
		t.Parallel()

		id := newScan(t)
		scan, err := pgSQL.UpdateScan(ctx, id, storage.ScanUpdates{
			Status:       domain.ScanStatusFail,
			KeepStatuses: []domain.ScanStatus{domain.ScanStatusDone},
		})
		require.NoError(t, err)
		require.Equal(t, domain.ScanStatusFail, scan.Status)
	})

	t.Run("empty updates return current row", func(t *testing.T) {
		t.Parallel()

		id := newScan(t)
		scan, err := pgSQL.UpdateScan(ctx, id, storage.ScanUpdates{})
		require.NoError(t, err)
		require.Equal(t, id, scan.ID)
	})

	t.Run("missing scan", func(t *testing.T) {
		t.Parallel()

		scan, err := pgSQL.UpdateScan(ctx, domain.ScanID(999999), storage.ScanUpdates{Status: domain.ScanStatusFail})
		require.NoError(t, err)
		require.Nil(t, scan)
	})
}
