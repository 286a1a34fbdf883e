package report_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"scanrunner/internal/report"
	"scanrunner/pkg/domain"
	"scanrunner/pkg/serrors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLocator_Allocate(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	locator := report.NewLocator(base)
	locator.Now = func() time.Time { return time.Date(2024, 4, 13, 12, 16, 24, 0, time.UTC) }

	dir, err := locator.Allocate(context.Background(), domain.Scan{ID: 9, TaskID: 3})
	require.NoError(t, err)
	require.Equal(t, base, filepath.Dir(dir))
	require.True(t, strings.HasPrefix(filepath.Base(dir), "3-9-20240413T121624Z-"))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())

	// only the probe was written and it is gone
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "report.xml"), []byte("<w3afrun/>"), 0o600))
}

func TestLocator_AllocateUniqueUnderConcurrency(t *testing.T) {
	t.Parallel()

	locator := report.NewLocator(t.TempDir())
	fixed := time.Now()
	locator.Now = func() time.Time { return fixed }

	const runs = 20
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		dirs = map[string]struct{}{}
		errs []error
	)
	for range runs {
		wg.Add(1)
		go func() {
			defer wg.Done()

			dir, err := locator.Allocate(context.Background(), domain.Scan{ID: 1, TaskID: 1})

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)

				return
			}
			dirs[dir] = struct{}{}
		}()
	}
	wg.Wait()

	require.Empty(t, errs)
	require.Len(t, dirs, runs)
}

func TestLocator_AllocateFilesystemError(t *testing.T) {
	t.Parallel()

	// a regular file cannot hold directories
	base := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(base, nil, 0o600))

	_, err := report.NewLocator(base).Allocate(context.Background(), domain.Scan{ID: 1, TaskID: 1})
	require.ErrorIs(t, err, serrors.ErrFilesystem)
}

func TestLocator_AllocateReadOnlyDir(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced")
	}

	base := t.TempDir()
	require.NoError(t, os.Chmod(base, 0o500))
	t.Cleanup(func() { _ = os.Chmod(base, 0o700) })

	_, err := report.NewLocator(base).Allocate(context.Background(), domain.Scan{ID: 1, TaskID: 1})
	require.ErrorIs(t, err, serrors.ErrFilesystem)
}
