// Package report allocates the per-run directories scanner reports are
// written to.
package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"scanrunner/pkg/domain"
	"scanrunner/pkg/logger"
	"scanrunner/pkg/serrors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	dirPerm = 0o750
	// timestampLayout keeps directory names sortable and free of path separators.
	timestampLayout = "20060102T150405Z"
)

// Locator creates report directories below Dir.
type Locator struct {
	Dir string
	// Now is used to stamp directory names. Defaults to time.Now.
	Now func() time.Time
}

// NewLocator returns a Locator rooted at dir.
func NewLocator(dir string) *Locator {
	return &Locator{Dir: dir, Now: time.Now}
}

// Allocate creates a directory unique to this run of scan and verifies the
// current process can write into it. Directories of concurrent runs never
// collide, even for the same scan.
func (l *Locator) Allocate(ctx context.Context, scan domain.Scan) (string, error) {
	now := time.Now
	if l.Now != nil {
		now = l.Now
	}

	name := fmt.Sprintf("%d-%d-%s-%s",
		scan.TaskID, scan.ID, now().UTC().Format(timestampLayout), uuid.NewString())
	dir := filepath.Join(l.Dir, name)

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return "", serrors.Wrap(serrors.ErrFilesystem, err, "could not create report directory %s", dir)
	}

	probe, err := os.CreateTemp(dir, ".probe-*")
	if err != nil {
		return "", serrors.Wrap(serrors.ErrFilesystem, err, "report directory %s is not writable", dir)
	}
	_ = probe.Close()
	if err := os.Remove(probe.Name()); err != nil {
		return "", serrors.Wrap(serrors.ErrFilesystem, err, "could not clean up report directory %s", dir)
	}

	logger.Debug(ctx, "allocated report directory", zap.String("dir", dir))

	return dir, nil
}
