package serrors_test

import (
	"errors"
	"fmt"
	"testing"

	"scanrunner/pkg/serrors"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrNotFound,
		serrors.ErrProfileNotFound,
		serrors.ErrFilesystem,
		serrors.ErrProcessLaunch,
		serrors.ErrReportParse,
		serrors.ErrNotification,
		serrors.ErrBadRequest,
		serrors.ErrUnauthorized,
		serrors.ErrForbidden,
		serrors.ErrConflict,
		serrors.ErrInternal,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("permission denied")

	e1 := serrors.With(serrors.ErrNotFound, "scan %d not found", 42)
	require.Equal(t, "scan 42 not found", e1.Error())

	e2 := serrors.Wrap(serrors.ErrFilesystem, base, "creating report dir")
	require.Equal(t, "creating report dir: permission denied", e2.Error())

	e3 := serrors.KindOnly(serrors.ErrReportParse)
	require.Equal(t, "REPORT_PARSE", e3.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrProcessLaunch, base, "starting scanner")

	require.ErrorIs(t, e, serrors.ErrProcessLaunch)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrReportParse)

	// still matches after additional fmt wrapping
	wrapped := fmt.Errorf("could not run scan: %w", e)
	require.ErrorIs(t, wrapped, serrors.ErrProcessLaunch)
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	var k serrors.Kind
	require.ErrorAs(t, e, &k)
	require.Equal(t, serrors.ErrNotFound, k)

	var ce *customError
	require.ErrorAs(t, e, &ce)
	require.Equal(t, base, ce)
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrNotification, base, "mail")
	require.Equal(t, serrors.ErrNotification, e.Kind())
	require.Equal(t, "mail", e.Message())
	require.Equal(t, base, e.Cause())
}

func TestKindOf(t *testing.T) {
	require.Nil(t, serrors.KindOf(nil))
	require.Equal(t, serrors.ErrInternal, serrors.KindOf(errors.New("plain")))
	require.Equal(t, serrors.ErrReportParse,
		serrors.KindOf(fmt.Errorf("ingest: %w", serrors.With(serrors.ErrReportParse, "bad xml"))))
}
