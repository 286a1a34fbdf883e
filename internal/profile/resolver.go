// Package profile resolves the scan profile of a task and materializes it
// into the file handed to the scanner.
package profile

import (
	"context"
	"fmt"
	"path/filepath"
	"scanrunner/pkg/domain"
	"scanrunner/pkg/logger"
	"scanrunner/pkg/serrors"
	"scanrunner/pkg/storage"

	"go.uber.org/zap"
)

//go:generate mockgen -package mockprofile -source=resolver.go -destination=mock/mockprofile.go *

// TemplateData is exposed to profile bodies while rendering.
type TemplateData struct {
	ReportPath string
	Target     string
	TaskID     domain.ScanTaskID
}

// Materializer writes a profile to dir and returns the written file path.
type Materializer interface {
	Materialize(ctx context.Context, scanProfile domain.ScanProfile, data TemplateData, dir string) (string, error)
}

// Resolution is the outcome of resolving a task profile.
type Resolution struct {
	// ProfilePath is the materialized profile file.
	ProfilePath string
	// ReportPath is where the scanner must write its report.
	ReportPath string
	Profile    domain.ScanProfile
}

// Resolver picks the profile a task runs with.
type Resolver struct {
	storage      storage.ProfileStorage
	materializer Materializer
}

// NewResolver creates a Resolver reading profiles from storage.
func NewResolver(storage storage.ProfileStorage, materializer Materializer) *Resolver {
	return &Resolver{
		storage:      storage,
		materializer: materializer,
	}
}

// Resolve returns the profile and report paths for a run of task. The first
// profile associated with the task wins, otherwise the owner's default
// profile is used, otherwise the global default. ErrProfileNotFound is
// returned when none exists.
func (r *Resolver) Resolve(ctx context.Context, task domain.ScanTask, baseDir, reportFile string) (Resolution, error) {
	profile, ok, err := r.lookup(ctx, task)
	if err != nil {
		return Resolution{}, err
	}
	if !ok {
		return Resolution{}, serrors.With(serrors.ErrProfileNotFound, "no profile found for task %d", task.ID)
	}

	reportPath := filepath.Join(baseDir, reportFile)
	profilePath, err := r.materializer.Materialize(ctx, profile, TemplateData{
		ReportPath: reportPath,
		Target:     task.Target,
		TaskID:     task.ID,
	}, baseDir)
	if err != nil {
		return Resolution{}, fmt.Errorf("could not materialize profile %q: %w", profile.Name, err)
	}

	logger.Debug(ctx, "resolved scan profile",
		zap.Int64("profileID", int64(profile.ID)),
		zap.String("profilePath", profilePath),
		zap.String("reportPath", reportPath))

	return Resolution{
		ProfilePath: profilePath,
		ReportPath:  reportPath,
		Profile:     profile,
	}, nil
}

func (r *Resolver) lookup(ctx context.Context, task domain.ScanTask) (domain.ScanProfile, bool, error) {
	profiles, err := r.storage.TaskProfiles(ctx, task.ID)
	if err != nil {
		return domain.ScanProfile{}, false, fmt.Errorf("could not get task profiles: %w", err)
	}
	if len(profiles) > 0 {
		return profiles[0], true, nil
	}

	def, err := r.storage.DefaultProfile(ctx, task.UserID)
	if err != nil {
		return domain.ScanProfile{}, false, fmt.Errorf("could not get default profile: %w", err)
	}
	if def == nil {
		return domain.ScanProfile{}, false, nil
	}

	return *def, true, nil
}
