package postgres

import (
	"context"
	"fmt"
	"scanrunner/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	profilesTable     = "scan_profiles"
	profileTasksTable = "profile_tasks"
)

// TaskProfiles returns the profiles associated with a task ordered by ID.
func (p *PgSQL) TaskProfiles(ctx context.Context, taskID domain.ScanTaskID) ([]domain.ScanProfile, error) {
	associated := p.Builder.From(profileTasksTable).
		Select("profile_id").
		Where(goqu.I("task_id").Eq(int64(taskID)))

	var rows []PgProfile
	if err := p.Builder.From(profilesTable).
		Where(goqu.I("id").In(associated)).
		Order(goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch task profiles from pg: %w", err)
	}

	out := make([]domain.ScanProfile, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.ToDomain())
	}

	return out, nil
}

// DefaultProfile returns the user's default profile, or the global default
// (a default profile without owner) when the user has none.
func (p *PgSQL) DefaultProfile(ctx context.Context, userID domain.UserID) (*domain.ScanProfile, error) {
	var row PgProfile
	found, err := p.Builder.From(profilesTable).
		Where(
			goqu.I("is_default").IsTrue(),
			goqu.Or(
				goqu.I("user_id").Eq(int64(userID)),
				goqu.I("user_id").IsNull(),
			),
		).
		Order(goqu.I("user_id").Asc().NullsLast(), goqu.I("id").Asc()).
		Limit(1).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch default profile from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	profile := row.ToDomain()

	return &profile, nil
}
