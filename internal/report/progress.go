package report

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/anmicius0/taskprogress/internal/utils"
	"go.uber.org/zap"
)

// progressQuery groups each member's tasks per team. A NULL parameter disables
// the filter on its column.
const progressQuery = `
SELECT ut.team_id,
       ut.user_id,
       COUNT(t.id) AS total_tasks,
       SUM(CASE WHEN t.status = 1 THEN 1 ELSE 0 END) AS todo_count,
       SUM(CASE WHEN t.status = 2 THEN 1 ELSE 0 END) AS in_progress_count,
       SUM(CASE WHEN t.status = 3 THEN 1 ELSE 0 END) AS done_count
FROM team_members ut
JOIN teams tm ON tm.id = ut.team_id
JOIN tasks t ON t.team_id = ut.team_id AND t.assignee_id = ut.user_id
WHERE (ut.team_id = @teamId OR @teamId IS NULL)
  AND (ut.user_id = @userId OR @userId IS NULL)
GROUP BY ut.team_id, ut.user_id
ORDER BY ut.team_id, ut.user_id`

type rowScanner interface {
	Scan(dest ...any) error
}

// ProgressReports returns one report per (team, user) matching filter.
// Database errors are returned wrapped, never interpreted.
func (s *Store) ProgressReports(ctx context.Context, filter ProgressFilter) ([]ProgressReport, error) {
	rows, err := s.db.QueryContext(ctx, progressQuery,
		sql.Named("teamId", nullable(filter.TeamID)),
		sql.Named("userId", nullable(filter.UserID)))
	if err != nil {
		return nil, fmt.Errorf("progress reports: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			utils.WithComponent("report_store").Warn("Failed to close progress rows", zap.Error(err))
		}
	}()

	reports := make([]ProgressReport, 0)
	for rows.Next() {
		r, err := scanProgressReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate progress reports: %w", err)
	}

	utils.WithComponent("report_store").Debug("Progress reports loaded",
		zap.Any(utils.FieldTeamID, filter.TeamID),
		zap.Any(utils.FieldUserID, filter.UserID),
		zap.Int(utils.FieldRows, len(reports)))
	return reports, nil
}

func scanProgressReport(row rowScanner) (ProgressReport, error) {
	var r ProgressReport
	if err := row.Scan(&r.TeamID, &r.UserID, &r.TotalTasks, &r.TodoCount, &r.InProgressCount, &r.DoneCount); err != nil {
		return ProgressReport{}, fmt.Errorf("scan progress report: %w", err)
	}
	return r, nil
}

func nullable(v *int64) any {
	if v == nil {
		return nil
	}
	return *v
}
