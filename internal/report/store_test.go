package report

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/anmicius0/taskprogress/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	utils.Logger = zap.NewNop()
	os.Exit(m.Run())
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "progress.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func ptr(v int64) *int64 { return &v }

func seedTasks(t *testing.T, store *Store, teamID, userID int64, statuses ...TaskStatus) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, store.AddMember(ctx, teamID, userID))
	for _, status := range statuses {
		_, err := store.CreateTask(ctx, Task{TeamID: teamID, AssigneeID: userID, Title: "task", Status: status})
		require.NoError(t, err)
	}
}

func TestProgressReports_AggregatesPerMember(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	team, err := store.CreateTeam(ctx, "platform")
	require.NoError(t, err)
	require.Equal(t, int64(1), team.ID)

	seedTasks(t, store, team.ID, 1, StatusTodo, StatusInProgress, StatusTodo)

	reports, err := store.ProgressReports(ctx, ProgressFilter{})
	require.NoError(t, err)
	assert.Equal(t, []ProgressReport{
		{TeamID: 1, UserID: 1, TotalTasks: 3, TodoCount: 2, InProgressCount: 1, DoneCount: 0},
	}, reports)
}

func TestProgressReports_Filters(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	alpha, err := store.CreateTeam(ctx, "alpha")
	require.NoError(t, err)
	beta, err := store.CreateTeam(ctx, "beta")
	require.NoError(t, err)

	seedTasks(t, store, alpha.ID, 7, StatusDone, StatusTodo)
	seedTasks(t, store, beta.ID, 7, StatusInProgress)
	seedTasks(t, store, alpha.ID, 8, StatusDone)

	tests := []struct {
		name   string
		filter ProgressFilter
		want   []ProgressReport
	}{
		{
			name:   "no filter",
			filter: ProgressFilter{},
			want: []ProgressReport{
				{TeamID: alpha.ID, UserID: 7, TotalTasks: 2, TodoCount: 1, DoneCount: 1},
				{TeamID: alpha.ID, UserID: 8, TotalTasks: 1, DoneCount: 1},
				{TeamID: beta.ID, UserID: 7, TotalTasks: 1, InProgressCount: 1},
			},
		},
		{
			name:   "user across all teams",
			filter: ProgressFilter{UserID: ptr(7)},
			want: []ProgressReport{
				{TeamID: alpha.ID, UserID: 7, TotalTasks: 2, TodoCount: 1, DoneCount: 1},
				{TeamID: beta.ID, UserID: 7, TotalTasks: 1, InProgressCount: 1},
			},
		},
		{
			name:   "team only",
			filter: ProgressFilter{TeamID: ptr(alpha.ID)},
			want: []ProgressReport{
				{TeamID: alpha.ID, UserID: 7, TotalTasks: 2, TodoCount: 1, DoneCount: 1},
				{TeamID: alpha.ID, UserID: 8, TotalTasks: 1, DoneCount: 1},
			},
		},
		{
			name:   "team and user",
			filter: ProgressFilter{TeamID: ptr(beta.ID), UserID: ptr(7)},
			want: []ProgressReport{
				{TeamID: beta.ID, UserID: 7, TotalTasks: 1, InProgressCount: 1},
			},
		},
		{
			name:   "no match",
			filter: ProgressFilter{TeamID: ptr(beta.ID), UserID: ptr(8)},
			want:   []ProgressReport{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.ProgressReports(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProgressReports_TasksOfNonMembersExcluded(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	team, err := store.CreateTeam(ctx, "ops")
	require.NoError(t, err)
	_, err = store.CreateTask(ctx, Task{TeamID: team.ID, AssigneeID: 42, Title: "orphan", Status: StatusTodo})
	require.NoError(t, err)

	reports, err := store.ProgressReports(ctx, ProgressFilter{})
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestStore_Validation(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	err := store.AddMember(ctx, 99, 1)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.CreateTask(ctx, Task{TeamID: 99, AssigneeID: 1, Title: "x", Status: StatusTodo})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.CreateTask(ctx, Task{TeamID: 1, AssigneeID: 1, Title: "x", Status: TaskStatus(9)})
	assert.ErrorContains(t, err, "invalid status status(9)")

	_, err = store.CreateTeam(ctx, "dup")
	require.NoError(t, err)
	_, err = store.CreateTeam(ctx, "dup")
	assert.Error(t, err)
}

func TestStore_AddMemberIdempotent(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	team, err := store.CreateTeam(ctx, "core")
	require.NoError(t, err)
	require.NoError(t, store.AddMember(ctx, team.ID, 3))
	require.NoError(t, store.AddMember(ctx, team.ID, 3))
}

func TestOpen_ReappliesMigrations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	first, err := Open(ctx, path)
	require.NoError(t, err)
	_, err = first.CreateTeam(ctx, "kept")
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := Open(ctx, path)
	require.NoError(t, err)
	defer second.Close()
	_, err = second.CreateTeam(ctx, "kept")
	assert.Error(t, err, "team from the first session must survive reopening")
}

func TestTaskStatus(t *testing.T) {
	assert.Equal(t, "todo", StatusTodo.String())
	assert.Equal(t, "in_progress", StatusInProgress.String())
	assert.Equal(t, "done", StatusDone.String())
	assert.False(t, TaskStatus(0).Valid())
	assert.True(t, StatusDone.Valid())
}
