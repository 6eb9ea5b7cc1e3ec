package server

import (
	"context"

	"github.com/anmicius0/taskprogress/internal/report"
)

// Store is the persistence the handlers depend on.
type Store interface {
	ProgressReports(ctx context.Context, filter report.ProgressFilter) ([]report.ProgressReport, error)
	CreateTeam(ctx context.Context, name string) (report.Team, error)
	AddMember(ctx context.Context, teamID, userID int64) error
	CreateTask(ctx context.Context, task report.Task) (report.Task, error)
}

// createTeamRequest is the body of POST /teams.
type createTeamRequest struct {
	Name string `binding:"required,min=2,max=64"`
}

// addMemberRequest is the body of POST /teams/:id/members.
type addMemberRequest struct {
	UserID int64 `binding:"required,gt=0"`
}

// createTaskRequest is the body of POST /tasks.
type createTaskRequest struct {
	TeamID     int64  `binding:"required,gt=0"`
	AssigneeID int64  `binding:"required,gt=0"`
	Title      string `binding:"required,max=200"`
	// Status is 1 (todo), 2 (in progress) or 3 (done)
	Status int `binding:"required,oneof=1 2 3"`
}
