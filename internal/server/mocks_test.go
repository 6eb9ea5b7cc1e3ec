package server

import (
	"context"

	"github.com/anmicius0/taskprogress/internal/report"
	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) ProgressReports(ctx context.Context, filter report.ProgressFilter) ([]report.ProgressReport, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.ProgressReport), args.Error(1)
}

func (m *MockStore) CreateTeam(ctx context.Context, name string) (report.Team, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(report.Team), args.Error(1)
}

func (m *MockStore) AddMember(ctx context.Context, teamID, userID int64) error {
	args := m.Called(ctx, teamID, userID)
	return args.Error(0)
}

func (m *MockStore) CreateTask(ctx context.Context, task report.Task) (report.Task, error) {
	args := m.Called(ctx, task)
	return args.Get(0).(report.Task), args.Error(1)
}
