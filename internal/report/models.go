// Package report materializes per-member task progress from the task store.
package report

import "fmt"

// TaskStatus is the integer status stored in the tasks table.
type TaskStatus int

const (
	StatusTodo       TaskStatus = 1
	StatusInProgress TaskStatus = 2
	StatusDone       TaskStatus = 3
)

// Valid reports whether s is one of the known statuses.
func (s TaskStatus) Valid() bool {
	return s >= StatusTodo && s <= StatusDone
}

func (s TaskStatus) String() string {
	switch s {
	case StatusTodo:
		return "todo"
	case StatusInProgress:
		return "in_progress"
	case StatusDone:
		return "done"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// ProgressReport summarizes the tasks of one user within one team.
type ProgressReport struct {
	TeamID          int64
	UserID          int64
	TotalTasks      int64
	TodoCount       int64
	InProgressCount int64
	DoneCount       int64
}

// ProgressFilter narrows a progress query. A nil field means no filter on that column.
type ProgressFilter struct {
	TeamID *int64
	UserID *int64
}

// Team is a named group of users.
type Team struct {
	ID   int64
	Name string
}

// Task is a unit of work assigned to a team member.
type Task struct {
	ID         int64
	TeamID     int64
	AssigneeID int64
	Title      string
	Status     TaskStatus
}
