package report

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/anmicius0/taskprogress/internal/utils"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrations embed.FS

// ErrNotFound is returned when a referenced team does not exist.
var ErrNotFound = errors.New("not found")

// Store reads and writes teams, members and tasks.
type Store struct {
	db *sql.DB
}

// NewStore wraps an already opened database. The schema is assumed to exist.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Open opens the SQLite database at path and applies pending migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// sqlite serializes writers; one connection avoids SQLITE_BUSY under load
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	utils.WithComponent("report_store").Info("Database ready", zap.String("path", path))
	return NewStore(db), nil
}

var gooseMu sync.Mutex

func migrate(ctx context.Context, db *sql.DB) error {
	// goose keeps its filesystem and dialect in package globals
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("migrate dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// CreateTeam inserts a team and returns it with its assigned ID.
func (s *Store) CreateTeam(ctx context.Context, name string) (Team, error) {
	res, err := s.db.ExecContext(ctx, `INSERT INTO teams (name) VALUES (@name)`, sql.Named("name", name))
	if err != nil {
		return Team{}, fmt.Errorf("insert team: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Team{}, fmt.Errorf("team id: %w", err)
	}
	return Team{ID: id, Name: name}, nil
}

// AddMember adds userID to the team. Adding an existing member is a no-op.
func (s *Store) AddMember(ctx context.Context, teamID, userID int64) error {
	if err := s.teamExists(ctx, teamID); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO team_members (team_id, user_id) VALUES (@teamId, @userId) ON CONFLICT DO NOTHING`,
		sql.Named("teamId", teamID), sql.Named("userId", userID))
	if err != nil {
		return fmt.Errorf("insert member: %w", err)
	}
	return nil
}

// CreateTask inserts a task for a team member.
func (s *Store) CreateTask(ctx context.Context, task Task) (Task, error) {
	if !task.Status.Valid() {
		return Task{}, fmt.Errorf("insert task: invalid status %s", task.Status)
	}
	if err := s.teamExists(ctx, task.TeamID); err != nil {
		return Task{}, err
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO tasks (team_id, assignee_id, title, status) VALUES (@teamId, @assigneeId, @title, @status)`,
		sql.Named("teamId", task.TeamID),
		sql.Named("assigneeId", task.AssigneeID),
		sql.Named("title", task.Title),
		sql.Named("status", int64(task.Status)))
	if err != nil {
		return Task{}, fmt.Errorf("insert task: %w", err)
	}
	task.ID, err = res.LastInsertId()
	if err != nil {
		return Task{}, fmt.Errorf("task id: %w", err)
	}
	return task, nil
}

func (s *Store) teamExists(ctx context.Context, teamID int64) error {
	var one int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM teams WHERE id = @teamId`, sql.Named("teamId", teamID)).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("team %d: %w", teamID, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("check team: %w", err)
	}
	return nil
}
