package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/anmicius0/taskprogress/internal/client"
	"github.com/anmicius0/taskprogress/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintProgress(t *testing.T) {
	var buf bytes.Buffer
	err := printProgress(&buf, &client.ProgressPage{
		Count:     1,
		Truncated: true,
		Reports:   []report.ProgressReport{{TeamID: 1, UserID: 2, TotalTasks: 3, TodoCount: 2, InProgressCount: 1}},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"TEAM", "USER", "TOTAL", "TODO", "IN", "PROGRESS", "DONE"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"1", "2", "3", "2", "1", "0"}, strings.Fields(lines[1]))
	assert.Equal(t, "(showing first 1 rows)", lines[2])
}

func TestProgressCmd_InvalidAuthSettings(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"progress", "--config", filepath.Join(t.TempDir(), "missing.yaml")})
	cmd.SetOut(new(bytes.Buffer))

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Found 1 configuration error(s) in AuthSettings")
}
