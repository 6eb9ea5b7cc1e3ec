package server

import (
	"testing"

	"github.com/anmicius0/taskprogress/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildProgressResponse(t *testing.T) {
	rb := newResponseBuilder()
	reports := []report.ProgressReport{
		{TeamID: 1, UserID: 2, TotalTasks: 3, TodoCount: 2, InProgressCount: 1},
		{TeamID: 1, UserID: 3, TotalTasks: 1, DoneCount: 1},
	}

	resp := rb.BuildProgressResponse(reports, 10)
	respMap, ok := resp.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, respMap["success"])
	assert.Equal(t, 2, respMap["count"])
	assert.Equal(t, false, respMap["truncated"])

	rows, ok := respMap["reports"].([]any)
	require.True(t, ok)
	first := rows[0].(map[string]any)
	assert.Equal(t, int64(1), first["teamId"])
	assert.Equal(t, int64(2), first["userId"])
	assert.Equal(t, int64(3), first["totalTasks"])
	assert.Equal(t, int64(1), first["inProgressCount"])
}

func TestBuildProgressResponse_Truncates(t *testing.T) {
	rb := newResponseBuilder()
	reports := make([]report.ProgressReport, 5)

	respMap := rb.BuildProgressResponse(reports, 2).(map[string]any)
	assert.Equal(t, 2, respMap["count"])
	assert.Equal(t, true, respMap["truncated"])
	assert.Len(t, respMap["reports"], 2)
}

func TestBuildErrorResponse(t *testing.T) {
	rb := newResponseBuilder()
	resp := rb.BuildErrorResponse("ERR_CODE", "Error message", nil)

	respMap, ok := resp.(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, false, respMap["success"])
	assert.Equal(t, "ERR_CODE", respMap["error"])
	assert.Equal(t, "Error message", respMap["message"])
}

func TestToCamelCaseMap(t *testing.T) {
	input := struct {
		SimpleField  string
		ID           string
		AssigneeID   int64
		ServerURL    string
		hidden       string
		NestedStruct struct {
			InnerField int
		}
	}{
		SimpleField: "value",
		ID:          "123",
		AssigneeID:  9,
		ServerURL:   "http://example.com",
		hidden:      "skip",
		NestedStruct: struct{ InnerField int }{
			InnerField: 42,
		},
	}

	outMap, ok := toCamelCaseMap(input).(map[string]any)
	require.True(t, ok)

	assert.Equal(t, "value", outMap["simpleField"])
	assert.Equal(t, "123", outMap["id"])
	assert.Equal(t, int64(9), outMap["assigneeId"])
	assert.Equal(t, "http://example.com", outMap["serverUrl"])
	assert.NotContains(t, outMap, "hidden")

	nested, ok := outMap["nestedStruct"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 42, nested["innerField"])

	assert.Nil(t, toCamelCaseMap((*report.Team)(nil)))
}
