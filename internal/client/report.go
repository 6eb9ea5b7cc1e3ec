// Package client talks to the progress report API.
package client

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/anmicius0/taskprogress/internal/report"
)

const progressEndpoint = "/reports/progress"

// ProgressPage is the decoded body of the progress endpoint.
type ProgressPage struct {
	Count     int
	Truncated bool
	Reports   []report.ProgressReport
}

// ReportClient fetches progress reports from a running server.
type ReportClient struct {
	*HTTPClient
}

// NewReportClient creates a ReportClient for baseURL authenticated with token.
func NewReportClient(baseURL, token string, timeout time.Duration) *ReportClient {
	return &ReportClient{HTTPClient: NewHTTPClient(baseURL, token, timeout)}
}

// Progress returns the reports matching filter.
func (c *ReportClient) Progress(filter report.ProgressFilter) (*ProgressPage, error) {
	params := map[string]string{}
	if filter.TeamID != nil {
		params["teamId"] = strconv.FormatInt(*filter.TeamID, 10)
	}
	if filter.UserID != nil {
		params["userId"] = strconv.FormatInt(*filter.UserID, 10)
	}

	response, err := c.DoReq("GET", progressEndpoint, nil, params)
	if err != nil {
		return nil, fmt.Errorf("get progress reports: %w", err)
	}
	var page ProgressPage
	if err := json.Unmarshal(response.Bytes(), &page); err != nil {
		return nil, fmt.Errorf("get progress reports: failed to unmarshal response: %w", err)
	}
	return &page, nil
}
