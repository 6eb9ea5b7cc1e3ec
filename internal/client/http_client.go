package client

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/anmicius0/taskprogress/internal/utils"
	"go.uber.org/zap"
	"resty.dev/v3"
)

const maxLoggedBody = 1000

// HTTPClient is a base HTTP client using resty for API requests.
type HTTPClient struct {
	client *resty.Client
}

// HTTPError represents an HTTP error response from the remote API.
// It exposes the status code so callers can detect specific cases (e.g., 401)
// without parsing text messages.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}

// NewHTTPClient creates a new HTTPClient sending the bearer token and JSON headers.
func NewHTTPClient(baseURL, token string, timeout time.Duration) *HTTPClient {
	baseURL = strings.TrimSuffix(baseURL, "/")
	return &HTTPClient{
		client: resty.New().
			SetBaseURL(baseURL).
			SetHeader("Accept", "application/json").
			SetHeader("Content-Type", "application/json").
			SetAuthToken(token).
			SetTimeout(timeout),
	}
}

// Close releases the underlying transport.
func (c *HTTPClient) Close() error {
	return c.client.Close()
}

// DoReq performs an HTTP request with the given method, endpoint, body, and query params.
// Responses with status >= 400 are logged with a truncated body and returned as *HTTPError.
func (c *HTTPClient) DoReq(method, endpoint string, body any, params map[string]string) (*resty.Response, error) {
	log := utils.WithComponent("http_client")
	request := c.client.R().
		SetQueryParams(params)
	if body != nil {
		request.SetBody(body)
	}

	log.Debug("HTTP request start",
		zap.String(utils.FieldMethod, method),
		zap.String(utils.FieldPath, endpoint))

	start := time.Now()
	response, err := request.Execute(method, endpoint)
	duration := time.Since(start)
	if err != nil {
		log.Error("HTTP request failed",
			zap.String(utils.FieldMethod, method),
			zap.String(utils.FieldPath, endpoint),
			zap.Error(err))
		return nil, err
	}

	if response.StatusCode() >= http.StatusBadRequest {
		responseBody := strings.TrimSpace(response.String())
		if len(responseBody) > maxLoggedBody {
			responseBody = responseBody[:maxLoggedBody] + "…"
		}
		fields := []zap.Field{
			zap.String(utils.FieldMethod, method),
			zap.String(utils.FieldPath, endpoint),
			zap.Int(utils.FieldStatus, response.StatusCode()),
			zap.String("body", responseBody),
			zap.Duration(utils.FieldDuration, duration),
		}
		if response.StatusCode() >= http.StatusInternalServerError {
			log.Error("API error response (server)", fields...)
		} else {
			log.Warn("API error response (client)", fields...)
		}
		return nil, &HTTPError{StatusCode: response.StatusCode(), Body: responseBody}
	}

	log.Debug("HTTP request completed",
		zap.String(utils.FieldMethod, method),
		zap.String(utils.FieldPath, endpoint),
		zap.Int(utils.FieldStatus, response.StatusCode()),
		zap.Duration(utils.FieldDuration, duration))

	return response, nil
}
