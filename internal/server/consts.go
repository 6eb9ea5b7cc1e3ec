package server

const (
	HealthEndpoint = "/health"
	ProgressPath   = "/reports/progress"
	TeamsPath      = "/teams"
	TasksPath      = "/tasks"

	HeaderRequestID = "X-Request-ID"
)

const (
	StatusHealthy = "healthy"
)

const (
	MessageInvalidRequestBody = "Invalid request body"
	MessageInvalidFilter      = "Filters must be integers"
	MessageInvalidToken       = "Invalid token"
	MessageNotFound           = "Resource not found"
	MessageInternal           = "Internal server error"
	MessageMisconfigured      = "Server configuration is invalid"
)

const (
	ErrorCodeInvalidRequestBody = "invalid_request_body"
	ErrorCodeValidationFailed   = "validation_failed"
	ErrorCodeNotFound           = "not_found"
	ErrorCodeUnauthorized       = "unauthorized"
	ErrorCodeInternal           = "internal_error"
	ErrorCodeConfiguration      = "configuration_error"
)

const (
	queryTeamID  = "teamId"
	queryUserID  = "userId"
	ctxRequestID = "request_id"
)
