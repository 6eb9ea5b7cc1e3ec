package utils

// Structured log field names shared across packages.
const (
	FieldComponent = "component"
	FieldRequestID = "request_id"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldStatus    = "status"
	FieldDuration  = "duration"
	FieldHost      = "host"
	FieldPort      = "port"
	FieldTeamID    = "team_id"
	FieldUserID    = "user_id"
	FieldRows      = "rows"
	FieldSettings  = "settings"
	FieldErrors    = "error_count"
)
