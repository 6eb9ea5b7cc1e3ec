// internal/server/response_builder.go
package server

import (
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/anmicius0/taskprogress/internal/report"
)

// ResponseBuilder provides utilities for constructing consistent API responses.
type ResponseBuilder struct{}

// newResponseBuilder creates a new response builder instance.
func newResponseBuilder() *ResponseBuilder { return &ResponseBuilder{} }

// ProgressResponse is the payload of the progress report endpoint.
type ProgressResponse struct {
	Success   bool
	Count     int
	Truncated bool
	Reports   []report.ProgressReport
}

// ErrorResponse standardizes error responses.
type ErrorResponse struct {
	Success bool
	Error   string
	Message string
	Details any
}

// BuildProgressResponse caps reports at maxRows and converts keys to camelCase.
func (rb *ResponseBuilder) BuildProgressResponse(reports []report.ProgressReport, maxRows int) any {
	truncated := false
	if maxRows > 0 && len(reports) > maxRows {
		reports = reports[:maxRows]
		truncated = true
	}
	return toCamelCaseMap(ProgressResponse{
		Success:   true,
		Count:     len(reports),
		Truncated: truncated,
		Reports:   reports,
	})
}

// BuildEntityResponse wraps a created entity, converting keys to camelCase.
func (rb *ResponseBuilder) BuildEntityResponse(entity any) any {
	return toCamelCaseMap(entity)
}

// BuildErrorResponse constructs a standardized error response, converting keys to camelCase.
func (rb *ResponseBuilder) BuildErrorResponse(errorCode, errorMessage string, details any) any {
	response := ErrorResponse{
		Success: false,
		Error:   errorCode,
		Message: errorMessage,
		Details: details,
	}
	return toCamelCaseMap(response)
}

func toCamelCaseMap(data any) any {
	val := reflect.ValueOf(data)

	// Handle Pointers
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
	}

	// Handle Slices/Arrays
	if val.Kind() == reflect.Slice || val.Kind() == reflect.Array {
		out := make([]any, val.Len())
		for i := 0; i < val.Len(); i++ {
			out[i] = toCamelCaseMap(val.Index(i).Interface())
		}
		return out
	}

	if val.Kind() != reflect.Struct {
		return data
	}

	out := make(map[string]any)
	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		out[camelKey(field.Name)] = toCamelCaseMap(val.Field(i).Interface())
	}
	return out
}

// camelKey lowers the first letter and folds a trailing ID or URL acronym:
// "ID" -> "id", "TeamID" -> "teamId", "ServerURL" -> "serverUrl".
func camelKey(name string) string {
	for _, acronym := range []string{"ID", "URL"} {
		if name == acronym {
			return strings.ToLower(acronym)
		}
		if prefix, ok := strings.CutSuffix(name, acronym); ok {
			return lowerFirst(prefix) + acronym[:1] + strings.ToLower(acronym[1:])
		}
	}
	return lowerFirst(name)
}

// lowerFirst lowers the first rune of a string
func lowerFirst(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}
