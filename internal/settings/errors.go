package settings

import (
	"fmt"
	"strings"
)

// ConfigurationError aggregates every constraint violation found in one validation pass.
type ConfigurationError struct {
	TypeName string
	Errors   []string
}

// Count is the number of violations.
func (e *ConfigurationError) Count() int { return len(e.Errors) }

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("Found %d configuration error(s) in %s: %s", e.Count(), e.TypeName, strings.Join(e.Errors, ", "))
}
