// Package settings validates typed configuration records against declarative
// per-field constraints and defers that validation until first use.
package settings

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Kind identifies which rule a Constraint carries.
type Kind int

const (
	KindRequired Kind = iota + 1
	KindMinLength
	KindPattern
)

func (k Kind) String() string {
	switch k {
	case KindRequired:
		return "required"
	case KindMinLength:
		return "min_length"
	case KindPattern:
		return "pattern"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Constraint is a single declarative rule attached to a named field.
// Min is used by KindMinLength, Pattern by KindPattern.
type Constraint struct {
	Kind    Kind
	Field   string
	Min     int
	Pattern *regexp.Regexp
}

// Required demands that the field holds a non-zero value.
func Required(field string) Constraint {
	return Constraint{Kind: KindRequired, Field: field}
}

// MinLength demands that a string (or slice, map) field has at least n elements.
func MinLength(field string, n int) Constraint {
	return Constraint{Kind: KindMinLength, Field: field, Min: n}
}

// Pattern demands that a string field matches expr. It panics if expr does not
// compile, like regexp.MustCompile; use ParsePattern for untrusted input.
func Pattern(field, expr string) Constraint {
	return Constraint{Kind: KindPattern, Field: field, Pattern: regexp.MustCompile(expr)}
}

// ParsePattern is Pattern with an error instead of a panic.
func ParsePattern(field, expr string) (Constraint, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Constraint{}, fmt.Errorf("field %s: invalid pattern %q: %w", field, expr, err)
	}
	return Constraint{Kind: KindPattern, Field: field, Pattern: re}, nil
}

var validate = validator.New()

// check evaluates c against value and returns the violation message, or "" when
// the constraint holds. Absent and empty values only fail KindRequired.
func (c Constraint) check(value any, present bool) string {
	switch c.Kind {
	case KindRequired:
		if !present || value == nil || validate.Var(value, "required") != nil {
			return fmt.Sprintf("The %s field is required.", c.Field)
		}
	case KindMinLength:
		if !present || value == nil {
			return ""
		}
		switch rv := reflect.ValueOf(value); rv.Kind() {
		case reflect.String:
			// empty is absence; KindRequired reports it
			if rv.Len() == 0 {
				return ""
			}
		case reflect.Slice, reflect.Map, reflect.Array:
		default:
			return fmt.Sprintf("The field %s must be a string or collection to have a minimum length.", c.Field)
		}
		if err := validate.Var(value, fmt.Sprintf("min=%d", c.Min)); err != nil {
			return fmt.Sprintf("The field %s must have a minimum length of '%d'.", c.Field, c.Min)
		}
	case KindPattern:
		if !present || value == nil {
			return ""
		}
		s, ok := value.(string)
		if !ok {
			return fmt.Sprintf("The field %s must be a string to match a regular expression.", c.Field)
		}
		if s == "" {
			return ""
		}
		if !c.Pattern.MatchString(s) {
			return fmt.Sprintf("The field %s must match the regular expression '%s'.", c.Field, c.Pattern.String())
		}
	default:
		return fmt.Sprintf("The field %s has an unsupported constraint %s.", c.Field, c.Kind)
	}
	return ""
}

// String renders the constraint the way it would be written in a struct tag.
func (c Constraint) String() string {
	var b strings.Builder
	b.WriteString(c.Field)
	b.WriteByte(':')
	switch c.Kind {
	case KindMinLength:
		fmt.Fprintf(&b, "min=%d", c.Min)
	case KindPattern:
		fmt.Fprintf(&b, "pattern=%s", c.Pattern)
	default:
		b.WriteString(c.Kind.String())
	}
	return b.String()
}
