package settings

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Constrained is implemented by settings types that declare their own constraint list
// instead of relying on struct tags.
type Constrained interface {
	Constraints() []Constraint
}

// Validate evaluates every constraint against settings and returns one message per
// violation, in declaration order. settings may be a struct, a pointer to a struct
// or a map keyed by field name.
func Validate(settings any, constraints []Constraint) []string {
	errs := make([]string, 0)
	for _, c := range constraints {
		value, present := lookup(settings, c.Field)
		if msg := c.check(value, present); msg != "" {
			errs = append(errs, msg)
		}
	}
	return errs
}

// ConstraintsFor returns the constraints declared for settings: the Constrained
// list when implemented, otherwise those derived from struct tags.
//
// Tags: `settings:"required,min=8"` and `pattern:"^[a-z]+$"`. The pattern lives in
// its own tag so that commas in the expression need no escaping.
func ConstraintsFor(settings any) ([]Constraint, error) {
	if c, ok := settings.(Constrained); ok {
		return c.Constraints(), nil
	}

	t := reflect.TypeOf(settings)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, nil
	}

	var out []Constraint
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if tag, ok := f.Tag.Lookup("settings"); ok {
			for _, part := range strings.Split(tag, ",") {
				part = strings.TrimSpace(part)
				switch {
				case part == "":
				case part == "required":
					out = append(out, Required(f.Name))
				case strings.HasPrefix(part, "min="):
					n, err := strconv.Atoi(strings.TrimPrefix(part, "min="))
					if err != nil || n < 0 {
						return nil, fmt.Errorf("%s.%s: invalid min in tag %q", t.Name(), f.Name, tag)
					}
					out = append(out, MinLength(f.Name, n))
				default:
					return nil, fmt.Errorf("%s.%s: unknown constraint %q", t.Name(), f.Name, part)
				}
			}
		}
		if expr, ok := f.Tag.Lookup("pattern"); ok {
			c, err := ParsePattern(f.Name, expr)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", t.Name(), err)
			}
			out = append(out, c)
		}
	}
	return out, nil
}

// Check validates settings against its declared constraints and returns a
// *ConfigurationError when any of them fail.
func Check(settings any) error {
	constraints, err := ConstraintsFor(settings)
	if err != nil {
		return err
	}
	if errs := Validate(settings, constraints); len(errs) > 0 {
		return &ConfigurationError{TypeName: TypeName(settings), Errors: errs}
	}
	return nil
}

// TypeName reports the bare type name of v, looking through pointers.
func TypeName(v any) string {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return "<nil>"
	}
	if name := t.Name(); name != "" {
		// generic instantiations carry their type arguments in Name
		if i := strings.IndexByte(name, '['); i > 0 {
			return name[:i]
		}
		return name
	}
	return t.String()
}

func lookup(settings any, field string) (any, bool) {
	v := reflect.ValueOf(settings)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		f, ok := v.Type().FieldByName(field)
		if !ok || !f.IsExported() {
			return nil, false
		}
		// promoted through a nil embedded pointer
		fv, err := v.FieldByIndexErr(f.Index)
		if err != nil {
			return nil, false
		}
		if fv.Kind() == reflect.Pointer {
			if fv.IsNil() {
				return nil, true
			}
			fv = fv.Elem()
		}
		return fv.Interface(), true
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		mv := v.MapIndex(reflect.ValueOf(field).Convert(v.Type().Key()))
		if !mv.IsValid() {
			return nil, false
		}
		return mv.Interface(), true
	default:
		return nil, false
	}
}
