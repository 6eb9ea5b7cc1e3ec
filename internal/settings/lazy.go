package settings

import (
	"errors"
	"sync"

	"github.com/anmicius0/taskprogress/internal/utils"
	"go.uber.org/zap"
)

// Validated holds a settings value whose constraints are checked on the first Get.
// The outcome of that first check, value or error, is returned by every later Get;
// a failed value is not re-validated.
type Validated[T any] struct {
	once  sync.Once
	raw   T
	value T
	err   error
}

// ValidateOnFirstAccess wraps raw so that it is validated lazily.
func ValidateOnFirstAccess[T any](raw T) *Validated[T] {
	return &Validated[T]{raw: raw}
}

// Get returns the validated settings, running validation if this is the first read.
func (v *Validated[T]) Get() (T, error) {
	v.once.Do(func() {
		if err := Check(v.raw); err != nil {
			v.err = err
			logValidationFailure(err)
			return
		}
		v.value = v.raw
	})
	return v.value, v.err
}

// MustGet is Get for callers that cannot continue without valid settings.
func (v *Validated[T]) MustGet() T {
	value, err := v.Get()
	if err != nil {
		panic(err)
	}
	return value
}

// Raw returns the unvalidated value without triggering validation.
func (v *Validated[T]) Raw() T { return v.raw }

func logValidationFailure(err error) {
	fields := []zap.Field{zap.Error(err)}
	var cfgErr *ConfigurationError
	if errors.As(err, &cfgErr) {
		fields = append(fields,
			zap.String(utils.FieldSettings, cfgErr.TypeName),
			zap.Int(utils.FieldErrors, cfgErr.Count()))
	}
	utils.WithComponent("settings").Error("Settings validation failed", fields...)
}
