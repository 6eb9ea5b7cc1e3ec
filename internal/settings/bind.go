package settings

import (
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// Bind decodes the named viper section into a T and defers its validation to the
// first Get. An empty section selects the section named after T.
//
// The section is read through AllSettings so that environment variables bound to
// nested keys override the file values.
func Bind[T any](v *viper.Viper, section string) (*Validated[T], error) {
	var target T
	if section == "" {
		section = TypeName(target)
	}

	raw := v.AllSettings()[strings.ToLower(section)]
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &target,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return nil, fmt.Errorf("bind section %s: %w", section, err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("bind section %s: %w", section, err)
	}
	return ValidateOnFirstAccess(target), nil
}
