package bycontract

import (
	"maps"

	"github.com/dmitrymomot/bycontract/pkg/config"
)

// EnvPrefix is the prefix of environment variables read by LoadOptions.
const EnvPrefix = "BYCONTRACT_"

// Options is the engine-wide configuration record.
type Options struct {
	// Enable turns contract checks on. When false, Validate and ValidateCombo
	// return their values without looking at them.
	Enable bool `env:"ENABLE" envDefault:"true"`

	// Settings holds keys with no built-in meaning, stored as supplied.
	Settings map[string]any
}

// DefaultOptions returns the options every engine starts with.
func DefaultOptions() Options {
	return Options{Enable: true}
}

func (o Options) clone() Options {
	o.Settings = maps.Clone(o.Settings)
	return o
}

// ConfigOption changes one part of Options. Config applies them over the
// current record, so keys not touched keep their previous values.
type ConfigOption func(*Options)

// WithEnable sets the enable switch.
func WithEnable(enable bool) ConfigOption {
	return func(o *Options) { o.Enable = enable }
}

// WithSetting stores an arbitrary key. The key "enable" with a bool value
// sets the enable switch instead.
func WithSetting(key string, value any) ConfigOption {
	return func(o *Options) {
		if key == "enable" {
			if b, ok := value.(bool); ok {
				o.Enable = b
				return
			}
		}
		if o.Settings == nil {
			o.Settings = make(map[string]any)
		}
		o.Settings[key] = value
	}
}

// WithSettings merges a partial options record, last write wins per key.
func WithSettings(partial map[string]any) ConfigOption {
	return func(o *Options) {
		for k, v := range partial {
			WithSetting(k, v)(o)
		}
	}
}

// WithOptionsFrom replaces the enable switch and merges the settings of opts.
func WithOptionsFrom(opts Options) ConfigOption {
	return func(o *Options) {
		o.Enable = opts.Enable
		WithSettings(opts.Settings)(o)
	}
}

// LoadOptions reads Options from BYCONTRACT_* environment variables and the
// given dotenv files.
func LoadOptions(envFiles ...string) (Options, error) {
	opts := DefaultOptions()
	if err := config.Load(&opts, config.WithPrefix(EnvPrefix), config.WithEnvFiles(envFiles...)); err != nil {
		return Options{}, err
	}
	return opts, nil
}
