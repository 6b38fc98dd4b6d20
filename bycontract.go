package bycontract

var std = New()

// Default returns the engine behind the package-level functions.
func Default() *Engine { return std }

// Validate checks values against contract on the default engine.
func Validate(values, contract any, callContext ...string) (any, error) {
	return std.Validate(values, contract, callContext...)
}

// ValidateCombo checks values against alternative contract lists on the
// default engine.
func ValidateCombo(values, combos any, callContext ...string) (any, error) {
	return std.ValidateCombo(values, combos, callContext...)
}

// Typedef registers a custom type on the default engine.
func Typedef(name string, definition any) error {
	return std.Typedef(name, definition)
}

// Config merges options into the default engine's options.
func Config(opts ...ConfigOption) {
	std.Config(opts...)
}

// CurrentOptions returns the default engine's options.
func CurrentOptions() Options {
	return std.Options()
}

// Types returns the default engine's custom types.
func Types() map[string]any {
	return std.Types()
}

// ConfigFromEnv applies BYCONTRACT_* environment variables to the default
// engine.
func ConfigFromEnv(envFiles ...string) error {
	return std.ConfigFromEnv(envFiles...)
}
