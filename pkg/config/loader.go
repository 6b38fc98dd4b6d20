package config

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Option configures a single Load call.
type Option func(*loader)

type loader struct {
	prefix string
	files  []string
}

// WithPrefix prepends prefix to every env tag, e.g. "BYCONTRACT_".
func WithPrefix(prefix string) Option {
	return func(l *loader) { l.prefix = prefix }
}

// WithEnvFiles loads the given dotenv files before parsing. Files that do not
// exist are skipped; variables already set in the process win.
func WithEnvFiles(files ...string) Option {
	return func(l *loader) { l.files = append(l.files, files...) }
}

// Load parses environment variables into the struct pointed to by v.
//
// The default .env file is read once per process; a missing file is fine.
//
//	type Options struct {
//		Enable bool `env:"ENABLE" envDefault:"true"`
//	}
//
//	var opts Options
//	err := config.Load(&opts, config.WithPrefix("BYCONTRACT_"))
func Load[T any](v *T, opts ...Option) error {
	defaultEnvLoaded.Do(func() {
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	l := &loader{}
	for _, opt := range opts {
		opt(l)
	}

	for _, file := range l.files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return errors.Join(ErrLoadingEnvFile, fmt.Errorf("%s: %w", file, err))
		}
	}

	if err := env.ParseWithOptions(v, env.Options{Prefix: l.prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}
