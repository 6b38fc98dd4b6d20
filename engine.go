package bycontract

import (
	"log/slog"
	"maps"
	"sync"

	"github.com/dmitrymomot/bycontract/pkg/logger"
)

// Engine owns a custom type registry and an options record. The zero value
// is not usable; create engines with New.
type Engine struct {
	mu    sync.RWMutex
	types map[string]any
	opts  Options
	log   *slog.Logger
}

// snapshot is the read side of an engine: maps inside are never mutated
// after being published.
type snapshot struct {
	types map[string]any
	opts  Options
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithLogger sets the logger used for violations, registrations and
// configuration changes. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithOptions sets the initial options record.
func WithOptions(opts Options) Option {
	return func(e *Engine) { e.opts = opts.clone() }
}

// WithTypes registers custom types at construction time.
// Panics if a name is rejected by Typedef: a broken type table should stop
// startup rather than surface later as contract failures.
func WithTypes(types map[string]any) Option {
	return func(e *Engine) {
		for name, def := range types {
			if err := e.Typedef(name, def); err != nil {
				panic(err)
			}
		}
	}
}

// New creates an engine with an empty registry and checks enabled.
func New(opts ...Option) *Engine {
	e := &Engine{
		types: make(map[string]any),
		opts:  DefaultOptions(),
		log:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) snapshot() snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return snapshot{types: e.types, opts: e.opts}
}

// Config merges opts into the engine's options record.
func (e *Engine) Config(opts ...ConfigOption) {
	e.mu.Lock()
	next := e.opts.clone()
	for _, opt := range opts {
		opt(&next)
	}
	prev := e.opts.Enable
	e.opts = next
	e.mu.Unlock()

	if prev != next.Enable {
		e.log.Info("contract checks toggled", slog.Bool("enable", next.Enable))
	}
}

// Options returns a copy of the current options record.
func (e *Engine) Options() Options {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.opts.clone()
}

// Enabled reports whether checks are on.
func (e *Engine) Enabled() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.opts.Enable
}

// ConfigFromEnv applies options read by LoadOptions.
func (e *Engine) ConfigFromEnv(envFiles ...string) error {
	opts, err := LoadOptions(envFiles...)
	if err != nil {
		return err
	}
	e.Config(WithOptionsFrom(opts))
	return nil
}

// Types returns a copy of the custom type registry.
func (e *Engine) Types() map[string]any {
	return maps.Clone(e.snapshot().types)
}
