package bycontract

import (
	"maps"
	"strings"

	"github.com/dmitrymomot/bycontract/pkg/exception"
	"github.com/dmitrymomot/bycontract/pkg/is"
	"github.com/dmitrymomot/bycontract/pkg/logger"
)

const typedefContext = "bycontract.Typedef"

// Typedef registers or replaces a custom type. definition is a type
// expression alias, a verify.Shape (or plain map) of field contracts, or a
// predicate. Names must not collide with primitive type names.
func (e *Engine) Typedef(name string, definition any) error {
	if name == "" || name != strings.TrimSpace(name) || strings.ContainsAny(name, "|=") {
		return invalidParam("Invalid Typedef() parameters. The first parameter (typeName) shall be a non-empty name "+
			"without surrounding spaces, \"|\" or \"=\"", typedefContext)
	}
	if is.Reserved(name) {
		return exception.New(exception.CodeInvalidParam, "Custom type must not override a primitive")
	}

	e.mu.Lock()
	next := maps.Clone(e.types)
	next[name] = definition
	e.types = next
	e.mu.Unlock()

	e.log.Debug("custom type registered", logger.TypeName(name), logger.Contract(describe(definition)))
	return nil
}

// Lookup returns the definition registered under name.
func (e *Engine) Lookup(name string) (any, bool) {
	def, ok := e.snapshot().types[name]
	return def, ok
}
