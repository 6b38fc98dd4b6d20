package verify

import (
	"fmt"

	"github.com/dmitrymomot/bycontract/pkg/exception"
	"github.com/dmitrymomot/bycontract/pkg/is"
)

// MaxDepth bounds chained custom type resolutions against the same value so
// alias cycles fail instead of recursing forever. Descending into shape
// fields does not count toward it.
const MaxDepth = 32

// Predicate is an ad-hoc contract.
type Predicate func(v any) bool

// Checker is a predicate contract with a name used in failure messages.
type Checker interface {
	Check(v any) bool
	String() string
}

// Resolver looks up custom type definitions by name.
type Resolver interface {
	Lookup(name string) (any, bool)
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(name string) (any, bool)

func (f ResolverFunc) Lookup(name string) (any, bool) { return f(name) }

// Verifier checks values against contracts, resolving custom type names
// through its Resolver.
type Verifier struct {
	types Resolver
}

// New creates a verifier. A nil resolver only knows primitive types.
func New(types Resolver) *Verifier {
	return &Verifier{types: types}
}

// Verify checks value against contract using primitive types only.
func Verify(value, contract any) error {
	return New(nil).Verify(value, contract)
}

// Verify checks value against contract.
func (v *Verifier) Verify(value, contract any) error {
	return v.verify(value, contract, 0)
}

func (v *Verifier) verify(value, contract any, depth int) error {
	if depth > MaxDepth {
		return exception.New(exception.CodeInvalidContract,
			fmt.Sprintf("Contract nesting exceeds %d levels", MaxDepth))
	}

	switch c := contract.(type) {
	case string:
		return v.expr(value, c, depth)
	case Checker:
		if c.Check(value) {
			return nil
		}
		return Mismatch(c.String(), value)
	case Predicate:
		return checkFunc(c, value)
	case func(any) bool:
		return checkFunc(c, value)
	case Shape:
		return v.shape(value, c)
	case map[string]any:
		return v.shape(value, Shape(c))
	case map[string]string:
		s := make(Shape, len(c))
		for k, fc := range c {
			s[k] = fc
		}
		return v.shape(value, s)
	case nil:
		return exception.New(exception.CodeInvalidContract, "Contract is missing")
	}
	return exception.New(exception.CodeInvalidContract, fmt.Sprintf("Unsupported contract of type %T", contract))
}

func (v *Verifier) expr(value any, expr string, depth int) error {
	atom, err := Parse(expr)
	if err != nil {
		return err
	}
	if atom.Optional && is.Undefined(value) {
		return nil
	}

	if len(atom.Alternatives) == 1 {
		return v.named(value, atom.Alternatives[0], depth)
	}
	for _, name := range atom.Alternatives {
		err := v.named(value, name, depth)
		if err == nil {
			return nil
		}
		if exception.CodeOf(err) == exception.CodeInvalidContract {
			return err
		}
	}
	return Mismatch(atom.Expected(), value)
}

func (v *Verifier) named(value any, name string, depth int) error {
	if k, ok := is.Lookup(name); ok {
		if k.Match(value) {
			return nil
		}
		return Mismatch(name, value)
	}
	if v.types != nil {
		if def, ok := v.types.Lookup(name); ok {
			return v.verify(value, def, depth+1)
		}
	}
	return exception.New(exception.CodeInvalidContract, "Unknown type \""+name+"\"")
}

func checkFunc(fn func(any) bool, value any) error {
	if fn == nil {
		return exception.New(exception.CodeInvalidContract, "Contract is missing")
	}
	if fn(value) {
		return nil
	}
	return Mismatch("predicate", value)
}

// Mismatch builds the canonical type mismatch failure.
func Mismatch(expected string, value any) *exception.Exception {
	return exception.New(exception.CodeInvalidType,
		fmt.Sprintf("Expected %s but got %s", expected, is.TypeName(value)))
}
