package bycontract

import (
	"fmt"

	"github.com/dmitrymomot/bycontract/pkg/exception"
	"github.com/dmitrymomot/bycontract/pkg/is"
	"github.com/dmitrymomot/bycontract/pkg/logger"
	"github.com/dmitrymomot/bycontract/pkg/verify"
)

// Validate checks values against contract and returns values unchanged.
//
// When contract is a positional list ([]string or []any of atoms), values
// must be a slice or array and each position i is checked against
// contract[i]; positions past the end of values are missing, which is an
// error unless the contract at i ends with "=". Any other contract is checked
// against values as a whole.
//
// callContext is an optional label prefixed to failure messages.
func (e *Engine) Validate(values, contract any, callContext ...string) (any, error) {
	s := e.snapshot()
	if !s.opts.Enable {
		return values, nil
	}
	label, err := contextLabel("Validate", callContext)
	if err != nil {
		return nil, err
	}
	if err := e.validate(s, values, contract, label); err != nil {
		return nil, err
	}
	return values, nil
}

func (e *Engine) validate(s snapshot, values, contract any, label string) error {
	if contract == nil {
		return invalidParam("Invalid Validate() parameters. The second parameter (contracts) is missing", label)
	}

	list, ok, err := positional(contract, label)
	if err != nil {
		return err
	}
	if !ok {
		return e.check(s, values, contract, label, -1)
	}

	args, ok := is.Slice(values)
	if !ok {
		return invalidParam("Invalid Validate() parameters. The second parameter (contracts) is array, "+
			"the first one (values) expected to be array too", label)
	}

	for i, c := range list {
		value := any(is.Undef)
		if i < len(args) {
			value = args[i]
		} else if !verify.Optional(c) {
			err := exception.New(exception.CodeMissingArg, exception.Compose("Missing required argument", label, i))
			e.violation(err, label, i, c)
			return err
		}
		if err := e.check(s, value, c, label, i); err != nil {
			return err
		}
	}
	return nil
}

// positional reports whether contract is a list of atoms and normalizes it.
func positional(contract any, label string) ([]any, bool, error) {
	if !is.Sequence(contract) {
		return nil, false, nil
	}
	list, _ := is.Slice(contract)
	for i, c := range list {
		if c == nil || is.Sequence(c) {
			return nil, false, invalidParam(
				fmt.Sprintf("Invalid Validate() parameters. Contract #%d shall be a type expression or a predicate", i), label)
		}
	}
	return list, true, nil
}

// check resolves one atom against one value. Registered names are looked up
// before the verifier sees them.
func (e *Engine) check(s snapshot, value, contract any, label string, index int) error {
	resolved := contract
	if name, ok := contract.(string); ok {
		if def, ok := s.types[name]; ok {
			resolved = def
		}
	}

	v := verify.New(verify.ResolverFunc(func(name string) (any, bool) {
		def, ok := s.types[name]
		return def, ok
	}))
	err := v.Verify(value, resolved)
	if err == nil {
		return nil
	}

	if ex, ok := exception.As(err); ok {
		err = ex.Prefix(label, index)
	}
	e.violation(err, label, index, contract)
	return err
}

func (e *Engine) violation(err error, label string, index int, contract any) {
	e.log.Debug("contract violation",
		logger.Code(exception.CodeOf(err)),
		logger.CallContext(label),
		logger.Argument(index),
		logger.Contract(describe(contract)),
		logger.Error(err),
	)
}

func contextLabel(fn string, callContext []string) (string, error) {
	switch len(callContext) {
	case 0:
		return "", nil
	case 1:
		return callContext[0], nil
	}
	return "", invalidParam("Invalid "+fn+"() parameters. The third parameter (callContext) "+
		"shall be a single string or omitted", callContext[0])
}

func describe(contract any) string {
	switch c := contract.(type) {
	case string:
		return c
	case fmt.Stringer:
		return c.String()
	case verify.Shape, map[string]any, map[string]string:
		return "shape"
	case nil:
		return "<nil>"
	}
	if is.Function(contract) {
		return "predicate"
	}
	return fmt.Sprintf("%T", contract)
}
