package bycontract

import (
	"github.com/dmitrymomot/bycontract/pkg/is"
)

// ValidateCombo checks values against each contract list in combos and
// succeeds if at least one list accepts them all. When none does, the failure
// of the first list is returned as is.
func (e *Engine) ValidateCombo(values, combos any, callContext ...string) (any, error) {
	s := e.snapshot()
	if !s.opts.Enable {
		return values, nil
	}
	label, err := contextLabel("ValidateCombo", callContext)
	if err != nil {
		return nil, err
	}

	if !is.Sequence(values) {
		return nil, invalidParam("Invalid ValidateCombo() parameters. The first parameter (values) shall be an array", label)
	}
	list, ok := is.Slice(combos)
	if !ok {
		return nil, invalidParam("Invalid ValidateCombo() parameters. The second parameter (combo) shall be an array", label)
	}
	if len(list) == 0 {
		return nil, invalidParam("Invalid ValidateCombo() parameters. The second parameter (combo) shall not be empty", label)
	}

	var first error
	for _, contracts := range list {
		err := e.validate(s, values, contracts, label)
		if err == nil {
			return values, nil
		}
		if first == nil {
			first = err
		}
	}
	return nil, first
}
