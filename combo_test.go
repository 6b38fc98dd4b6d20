package bycontract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bycontract"
)

func TestValidateCombo(t *testing.T) {
	e := bycontract.New()
	combos := [][]string{
		{"string", "number"},
		{"object"},
	}

	t.Run("first combo matches", func(t *testing.T) {
		values := []any{"a", 1}
		out, err := e.ValidateCombo(values, combos)
		require.NoError(t, err)
		assert.Equal(t, values, out)
	})

	t.Run("second combo matches", func(t *testing.T) {
		_, err := e.ValidateCombo([]any{map[string]any{}}, combos)
		assert.NoError(t, err)
	})

	t.Run("surfaces the first failure when none match", func(t *testing.T) {
		_, err := e.ValidateCombo([]any{true}, combos, "fn")
		require.Error(t, err)
		assert.EqualError(t, err, "fn: Argument #0: Expected string but got boolean")
		assert.ErrorIs(t, err, bycontract.ErrInvalidType)
	})

	t.Run("first failure may be a missing argument", func(t *testing.T) {
		_, err := e.ValidateCombo([]any{"a"}, [][]string{{"string", "number"}, {"number"}})
		require.Error(t, err)
		assert.ErrorIs(t, err, bycontract.ErrMissingArg)
	})

	t.Run("mixed combo list", func(t *testing.T) {
		isTrue := func(v any) bool { return v == true }
		_, err := e.ValidateCombo([]any{true}, []any{[]string{"string"}, []any{isTrue}})
		assert.NoError(t, err)
	})

	t.Run("custom types inside combos", func(t *testing.T) {
		e := bycontract.New(bycontract.WithTypes(map[string]any{"Id": "string|number"}))
		_, err := e.ValidateCombo([]any{7}, [][]string{{"boolean"}, {"Id"}})
		assert.NoError(t, err)
	})
}

func TestValidateCombo_InvalidParams(t *testing.T) {
	e := bycontract.New()

	t.Run("values must be a sequence", func(t *testing.T) {
		_, err := e.ValidateCombo("a", [][]string{{"string"}})
		require.Error(t, err)
		assert.ErrorIs(t, err, bycontract.ErrInvalidParam)
		assert.Contains(t, err.Error(), "The first parameter (values) shall be an array")
	})

	t.Run("combos must be a sequence", func(t *testing.T) {
		_, err := e.ValidateCombo([]any{"a"}, "string", "fn")
		require.Error(t, err)
		assert.ErrorIs(t, err, bycontract.ErrInvalidParam)
		assert.Contains(t, err.Error(), "fn: Invalid ValidateCombo() parameters. The second parameter (combo)")
	})

	t.Run("combos must not be empty", func(t *testing.T) {
		_, err := e.ValidateCombo([]any{"a"}, [][]string{})
		assert.ErrorIs(t, err, bycontract.ErrInvalidParam)
	})
}
