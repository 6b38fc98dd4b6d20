package bycontract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bycontract"
)

func TestDefaultEngine(t *testing.T) {
	t.Cleanup(func() { bycontract.Config(bycontract.WithEnable(true)) })

	require.NoError(t, bycontract.Typedef("DefaultEngineId", "string|number"))
	assert.Contains(t, bycontract.Types(), "DefaultEngineId")

	_, err := bycontract.Validate([]any{1}, []string{"DefaultEngineId"}, "default")
	assert.NoError(t, err)

	_, err = bycontract.ValidateCombo([]any{true}, [][]string{{"DefaultEngineId"}, {"boolean"}})
	assert.NoError(t, err)

	bycontract.Config(bycontract.WithEnable(false))
	assert.False(t, bycontract.CurrentOptions().Enable)
	_, err = bycontract.Validate(1, "string")
	assert.NoError(t, err)

	bycontract.Config(bycontract.WithEnable(true))
	_, err = bycontract.Validate(1, "string")
	assert.ErrorIs(t, err, bycontract.ErrInvalidType)
	assert.Same(t, bycontract.Default(), bycontract.Default())
}
