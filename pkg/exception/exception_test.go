package exception_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bycontract/pkg/exception"
)

func TestException_Error(t *testing.T) {
	t.Run("returns message", func(t *testing.T) {
		err := exception.New(exception.CodeInvalidType, "Expected string but got number")
		assert.Equal(t, "Expected string but got number", err.Error())
	})

	t.Run("falls back to code", func(t *testing.T) {
		assert.Equal(t, "EMISSINGARG", exception.ErrMissingArg.Error())
	})
}

func TestException_Prefix(t *testing.T) {
	base := exception.New(exception.CodeInvalidType, "Expected string but got number")

	t.Run("context and index", func(t *testing.T) {
		err := base.Prefix("users.Create", 2)
		assert.Equal(t, "users.Create: Argument #2: Expected string but got number", err.Error())
		assert.Equal(t, exception.CodeInvalidType, err.Code)
	})

	t.Run("index only", func(t *testing.T) {
		assert.Equal(t, "Argument #0: Expected string but got number", base.Prefix("", 0).Error())
	})

	t.Run("context only", func(t *testing.T) {
		assert.Equal(t, "ctx: Expected string but got number", base.Prefix("ctx", -1).Error())
	})

	t.Run("leaves original untouched", func(t *testing.T) {
		_ = base.Prefix("ctx", 1)
		assert.Equal(t, "Expected string but got number", base.Message)
	})
}

func TestException_Is(t *testing.T) {
	err := exception.New(exception.CodeMissingArg, "Missing required argument")

	assert.True(t, errors.Is(err, exception.ErrMissingArg))
	assert.False(t, errors.Is(err, exception.ErrInvalidType))

	wrapped := fmt.Errorf("handler: %w", err)
	assert.True(t, errors.Is(wrapped, exception.ErrMissingArg))
	assert.Equal(t, exception.CodeMissingArg, exception.CodeOf(wrapped))

	e, ok := exception.As(wrapped)
	require.True(t, ok)
	assert.Equal(t, "Missing required argument", e.Message)
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, "", exception.CodeOf(nil))
	assert.Equal(t, "", exception.CodeOf(errors.New("plain")))
}
