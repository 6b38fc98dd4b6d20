package bycontract_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bycontract"
	"github.com/dmitrymomot/bycontract/pkg/verify"
)

func TestTypedef(t *testing.T) {
	t.Run("alias behaves like its target", func(t *testing.T) {
		e := bycontract.New()
		require.NoError(t, e.Typedef("X", "string"))

		for _, v := range []any{"s", 1, nil, true} {
			_, aliasErr := e.Validate(v, "X")
			_, directErr := e.Validate(v, "string")
			assert.Equal(t, directErr, aliasErr)
		}
	})

	t.Run("primitive names are reserved", func(t *testing.T) {
		e := bycontract.New()
		for _, name := range []string{"string", "String", "*", "nan", "arguments", "Arguments"} {
			err := e.Typedef(name, "number")
			require.Error(t, err, name)
			assert.ErrorIs(t, err, bycontract.ErrInvalidParam)
			assert.EqualError(t, err, "Custom type must not override a primitive")
		}
		assert.Empty(t, e.Types())
	})

	t.Run("invalid names", func(t *testing.T) {
		e := bycontract.New()
		for _, name := range []string{"", " Id", "a|b", "Id="} {
			err := e.Typedef(name, "number")
			assert.ErrorIs(t, err, bycontract.ErrInvalidParam, name)
		}
	})

	t.Run("overwrites", func(t *testing.T) {
		e := bycontract.New()
		require.NoError(t, e.Typedef("Id", "string"))
		require.NoError(t, e.Typedef("Id", "number"))

		_, err := e.Validate(1, "Id")
		assert.NoError(t, err)
		def, ok := e.Lookup("Id")
		require.True(t, ok)
		assert.Equal(t, "number", def)
	})

	t.Run("shape definitions", func(t *testing.T) {
		e := bycontract.New()
		require.NoError(t, e.Typedef("Point", verify.Shape{"x": "number", "y": "number"}))
		require.NoError(t, e.Typedef("Segment", map[string]any{"from": "Point", "to": "Point"}))

		seg := map[string]any{
			"from": map[string]any{"x": 0, "y": 0},
			"to":   map[string]any{"x": 1, "y": "1"},
		}
		_, err := e.Validate([]any{seg}, []string{"Segment"}, "draw")
		require.Error(t, err)
		assert.EqualError(t, err, "draw: Argument #0: Property #to: Property #y: Expected number but got string")
		assert.ErrorIs(t, err, bycontract.ErrInvalidType)
	})

	t.Run("optional custom type", func(t *testing.T) {
		e := bycontract.New()
		require.NoError(t, e.Typedef("Id", "string"))

		_, err := e.Validate([]any{}, []string{"Id="})
		assert.NoError(t, err)
		_, err = e.Validate([]any{5}, []string{"Id="})
		assert.EqualError(t, err, "Argument #0: Expected string but got number")
	})

	t.Run("predicate definitions", func(t *testing.T) {
		e := bycontract.New()
		require.NoError(t, e.Typedef("Even", func(v any) bool { n, ok := v.(int); return ok && n%2 == 0 }))

		_, err := e.Validate(4, "Even")
		assert.NoError(t, err)
		_, err = e.Validate(3, "Even")
		assert.Error(t, err)
	})

	t.Run("recursive shapes accept long values", func(t *testing.T) {
		e := bycontract.New()
		require.NoError(t, e.Typedef("Node", verify.Shape{"value": "number", "next": "Node="}))

		head := map[string]any{"value": 0}
		for i := 1; i < 50; i++ {
			head = map[string]any{"value": i, "next": head}
		}
		_, err := e.Validate(head, "Node")
		assert.NoError(t, err)
	})

	t.Run("alias cycle", func(t *testing.T) {
		e := bycontract.New()
		require.NoError(t, e.Typedef("A", "B"))
		require.NoError(t, e.Typedef("B", "A"))

		_, err := e.Validate(1, "A")
		assert.ErrorIs(t, err, bycontract.ErrInvalidContract)
	})

	t.Run("registries are isolated per engine", func(t *testing.T) {
		a, b := bycontract.New(), bycontract.New()
		require.NoError(t, a.Typedef("Id", "string"))

		_, err := b.Validate("x", "Id")
		assert.ErrorIs(t, err, bycontract.ErrInvalidContract)
	})

	t.Run("types copy", func(t *testing.T) {
		e := bycontract.New()
		require.NoError(t, e.Typedef("Id", "string"))
		types := e.Types()
		types["Other"] = "number"
		_, ok := e.Lookup("Other")
		assert.False(t, ok)
	})
}

func TestWithTypes(t *testing.T) {
	t.Run("registers at construction", func(t *testing.T) {
		e := bycontract.New(bycontract.WithTypes(map[string]any{"Id": "string|number"}))
		_, err := e.Validate(1, "Id")
		assert.NoError(t, err)
	})

	t.Run("panics on primitive names", func(t *testing.T) {
		assert.Panics(t, func() {
			bycontract.New(bycontract.WithTypes(map[string]any{"string": "number"}))
		})
	})
}

func TestEngine_ConcurrentUse(t *testing.T) {
	const (
		workers    = 8
		iterations = 200
	)

	e := bycontract.New()
	require.NoError(t, e.Typedef("Id", "string"))

	var wg sync.WaitGroup
	errs := make(chan error, workers*iterations*2)

	for w := range workers {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for i := range iterations {
				if err := e.Typedef(fmt.Sprintf("T%d_%d", w, i), "number"); err != nil {
					errs <- err
				}
				if err := e.Typedef("Id", "string|number"); err != nil {
					errs <- err
				}
				e.Config(
					bycontract.WithEnable(i%2 == 0),
					bycontract.WithSetting(fmt.Sprintf("w%d", w), i),
				)
			}
		}()
		go func() {
			defer wg.Done()
			for range iterations {
				if _, err := e.Validate([]any{"x", 1}, []string{"Id", "number"}, "worker"); err != nil {
					errs <- err
				}
				_ = e.Options()
				_ = e.Types()
				_, _ = e.Lookup("Id")
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	assert.Len(t, e.Types(), workers*iterations+1)
	assert.Len(t, e.Options().Settings, workers)
}
