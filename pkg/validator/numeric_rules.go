package validator

import (
	"fmt"
	"math"
)

// Min passes for numbers greater than or equal to min.
func Min(min float64) Rule {
	return New(fmt.Sprintf("number >= %g", min), func(v any) bool {
		f, ok := float(v)
		return ok && f >= min
	})
}

// Max passes for numbers less than or equal to max.
func Max(max float64) Rule {
	return New(fmt.Sprintf("number <= %g", max), func(v any) bool {
		f, ok := float(v)
		return ok && f <= max
	})
}

// Between passes for numbers in the closed range [min, max].
func Between(min, max float64) Rule {
	return New(fmt.Sprintf("number in [%g, %g]", min, max), func(v any) bool {
		f, ok := float(v)
		return ok && f >= min && f <= max
	})
}

// Integer passes for numbers without a fractional part.
func Integer() Rule {
	return New("integer", func(v any) bool {
		f, ok := float(v)
		return ok && !math.IsInf(f, 0) && f == math.Trunc(f)
	})
}
