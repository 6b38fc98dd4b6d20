package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// NonEmpty passes for strings that are not blank after trimming whitespace.
func NonEmpty() Rule {
	return New("non-empty string", func(v any) bool {
		s, ok := text(v)
		return ok && strings.TrimSpace(s) != ""
	})
}

// MinLen passes for strings of at least min characters.
func MinLen(min int) Rule {
	return New(fmt.Sprintf("string of min length %d", min), func(v any) bool {
		s, ok := text(v)
		return ok && utf8.RuneCountInString(s) >= min
	})
}

// MaxLen passes for strings of at most max characters.
func MaxLen(max int) Rule {
	return New(fmt.Sprintf("string of max length %d", max), func(v any) bool {
		s, ok := text(v)
		return ok && utf8.RuneCountInString(s) <= max
	})
}

// Len passes for strings of exactly n characters.
func Len(n int) Rule {
	return New(fmt.Sprintf("string of length %d", n), func(v any) bool {
		s, ok := text(v)
		return ok && utf8.RuneCountInString(s) == n
	})
}
