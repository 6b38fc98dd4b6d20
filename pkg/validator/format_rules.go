package validator

import (
	"net/mail"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Email passes for a single bare address such as "user@example.com".
func Email() Rule {
	return New("email", func(v any) bool {
		s, ok := text(v)
		if !ok || strings.TrimSpace(s) == "" {
			return false
		}

		addr, err := mail.ParseAddress(s)
		if err != nil || addr.Address != s || addr.Name != "" {
			return false
		}

		local, domain, found := strings.Cut(addr.Address, "@")
		if !found || local == "" || len(local) > 64 {
			return false
		}
		if len(domain) > 253 || !strings.Contains(domain, ".") {
			return false
		}
		return !strings.HasPrefix(domain, ".") && !strings.HasSuffix(domain, ".") && !strings.Contains(domain, "..")
	})
}

// UUID passes for canonical 36-character UUID strings and uuid.UUID values.
func UUID() Rule {
	return New("uuid", func(v any) bool {
		if _, ok := v.(uuid.UUID); ok {
			return true
		}
		s, ok := text(v)
		if !ok || len(s) != 36 {
			return false
		}
		// Fast rejection before parsing.
		if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
			return false
		}
		_, err := uuid.Parse(s)
		return err == nil
	})
}

// NonNilUUID passes for UUIDs other than the all-zero UUID.
func NonNilUUID() Rule {
	valid := UUID()
	return New("non-nil uuid", func(v any) bool {
		if id, ok := v.(uuid.UUID); ok {
			return id != uuid.Nil
		}
		s, ok := text(v)
		if !ok || !valid.Check(s) {
			return false
		}
		id, err := uuid.Parse(s)
		return err == nil && id != uuid.Nil
	})
}

// Matches passes for strings matching pattern. Panics if pattern does not compile.
func Matches(pattern string) Rule {
	re := regexp.MustCompile(pattern)
	return New("string matching "+pattern, func(v any) bool {
		s, ok := text(v)
		return ok && re.MatchString(s)
	})
}
