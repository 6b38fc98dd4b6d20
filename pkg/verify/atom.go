package verify

import (
	"strings"

	"github.com/dmitrymomot/bycontract/pkg/exception"
)

// OptionalMarker is the suffix marking a contract whose value may be omitted.
const OptionalMarker = "="

// Atom is a parsed type expression.
type Atom struct {
	// Alternatives holds the type names joined by "|", without markers.
	Alternatives []string
	// Optional is set when the expression accepts an undefined value.
	Optional bool
}

// Expected renders the alternatives the way they appear in failure messages.
func (a Atom) Expected() string {
	return strings.Join(a.Alternatives, "|")
}

// Parse splits a type expression into its alternatives.
func Parse(expr string) (Atom, error) {
	var a Atom
	for _, part := range strings.Split(expr, "|") {
		name := strings.TrimSpace(part)
		if strings.HasSuffix(name, OptionalMarker) {
			a.Optional = true
			name = strings.TrimSpace(strings.TrimSuffix(name, OptionalMarker))
		}
		if name == "" {
			return Atom{}, exception.New(exception.CodeInvalidContract, "Invalid contract \""+expr+"\"")
		}
		a.Alternatives = append(a.Alternatives, name)
	}
	return a, nil
}

// Optional reports whether a contract marks its position as omittable.
// Only type expressions can carry the marker.
func Optional(contract any) bool {
	s, ok := contract.(string)
	return ok && strings.HasSuffix(strings.TrimSpace(s), OptionalMarker)
}
