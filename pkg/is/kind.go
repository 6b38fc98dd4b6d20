package is

import (
	"golang.org/x/text/cases"
)

// Kind is a primitive type recognized by contracts.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindUndefined
	KindNull
	KindNaN
	KindNumber
	KindString
	KindBoolean
	KindFunction
	KindRegExp
	KindArray
	KindObject
	KindAny
)

var kindNames = [...]string{
	KindInvalid:   "invalid",
	KindUndefined: "undefined",
	KindNull:      "null",
	KindNaN:       "nan",
	KindNumber:    "number",
	KindString:    "string",
	KindBoolean:   "boolean",
	KindFunction:  "function",
	KindRegExp:    "regexp",
	KindArray:     "array",
	KindObject:    "object",
	KindAny:       "*",
}

var byName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		if Kind(k) == KindInvalid {
			continue
		}
		m[name] = Kind(k)
	}
	return m
}()

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return kindNames[KindInvalid]
}

// Match reports whether v is of kind k. KindAny matches everything.
func (k Kind) Match(v any) bool {
	switch k {
	case KindInvalid:
		return false
	case KindAny:
		return true
	}
	return Of(v) == k
}

// Lookup resolves a primitive type name, ignoring case.
func Lookup(name string) (Kind, bool) {
	if k, ok := byName[name]; ok {
		return k, true
	}
	k, ok := byName[Fold(name)]
	return k, ok
}

// Primitive reports whether name is a primitive type name.
func Primitive(name string) bool {
	_, ok := Lookup(name)
	return ok
}

// ArgumentsName names the Arguments predicate. It is not a primitive but
// stays reserved so custom types cannot shadow it.
const ArgumentsName = "arguments"

// Reserved reports whether name is unavailable for custom types: a primitive
// name or ArgumentsName, in any case.
func Reserved(name string) bool {
	return Primitive(name) || Fold(name) == ArgumentsName
}

// Names returns all primitive type names in precedence order.
func Names() []string {
	names := make([]string, 0, len(kindNames)-1)
	for k := KindUndefined; k <= KindAny; k++ {
		names = append(names, k.String())
	}
	return names
}

// Fold returns the case-folded form of a type name.
// Casers are stateful, so each call gets its own.
func Fold(name string) string {
	return cases.Fold().String(name)
}
