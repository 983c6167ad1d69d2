// Package resolve implements the import resolver: a fixed-point algorithm
// that, over a tree of lexical scopes (modules), resolves a declarative set
// of name-binding directives (single-name imports and glob imports) into
// concrete per-namespace bindings — diagnosing conflicts, ambiguity,
// privacy violations, and genuinely unresolvable references along the way.
package resolve

// Name is an interned symbol. Interner guarantees that two Names compare
// equal exactly when their source text is equal, so Names can be used
// directly as map keys without repeated string comparison.
type Name int

// Interner maps symbol text to small dense Name values.
type Interner struct {
	byText []string
	lookup map[string]Name
}

// NewInterner returns an empty Interner.
func NewInterner() *Interner {
	return &Interner{lookup: make(map[string]Name)}
}

// Intern returns the Name for text, allocating a new one if text has not
// been seen before.
func (in *Interner) Intern(text string) Name {
	if n, ok := in.lookup[text]; ok {
		return n
	}
	n := Name(len(in.byText))
	in.byText = append(in.byText, text)
	in.lookup[text] = n
	return n
}

// Text returns the source text behind n.
func (in *Interner) Text(n Name) string {
	return in.byText[n]
}

// Namespace is the closed set a name may be bound in: types (including
// modules and traits) or values.
type Namespace int

const (
	ValueNS Namespace = iota
	TypeNS
)

func (ns Namespace) String() string {
	switch ns {
	case ValueNS:
		return "value"
	case TypeNS:
		return "type"
	default:
		return "unknown"
	}
}

// namespaces lists both namespaces in the fixed order single-import
// resolution checks them: Value, then Type.
var namespaces = [2]Namespace{ValueNS, TypeNS}

// nsKey pairs a name with the namespace it is bound in — the key type for
// every per-namespace map in this package (children, import_resolutions).
type nsKey struct {
	Name Name
	NS   Namespace
}
