package resolve

// NodeID identifies the syntax node that introduced an import directive,
// for diagnostics and DefMap bookkeeping.
type NodeID int

// Shadowable controls whether a later, conflicting binding is allowed to
// silently replace this one.
type Shadowable int

const (
	ShadowAlways Shadowable = iota
	ShadowNever
)

// DirectiveSubclass distinguishes what an ImportDirective actually does:
// bind one name (SingleImport) or re-export everything visible
// (GlobImport).
type DirectiveSubclass interface{ directiveSubclass() }

// SingleImport binds Source (as seen in the containing module) to Target
// (the name it gets in the importing module) — same name for a plain
// `use a::b;`, different names for `use a::b as c;`.
type SingleImport struct {
	Target Name
	Source Name
}

func (SingleImport) directiveSubclass() {}

// GlobImport re-exports every importable, public binding of the resolved
// module path.
type GlobImport struct{}

func (GlobImport) directiveSubclass() {}

// ImportDirective is one `use` declaration queued for resolution.
type ImportDirective struct {
	ModulePath []Name
	Subclass   DirectiveSubclass
	Span       Span
	ID         NodeID
	IsPublic   bool
	Shadowable Shadowable
}

// NewImportDirective constructs a directive; modulePath is the leading
// path segments (empty means "relative to the crate root").
func NewImportDirective(modulePath []Name, subclass DirectiveSubclass, span Span, id NodeID, isPublic bool, shadowable Shadowable) *ImportDirective {
	return &ImportDirective{
		ModulePath: modulePath,
		Subclass:   subclass,
		Span:       span,
		ID:         id,
		IsPublic:   isPublic,
		Shadowable: shadowable,
	}
}
