package resolve

// DefModifiers gates what a namespace binding can be used for from the
// outside: whether `use` can even name it, and whether it crosses a
// module's privacy boundary.
type DefModifiers int

const (
	ModImportable DefModifiers = 1 << iota
	ModPublic
)

func (m DefModifiers) has(bit DefModifiers) bool { return m&bit != 0 }

// ModuleKind distinguishes the flavors of lexical scope a Module can
// stand for, which feeds the "module"/"trait"/"type" wording conflict
// diagnostics use.
type ModuleKind int

const (
	ModuleNormal ModuleKind = iota
	ModuleTrait
	ModuleAnonymous
)

// NsDef is one binding living in a single namespace of a module: either a
// plain Def, or a Def that additionally carries its own child Module (the
// case for `mod`/`trait` items, whose name also opens a nested scope).
type NsDef struct {
	def       Def
	modifiers DefModifiers
	span      Span
	module    *Module
}

// NewNsDef builds a binding for an ordinary item.
func NewNsDef(def Def, modifiers DefModifiers, span Span) *NsDef {
	return &NsDef{def: def, modifiers: modifiers, span: span}
}

// NewNsDefFromModule builds a binding that also opens a nested scope:
// used for `mod` and `trait` items, and for external-module children
// pulled in across a glob.
func NewNsDefFromModule(m *Module, span *Span) *NsDef {
	d := &NsDef{modifiers: ModImportable | ModPublic, module: m}
	if span != nil {
		d.span = *span
	}
	return d
}

// Def returns the underlying definition.
func (d *NsDef) Def() Def { return d.def }

// Module returns the nested scope this binding opens, if any.
func (d *NsDef) Module() (*Module, bool) {
	if d.module == nil {
		return nil, false
	}
	return d.module, true
}

// IsPublic reports whether the binding crosses its module's privacy
// boundary.
func (d *NsDef) IsPublic() bool { return d.modifiers.has(ModPublic) }

// DefinedWith reports whether every bit in modifiers is set on this
// binding.
func (d *NsDef) DefinedWith(modifiers DefModifiers) bool {
	return d.modifiers&modifiers == modifiers
}

// Span is the source location the binding was declared at, when known.
func (d *NsDef) Span() Span { return d.span }

// categoryWord names d's nested module for a conflict message, defaulting
// to "type" when d isn't a module/trait binding.
func (d *NsDef) categoryWord() string {
	if m, ok := d.Module(); ok {
		switch m.Kind {
		case ModuleNormal:
			return "module"
		case ModuleTrait:
			return "trait"
		}
	}
	return "type"
}
