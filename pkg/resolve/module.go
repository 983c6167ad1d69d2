package resolve

// Module is one lexical scope in the tree the resolver walks: a source
// module, an anonymous block scope, or an external (already-resolved)
// crate module pulled in as a child. Modules are always handled through
// pointers so that "is this the same module" can be answered with plain
// pointer identity — the self-glob check in resolveGlobImport relies on
// exactly that.
type Module struct {
	Name string
	Kind ModuleKind
	def  *DefID

	parent *Module

	children               map[nsKey]*NsDef
	anonymousChildren      map[int]*Module
	externalModuleChildren map[Name]*Module

	imports           []*ImportDirective
	importResolutions map[nsKey]*ImportResolution

	pubCount            int
	globCount           int
	pubGlobCount        int
	resolvedImportCount int
}

// NewModule returns an empty module named name (for diagnostics), owned
// by parent (nil for the crate root).
func NewModule(name string, kind ModuleKind, parent *Module) *Module {
	return &Module{
		Name:                   name,
		Kind:                   kind,
		parent:                 parent,
		children:               make(map[nsKey]*NsDef),
		anonymousChildren:      make(map[int]*Module),
		externalModuleChildren: make(map[Name]*Module),
		importResolutions:      make(map[nsKey]*ImportResolution),
	}
}

// SetDefID attaches the definition identity of the item that introduced
// this module (absent for the crate root and for anonymous scopes).
func (m *Module) SetDefID(id DefID) { m.def = &id }

// DefID returns the module's own definition identity, if it has one.
func (m *Module) DefID() (DefID, bool) {
	if m.def == nil {
		return DefID{}, false
	}
	return *m.def, true
}

// Parent returns the enclosing module, or nil for the crate root.
func (m *Module) Parent() *Module { return m.parent }

// GetChild looks up a direct item binding — triggering no lazy
// population; callers must invoke the reduced-graph hook first.
func (m *Module) GetChild(name Name, ns Namespace) (*NsDef, bool) {
	d, ok := m.children[nsKey{Name: name, NS: ns}]
	return d, ok
}

// Children exposes the raw binding map for iteration (glob import walks
// every child of its source module).
func (m *Module) Children() map[nsKey]*NsDef { return m.children }

// AddChild installs a direct item binding, as the reduced-graph builder
// would when populating this module.
func (m *Module) AddChild(name Name, ns Namespace, def *NsDef) {
	m.children[nsKey{Name: name, NS: ns}] = def
}

// AddAnonymousChild registers a nested block scope under a synthetic id.
func (m *Module) AddAnonymousChild(id int, child *Module) {
	m.anonymousChildren[id] = child
}

// AnonymousChildren exposes the anonymous-scope map for subtree walks.
func (m *Module) AnonymousChildren() map[int]*Module { return m.anonymousChildren }

// AddExternalModuleChild registers an already-resolved external module
// (e.g. an `extern crate` target) as reachable by name from this module.
func (m *Module) AddExternalModuleChild(name Name, child *Module) {
	m.externalModuleChildren[name] = child
}

// ExternalModuleChild looks up an external module child by name.
func (m *Module) ExternalModuleChild(name Name) (*Module, bool) {
	c, ok := m.externalModuleChildren[name]
	return c, ok
}

// ExternalModuleChildren exposes the raw map for glob import's sweep
// over external children.
func (m *Module) ExternalModuleChildren() map[Name]*Module { return m.externalModuleChildren }

// Imports returns every directive added to this module: the first
// resolved_import_count of them have resolved, the rest are still pending.
func (m *Module) Imports() []*ImportDirective { return m.imports }

// ImportResolution looks up the (possibly still-empty) resolution slot
// for (name, ns).
func (m *Module) ImportResolution(name Name, ns Namespace) (*ImportResolution, bool) {
	r, ok := m.importResolutions[nsKey{Name: name, NS: ns}]
	return r, ok
}

// ImportResolutions exposes the raw map for glob import's sweep over
// already-resolved imports of the source module.
func (m *Module) ImportResolutions() map[nsKey]*ImportResolution { return m.importResolutions }

// GetOrCreateImportResolution fetches the slot for (name, ns), creating
// an empty one (owned by id/isPublic) if none exists yet, for the
// glob-merge path that may touch names no directive pre-seeded.
func (m *Module) GetOrCreateImportResolution(name Name, ns Namespace, id NodeID, isPublic bool) *ImportResolution {
	k := nsKey{Name: name, NS: ns}
	if r, ok := m.importResolutions[k]; ok {
		return r
	}
	r := NewImportResolution(id, isPublic)
	m.importResolutions[k] = r
	return r
}

// AddImport registers directive as pending resolution in this module and
// pre-seeds the import_resolutions slots a Single directive will write:
// resolveInImports and checkAndWriteImport assume the slot already
// exists by the time a directive is ready to be looked up by a sibling
// import or recorded into.
func (m *Module) AddImport(directive *ImportDirective) {
	m.imports = append(m.imports, directive)

	switch sub := directive.Subclass.(type) {
	case SingleImport:
		for _, ns := range namespaces {
			r := m.GetOrCreateImportResolution(sub.Target, ns, directive.ID, directive.IsPublic)
			r.OutstandingReferences++
		}
	case GlobImport:
		m.globCount++
		if directive.IsPublic {
			m.pubGlobCount++
		}
	}
	if directive.IsPublic {
		m.pubCount++
	}
}

// AllImportsResolved reports whether every directive originally added to
// this module has been accounted for.
func (m *Module) AllImportsResolved() bool {
	return m.resolvedImportCount == len(m.imports)
}

func (m *Module) decPubCount() {
	if m.pubCount > 0 {
		m.pubCount--
	}
}

func (m *Module) decGlobCount() {
	if m.globCount > 0 {
		m.globCount--
	}
}

func (m *Module) decPubGlobCount() {
	if m.pubGlobCount > 0 {
		m.pubGlobCount--
	}
}

// PubGlobCount reports how many unresolved `pub use ...::*` directives
// remain in this module — resolveInImports bails out Indeterminate while
// this is nonzero, since a later glob could still shadow the answer.
func (m *Module) PubGlobCount() int { return m.pubGlobCount }

// PubCount reports how many unresolved `pub` imports (of any kind) remain.
func (m *Module) PubCount() int { return m.pubCount }
