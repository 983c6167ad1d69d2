package resolve

import "github.com/MadAppGang/dingoc/pkg/diag"

// ModulePathResolution is what resolving a directive's leading module
// path (everything before the final `::name`) yields: the module it
// bottoms out in, and the privacy dependency accrued getting there.
type ModulePathResolution struct {
	Module      *Module
	LastPrivate PrivateDep
}

// usedImportKey tracks which (directive, namespace) pairs getBinding
// actually followed.
type usedImportKey struct {
	ID NodeID
	NS Namespace
}

// Resolver holds the whole-crate state the import-resolution fixed point
// reads and writes, plus the two hooks into machinery this package
// deliberately doesn't own: expanding a module's children lazily, and
// resolving a plain (non-import) module path. Both are the reduced-graph
// builder's and the general name-resolution walk's jobs respectively —
// out of scope here (see Non-goals) — so Resolver takes them as
// collaborator functions instead of importing a concrete implementation.
type Resolver struct {
	GraphRoot *Module
	Interner  *Interner
	Sink      *diag.Sink

	UnresolvedImports int

	defMap              *DefMap
	usedImports         map[usedImportKey]struct{}
	usedExternalModules map[*Module]struct{}

	// PopulateIfNecessary expands module's children on first access, the
	// reduced-graph builder's lazy-population hook. NewResolver's default
	// treats every module as already fully populated.
	PopulateIfNecessary func(module *Module)

	// ResolveModulePath resolves a directive's leading path segments
	// (everything but the final component) against origin, using
	// ordinary (non-import) name resolution. NewResolver's default always
	// fails — callers running a real crate must supply this.
	ResolveModulePath func(origin *Module, path []Name, span Span) Result[ModulePathResolution]

	// ASTItemSpan looks up the source span of the `use` item a
	// directive's NodeID names, for "previous import of `x` here" notes.
	// Returns ok=false when unavailable (tests and synthetic fixtures
	// commonly omit it, in which case the note is simply dropped).
	ASTItemSpan func(id NodeID) (Span, bool)
}

// NewResolver returns a Resolver rooted at graphRoot, with both
// collaborator hooks defaulted to harmless no-ops: PopulateIfNecessary
// does nothing (every module is presumed pre-populated) and
// ResolveModulePath always fails. Callers exercising real module-path
// resolution must set these explicitly.
func NewResolver(graphRoot *Module, interner *Interner) *Resolver {
	return &Resolver{
		GraphRoot:           graphRoot,
		Interner:            interner,
		Sink:                diag.NewSink(),
		defMap:              NewDefMap(),
		usedImports:         make(map[usedImportKey]struct{}),
		usedExternalModules: make(map[*Module]struct{}),
		PopulateIfNecessary: func(*Module) {},
		ResolveModulePath: func(*Module, []Name, Span) Result[ModulePathResolution] {
			return Failed[ModulePathResolution](nil)
		},
	}
}

// DefMap returns the crate-wide path-resolution table accumulated so far.
func (r *Resolver) DefMap() *DefMap { return r.defMap }

// markImportUsed records that a binding export actually got followed.
func (r *Resolver) markImportUsed(id NodeID, ns Namespace) {
	r.usedImports[usedImportKey{ID: id, NS: ns}] = struct{}{}
}

// ImportUsed reports whether (id, ns) was ever followed by getBinding.
func (r *Resolver) ImportUsed(id NodeID, ns Namespace) bool {
	_, ok := r.usedImports[usedImportKey{ID: id, NS: ns}]
	return ok
}

// markExternalModuleUsed records that m (an external module reached via
// an import) was actually referenced.
func (r *Resolver) markExternalModuleUsed(m *Module) {
	r.usedExternalModules[m] = struct{}{}
}

// ExternalModuleUsed reports whether m was ever referenced this way.
func (r *Resolver) ExternalModuleUsed(m *Module) bool {
	_, ok := r.usedExternalModules[m]
	return ok
}

func (r *Resolver) itemSpanFor(id NodeID) (Span, bool) {
	if r.ASTItemSpan == nil {
		return Span{}, false
	}
	return r.ASTItemSpan(id)
}

// UnusedImports returns the single-import directives of module that
// resolved successfully but whose binding was never actually followed
// in either namespace, which is what the used-imports bookkeeping
// exists to support.
func (r *Resolver) UnusedImports(module *Module) []*ImportDirective {
	var out []*ImportDirective
	for _, d := range module.imports[:module.resolvedImportCount] {
		if _, ok := d.Subclass.(SingleImport); !ok {
			continue
		}
		if !r.ImportUsed(d.ID, ValueNS) && !r.ImportUsed(d.ID, TypeNS) {
			out = append(out, d)
		}
	}
	return out
}

// UnusedExternCrates returns the crate-root's external module children
// that were never referenced by any resolved import, the `used_crates`
// counterpart to UnusedImports.
func (r *Resolver) UnusedExternCrates() []*Module {
	var out []*Module
	for _, m := range r.GraphRoot.ExternalModuleChildren() {
		if !r.ExternalModuleUsed(m) {
			out = append(out, m)
		}
	}
	return out
}
