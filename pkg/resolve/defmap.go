package resolve

// PrivateDep records what a path's visibility actually depends on: either
// nothing (fully public all the way through) or a specific definition
// whose own privacy gates it.
type PrivateDep struct {
	allPublic bool
	dependsOn DefID
	hasDep    bool
}

// AllPublicDep is the "nothing private along the path" case.
func AllPublicDep() PrivateDep { return PrivateDep{allPublic: true} }

// DependsOnDef records that visibility depends on def's own privacy.
func DependsOnDef(def DefID) PrivateDep { return PrivateDep{dependsOn: def, hasDep: true} }

// IsAllPublic reports whether this dependency is the trivial public case.
func (p PrivateDep) IsAllPublic() bool { return p.allPublic }

// DependsOnID returns the definition this dependency tracks, if any.
func (p PrivateDep) DependsOnID() (DefID, bool) { return p.dependsOn, p.hasDep }

// LastPrivate is the privacy provenance of one resolved path: either a
// plain module-relative dependency (LastMod) or, for a path that passed
// through an import, a dependency tracked separately per namespace
// (LastImport) since the same NodeID can carry both a value and a type
// resolution.
type LastPrivate struct {
	isImport  bool
	mod       PrivateDep
	valuePriv *PrivateDep
	typePriv  *PrivateDep
}

// NewLastMod builds a non-import path's privacy provenance.
func NewLastMod(dep PrivateDep) LastPrivate { return LastPrivate{mod: dep} }

// NewLastImport builds the empty (not-yet-filled-in) per-namespace
// provenance record_import_resolution populates.
func NewLastImport() LastPrivate { return LastPrivate{isImport: true} }

// IsImport reports which variant this value holds.
func (lp LastPrivate) IsImport() bool { return lp.isImport }

// Mod returns the LastMod payload; valid only when !IsImport().
func (lp LastPrivate) Mod() PrivateDep { return lp.mod }

// setNamespace records dep for ns, valid only when IsImport().
func (lp *LastPrivate) setNamespace(ns Namespace, dep PrivateDep) {
	switch ns {
	case ValueNS:
		lp.valuePriv = &dep
	case TypeNS:
		lp.typePriv = &dep
	}
}

// PathResolution is what the crate-wide DefMap records against a path
// expression or import's NodeID: the definition it names, how privacy
// propagates along the way, and how many path segments were actually
// consumed.
type PathResolution struct {
	BaseDef     Def
	LastPrivate LastPrivate
	Depth       int
}

// DefMap accumulates PathResolutions by NodeID across a resolver run.
type DefMap struct {
	entries map[NodeID]*PathResolution
}

// NewDefMap returns an empty DefMap.
func NewDefMap() *DefMap {
	return &DefMap{entries: make(map[NodeID]*PathResolution)}
}

// Get looks up the resolution recorded for id.
func (m *DefMap) Get(id NodeID) (*PathResolution, bool) {
	r, ok := m.entries[id]
	return r, ok
}

// Set unconditionally (re)records id's resolution. Glob import uses it
// to record the source module itself against the directive's node.
func (m *DefMap) Set(id NodeID, res *PathResolution) {
	m.entries[id] = res
}

// MergeImportNamespace records a single-import's per-namespace result
// into id's entry, creating a fresh LastImport-flavored entry on first
// write and thereafter merging: BaseDef is kept in sync with whichever
// write happened in TypeNS (type wins), and the namespace's
// own privacy dependency is always recorded.
func (m *DefMap) MergeImportNamespace(id NodeID, def Def, ns Namespace, dep PrivateDep) {
	entry, ok := m.entries[id]
	if !ok {
		li := NewLastImport()
		entry = &PathResolution{BaseDef: def, LastPrivate: li}
		m.entries[id] = entry
	}
	if ns == TypeNS {
		entry.BaseDef = def
	}
	entry.LastPrivate.setNamespace(ns, dep)
}

// Len reports how many nodes have a recorded resolution.
func (m *DefMap) Len() int { return len(m.entries) }
