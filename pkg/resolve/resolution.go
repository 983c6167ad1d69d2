package resolve

// Target is what an import resolves to: the module it was found in, the
// binding itself, and whether that binding may later be shadowed.
type Target struct {
	TargetModule *Module
	NsDef        *NsDef
	Shadowable   Shadowable
}

// NewTarget builds a Target.
func NewTarget(targetModule *Module, nsDef *NsDef, shadowable Shadowable) *Target {
	return &Target{TargetModule: targetModule, NsDef: nsDef, Shadowable: shadowable}
}

// ImportResolution is the (name, namespace) slot a module's imports
// write into. It exists before it has a Target — pre-seeded at directive
// intake (Module.AddImport) so sibling imports can find and wait on it.
type ImportResolution struct {
	OutstandingReferences int
	IsPublic              bool
	Target                *Target
	ID                    NodeID
}

// NewImportResolution returns an empty slot owned by the directive id.
func NewImportResolution(id NodeID, isPublic bool) *ImportResolution {
	return &ImportResolution{ID: id, IsPublic: isPublic}
}

// Shadowable reports whether this slot's current binding, if any, may be
// shadowed — an empty slot is always shadowable.
func (r *ImportResolution) Shadowable() Shadowable {
	if r.Target != nil {
		return r.Target.Shadowable
	}
	return ShadowAlways
}
