package resolve

// testPathResolver returns a ResolveModulePath implementation that walks
// a dotted path through root's TypeNS children and external module
// children — everything a real name-resolution pass would do, except
// lexical-scope fallback, which this package's tests never need.
func testPathResolver(root *Module) func(*Module, []Name, Span) Result[ModulePathResolution] {
	return func(_ *Module, path []Name, _ Span) Result[ModulePathResolution] {
		cur := root
		for _, seg := range path {
			if nsDef, ok := cur.GetChild(seg, TypeNS); ok {
				m, ok := nsDef.Module()
				if !ok {
					return Failed[ModulePathResolution](nil)
				}
				cur = m
				continue
			}
			if em, ok := cur.ExternalModuleChild(seg); ok {
				cur = em
				continue
			}
			return Failed[ModulePathResolution](nil)
		}
		return Success(ModulePathResolution{Module: cur, LastPrivate: AllPublicDep()})
	}
}
