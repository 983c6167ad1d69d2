package resolve

import "testing"

// TestResolveImportsSingleImportAcrossModules builds a two-module crate
// (`crate` and a child `a` with a public `foo` value item) and a single
// `use a::foo;` directive in the crate root, then runs the whole fixed
// point end to end.
func TestResolveImportsSingleImportAcrossModules(t *testing.T) {
	in := NewInterner()
	nameA := in.Intern("a")
	foo := in.Intern("foo")

	root := NewModule("crate", ModuleNormal, nil)
	moduleA := NewModule("a", ModuleNormal, root)
	moduleA.SetDefID(DefID{Index: 10})

	root.AddChild(nameA, TypeNS, NewNsDefFromModule(moduleA, nil))
	fooDef := Def{ID: DefID{Index: 11}, Kind: DefKindValue}
	moduleA.AddChild(foo, ValueNS, NewNsDef(fooDef, ModImportable|ModPublic, Span{}))

	directive := NewImportDirective([]Name{nameA}, SingleImport{Target: foo, Source: foo}, Span{}, 1, false, ShadowAlways)
	root.AddImport(directive)

	r := NewResolver(root, in)
	r.ResolveModulePath = testPathResolver(root)
	r.UnresolvedImports = 1

	ResolveImports(r)

	if r.UnresolvedImports != 0 {
		t.Fatalf("expected all imports resolved, %d remain", r.UnresolvedImports)
	}
	if r.Sink.Len() != 0 {
		t.Fatalf("expected no diagnostics, got %v", r.Sink.All())
	}
	if !root.AllImportsResolved() {
		t.Fatal("expected root.AllImportsResolved()")
	}

	valueRes, ok := root.ImportResolution(foo, ValueNS)
	if !ok || valueRes.Target == nil {
		t.Fatal("expected a resolved value-namespace target for foo")
	}
	if valueRes.Target.TargetModule != moduleA {
		t.Fatal("expected target module to be `a`")
	}
	if valueRes.OutstandingReferences != 0 {
		t.Fatalf("expected outstanding_references 0, got %d", valueRes.OutstandingReferences)
	}

	typeRes, ok := root.ImportResolution(foo, TypeNS)
	if !ok || typeRes.Target != nil {
		t.Fatal("expected an empty type-namespace slot (foo has no type binding)")
	}

	pr, ok := r.DefMap().Get(directive.ID)
	if !ok {
		t.Fatal("expected a DefMap entry for the directive")
	}
	if pr.BaseDef.ID != fooDef.ID {
		t.Fatalf("expected base_def to name foo, got %+v", pr.BaseDef)
	}
	if !pr.LastPrivate.IsImport() {
		t.Fatal("expected an import-flavored LastPrivate")
	}
}

// TestResolveImportsReportsUnresolvedWhenStalled covers a directive that
// can never make progress: importing a name from the crate root into
// the crate root itself, where that name is never declared by anything
// else. Each sweep finds only its own still-pending pre-seeded slot, so
// the fixed point stalls and must report it as unresolved rather than
// loop forever.
func TestResolveImportsReportsUnresolvedWhenStalled(t *testing.T) {
	in := NewInterner()
	missing := in.Intern("missing")

	root := NewModule("crate", ModuleNormal, nil)
	directive := NewImportDirective(nil, SingleImport{Target: missing, Source: missing}, Span{}, 1, false, ShadowAlways)
	root.AddImport(directive)

	r := NewResolver(root, in)
	r.ResolveModulePath = testPathResolver(root)
	r.UnresolvedImports = 1

	ResolveImports(r)

	if r.UnresolvedImports != 1 {
		t.Fatalf("expected the import to remain unresolved, got counter %d", r.UnresolvedImports)
	}
	if r.Sink.Len() == 0 {
		t.Fatal("expected a diagnostic for the unresolvable name")
	}
}
