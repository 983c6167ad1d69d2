package resolve

import (
	"testing"

	"github.com/MadAppGang/dingoc/pkg/diag"
)

func TestResolveGlobImportSelfGlobFails(t *testing.T) {
	in := NewInterner()
	module := NewModule("m", ModuleNormal, nil)
	directive := NewImportDirective(nil, GlobImport{}, Span{}, 1, false, ShadowAlways)

	r := NewResolver(module, in)
	result := resolveGlobImport(r, module, module, directive, AllPublicDep())

	if !result.IsFailed() {
		t.Fatal("expected glob-importing a module into itself to fail")
	}
	if result.FailedDetail().Message == "" {
		t.Fatal("expected a diagnostic message explaining the self-glob failure")
	}
}

func TestResolveGlobImportBlocksOnUnresolvedPubImports(t *testing.T) {
	in := NewInterner()
	src := NewModule("src", ModuleNormal, nil)
	src.pubCount = 1
	dest := NewModule("dest", ModuleNormal, nil)
	directive := NewImportDirective(nil, GlobImport{}, Span{}, 1, false, ShadowAlways)

	r := NewResolver(dest, in)
	result := resolveGlobImport(r, dest, src, directive, AllPublicDep())

	if !result.IsIndeterminate() {
		t.Fatal("expected Indeterminate while the source module has unresolved pub imports")
	}
}

func TestResolveGlobImportMergesPublicChildren(t *testing.T) {
	in := NewInterner()
	foo := in.Intern("foo")

	src := NewModule("src", ModuleNormal, nil)
	src.AddChild(foo, ValueNS, NewNsDef(Def{ID: DefID{Index: 1}, Kind: DefKindValue}, ModImportable|ModPublic, Span{}))

	dest := NewModule("dest", ModuleNormal, nil)
	directive := NewImportDirective(nil, GlobImport{}, Span{}, 1, false, ShadowAlways)

	r := NewResolver(dest, in)
	result := resolveGlobImport(r, dest, src, directive, AllPublicDep())

	if !result.IsSuccess() {
		t.Fatalf("expected glob import to succeed, got %+v", result.FailedDetail())
	}

	res, ok := dest.ImportResolution(foo, ValueNS)
	if !ok || res.Target == nil {
		t.Fatal("expected foo to be merged into dest's import resolutions")
	}
	if res.Target.TargetModule != src {
		t.Fatal("expected the merged target to point at src")
	}
}

func TestResolveGlobImportSkipsPrivateChildren(t *testing.T) {
	in := NewInterner()
	secret := in.Intern("secret")

	src := NewModule("src", ModuleNormal, nil)
	src.AddChild(secret, ValueNS, NewNsDef(Def{ID: DefID{Index: 1}, Kind: DefKindValue}, ModImportable, Span{}))

	dest := NewModule("dest", ModuleNormal, nil)
	directive := NewImportDirective(nil, GlobImport{}, Span{}, 1, false, ShadowAlways)

	r := NewResolver(dest, in)
	result := resolveGlobImport(r, dest, src, directive, AllPublicDep())
	if !result.IsSuccess() {
		t.Fatal("expected success even though nothing public was merged")
	}

	if res, ok := dest.ImportResolution(secret, ValueNS); ok && res.Target != nil {
		t.Fatal("a private child must not be merged across a glob import")
	}
}

// TestResolveImportsMutualPublicGlobCycle covers
//
//	mod a { pub use b::*; }
//	mod b { pub use a::*; }
//
// Each glob's source module carries a pending pub import (the other
// glob), so both stay indeterminate; the outer fixed point must detect
// the stall and report both as unresolved rather than spin.
func TestResolveImportsMutualPublicGlobCycle(t *testing.T) {
	in := NewInterner()
	nameA := in.Intern("a")
	nameB := in.Intern("b")

	root := NewModule("crate", ModuleNormal, nil)
	moduleA := NewModule("a", ModuleNormal, root)
	moduleB := NewModule("b", ModuleNormal, root)
	root.AddChild(nameA, TypeNS, NewNsDefFromModule(moduleA, nil))
	root.AddChild(nameB, TypeNS, NewNsDefFromModule(moduleB, nil))

	moduleA.AddImport(NewImportDirective([]Name{nameB}, GlobImport{}, Span{}, 1, true, ShadowNever))
	moduleB.AddImport(NewImportDirective([]Name{nameA}, GlobImport{}, Span{}, 2, true, ShadowNever))

	r := NewResolver(root, in)
	r.ResolveModulePath = testPathResolver(root)
	r.UnresolvedImports = 2

	ResolveImports(r)

	if r.UnresolvedImports != 2 {
		t.Fatalf("expected both globs to remain unresolved, counter is %d", r.UnresolvedImports)
	}
	if r.Sink.Len() != 2 {
		t.Fatalf("expected two unresolved-import diagnostics, got %d: %v", r.Sink.Len(), r.Sink.All())
	}
	for _, d := range r.Sink.All() {
		if d.Code != diag.CodeUnresolvedImport {
			t.Fatalf("expected an unresolved-import diagnostic, got %s", d.Code)
		}
	}
}

func TestMergeImportResolutionReportsE0251WhenNotShadowable(t *testing.T) {
	in := NewInterner()
	foo := in.Intern("foo")

	dest := NewModule("dest", ModuleNormal, nil)
	existing := NewNsDef(Def{ID: DefID{Index: 1}, Kind: DefKindValue}, ModImportable|ModPublic, Span{})
	existingRes := dest.GetOrCreateImportResolution(foo, ValueNS, 1, false)
	existingRes.Target = NewTarget(NewModule("other", ModuleNormal, nil), existing, ShadowNever)

	r := NewResolver(dest, in)
	directive := NewImportDirective(nil, GlobImport{}, Span{}, 2, false, ShadowAlways)
	incoming := NewNsDef(Def{ID: DefID{Index: 2}, Kind: DefKindValue}, ModImportable|ModPublic, Span{})

	mergeImportResolution(r, dest, NewModule("src", ModuleNormal, nil), directive, foo, ValueNS, incoming)

	if r.Sink.Len() != 1 || r.Sink.All()[0].Code != diag.CodeGlobDuplicate {
		t.Fatalf("expected a single E0251 diagnostic, got %v", r.Sink.All())
	}
	if existingRes.Target.NsDef != existing {
		t.Fatal("a non-shadowable existing target must survive the conflicting merge")
	}
}
