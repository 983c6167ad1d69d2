package fixture

import (
	"testing"

	"github.com/MadAppGang/dingoc/pkg/resolve"
)

const sampleArchive = `
-- crate --
import single foo <- a::foo
-- crate::a --
pub child value foo
pub child type Bar
-- extern::libc --
pub child value exit
`

func TestParseModuleTreeBuildsCrateAndChild(t *testing.T) {
	tree, err := ParseModuleTree([]byte(sampleArchive))
	if err != nil {
		t.Fatalf("ParseModuleTree: %v", err)
	}
	if tree.Root == nil || tree.Root.Name != "crate" {
		t.Fatalf("expected a crate root, got %+v", tree.Root)
	}

	nameA := tree.Interner.Intern("a")
	childA, ok := tree.Root.GetChild(nameA, resolve.TypeNS)
	if !ok {
		t.Fatal("expected crate to have a child module a")
	}
	moduleA, isModule := childA.Module()
	if !isModule {
		t.Fatal("expected a's child binding to open a nested module")
	}

	foo := tree.Interner.Intern("foo")
	fooDef, ok := moduleA.GetChild(foo, resolve.ValueNS)
	if !ok || !fooDef.IsPublic() {
		t.Fatal("expected a public value foo declared in module a")
	}

	if len(tree.Root.Imports()) != 1 {
		t.Fatalf("expected one import directive on the crate root, got %d", len(tree.Root.Imports()))
	}
}

func TestParseModuleTreeWiresExternCrate(t *testing.T) {
	tree, err := ParseModuleTree([]byte(sampleArchive))
	if err != nil {
		t.Fatalf("ParseModuleTree: %v", err)
	}

	libc, ok := tree.Root.ExternalModuleChild(tree.Interner.Intern("libc"))
	if !ok {
		t.Fatal("expected libc to be wired as an external module child of the crate root")
	}
	exit, ok := libc.GetChild(tree.Interner.Intern("exit"), resolve.ValueNS)
	if !ok || !exit.IsPublic() {
		t.Fatal("expected libc to declare a public value exit")
	}
}

func TestResolveModulePathWalksDottedSegments(t *testing.T) {
	tree, err := ParseModuleTree([]byte(sampleArchive))
	if err != nil {
		t.Fatalf("ParseModuleTree: %v", err)
	}

	path := []resolve.Name{tree.Interner.Intern("a")}
	result := tree.ResolveModulePath(tree.Root, path, resolve.Span{})
	if !result.IsSuccess() {
		t.Fatalf("expected success resolving a::, got %+v", result.FailedDetail())
	}
	if result.Value().Module.Name != "a" {
		t.Fatalf("expected to land in module a, got %q", result.Value().Module.Name)
	}
}

func TestParseModuleTreeRejectsDuplicateRoots(t *testing.T) {
	archive := []byte(`
-- crate --
-- other --
`)
	if _, err := ParseModuleTree(archive); err == nil {
		t.Fatal("expected an error for two declared crate roots")
	}
}

func TestParseModuleTreeRejectsOrphanChild(t *testing.T) {
	archive := []byte(`
-- crate::a::b --
`)
	if _, err := ParseModuleTree(archive); err == nil {
		t.Fatal("expected an error when a module's parent is never declared")
	}
}
