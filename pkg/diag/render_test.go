package diag

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRenderWithSourceSnippet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mod.txt")
	src := "line one\nuse a::foo;\nline three\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	ClearSourceCache()

	d := New(CodeDuplicateImport, NewSpan(path, 2, 5), "a value named `foo` has already been imported in this module")
	d.WithSuggestion("remove one of the conflicting imports")

	out := Render(d)
	if !strings.Contains(out, "E0252") {
		t.Fatalf("expected error code in output, got %q", out)
	}
	if !strings.Contains(out, "use a::foo;") {
		t.Fatalf("expected source line in output, got %q", out)
	}
	if !strings.Contains(out, "help: remove one") {
		t.Fatalf("expected suggestion in output, got %q", out)
	}
}

func TestRenderWithoutBackingFileDegradesGracefully(t *testing.T) {
	d := New(CodeUnresolvedImport, NewSpan("nonexistent.txt", 1, 1), "unresolved import `a::b`")
	out := Render(d)
	if !strings.Contains(out, "source unavailable") {
		t.Fatalf("expected graceful degradation note, got %q", out)
	}
}

func TestSinkCollectsInOrder(t *testing.T) {
	sink := NewSink()
	sink.Emit(New(CodeGlobDuplicate, Span{}, "first"))
	sink.Emit(New(CodeCrateConflict, Span{}, "second"))

	all := sink.All()
	if len(all) != 2 || all[0].Message != "first" || all[1].Message != "second" {
		t.Fatalf("unexpected sink contents: %+v", all)
	}
}

func TestSourceCacheEviction(t *testing.T) {
	ClearSourceCache()
	dir := t.TempDir()
	for i := 0; i < sourceCacheLimit+5; i++ {
		p := filepath.Join(dir, fmt.Sprintf("f%d", i))
		os.WriteFile(p, []byte("x\n"), 0o644)
		_, _, err := extractSourceLines(p, 1, 0)
		if err != nil {
			t.Fatal(err)
		}
	}
	sourceCacheMu.RLock()
	n := len(sourceCacheKeys)
	sourceCacheMu.RUnlock()
	if n > sourceCacheLimit {
		t.Fatalf("cache grew past limit: %d entries", n)
	}
}
