package fixture

import (
	"testing"

	"github.com/MadAppGang/dingoc/pkg/cfg"
)

func TestParseCFGBuildsGotoChain(t *testing.T) {
	doc := []byte(`
blocks:
  - statements: ["a"]
    terminator:
      kind: goto
      target: 1
  - statements: ["b"]
    terminator:
      kind: goto
      target: 2
  - statements: ["c"]
    terminator:
      kind: other
      label: return
`)
	fn, err := ParseCFG(doc)
	if err != nil {
		t.Fatalf("ParseCFG: %v", err)
	}
	if len(fn.Blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(fn.Blocks))
	}
	g, ok := fn.Blocks[0].Terminator.(*cfg.Goto)
	if !ok || g.Target != 1 {
		t.Fatalf("expected block 0 to goto 1, got %+v", fn.Blocks[0].Terminator)
	}
}

func TestParseCFGSwitchIntRoundTrips(t *testing.T) {
	doc := []byte(`
blocks:
  - terminator:
      kind: switchint
      disc: x
      values: [0, 1]
      arms: [1, 2]
      otherwise: 3
  - terminator: { kind: other, label: ret }
  - terminator: { kind: other, label: ret }
  - terminator: { kind: other, label: ret }
`)
	fn, err := ParseCFG(doc)
	if err != nil {
		t.Fatalf("ParseCFG: %v", err)
	}
	si, ok := fn.Blocks[0].Terminator.(*cfg.SwitchInt)
	if !ok {
		t.Fatalf("expected a SwitchInt terminator, got %T", fn.Blocks[0].Terminator)
	}
	if si.Otherwise != 3 || len(si.Arms) != 2 {
		t.Fatalf("unexpected switchint shape: %+v", si)
	}

	redoc, err := DumpCFG(fn)
	if err != nil {
		t.Fatalf("DumpCFG: %v", err)
	}
	if redoc.Blocks[0].Terminator.Kind != "switchint" {
		t.Fatalf("expected dump to round-trip the kind, got %q", redoc.Blocks[0].Terminator.Kind)
	}
}

func TestParseCFGRejectsUnknownTerminatorKind(t *testing.T) {
	doc := []byte(`
blocks:
  - terminator: { kind: frobnicate }
`)
	if _, err := ParseCFG(doc); err == nil {
		t.Fatal("expected an error for an unknown terminator kind")
	}
}
