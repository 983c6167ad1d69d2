// Package fixture loads the two textual input formats cmd/dingoc accepts:
// YAML function descriptions for `simplify`, and txtar module-tree archives
// for `resolve`. Neither format is part of the simplifier or resolver's own
// contract — they exist purely so the CLI has something to read without a
// real Dingo parser, which is out of scope per both packages' Non-goals.
package fixture

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/MadAppGang/dingoc/pkg/cfg"
)

// CFGDoc is the top-level YAML shape for a `simplify` input file: a flat
// list of blocks, block 0 implicitly the entry per cfg.Entry.
type CFGDoc struct {
	Blocks []BlockDoc `yaml:"blocks"`
}

// BlockDoc describes one block: its opaque statement labels and exactly one
// terminator.
type BlockDoc struct {
	Statements []string      `yaml:"statements"`
	Terminator TerminatorDoc `yaml:"terminator"`
}

// TerminatorDoc is a tagged union over cfg.Terminator's concrete kinds,
// discriminated by Kind. Only the fields relevant to Kind need be set; the
// rest are ignored.
type TerminatorDoc struct {
	Kind string `yaml:"kind"`

	// goto
	Target int `yaml:"target,omitempty"`

	// if
	Cond string `yaml:"cond,omitempty"`
	Then int    `yaml:"then,omitempty"`
	Else int    `yaml:"else,omitempty"`

	// switch / switchint
	Disc      string  `yaml:"disc,omitempty"`
	Arms      []int   `yaml:"arms,omitempty"`
	Values    []int64 `yaml:"values,omitempty"`
	Otherwise int     `yaml:"otherwise,omitempty"`

	// other
	Label string `yaml:"label,omitempty"`
	Succs []int  `yaml:"succs,omitempty"`
}

// LoadCFG reads and parses a YAML function description from path.
func LoadCFG(path string) (*cfg.Function, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return ParseCFG(data)
}

// ParseCFG decodes a YAML function description into a cfg.Function ready
// for cfg.SimplifyCfg.Run.
func ParseCFG(data []byte) (*cfg.Function, error) {
	var doc CFGDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse cfg fixture: %w", err)
	}

	blocks := make([]*cfg.Block, len(doc.Blocks))
	for i, bd := range doc.Blocks {
		term, err := buildTerminator(bd.Terminator)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
		block := cfg.NewBlock(term)
		for _, s := range bd.Statements {
			block.Statements = append(block.Statements, cfg.Stmt(s))
		}
		blocks[i] = block
	}

	return &cfg.Function{Blocks: blocks}, nil
}

func buildTerminator(t TerminatorDoc) (cfg.Terminator, error) {
	switch t.Kind {
	case "goto", "":
		return &cfg.Goto{Target: cfg.BlockID(t.Target)}, nil
	case "if":
		return &cfg.If{Cond: cfg.Stmt(t.Cond), Then: cfg.BlockID(t.Then), Else: cfg.BlockID(t.Else)}, nil
	case "switch":
		arms := make([]cfg.BlockID, len(t.Arms))
		for i, a := range t.Arms {
			arms[i] = cfg.BlockID(a)
		}
		return &cfg.Switch{Disc: cfg.Stmt(t.Disc), Arms: arms}, nil
	case "switchint":
		arms := make([]cfg.BlockID, len(t.Arms))
		for i, a := range t.Arms {
			arms[i] = cfg.BlockID(a)
		}
		return &cfg.SwitchInt{
			Disc:      cfg.Stmt(t.Disc),
			Values:    t.Values,
			Arms:      arms,
			Otherwise: cfg.BlockID(t.Otherwise),
		}, nil
	case "other":
		succs := make([]cfg.BlockID, len(t.Succs))
		for i, s := range t.Succs {
			succs[i] = cfg.BlockID(s)
		}
		return &cfg.Other{Label: t.Label, Succs: succs}, nil
	default:
		return nil, fmt.Errorf("unknown terminator kind %q", t.Kind)
	}
}

// DumpCFG renders fn back to the YAML shape ParseCFG accepts, for printing
// the simplifier's before/after block listing.
func DumpCFG(fn *cfg.Function) (CFGDoc, error) {
	doc := CFGDoc{Blocks: make([]BlockDoc, len(fn.Blocks))}
	for i, b := range fn.Blocks {
		var stmts []string
		for _, s := range b.Statements {
			stmts = append(stmts, s.String())
		}
		td, err := dumpTerminator(b.Terminator)
		if err != nil {
			return CFGDoc{}, fmt.Errorf("block %d: %w", i, err)
		}
		doc.Blocks[i] = BlockDoc{Statements: stmts, Terminator: td}
	}
	return doc, nil
}

func dumpTerminator(t cfg.Terminator) (TerminatorDoc, error) {
	switch v := t.(type) {
	case *cfg.Goto:
		return TerminatorDoc{Kind: "goto", Target: int(v.Target)}, nil
	case *cfg.If:
		return TerminatorDoc{Kind: "if", Cond: v.Cond.String(), Then: int(v.Then), Else: int(v.Else)}, nil
	case *cfg.Switch:
		arms := make([]int, len(v.Arms))
		for i, a := range v.Arms {
			arms[i] = int(a)
		}
		return TerminatorDoc{Kind: "switch", Disc: v.Disc.String(), Arms: arms}, nil
	case *cfg.SwitchInt:
		arms := make([]int, len(v.Arms))
		for i, a := range v.Arms {
			arms[i] = int(a)
		}
		return TerminatorDoc{Kind: "switchint", Disc: v.Disc.String(), Values: v.Values, Arms: arms, Otherwise: int(v.Otherwise)}, nil
	case *cfg.Other:
		succs := make([]int, len(v.Succs))
		for i, s := range v.Succs {
			succs[i] = int(s)
		}
		return TerminatorDoc{Kind: "other", Label: v.Label, Succs: succs}, nil
	case nil:
		return TerminatorDoc{}, fmt.Errorf("block has no terminator")
	default:
		return TerminatorDoc{}, fmt.Errorf("unsupported terminator type %T", t)
	}
}
