package fixture

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"golang.org/x/tools/txtar"

	"github.com/MadAppGang/dingoc/pkg/resolve"
)

// ModuleTree is the result of loading a txtar archive describing a module
// tree: the crate root ready for resolve.ResolveImports, an Interner
// shared by every Name in the tree, and enough bookkeeping to let the CLI
// resolve dotted module paths and print human-readable names back out.
type ModuleTree struct {
	Root     *resolve.Module
	Interner *resolve.Interner

	// byPath maps a "::"-joined module path to its Module. The main crate
	// is keyed by its own name ("crate", "crate::a", ...); every extern
	// crate root and its descendants are keyed under "extern::<crate>...".
	byPath map[string]*resolve.Module
}

// LoadModuleTree reads a txtar archive from path and builds the module
// tree it describes.
func LoadModuleTree(path string) (*ModuleTree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return ParseModuleTree(data)
}

// ParseModuleTree builds a ModuleTree from txtar archive bytes.
//
// Archive file names are "::"-joined dotted module paths: "crate" is the
// crate root, "crate::a" its child module "a", and so on. A top-level
// "extern::<name>" file is its own module root, wired into the crate root
// as an external-module child named <name>; nested "extern::<name>::b"
// files are its descendants.
//
// Each file's body is a newline-separated list of directives:
//
//	child value foo         # a plain value item named foo
//	pub child type Bar       # a public type item named Bar
//	import single foo <- a::foo        # use a::foo;
//	pub import single bar <- a::foo    # pub use a::foo as bar;
//	import glob a::b         # use a::b::*;
//	pub import glob a::b     # pub use a::b::*;
//
// Blank lines and lines starting with "#" are ignored.
func ParseModuleTree(data []byte) (*ModuleTree, error) {
	archive := txtar.Parse(data)
	in := resolve.NewInterner()
	tree := &ModuleTree{Interner: in, byPath: make(map[string]*resolve.Module)}

	type rawFile struct {
		name string
		segs []string
		body string
	}
	files := make([]rawFile, 0, len(archive.Files))
	for _, f := range archive.Files {
		name := strings.TrimSpace(f.Name)
		files = append(files, rawFile{name: name, segs: strings.Split(name, "::"), body: string(f.Data)})
	}
	sort.Slice(files, func(i, j int) bool { return len(files[i].segs) < len(files[j].segs) })

	nextDef := 0
	allocDef := func() resolve.DefID {
		nextDef++
		return resolve.DefID{Index: nextDef}
	}
	nextNode := 0
	allocNode := func() resolve.NodeID {
		nextNode++
		return resolve.NodeID(nextNode)
	}

	for _, f := range files {
		segs := f.segs
		if len(segs) == 0 || segs[0] == "" {
			return nil, fmt.Errorf("empty module path in archive")
		}

		isExtern := segs[0] == "extern"
		if isExtern && len(segs) < 2 {
			return nil, fmt.Errorf("malformed extern module path %q", f.name)
		}

		var module *resolve.Module
		if len(segs) == 1 || (isExtern && len(segs) == 2) {
			name := segs[len(segs)-1]
			if !isExtern && tree.Root != nil {
				return nil, fmt.Errorf("multiple crate roots declared (%q and %q)", tree.Root.Name, name)
			}
			module = resolve.NewModule(name, resolve.ModuleNormal, nil)
			module.SetDefID(allocDef())
			if !isExtern {
				tree.Root = module
			}
		} else {
			parentKey := strings.Join(segs[:len(segs)-1], "::")
			parent, ok := tree.byPath[parentKey]
			if !ok {
				return nil, fmt.Errorf("module %q declared before its parent %q", f.name, parentKey)
			}
			name := segs[len(segs)-1]
			module = resolve.NewModule(name, resolve.ModuleNormal, parent)
			module.SetDefID(allocDef())
			parent.AddChild(in.Intern(name), resolve.TypeNS, resolve.NewNsDefFromModule(module, nil))
		}
		tree.byPath[f.name] = module

		if err := parseModuleBody(f.body, module, in, f.name, allocDef, allocNode); err != nil {
			return nil, err
		}
	}

	if tree.Root == nil {
		return nil, fmt.Errorf("no crate root declared")
	}

	for key, m := range tree.byPath {
		if strings.HasPrefix(key, "extern::") && !strings.Contains(strings.TrimPrefix(key, "extern::"), "::") {
			name := strings.TrimPrefix(key, "extern::")
			tree.Root.AddExternalModuleChild(in.Intern(name), m)
		}
	}

	return tree, nil
}

func parseModuleBody(body string, module *resolve.Module, in *resolve.Interner, filename string, allocDef func() resolve.DefID, allocNode func() resolve.NodeID) error {
	for i, line := range strings.Split(body, "\n") {
		lineNo := i + 1
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := parseDirectiveLine(line, module, in, filename, lineNo, allocDef, allocNode); err != nil {
			return err
		}
	}
	return nil
}

func parseDirectiveLine(line string, module *resolve.Module, in *resolve.Interner, filename string, lineNo int, allocDef func() resolve.DefID, allocNode func() resolve.NodeID) error {
	fields := strings.Fields(line)
	pub := false
	if fields[0] == "pub" {
		pub = true
		fields = fields[1:]
	}
	if len(fields) == 0 {
		return fmt.Errorf("%s:%d: empty directive", filename, lineNo)
	}

	span := resolve.Span{Filename: filename, Line: lineNo}

	switch fields[0] {
	case "child":
		if len(fields) != 3 {
			return fmt.Errorf("%s:%d: malformed child directive %q", filename, lineNo, line)
		}
		ns, kind, err := parseNSWord(fields[1])
		if err != nil {
			return fmt.Errorf("%s:%d: %w", filename, lineNo, err)
		}
		mods := resolve.ModImportable
		if pub {
			mods |= resolve.ModPublic
		}
		def := resolve.Def{ID: allocDef(), Kind: kind}
		module.AddChild(in.Intern(fields[2]), ns, resolve.NewNsDef(def, mods, span))
		return nil

	case "import":
		if len(fields) < 2 {
			return fmt.Errorf("%s:%d: malformed import directive %q", filename, lineNo, line)
		}
		switch fields[1] {
		case "single":
			if len(fields) != 5 || fields[3] != "<-" {
				return fmt.Errorf("%s:%d: malformed single-import directive %q", filename, lineNo, line)
			}
			target := in.Intern(fields[2])
			segs := strings.Split(fields[4], "::")
			source := in.Intern(segs[len(segs)-1])
			modPath := internPath(in, segs[:len(segs)-1])
			directive := resolve.NewImportDirective(modPath, resolve.SingleImport{Target: target, Source: source}, span, allocNode(), pub, resolve.ShadowNever)
			module.AddImport(directive)
			return nil
		case "glob":
			if len(fields) != 3 {
				return fmt.Errorf("%s:%d: malformed glob-import directive %q", filename, lineNo, line)
			}
			modPath := internPath(in, strings.Split(fields[2], "::"))
			directive := resolve.NewImportDirective(modPath, resolve.GlobImport{}, span, allocNode(), pub, resolve.ShadowNever)
			module.AddImport(directive)
			return nil
		default:
			return fmt.Errorf("%s:%d: unknown import kind %q", filename, lineNo, fields[1])
		}

	default:
		return fmt.Errorf("%s:%d: unknown directive %q", filename, lineNo, fields[0])
	}
}

func internPath(in *resolve.Interner, segs []string) []resolve.Name {
	path := make([]resolve.Name, len(segs))
	for i, s := range segs {
		path[i] = in.Intern(s)
	}
	return path
}

func parseNSWord(word string) (resolve.Namespace, resolve.DefKind, error) {
	switch word {
	case "value":
		return resolve.ValueNS, resolve.DefKindValue, nil
	case "type":
		return resolve.TypeNS, resolve.DefKindType, nil
	case "trait":
		return resolve.TypeNS, resolve.DefKindTrait, nil
	default:
		return 0, 0, fmt.Errorf("unknown child namespace %q (want value, type, or trait)", word)
	}
}

// ResolveModulePath walks a dotted path through the tree starting at the
// crate root, following an external-module child for the path's leading
// segment when one matches — the CLI's ResolveModulePath hook.
func (t *ModuleTree) ResolveModulePath(origin *resolve.Module, path []resolve.Name, span resolve.Span) resolve.Result[resolve.ModulePathResolution] {
	if len(path) == 0 {
		return resolve.Success(resolve.ModulePathResolution{Module: t.Root, LastPrivate: resolve.AllPublicDep()})
	}

	cur := t.Root
	rest := path
	if ext, ok := cur.ExternalModuleChild(path[0]); ok {
		cur = ext
		rest = path[1:]
	}

	for _, seg := range rest {
		child, ok := cur.GetChild(seg, resolve.TypeNS)
		if !ok {
			return resolve.FailedWith[resolve.ModulePathResolution](span, "unresolved module segment in path")
		}
		sub, isModule := child.Module()
		if !isModule {
			return resolve.FailedWith[resolve.ModulePathResolution](span, "path segment does not name a module")
		}
		cur = sub
	}

	return resolve.Success(resolve.ModulePathResolution{Module: cur, LastPrivate: resolve.AllPublicDep()})
}

// PathString renders an interned module path back to its "::"-joined
// textual form, for diagnostics and CLI output.
func (t *ModuleTree) PathString(path []resolve.Name) string {
	parts := make([]string, len(path))
	for i, n := range path {
		parts[i] = t.Interner.Text(n)
	}
	return strings.Join(parts, "::")
}
