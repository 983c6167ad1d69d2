package resolve

import "strings"

// importResolvingError is a hard failure collected while walking a
// module subtree, held until the outer fixed point decides whether it
// actually needs reporting: errors surface only once a full sweep stops
// making forward progress.
type importResolvingError struct {
	span Span
	path string
	help string
}

// ResolveImports runs the fixed-point import resolution algorithm over
// the whole module tree rooted at r.GraphRoot. It repeatedly
// sweeps the tree until either every import has resolved or a full sweep
// makes no further progress, at which point it reports every hard error
// collected during the stalled sweep, or — if the sweep produced no hard
// errors at all — flags the imports still indeterminate as unresolved.
func ResolveImports(r *Resolver) {
	prevUnresolved := -1
	for {
		errors := resolveImportsForModuleSubtree(r, r.GraphRoot)

		if r.UnresolvedImports == 0 {
			return
		}

		if r.UnresolvedImports == prevUnresolved {
			if len(errors) > 0 {
				for _, e := range errors {
					r.Sink.Emit(diagUnresolvedImport(e.span, e.path, e.help))
				}
			} else {
				reportUnresolvedImports(r, r.GraphRoot)
			}
			return
		}

		prevUnresolved = r.UnresolvedImports
	}
}

func resolveImportsForModuleSubtree(r *Resolver, module *Module) []importResolvingError {
	var errors []importResolvingError

	errors = append(errors, resolveImportsForModule(r, module)...)

	r.PopulateIfNecessary(module)

	for _, child := range module.Children() {
		if childModule, ok := child.Module(); ok {
			errors = append(errors, resolveImportsForModuleSubtree(r, childModule)...)
		}
	}

	for _, childModule := range module.AnonymousChildren() {
		errors = append(errors, resolveImportsForModuleSubtree(r, childModule)...)
	}

	return errors
}

func resolveImportsForModule(r *Resolver, module *Module) []importResolvingError {
	var errors []importResolvingError

	if module.AllImportsResolved() {
		return errors
	}

	imports := module.imports
	importCount := len(imports)
	var indeterminate []*ImportDirective

	for module.resolvedImportCount+len(indeterminate) < importCount {
		importIndex := module.resolvedImportCount
		directive := imports[importIndex]

		result := resolveImportForModule(r, module, directive)

		switch {
		case result.IsFailed():
			detail := result.FailedDetail()
			span := directive.Span
			help := ""
			if detail.HasDetail {
				span = detail.Span
				help = ". " + detail.Message
			}
			errors = append(errors, importResolvingError{
				span: span,
				path: importPathToString(directive.ModulePath, directive.Subclass, r.Interner),
				help: help,
			})
		case result.IsIndeterminate():
			// parked below and retried in a later sweep
		case result.IsSuccess():
			module.resolvedImportCount++
			continue
		}

		// swap-remove importIndex out of imports, park it for later
		indeterminate = append(indeterminate, imports[importIndex])
		imports[importIndex] = imports[len(imports)-1]
		imports = imports[:len(imports)-1]
	}

	module.imports = append(imports, indeterminate...)

	return errors
}

// resolveImportForModule attempts one directive belonging to module.
// Its return indicates failure (the name provably does not
// exist), indeterminate (blocked on another unresolved directive), or
// success (the binding has been written into module).
func resolveImportForModule(r *Resolver, module *Module, directive *ImportDirective) Result[struct{}] {
	result := Failed[struct{}](nil)

	var container *Module
	var lp PrivateDep
	haveContainer := false

	if len(directive.ModulePath) == 0 {
		container = r.GraphRoot
		lp = AllPublicDep()
		haveContainer = true
	} else {
		pathResult := r.ResolveModulePath(module, directive.ModulePath, directive.Span)
		switch {
		case pathResult.IsFailed():
			result = Failed[struct{}](copyFailedInfo(pathResult.FailedDetail()))
		case pathResult.IsIndeterminate():
			result = Indeterminate[struct{}]()
		case pathResult.IsSuccess():
			v := pathResult.Value()
			container = v.Module
			lp = v.LastPrivate
			haveContainer = true
		}
	}

	if haveContainer {
		switch sub := directive.Subclass.(type) {
		case SingleImport:
			result = resolveSingleImport(r, module, container, sub.Target, sub.Source, directive, lp)
		case GlobImport:
			result = resolveGlobImport(r, module, container, directive, lp)
		}
	}

	if result.IsSuccess() {
		if r.UnresolvedImports < 1 {
			panic("unresolved_imports underflow")
		}
		r.UnresolvedImports--

		switch directive.Subclass.(type) {
		case GlobImport:
			module.decGlobCount()
			if directive.IsPublic {
				module.decPubGlobCount()
			}
		}
		if directive.IsPublic {
			module.decPubCount()
		}
	}

	return result
}

func copyFailedInfo(d FailedInfo) *FailedInfo {
	if !d.HasDetail {
		return nil
	}
	return &d
}

func importPathToString(path []Name, subclass DirectiveSubclass, in *Interner) string {
	tail := importDirectiveSubclassToString(subclass, in)
	if len(path) == 0 {
		return tail
	}
	segs := make([]string, len(path))
	for i, n := range path {
		segs[i] = in.Text(n)
	}
	return strings.Join(segs, "::") + "::" + tail
}

func importDirectiveSubclassToString(subclass DirectiveSubclass, in *Interner) string {
	switch s := subclass.(type) {
	case SingleImport:
		return in.Text(s.Source)
	case GlobImport:
		return "*"
	default:
		return "?"
	}
}

func reportUnresolvedImports(r *Resolver, module *Module) {
	for _, directive := range module.imports[module.resolvedImportCount:] {
		r.Sink.Emit(diagUnresolvedImport(directive.Span,
			importPathToString(directive.ModulePath, directive.Subclass, r.Interner), ""))
	}

	for _, child := range module.Children() {
		if childModule, ok := child.Module(); ok {
			reportUnresolvedImports(r, childModule)
		}
	}
	for _, childModule := range module.AnonymousChildren() {
		reportUnresolvedImports(r, childModule)
	}
}
