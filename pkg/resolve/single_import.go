package resolve

import "fmt"

// boundName is what resolving a name inside a single module (not yet
// merged across an import chain) ultimately produces: which module
// actually declared it, and the binding itself.
type boundName struct {
	Module *Module
	NsDef  *NsDef
}

// resolveSingleImport resolves one `use path::source as target`-style
// directive now that its containing module is known. Both
// namespaces are attempted independently; only a joint failure is fatal.
func resolveSingleImport(r *Resolver, module, targetModule *Module, target, source Name, directive *ImportDirective, lp PrivateDep) Result[struct{}] {
	pubErr := false

	valueResult, valueUsedReexport := doResolve(r, targetModule, source, ValueNS, module, directive, &pubErr)
	if valueResult.IsIndeterminate() {
		return Indeterminate[struct{}]()
	}

	typeResult, typeUsedReexport := doResolve(r, targetModule, source, TypeNS, module, directive, &pubErr)
	if typeResult.IsIndeterminate() {
		return Indeterminate[struct{}]()
	}

	if valueResult.IsFailed() && typeResult.IsFailed() {
		msg := fmt.Sprintf("there is no `%s` in `%s`", r.Interner.Text(source), targetModule.Name)
		return FailedWith[struct{}](directive.Span, msg)
	}

	valueUsedPublic := checkAndWriteImport(r, module, directive, target, ValueNS, valueResult)
	valueUsedPublic = valueUsedReexport || valueUsedPublic
	recordImportResolution(r, module, directive, target, ValueNS, valueUsedPublic, lp)

	typeUsedPublic := checkAndWriteImport(r, module, directive, target, TypeNS, typeResult)
	typeUsedPublic = typeUsedReexport || typeUsedPublic
	recordImportResolution(r, module, directive, target, TypeNS, typeUsedPublic, lp)

	return Success(struct{}{})
}

// doResolve resolves name in ns starting from module: first its direct
// children, then (via resolveName.Or) the module's own already-resolved
// imports, and finally — in the type namespace only, since that's where
// module-like things live — its external module children. It reports
// whether the answer came from following a re-export, which feeds the
// privacy-dependency computation in recordImportResolution.
func doResolve(r *Resolver, module *Module, name Name, ns Namespace, originModule *Module, directive *ImportDirective, pubErr *bool) (Result[boundName], bool) {
	usedReexport := false

	result := resolveName(r, module, name, ns, directive, pubErr)
	result = result.Or(func() Result[boundName] {
		return resolveInImports(r, module, name, ns, originModule, &usedReexport)
	})

	if result.IsIndeterminate() {
		return result, usedReexport
	}

	if result.IsFailed() && ns == TypeNS {
		if em, ok := module.ExternalModuleChild(name); ok {
			r.markExternalModuleUsed(em)
			result = Success(boundName{Module: module, NsDef: NewNsDefFromModule(em, nil)})
		}
	}

	return result, usedReexport
}

// resolveName looks for name as a direct child item of module. A miss is
// Failed, not final — the caller still has the module's own imports and
// external children to check via doResolve's fallback chain.
func resolveName(r *Resolver, module *Module, name Name, ns Namespace, directive *ImportDirective, pubErr *bool) Result[boundName] {
	result := Failed[boundName](nil)

	r.PopulateIfNecessary(module)

	if nsDef, ok := module.GetChild(name, ns); ok {
		result = Success(boundName{Module: module, NsDef: nsDef})

		if !*pubErr && directive.IsPublic && !nsDef.IsPublic() {
			text := r.Interner.Text(name)
			msg := fmt.Sprintf("`%s` is private, and cannot be reexported", text)
			var noteMsg string
			if ns == ValueNS {
				noteMsg = fmt.Sprintf("consider marking `%s` as `pub` in the imported module", text)
			} else {
				noteMsg = fmt.Sprintf("consider declaring module `%s` as a `pub mod`", text)
			}
			r.Sink.Emit(diagPrivateReexport(directive.Span, msg, noteMsg, ns))
			*pubErr = true
		}
	}

	return result
}

// resolveInImports follows module's own already-resolved imports for
// name, bailing Indeterminate while an unresolved public glob could
// still change the answer.
func resolveInImports(r *Resolver, module *Module, name Name, ns Namespace, originModule *Module, used *bool) Result[boundName] {
	if module.PubGlobCount() > 0 {
		return Indeterminate[boundName]()
	}

	res, ok := module.ImportResolution(name, ns)
	if !ok {
		return Failed[boundName](nil)
	}

	if res.OutstandingReferences == 0 {
		*used = res.IsPublic
		return getBinding(r, res, ns)
	}

	// A still-pending slot in the requesting module itself is a self-use
	// shadow; fail it here and let the conflict machinery report it.
	if module == originModule {
		return Failed[boundName](nil)
	}
	return Indeterminate[boundName]()
}

// getBinding follows an already-resolved import's slot to its target,
// refusing to do so unless the slot itself is public — only public
// imports are ever followable for re-export purposes.
func getBinding(r *Resolver, res *ImportResolution, ns Namespace) Result[boundName] {
	if !res.IsPublic {
		return Failed[boundName](nil)
	}
	if res.Target == nil {
		return Failed[boundName](nil)
	}

	r.markImportUsed(res.ID, ns)
	if _, ok := res.Target.TargetModule.DefID(); ok {
		r.markExternalModuleUsed(res.Target.TargetModule)
	}

	return Success(boundName{Module: res.Target.TargetModule, NsDef: res.Target.NsDef})
}
