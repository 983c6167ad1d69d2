package resolve

import "fmt"

// checkAndWriteImport installs result into module's pre-seeded
// import_resolutions slot for (target, ns), running the conflict and
// importability checks first, and reports whether the installed binding
// is itself publicly visible.
func checkAndWriteImport(r *Resolver, module *Module, directive *ImportDirective, target Name, ns Namespace, result Result[boundName]) bool {
	resSlot, ok := module.ImportResolution(target, ns)
	if !ok {
		panic("resolve: import resolution slot missing at write time")
	}

	usedPublic := false
	switch {
	case result.IsSuccess():
		bn := result.Value()
		checkForConflictingImport(r, resSlot, directive.Span, target, ns)
		checkThatImportIsImportable(r, bn.NsDef, directive.Span, target)

		resSlot.Target = NewTarget(bn.Module, bn.NsDef, directive.Shadowable)
		resSlot.ID = directive.ID
		resSlot.IsPublic = directive.IsPublic

		usedPublic = bn.NsDef.IsPublic()
	case result.IsFailed():
		usedPublic = false
	default:
		panic("resolve: indeterminate result should be known at this point")
	}

	checkForConflictsBetweenImportsAndItems(r, module, resSlot, directive.Span, target, ns)

	return usedPublic
}

// recordImportResolution closes out one namespace's write for directive:
// it decrements the slot's outstanding reference count and folds the
// result's privacy dependency into the crate DefMap.
func recordImportResolution(r *Resolver, module *Module, directive *ImportDirective, target Name, ns Namespace, usedPublic bool, lp PrivateDep) {
	resSlot, ok := module.ImportResolution(target, ns)
	if !ok {
		panic("resolve: import resolution slot missing at record time")
	}
	if resSlot.OutstandingReferences < 1 {
		panic("resolve: outstanding_references underflow")
	}
	resSlot.OutstandingReferences--

	if resSlot.Target == nil {
		return
	}
	def := resSlot.Target.NsDef.Def()

	var dep PrivateDep
	if usedPublic {
		dep = lp
	} else {
		dep = DependsOnDef(def.ID)
	}

	r.defMap.MergeImportNamespace(directive.ID, def, ns, dep)
}

// checkForConflictingImport reports E0252 when name's slot already holds
// a non-shadowable binding.
func checkForConflictingImport(r *Resolver, resSlot *ImportResolution, importSpan Span, name Name, ns Namespace) {
	target := resSlot.Target
	if target == nil || target.Shadowable == ShadowAlways {
		return
	}

	nsWord := "value"
	if ns == TypeNS {
		nsWord = target.NsDef.categoryWord()
	}
	text := r.Interner.Text(name)

	d := diagDuplicateImport(importSpan, nsWord, text)
	if span, ok := r.itemSpanFor(resSlot.ID); ok {
		d = d.WithNote(span, fmt.Sprintf("previous import of `%s` here", text))
	}
	r.Sink.Emit(d)
}

// checkThatImportIsImportable reports E0253 when the resolved binding
// isn't marked importable at all.
func checkThatImportIsImportable(r *Resolver, nsDef *NsDef, importSpan Span, name Name) {
	if !nsDef.DefinedWith(ModImportable) {
		r.Sink.Emit(diagNotImportable(importSpan, r.Interner.Text(name)))
	}
}

// checkForConflictsBetweenImportsAndItems reports E0254/E0255/E0256 when
// an import's name collides with an `extern crate`, a value item, or a
// type/module/trait item already declared directly in module.
func checkForConflictsBetweenImportsAndItems(r *Resolver, module *Module, resSlot *ImportResolution, importSpan Span, name Name, ns Namespace) {
	if ns == TypeNS {
		if _, ok := module.ExternalModuleChild(name); ok {
			if resSlot.Target != nil && resSlot.Target.Shadowable != ShadowAlways {
				text := r.Interner.Text(name)
				r.Sink.Emit(diagCrateConflict(importSpan, text))
			}
		}
	}

	nsDef, ok := module.GetChild(name, ns)
	if !ok {
		return
	}

	if resSlot.Target == nil || resSlot.Target.Shadowable == ShadowAlways {
		return
	}

	text := r.Interner.Text(name)
	if ns == ValueNS {
		d := diagValueConflict(importSpan, text)
		if nsDef.Span().Line > 0 {
			d = d.WithNote(nsDef.Span(), "conflicting value here")
		}
		r.Sink.Emit(d)
		return
	}

	what, note := "type in this module", "conflicting type here"
	if m, ok := nsDef.Module(); ok {
		switch m.Kind {
		case ModuleNormal:
			what, note = "existing submodule", "conflicting module here"
		case ModuleTrait:
			what, note = "trait in this module", "conflicting trait here"
		}
	}
	d := diagTypeConflict(importSpan, text, what)
	if nsDef.Span().Line > 0 {
		d = d.WithNote(nsDef.Span(), note)
	}
	r.Sink.Emit(d)
}
