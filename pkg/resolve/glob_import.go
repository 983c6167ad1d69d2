package resolve

// resolveGlobImport resolves a `use path::*;` directive. Importing
// everything from an empty or nothing-exported module is legal; it blocks
// (Indeterminate) while the source module still has unresolved pub
// imports of its own, and fails only when a module glob-imports itself.
func resolveGlobImport(r *Resolver, module, targetModule *Module, directive *ImportDirective, lp PrivateDep) Result[struct{}] {
	id := directive.ID
	isPublic := directive.IsPublic

	if targetModule.PubCount() > 0 {
		return Indeterminate[struct{}]()
	}

	// Glob-importing a module into itself can never make progress.
	if targetModule == module {
		return FailedWith[struct{}](directive.Span, "cannot glob-import a module into itself")
	}

	for key, srcRes := range targetModule.ImportResolutions() {
		if !srcRes.IsPublic {
			continue
		}

		if destRes, ok := module.ImportResolution(key.Name, key.NS); ok {
			if srcRes.Target != nil {
				checkForConflictingImport(r, destRes, directive.Span, key.Name, key.NS)
				destRes.Target = srcRes.Target
				destRes.IsPublic = isPublic
			}
			continue
		}

		newRes := NewImportResolution(id, isPublic)
		newRes.Target = srcRes.Target
		module.importResolutions[key] = newRes
	}

	r.PopulateIfNecessary(targetModule)

	for key, nsDef := range targetModule.Children() {
		mergeImportResolution(r, module, targetModule, directive, key.Name, key.NS, nsDef)
	}

	for name, child := range targetModule.ExternalModuleChildren() {
		mergeImportResolution(r, module, targetModule, directive, name, TypeNS, NewNsDefFromModule(child, nil))
	}

	if did, ok := targetModule.DefID(); ok {
		r.DefMap().Set(directive.ID, &PathResolution{
			BaseDef:     Def{ID: did, Kind: DefKindMod},
			LastPrivate: NewLastMod(lp),
		})
	}

	return Success(struct{}{})
}

// mergeImportResolution folds one binding of targetModule (a direct
// child item, or an external module reached via it) into module's own
// import_resolutions as part of resolving a glob import.
func mergeImportResolution(r *Resolver, module, containingModule *Module, directive *ImportDirective, name Name, ns Namespace, nsDef *NsDef) {
	id := directive.ID
	isPublic := directive.IsPublic

	destRes := module.GetOrCreateImportResolution(name, ns, id, isPublic)

	if nsDef.DefinedWith(ModImportable | ModPublic) {
		if destRes.Shadowable() == ShadowNever {
			nsWord := "value"
			if ns == TypeNS {
				nsWord = nsDef.categoryWord()
			}
			r.Sink.Emit(diagGlobDuplicate(directive.Span, nsWord, r.Interner.Text(name)))
		} else {
			destRes.Target = NewTarget(containingModule, nsDef, directive.Shadowable)
			destRes.ID = id
			destRes.IsPublic = isPublic
		}
	}

	checkForConflictsBetweenImportsAndItems(r, module, destRes, directive.Span, name, ns)
}
