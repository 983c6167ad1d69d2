package resolve

import (
	"fmt"

	"github.com/MadAppGang/dingoc/pkg/diag"
)

func diagUnresolvedImport(span Span, path, help string) *diag.Diagnostic {
	msg := fmt.Sprintf("unresolved import `%s`", path)
	if help != "" {
		msg += help
	}
	return diag.New(diag.CodeUnresolvedImport, span, msg)
}

func diagPrivateReexport(span Span, message, note string, ns Namespace) *diag.Diagnostic {
	code := diag.CodePrivateReexportValue
	if ns == TypeNS {
		code = diag.CodePrivateReexportType
	}
	return diag.New(code, span, message).WithNote(span, note)
}

func diagGlobDuplicate(span Span, nsWord, name string) *diag.Diagnostic {
	return diag.New(diag.CodeGlobDuplicate, span,
		fmt.Sprintf("a %s named `%s` has already been imported in this module", nsWord, name))
}

func diagDuplicateImport(span Span, nsWord, name string) *diag.Diagnostic {
	return diag.New(diag.CodeDuplicateImport, span,
		fmt.Sprintf("a %s named `%s` has already been imported in this module", nsWord, name))
}

func diagNotImportable(span Span, name string) *diag.Diagnostic {
	return diag.New(diag.CodeNotImportable, span, fmt.Sprintf("`%s` is not directly importable", name))
}

func diagCrateConflict(span Span, name string) *diag.Diagnostic {
	return diag.New(diag.CodeCrateConflict, span,
		fmt.Sprintf("import `%s` conflicts with imported crate in this module (maybe you meant `use %s::*`?)", name, name))
}

func diagValueConflict(span Span, name string) *diag.Diagnostic {
	return diag.New(diag.CodeValueConflict, span, fmt.Sprintf("import `%s` conflicts with value in this module", name))
}

func diagTypeConflict(span Span, name, what string) *diag.Diagnostic {
	return diag.New(diag.CodeTypeConflict, span, fmt.Sprintf("import `%s` conflicts with %s", name, what))
}
