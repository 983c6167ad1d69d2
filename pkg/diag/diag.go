// Package diag renders rustc-style structured diagnostics — a message, a
// source span, and a snippet of surrounding source with a caret underline —
// for the conflicts, privacy violations, and unresolved references the
// import resolver can report.
package diag

import "go/token"

// Span locates a diagnostic in source text. It is exactly go/token's
// resolved Position (filename, 1-indexed line/column, byte offset) rather
// than a raw token.Pos, since the resolver's callers — real source files
// or synthesized fixture text alike — always have a position already
// resolved against whatever they loaded.
type Span = token.Position

// NewSpan builds a Span from a filename and 1-indexed line/column.
func NewSpan(filename string, line, column int) Span {
	return Span{Filename: filename, Line: line, Column: column}
}

// Code identifies a diagnostic's kind. The numeric codes match the
// resolver's own error catalogue so tooling can key off them stably.
type Code string

const (
	// CodeGlobDuplicate: a glob import tried to rebind a non-shadowable
	// name already present in the destination module.
	CodeGlobDuplicate Code = "E0251"
	// CodeDuplicateImport: two single imports collided on a non-shadowable
	// binding.
	CodeDuplicateImport Code = "E0252"
	// CodeNotImportable: the target binding is not marked importable.
	CodeNotImportable Code = "E0253"
	// CodeCrateConflict: an import's name collides with an extern-crate
	// child of the destination module.
	CodeCrateConflict Code = "E0254"
	// CodeValueConflict: an import's name collides with a value item
	// already declared in the destination module.
	CodeValueConflict Code = "E0255"
	// CodeTypeConflict: an import's name collides with a type/module/trait
	// item already declared in the destination module.
	CodeTypeConflict Code = "E0256"
	// CodePrivateReexportValue: a `pub use` re-exports a private value.
	CodePrivateReexportValue Code = "E0364"
	// CodePrivateReexportType: a `pub use` re-exports a private type.
	CodePrivateReexportType Code = "E0365"
	// CodeUnresolvedImport: no progress could be made on a directive and
	// no more specific hard error explains why.
	CodeUnresolvedImport Code = "unresolved-import"
)
