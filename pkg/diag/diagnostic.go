package diag

// Note is a secondary annotation attached to a Diagnostic — "previous
// import here", "conflicting value here" — pointing at a different span
// than the primary error.
type Note struct {
	Span    Span
	Message string
}

// Diagnostic is one structured error or note produced by the resolver.
type Diagnostic struct {
	Code       Code
	Span       Span
	Message    string
	Notes      []Note
	Suggestion string
}

// New starts a Diagnostic with its code, primary span, and message.
func New(code Code, span Span, message string) *Diagnostic {
	return &Diagnostic{Code: code, Span: span, Message: message}
}

// WithNote appends a secondary annotation and returns the receiver for
// chaining.
func (d *Diagnostic) WithNote(span Span, message string) *Diagnostic {
	d.Notes = append(d.Notes, Note{Span: span, Message: message})
	return d
}

// WithSuggestion attaches a one-line fix suggestion and returns the
// receiver for chaining.
func (d *Diagnostic) WithSuggestion(s string) *Diagnostic {
	d.Suggestion = s
	return d
}

// Error implements the error interface so a Diagnostic can be returned
// wherever ordinary errors are expected.
func (d *Diagnostic) Error() string {
	return Render(d)
}

// Sink collects diagnostics emitted during a resolver run so the caller
// can render or count them after the run finishes.
type Sink struct {
	diagnostics []*Diagnostic
}

// NewSink returns an empty Sink.
func NewSink() *Sink {
	return &Sink{}
}

// Emit records d.
func (s *Sink) Emit(d *Diagnostic) {
	s.diagnostics = append(s.diagnostics, d)
}

// All returns every diagnostic emitted so far, in emission order.
func (s *Sink) All() []*Diagnostic {
	return s.diagnostics
}

// Len reports how many diagnostics have been emitted.
func (s *Sink) Len() int {
	return len(s.diagnostics)
}
