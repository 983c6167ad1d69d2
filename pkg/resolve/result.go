package resolve

import "github.com/MadAppGang/dingoc/pkg/diag"

// Span is the position type diagnostics attach to; re-exported here so
// callers building FailedInfo values don't need to import pkg/diag
// themselves.
type Span = diag.Span

// outcome tags a Result without needing callers to unwrap the payload just
// to check which case they got.
type outcome int

const (
	outcomeSuccess outcome = iota
	outcomeIndeterminate
	outcomeFailed
)

// FailedInfo carries the optional span/message pair a Failed result may
// attach.
type FailedInfo struct {
	HasDetail bool
	Span      Span
	Message   string
}

// Result is the three-way outcome every resolution step produces:
// Success(value) — a definite binding; Indeterminate — unknown because
// some other directive hasn't resolved yet, retry later; Failed — no such
// name or a hard conflict, never resolves.
type Result[T any] struct {
	kind   outcome
	value  T
	failed FailedInfo
}

// Success wraps a definite binding.
func Success[T any](v T) Result[T] {
	return Result[T]{kind: outcomeSuccess, value: v}
}

// Indeterminate reports "cannot yet decide; retry after more progress".
func Indeterminate[T any]() Result[T] {
	return Result[T]{kind: outcomeIndeterminate}
}

// Failed reports that the directive will never succeed, optionally with a
// span and message for diagnostics.
func Failed[T any](detail *FailedInfo) Result[T] {
	r := Result[T]{kind: outcomeFailed}
	if detail != nil {
		r.failed = *detail
	}
	return r
}

// FailedWith is a convenience constructor for Failed with a span/message.
func FailedWith[T any](span Span, msg string) Result[T] {
	return Failed[T](&FailedInfo{HasDetail: true, Span: span, Message: msg})
}

func (r Result[T]) IsSuccess() bool       { return r.kind == outcomeSuccess }
func (r Result[T]) IsIndeterminate() bool { return r.kind == outcomeIndeterminate }
func (r Result[T]) IsFailed() bool        { return r.kind == outcomeFailed }

// Value returns the success payload; callers must check IsSuccess first.
func (r Result[T]) Value() T { return r.value }

// FailedDetail returns the span/message attached to a Failed result, if any.
func (r Result[T]) FailedDetail() FailedInfo { return r.failed }

// Or returns r if it is not Failed, otherwise evaluates fallback and
// returns its result. doResolve uses it to fall through from a
// direct-child lookup to the containing module's own imports.
func (r Result[T]) Or(fallback func() Result[T]) Result[T] {
	if r.kind == outcomeFailed {
		return fallback()
	}
	return r
}
