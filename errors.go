package cset

import "errors"

// All of these mark contract violations, not data errors. The engine
// panics with one of them (wrapped with context) instead of returning
// it: a changeset that does not fit its record means the shapes have
// diverged somewhere upstream, and continuing would corrupt the record.

var ErrTypeMismatch = errors.New("changeset targets a different record type")
var ErrShapeMismatch = errors.New("changeset does not fit the record's shape")
var ErrDraftOutstanding = errors.New("a draft already holds this record")
var ErrDraftConsumed = errors.New("draft already committed or discarded")
var ErrKindMismatch = errors.New("scalar operation on a nested field (or vice versa)")
var ErrValueType = errors.New("value type does not match the field type")
var ErrNestedDraft = errors.New("operation on a nested draft; use the root draft")
