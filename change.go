// Package cset is a reversible, field-granular change tracker for
// in-memory structured records.
//
// A Record is a generic value shaped by a schema.Schema: an ordered list
// of fields, each a scalar (a cty.Value of a declared type) or a nested
// record. Record.Edit returns a Draft that stages edits without touching
// the record; Draft.Commit writes the staged values and hands back a
// ChangeSet holding exactly the values that were replaced. Applying that
// ChangeSet with Record.Apply puts the old values back and returns the
// ChangeSet that redoes the edit, so the same operation serves undo and
// redo all the way down through nested records.
package cset

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/nickdbush/cset/schema"
)

// Change records the prior value at one field path. Exactly one of
// Value and Inner is set: Value for a scalar field, Inner for a nested
// record field. Paths are absolute, rooted at the record the enclosing
// ChangeSet targets.
type Change struct {
	Path  schema.Path
	Value cty.Value
	Inner *ChangeSet
}

// IsNested reports whether the payload is a nested changeset.
func (ch Change) IsNested() bool {
	return ch.Inner != nil
}

// ChangeSet is an ordered batch of Changes tagged with the record type
// it was produced against. Immutable once built; Apply consumes it in
// the stored order and mirrors that order in the inverse it returns.
type ChangeSet struct {
	target  schema.TypeID
	changes []Change
}

func NewChangeSet(target schema.TypeID, changes []Change) ChangeSet {
	return ChangeSet{target: target, changes: changes}
}

// Target is the TypeID of the schema this changeset fits.
func (cs ChangeSet) Target() schema.TypeID {
	return cs.target
}

// ForSchema reports whether the changeset may be applied to records of
// the given schema. Apply checks this itself and panics on a mismatch;
// consumers holding changesets of several types check it first.
func (cs ChangeSet) ForSchema(sch *schema.Schema) bool {
	return cs.target == sch.ID()
}

func (cs ChangeSet) Changes() []Change {
	return cs.changes
}

func (cs ChangeSet) Len() int {
	return len(cs.changes)
}

func (cs ChangeSet) IsEmpty() bool {
	return len(cs.changes) == 0
}
