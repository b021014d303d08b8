package cset

import (
	"github.com/pkg/errors"
	"github.com/zclconf/go-cty/cty"

	"github.com/nickdbush/cset/schema"
)

// Draft stages edits against one record without writing them. Scalar
// fields are two-state (unchanged, or staged replacement); nested
// fields hold a sub-draft bound to the child record. Commit writes the
// staged values and returns the changeset of replaced values; Discard
// drops everything staged with no effect on the record. Either way the
// draft is spent and further use panics.
type Draft struct {
	rec    *Record
	parent *Draft
	fields []draftField
	done   bool
}

type draftField struct {
	staged cty.Value
	dirty  bool
	sub    *Draft
}

func newDraft(rec *Record) *Draft {
	rec.seal()
	d := &Draft{
		rec:    rec,
		fields: make([]draftField, rec.sch.Len()),
	}
	for i, f := range rec.sch.Fields() {
		if f.Kind == schema.Nested {
			sub := newDraft(rec.slots[i].child)
			sub.parent = d
			d.fields[i].sub = sub
		}
	}
	return d
}

func (d *Draft) alive() {
	if d.done {
		panic(errors.Wrap(ErrDraftConsumed, d.rec.sch.Name()))
	}
}

// Get returns the staged value of a scalar field if one is present,
// else the record's current value. Never both, never fails.
func (d *Draft) Get(ndx int) cty.Value {
	d.alive()
	f := d.rec.sch.FieldAt(ndx)
	if f.Kind != schema.Scalar {
		panic(errors.Wrapf(ErrKindMismatch, "get %s.%s", d.rec.sch.Name(), f.Name))
	}
	if d.fields[ndx].dirty {
		return d.fields[ndx].staged
	}
	return d.rec.slots[ndx].value
}

// Set stages a replacement value for a scalar field, displacing any
// previously staged value. Returns the draft so edits chain:
//
//	cs := rec.Edit().Set(0, v).Commit()
func (d *Draft) Set(ndx int, v cty.Value) *Draft {
	d.alive()
	f := d.rec.sch.FieldAt(ndx)
	if f.Kind != schema.Scalar {
		panic(errors.Wrapf(ErrKindMismatch, "set %s.%s", d.rec.sch.Name(), f.Name))
	}
	if !v.Type().Equals(f.Type) {
		panic(errors.Wrapf(ErrValueType, "set %s.%s: %s", d.rec.sch.Name(), f.Name, v.Type().FriendlyName()))
	}
	d.fields[ndx].staged = v
	d.fields[ndx].dirty = true
	return d
}

func (d *Draft) GetName(name string) cty.Value {
	return d.Get(d.mustIndex(name))
}

func (d *Draft) SetName(name string, v cty.Value) *Draft {
	return d.Set(d.mustIndex(name), v)
}

func (d *Draft) mustIndex(name string) int {
	ndx := d.rec.sch.Fields().FindName(name)
	if ndx == -1 {
		panic(errors.Wrapf(ErrShapeMismatch, "no field %s in %s", name, d.rec.sch.Name()))
	}
	return ndx
}

// Editor returns the sub-draft bound to a nested field's record.
func (d *Draft) Editor(ndx int) *Draft {
	d.alive()
	f := d.rec.sch.FieldAt(ndx)
	if f.Kind != schema.Nested {
		panic(errors.Wrapf(ErrKindMismatch, "editor %s.%s", d.rec.sch.Name(), f.Name))
	}
	return d.fields[ndx].sub
}

// IsFieldDirty reports whether a scalar field has a staged value, or
// whether a nested field's sub-draft is dirty anywhere below.
func (d *Draft) IsFieldDirty(ndx int) bool {
	d.alive()
	f := d.rec.sch.FieldAt(ndx)
	if f.Kind == schema.Nested {
		return d.fields[ndx].sub.IsDirty()
	}
	return d.fields[ndx].dirty
}

// IsDirty reports whether committing now would modify the record.
func (d *Draft) IsDirty() bool {
	d.alive()
	for i := range d.fields {
		if d.IsFieldDirty(i) {
			return true
		}
	}
	return false
}

// Reset clears one field's staged state. For a scalar field the staged
// value (if any) is returned to the caller; for a nested field the
// whole sub-draft is reset recursively and ok is false.
func (d *Draft) Reset(ndx int) (old cty.Value, ok bool) {
	d.alive()
	f := d.rec.sch.FieldAt(ndx)
	if f.Kind == schema.Nested {
		d.fields[ndx].sub.ResetAll()
		return cty.NilVal, false
	}
	if !d.fields[ndx].dirty {
		return cty.NilVal, false
	}
	old = d.fields[ndx].staged
	d.fields[ndx].staged = cty.NilVal
	d.fields[ndx].dirty = false
	return old, true
}

// ResetAll clears every staged value, recursively.
func (d *Draft) ResetAll() {
	d.alive()
	for i := range d.fields {
		d.Reset(i)
	}
}

// Commit writes every staged value into the record and returns the
// changeset of the values they replaced, in field declaration order.
// Nested sub-drafts commit recursively; a clean sub-draft contributes
// nothing. The draft is spent afterwards and the record unsealed.
func (d *Draft) Commit() ChangeSet {
	d.alive()
	if d.parent != nil {
		panic(errors.Wrap(ErrNestedDraft, "commit"))
	}
	changes := d.commit(schema.Root())
	d.finish()
	CommitCount.WithLabelValues(d.rec.sch.Name()).Inc()
	ChangeCount.WithLabelValues(d.rec.sch.Name()).Add(float64(len(changes)))
	return NewChangeSet(d.rec.sch.ID(), changes)
}

func (d *Draft) commit(prefix schema.Path) []Change {
	var changes []Change
	for i, f := range d.rec.sch.Fields() {
		path := prefix.Push(i)
		if f.Kind == schema.Nested {
			sub := d.fields[i].sub
			if !sub.IsDirty() {
				continue
			}
			inner := NewChangeSet(f.Inner.ID(), sub.commit(path))
			changes = append(changes, Change{Path: path, Inner: &inner})
		} else if d.fields[i].dirty {
			old := d.rec.slots[i].value
			d.rec.slots[i].value = d.fields[i].staged
			changes = append(changes, Change{Path: path, Value: old})
		}
	}
	return changes
}

// Discard releases the record without writing anything.
func (d *Draft) Discard() {
	d.alive()
	if d.parent != nil {
		panic(errors.Wrap(ErrNestedDraft, "discard"))
	}
	d.finish()
}

func (d *Draft) finish() {
	d.done = true
	d.rec.unseal()
	for i, f := range d.rec.sch.Fields() {
		if f.Kind == schema.Nested {
			d.fields[i].sub.finish()
		}
	}
}
