package cset

import (
	"github.com/pkg/errors"
	"github.com/zclconf/go-cty/cty"

	"github.com/nickdbush/cset/schema"
)

// Record is a mutable structured value shaped by a schema. Scalar slots
// hold a cty.Value of the declared type (null until written); nested
// slots hold a child Record built from the field's inner schema.
//
// While a Draft is outstanding the record is sealed: Set, Apply and a
// second Edit all panic until the draft commits or is discarded.
type Record struct {
	sch     *schema.Schema
	slots   []slot
	editing bool
}

type slot struct {
	value cty.Value
	child *Record
}

func New(sch *schema.Schema) *Record {
	rec := &Record{
		sch:   sch,
		slots: make([]slot, sch.Len()),
	}
	for i, f := range sch.Fields() {
		if f.Kind == schema.Nested {
			rec.slots[i].child = New(f.Inner)
		} else {
			rec.slots[i].value = cty.NullVal(f.Type)
		}
	}
	return rec
}

func (rec *Record) Schema() *schema.Schema {
	return rec.sch
}

// Get returns the current value of a scalar field.
func (rec *Record) Get(ndx int) cty.Value {
	f := rec.sch.FieldAt(ndx)
	if f.Kind != schema.Scalar {
		panic(errors.Wrapf(ErrKindMismatch, "get %s.%s", rec.sch.Name(), f.Name))
	}
	return rec.slots[ndx].value
}

func (rec *Record) GetName(name string) cty.Value {
	ndx := rec.sch.Fields().FindName(name)
	if ndx == -1 {
		panic(errors.Wrapf(ErrShapeMismatch, "no field %s in %s", name, rec.sch.Name()))
	}
	return rec.Get(ndx)
}

// Child returns the nested record stored in a nested field.
func (rec *Record) Child(ndx int) *Record {
	f := rec.sch.FieldAt(ndx)
	if f.Kind != schema.Nested {
		panic(errors.Wrapf(ErrKindMismatch, "child %s.%s", rec.sch.Name(), f.Name))
	}
	return rec.slots[ndx].child
}

// Set writes a scalar field directly, without tracking. The owner may
// do this freely between edits; while a draft is alive the record is
// sealed and Set panics.
func (rec *Record) Set(ndx int, v cty.Value) {
	if rec.editing {
		panic(errors.Wrapf(ErrDraftOutstanding, "set on %s", rec.sch.Name()))
	}
	f := rec.sch.FieldAt(ndx)
	if f.Kind != schema.Scalar {
		panic(errors.Wrapf(ErrKindMismatch, "set %s.%s", rec.sch.Name(), f.Name))
	}
	if !v.Type().Equals(f.Type) {
		panic(errors.Wrapf(ErrValueType, "set %s.%s: %s", rec.sch.Name(), f.Name, v.Type().FriendlyName()))
	}
	rec.slots[ndx].value = v
}

func (rec *Record) SetName(name string, v cty.Value) {
	ndx := rec.sch.Fields().FindName(name)
	if ndx == -1 {
		panic(errors.Wrapf(ErrShapeMismatch, "no field %s in %s", name, rec.sch.Name()))
	}
	rec.Set(ndx, v)
}

// Edit seals the record (and every nested record under it) and returns
// a Draft staging edits against it. Exactly one draft may exist at a
// time; the seal lifts when the draft commits or is discarded.
func (rec *Record) Edit() *Draft {
	if rec.editing {
		panic(errors.Wrapf(ErrDraftOutstanding, "edit on %s", rec.sch.Name()))
	}
	return newDraft(rec)
}

// Apply performs the field replacements a changeset specifies and
// returns the changeset that undoes them, change for change, in the
// same order. Applying that result redoes the original: Apply is its
// own inverse. The changeset must have been produced against this
// record's type; anything else panics.
func (rec *Record) Apply(cs ChangeSet) ChangeSet {
	if rec.editing {
		panic(errors.Wrapf(ErrDraftOutstanding, "apply on %s", rec.sch.Name()))
	}
	inverse := rec.apply(cs, 0)
	ApplyCount.WithLabelValues(rec.sch.Name()).Inc()
	return inverse
}

func (rec *Record) apply(cs ChangeSet, depth int) ChangeSet {
	if cs.target != rec.sch.ID() {
		panic(errors.Wrapf(ErrTypeMismatch, "changeset for %s applied to %s",
			cs.target, rec.sch.ID()))
	}
	inverse := make([]Change, 0, len(cs.changes))
	for _, ch := range cs.changes {
		ndx := ch.Path.At(depth)
		if ndx < 0 || ndx >= rec.sch.Len() {
			panic(errors.Wrapf(ErrShapeMismatch, "field %d at %s in %s",
				ndx, ch.Path, rec.sch.Name()))
		}
		f := rec.sch.FieldAt(ndx)
		if ch.IsNested() {
			if f.Kind != schema.Nested {
				panic(errors.Wrapf(ErrShapeMismatch, "nested payload for scalar %s.%s",
					rec.sch.Name(), f.Name))
			}
			innerInverse := rec.slots[ndx].child.apply(*ch.Inner, depth+1)
			inverse = append(inverse, Change{Path: ch.Path, Inner: &innerInverse})
		} else {
			if f.Kind != schema.Scalar {
				panic(errors.Wrapf(ErrShapeMismatch, "scalar payload for nested %s.%s",
					rec.sch.Name(), f.Name))
			}
			if !ch.Value.Type().Equals(f.Type) {
				panic(errors.Wrapf(ErrShapeMismatch, "%s payload for %s field %s.%s",
					ch.Value.Type().FriendlyName(), f.Type.FriendlyName(), rec.sch.Name(), f.Name))
			}
			old := rec.slots[ndx].value
			rec.slots[ndx].value = ch.Value
			inverse = append(inverse, Change{Path: ch.Path, Value: old})
		}
	}
	return NewChangeSet(rec.sch.ID(), inverse)
}

func (rec *Record) String() string {
	ret := []byte{'{'}
	for n, f := range rec.sch.Fields() {
		if n != 0 {
			ret = append(ret, ',')
		}
		ret = append(ret, f.Name...)
		ret = append(ret, ':')
		if f.Kind == schema.Nested {
			ret = append(ret, rec.slots[n].child.String()...)
		} else {
			ret = append(ret, schema.StringValue(rec.slots[n].value)...)
		}
	}
	ret = append(ret, '}')
	return string(ret)
}

// seal and unseal flip the in-use flag; the draft machinery walks them
// over the whole record tree.
func (rec *Record) seal() {
	rec.editing = true
}

func (rec *Record) unseal() {
	rec.editing = false
}
