package schema

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash"
	"github.com/pkg/errors"
)

var ErrBadField = errors.New("bad field description")
var ErrDupField = errors.New("duplicate field name")
var ErrNoSuchField = errors.New("no such field")
var ErrNotNested = errors.New("field is not a nested record")

// TypeID identifies a record type. Two schemas that declare the same
// name and the same ordered field list get the same TypeID; anything
// else collides only as often as a 64-bit hash does. A ChangeSet is
// tagged with the TypeID of the schema it was produced against, and
// applying it anywhere else is refused.
type TypeID uint64

func (t TypeID) String() string {
	return fmt.Sprintf("%x", uint64(t))
}

// Schema is the ordered field list of one record type. Immutable after New.
type Schema struct {
	name   string
	fields Fields
	id     TypeID
}

func New(name string, fields ...Field) (*Schema, error) {
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if !f.Valid() {
			return nil, errors.Wrap(ErrBadField, f.Name)
		}
		if _, ok := seen[f.Name]; ok {
			return nil, errors.Wrap(ErrDupField, f.Name)
		}
		seen[f.Name] = struct{}{}
	}
	sch := &Schema{name: name, fields: fields}
	sch.id = TypeID(xxhash.Sum64String(sch.signature()))
	return sch, nil
}

// MustNew is New for statically known schemas, e.g. package-level vars.
func MustNew(name string, fields ...Field) *Schema {
	sch, err := New(name, fields...)
	if err != nil {
		panic(err)
	}
	return sch
}

// signature is the canonical text the TypeID is computed over. Nested
// schemas contribute their own id, so a change anywhere in the tree
// changes the root id too.
func (s *Schema) signature() string {
	var b strings.Builder
	b.WriteString(s.name)
	for _, f := range s.fields {
		b.WriteByte(0)
		b.WriteByte(byte(f.Kind))
		b.WriteString(f.Name)
		b.WriteByte(0)
		if f.Kind == Nested {
			b.WriteString(f.Inner.id.String())
		} else {
			b.WriteString(f.Type.FriendlyName())
		}
	}
	return b.String()
}

func (s *Schema) Name() string {
	return s.name
}

func (s *Schema) ID() TypeID {
	return s.id
}

func (s *Schema) Len() int {
	return len(s.fields)
}

func (s *Schema) Fields() Fields {
	return s.fields
}

// FieldAt panics on a bad index: field indices come from paths, and a
// path that does not fit the schema is a shape mismatch, not data.
func (s *Schema) FieldAt(ndx int) Field {
	if ndx < 0 || ndx >= len(s.fields) {
		panic(fmt.Sprintf("schema %s has no field %d", s.name, ndx))
	}
	return s.fields[ndx]
}

// Resolve turns a dotted field name ("start.x") into a Path, descending
// through nested schemas one name at a time.
func (s *Schema) Resolve(dotted string) (Path, error) {
	path := Root()
	cur := s
	names := strings.Split(dotted, ".")
	for i, name := range names {
		ndx := cur.fields.FindName(name)
		if ndx == -1 {
			return nil, errors.Wrapf(ErrNoSuchField, "%s in %s", name, cur.name)
		}
		path = path.Push(ndx)
		f := cur.fields[ndx]
		if i+1 < len(names) {
			if f.Kind != Nested {
				return nil, errors.Wrapf(ErrNotNested, "%s in %s", name, cur.name)
			}
			cur = f.Inner
		}
	}
	return path, nil
}

// FieldByPath walks the schema tree to the field a path denotes.
func (s *Schema) FieldByPath(path Path) (Field, error) {
	if path.Len() == 0 {
		return Field{}, errors.Wrap(ErrNoSuchField, "empty path")
	}
	cur := s
	for depth := 0; ; depth++ {
		ndx := path.At(depth)
		if ndx < 0 || ndx >= len(cur.fields) {
			return Field{}, errors.Wrapf(ErrNoSuchField, "index %d in %s", ndx, cur.name)
		}
		f := cur.fields[ndx]
		if depth+1 == path.Len() {
			return f, nil
		}
		if f.Kind != Nested {
			return Field{}, errors.Wrapf(ErrNotNested, "%s in %s", f.Name, cur.name)
		}
		cur = f.Inner
	}
}
