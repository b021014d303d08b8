package schema

// A schema describes a record type: an ordered, fixed list of fields.
// Each Field is either a scalar of some cty type or a nested record with
// a schema of its own. Field order is significant: the index of a field
// in the list is its address, and changesets refer to fields by index.
// Fields are never removed or reordered once a schema is built.

import (
	"unicode/utf8"

	"github.com/zclconf/go-cty/cty"
)

type Kind byte

const (
	Scalar Kind = 'S'
	Nested Kind = 'N'
)

type Field struct {
	Name string
	Kind Kind
	// Type is set for scalar fields only.
	Type cty.Type
	// Inner is set for nested fields only.
	Inner *Schema
}

// Fields
type Fields []Field

func (f Field) Valid() bool {
	for _, l := range f.Name { // has unsafe chars
		if l < ' ' {
			return false
		}
	}
	if len(f.Name) == 0 || !utf8.ValidString(f.Name) {
		return false
	}
	switch f.Kind {
	case Scalar:
		return f.Inner == nil && f.Type != cty.NilType
	case Nested:
		return f.Inner != nil
	}
	return false
}

func (fs Fields) FindName(name string) (ndx int) {
	for i := 0; i < len(fs); i++ {
		if fs[i].Name == name {
			return i
		}
	}
	return -1
}

// ScalarField is a shorthand constructor for a scalar field slot.
func ScalarField(name string, t cty.Type) Field {
	return Field{Name: name, Kind: Scalar, Type: t}
}

// NestedField is a shorthand constructor for a nested record slot.
func NestedField(name string, inner *Schema) Field {
	return Field{Name: name, Kind: Nested, Inner: inner}
}
