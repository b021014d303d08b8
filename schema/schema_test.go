package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zclconf/go-cty/cty"
)

func point(t *testing.T) *Schema {
	sch, err := New("Point",
		ScalarField("x", cty.Number),
		ScalarField("y", cty.Number),
	)
	assert.Nil(t, err)
	return sch
}

func line(t *testing.T) *Schema {
	sch, err := New("Line",
		ScalarField("label", cty.String),
		NestedField("start", point(t)),
		NestedField("end", point(t)),
	)
	assert.Nil(t, err)
	return sch
}

func TestFieldValid(t *testing.T) {
	assert.True(t, ScalarField("x", cty.Number).Valid())
	assert.True(t, NestedField("p", point(t)).Valid())

	assert.False(t, Field{Name: "x", Kind: Scalar}.Valid())       // no type
	assert.False(t, Field{Name: "p", Kind: Nested}.Valid())       // no inner schema
	assert.False(t, ScalarField("", cty.Number).Valid())          // empty name
	assert.False(t, ScalarField("a\nb", cty.Number).Valid())      // unsafe chars
	assert.False(t, Field{Name: "x", Kind: 'Q', Type: cty.Number}.Valid())
}

func TestSchemaNew(t *testing.T) {
	_, err := New("Bad", ScalarField("", cty.Number))
	assert.NotNil(t, err)

	_, err = New("Dup",
		ScalarField("x", cty.Number),
		ScalarField("x", cty.String),
	)
	assert.NotNil(t, err)
}

func TestTypeID(t *testing.T) {
	// same declaration, same id
	assert.Equal(t, point(t).ID(), point(t).ID())
	// any difference in name, field set or nesting changes the id
	assert.NotEqual(t, point(t).ID(), line(t).ID())

	renamed, err := New("Point2",
		ScalarField("x", cty.Number),
		ScalarField("y", cty.Number),
	)
	assert.Nil(t, err)
	assert.NotEqual(t, point(t).ID(), renamed.ID())

	retyped, err := New("Point",
		ScalarField("x", cty.String),
		ScalarField("y", cty.Number),
	)
	assert.Nil(t, err)
	assert.NotEqual(t, point(t).ID(), retyped.ID())
}

func TestFindName(t *testing.T) {
	sch := line(t)
	assert.Equal(t, 0, sch.Fields().FindName("label"))
	assert.Equal(t, 2, sch.Fields().FindName("end"))
	assert.Equal(t, -1, sch.Fields().FindName("nope"))
}

func TestResolve(t *testing.T) {
	sch := line(t)

	path, err := sch.Resolve("label")
	assert.Nil(t, err)
	assert.Equal(t, Path{0}, path)

	path, err = sch.Resolve("start.y")
	assert.Nil(t, err)
	assert.Equal(t, Path{1, 1}, path)

	_, err = sch.Resolve("nope")
	assert.NotNil(t, err)
	// descending through a scalar
	_, err = sch.Resolve("label.x")
	assert.NotNil(t, err)
}

func TestFieldByPath(t *testing.T) {
	sch := line(t)

	f, err := sch.FieldByPath(Path{1, 0})
	assert.Nil(t, err)
	assert.Equal(t, "x", f.Name)

	f, err = sch.FieldByPath(Path{2})
	assert.Nil(t, err)
	assert.Equal(t, Nested, f.Kind)

	_, err = sch.FieldByPath(Path{9})
	assert.NotNil(t, err)
	_, err = sch.FieldByPath(Path{0, 0})
	assert.NotNil(t, err)
	_, err = sch.FieldByPath(Root())
	assert.NotNil(t, err)
}
