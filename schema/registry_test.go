package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nickdbush/cset/utils"
)

func TestRegistry(t *testing.T) {
	reg := NewRegistry(utils.NopLogger{})
	sch := line(t)
	assert.Nil(t, reg.Register(sch))
	assert.NotNil(t, reg.Register(sch)) // duplicate name

	got, err := reg.Lookup("Line")
	assert.Nil(t, err)
	assert.Equal(t, sch, got)

	_, err = reg.Lookup("Nope")
	assert.NotNil(t, err)

	got, err = reg.LookupID(sch.ID())
	assert.Nil(t, err)
	assert.Equal(t, sch, got)

	// nested schemas become addressable by id on registration
	inner, err := reg.LookupID(point(t).ID())
	assert.Nil(t, err)
	assert.Equal(t, "Point", inner.Name())
}

func TestRegistryResolve(t *testing.T) {
	reg := NewRegistry(utils.NopLogger{})
	sch := line(t)
	assert.Nil(t, reg.Register(sch))

	for i := 0; i < 3; i++ { // second pass hits the cache
		path, err := reg.Resolve(sch, "end.x")
		assert.Nil(t, err)
		assert.Equal(t, Path{2, 0}, path)
	}
	_, err := reg.Resolve(sch, "end.nope")
	assert.NotNil(t, err)
}
