package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathPush(t *testing.T) {
	root := Root()
	assert.Equal(t, 0, root.Len())
	assert.Equal(t, ".", root.String())

	a := root.Push(1)
	b := root.Push(2)
	// pushes off the same parent do not alias
	assert.Equal(t, Path{1}, a)
	assert.Equal(t, Path{2}, b)

	deep := a.Push(0).Push(3)
	assert.Equal(t, Path{1, 0, 3}, deep)
	assert.Equal(t, "1.0.3", deep.String())
	assert.Equal(t, Path{1}, a)
}

func TestPathAt(t *testing.T) {
	p := Root().Push(2).Push(5)
	assert.Equal(t, 2, p.At(0))
	assert.Equal(t, 5, p.At(1))
	assert.Panics(t, func() { p.At(2) })
	assert.Panics(t, func() { p.At(-1) })
}

func TestPathEqual(t *testing.T) {
	assert.True(t, Root().Equal(Root()))
	assert.True(t, Path{1, 2}.Equal(Path{1, 2}))
	assert.False(t, Path{1, 2}.Equal(Path{1}))
	assert.False(t, Path{1, 2}.Equal(Path{1, 3}))
}
