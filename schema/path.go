package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// Path addresses one field inside a possibly nested record: one zero-based
// field index per nesting level. The empty Path is the root. Paths are
// immutable values; Push copies.
type Path []int

func Root() Path {
	return Path{}
}

func (p Path) Push(ndx int) Path {
	np := make(Path, len(p), len(p)+1)
	copy(np, p)
	return append(np, ndx)
}

// At returns the field index at the given nesting level. An out-of-range
// depth means a changeset is being walked against a record tree of a
// different shape, which is a bug in the caller.
func (p Path) At(depth int) int {
	if depth < 0 || depth >= len(p) {
		panic(fmt.Sprintf("path %s has no index at depth %d", p, depth))
	}
	return p[depth]
}

func (p Path) Len() int {
	return len(p)
}

func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

func (p Path) String() string {
	if len(p) == 0 {
		return "."
	}
	var b strings.Builder
	for i, ndx := range p {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.Itoa(ndx))
	}
	return b.String()
}
