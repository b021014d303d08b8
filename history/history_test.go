package history

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/zclconf/go-cty/cty"

	"github.com/nickdbush/cset"
	"github.com/nickdbush/cset/schema"
	"github.com/nickdbush/cset/utils"
)

func newPoint(t *testing.T, h *History, x, y int64) (id uuid.UUID) {
	t.Helper()
	sch, err := schema.New("Point",
		schema.ScalarField("x", cty.Number),
		schema.ScalarField("y", cty.Number),
	)
	assert.Nil(t, err)
	rec := cset.New(sch)
	rec.Set(0, cty.NumberIntVal(x))
	rec.Set(1, cty.NumberIntVal(y))
	return h.Track(rec)
}

func moveTo(t *testing.T, h *History, id uuid.UUID, x, y int64) {
	t.Helper()
	err := h.Edit(id, func(d *cset.Draft) {
		d.Set(0, cty.NumberIntVal(x))
		d.Set(1, cty.NumberIntVal(y))
	})
	assert.Nil(t, err)
}

func at(t *testing.T, h *History, id uuid.UUID) (x, y int64) {
	t.Helper()
	rec, err := h.Record(id)
	assert.Nil(t, err)
	xb, _ := rec.Get(0).AsBigFloat().Int64()
	yb, _ := rec.Get(1).AsBigFloat().Int64()
	return xb, yb
}

func TestUndoRedoStack(t *testing.T) {
	h := New(utils.NopLogger{})
	p := newPoint(t, h, 42, 21)

	moveTo(t, h, p, 10, 10)
	moveTo(t, h, p, 20, 20)
	moveTo(t, h, p, 30, 30)
	x, y := at(t, h, p)
	assert.Equal(t, [2]int64{30, 30}, [2]int64{x, y})

	assert.True(t, h.Undo())
	x, y = at(t, h, p)
	assert.Equal(t, [2]int64{20, 20}, [2]int64{x, y})

	assert.True(t, h.Undo())
	x, y = at(t, h, p)
	assert.Equal(t, [2]int64{10, 10}, [2]int64{x, y})

	assert.True(t, h.Redo())
	x, y = at(t, h, p)
	assert.Equal(t, [2]int64{20, 20}, [2]int64{x, y})

	// a fresh edit clears the redo stack
	moveTo(t, h, p, 40, 40)
	assert.False(t, h.Redo())
	x, y = at(t, h, p)
	assert.Equal(t, [2]int64{40, 40}, [2]int64{x, y})
}

func TestUndoEmpty(t *testing.T) {
	h := New(utils.NopLogger{})
	assert.False(t, h.Undo())
	assert.False(t, h.Redo())
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
}

func TestNoopEditNotRecorded(t *testing.T) {
	h := New(utils.NopLogger{})
	p := newPoint(t, h, 1, 1)

	err := h.Edit(p, func(d *cset.Draft) {})
	assert.Nil(t, err)
	assert.False(t, h.CanUndo())
}

func TestAlternatingAppliesToggle(t *testing.T) {
	h := New(utils.NopLogger{})
	p := newPoint(t, h, 0, 0)
	moveTo(t, h, p, 5, 5)

	for i := 0; i < 4; i++ {
		assert.True(t, h.Undo())
		x, y := at(t, h, p)
		assert.Equal(t, [2]int64{0, 0}, [2]int64{x, y})

		assert.True(t, h.Redo())
		x, y = at(t, h, p)
		assert.Equal(t, [2]int64{5, 5}, [2]int64{x, y})
	}
}

func TestUnknownRecord(t *testing.T) {
	h := New(utils.NopLogger{})
	var bogus uuid.UUID
	_, err := h.Record(bogus)
	assert.NotNil(t, err)
	assert.NotNil(t, h.Edit(bogus, func(d *cset.Draft) {}))
}
