// Package history is an undo/redo stack over tracked records: the
// canonical consumer of the changesets the engine produces. Records are
// tracked under opaque handles; each committed edit pushes its inverse
// changeset, and undo/redo apply changesets back and forth, pushing the
// inverse each apply returns onto the opposite stack.
package history

import (
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/nickdbush/cset"
	"github.com/nickdbush/cset/utils"
)

var ErrUnknownRecord = errors.New("record is not tracked here")

type entry struct {
	record    uuid.UUID
	changeset cset.ChangeSet
}

type History struct {
	records *xsync.MapOf[uuid.UUID, *cset.Record]
	undo    []entry
	redo    []entry
	lock    sync.Mutex
	log     utils.Logger
}

func New(log utils.Logger) *History {
	return &History{
		records: xsync.NewMapOf[uuid.UUID, *cset.Record](),
		log:     log,
	}
}

// Track registers a record and returns its handle.
func (h *History) Track(rec *cset.Record) uuid.UUID {
	id := uuid.New()
	h.records.Store(id, rec)
	h.log.Debug("tracking record", "id", id.String(), "schema", rec.Schema().Name())
	return id
}

func (h *History) Record(id uuid.UUID) (*cset.Record, error) {
	rec, ok := h.records.Load(id)
	if !ok {
		return nil, errors.Wrap(ErrUnknownRecord, id.String())
	}
	return rec, nil
}

// Edit stages an edit through fn, commits it, and records the inverse.
// A clean draft commits to an empty changeset, which is not recorded:
// undoing a no-op would itself be a no-op. Any new edit invalidates the
// redo stack.
func (h *History) Edit(id uuid.UUID, fn func(d *cset.Draft)) error {
	rec, err := h.Record(id)
	if err != nil {
		return err
	}
	draft := rec.Edit()
	fn(draft)
	cs := draft.Commit()
	if cs.IsEmpty() {
		return nil
	}
	h.lock.Lock()
	h.undo = append(h.undo, entry{record: id, changeset: cs})
	h.redo = h.redo[:0]
	h.lock.Unlock()
	return nil
}

// Undo reverts the most recent edit. Reports false on an empty stack.
func (h *History) Undo() bool {
	return h.pop(&h.undo, &h.redo, "undo")
}

// Redo re-applies the most recently undone edit.
func (h *History) Redo() bool {
	return h.pop(&h.redo, &h.undo, "redo")
}

func (h *History) pop(from, onto *[]entry, what string) bool {
	h.lock.Lock()
	defer h.lock.Unlock()
	if len(*from) == 0 {
		return false
	}
	e := (*from)[len(*from)-1]
	*from = (*from)[:len(*from)-1]
	rec, ok := h.records.Load(e.record)
	if !ok {
		// the record was untracked with history still pointing at it
		panic(errors.Wrap(ErrUnknownRecord, e.record.String()))
	}
	inverse := rec.Apply(e.changeset)
	*onto = append(*onto, entry{record: e.record, changeset: inverse})
	h.log.Debug(what, "record", e.record.String(), "changes", inverse.Len())
	return true
}

func (h *History) CanUndo() bool {
	h.lock.Lock()
	defer h.lock.Unlock()
	return len(h.undo) > 0
}

func (h *History) CanRedo() bool {
	h.lock.Lock()
	defer h.lock.Unlock()
	return len(h.redo) > 0
}
