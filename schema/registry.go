package schema

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/nickdbush/cset/utils"
)

var ErrSchemaKnown = errors.New("schema already registered")
var ErrSchemaUnknown = errors.New("unknown schema")

const resolveCacheSize = 1024

// Registry keeps the schemas an application works with, addressable by
// name and by TypeID. Dotted-name resolution is memoized: the repl and
// any other text-facing caller resolve the same handful of field names
// over and over.
type Registry struct {
	byName   *xsync.MapOf[string, *Schema]
	byID     *xsync.MapOf[TypeID, *Schema]
	resolved *lru.Cache[string, Path]
	log      utils.Logger
}

func NewRegistry(log utils.Logger) *Registry {
	cache, _ := lru.New[string, Path](resolveCacheSize)
	return &Registry{
		byName:   xsync.NewMapOf[string, *Schema](),
		byID:     xsync.NewMapOf[TypeID, *Schema](),
		resolved: cache,
		log:      log,
	}
}

func (reg *Registry) Register(sch *Schema) error {
	if _, loaded := reg.byName.LoadOrStore(sch.Name(), sch); loaded {
		return errors.Wrap(ErrSchemaKnown, sch.Name())
	}
	reg.storeID(sch)
	reg.log.Debug("schema registered", "name", sch.Name(), "id", sch.ID().String())
	return nil
}

// storeID makes a schema and all of its nested schemas addressable by id.
func (reg *Registry) storeID(sch *Schema) {
	reg.byID.Store(sch.ID(), sch)
	for _, f := range sch.Fields() {
		if f.Kind == Nested {
			reg.storeID(f.Inner)
		}
	}
}

func (reg *Registry) Lookup(name string) (*Schema, error) {
	sch, ok := reg.byName.Load(name)
	if !ok {
		return nil, errors.Wrap(ErrSchemaUnknown, name)
	}
	return sch, nil
}

func (reg *Registry) LookupID(id TypeID) (*Schema, error) {
	sch, ok := reg.byID.Load(id)
	if !ok {
		return nil, errors.Wrap(ErrSchemaUnknown, id.String())
	}
	return sch, nil
}

// Resolve is Schema.Resolve through the registry's cache.
func (reg *Registry) Resolve(sch *Schema, dotted string) (Path, error) {
	key := sch.ID().String() + "\x00" + dotted
	if path, ok := reg.resolved.Get(key); ok {
		return path, nil
	}
	path, err := sch.Resolve(dotted)
	if err != nil {
		return nil, err
	}
	reg.resolved.Add(key, path)
	return path, nil
}
