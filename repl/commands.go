package main

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/nickdbush/cset"
	"github.com/nickdbush/cset/schema"
)

var ErrBadCommand = errors.New("unknown command, try help")
var ErrNoSuchRecord = errors.New("no such record, try ls")

var HelpClass = errors.New("class Point x:number y:number  |  class Line label:string start:Point")
var HelpNew = errors.New("new p Point")
var HelpGet = errors.New("get p x  |  get l start.x")
var HelpSet = errors.New("set p x 42  |  set l start.x 1.5")
var HelpShow = errors.New("show p")

func (repl *REPL) CommandHelp(args []string) error {
	fmt.Println("class Name field:type ...   declare a record type (types: string number bool, or a class name)")
	fmt.Println("new name Class              create a record")
	fmt.Println("set name field value        one tracked edit")
	fmt.Println("get name field              read a field (dotted names reach nested records)")
	fmt.Println("show name                   print a record")
	fmt.Println("ls                          list records")
	fmt.Println("undo / redo                 walk the edit history")
	fmt.Println("exit")
	return nil
}

func (repl *REPL) CommandClass(args []string) (err error) {
	if len(args) < 2 {
		return HelpClass
	}
	name := args[0]
	var fields []schema.Field
	for _, decl := range args[1:] {
		fname, tname, ok := strings.Cut(decl, ":")
		if !ok {
			return HelpClass
		}
		if t, prim := schema.TypeFromName(tname); prim {
			fields = append(fields, schema.ScalarField(fname, t))
			continue
		}
		inner, e := repl.reg.Lookup(tname)
		if e != nil {
			return e
		}
		fields = append(fields, schema.NestedField(fname, inner))
	}
	sch, err := schema.New(name, fields...)
	if err != nil {
		return
	}
	err = repl.reg.Register(sch)
	if err == nil {
		fmt.Printf("class %s (%s)\n", name, sch.ID())
	}
	return
}

func (repl *REPL) CommandNew(args []string) (err error) {
	if len(args) != 2 {
		return HelpNew
	}
	sch, err := repl.reg.Lookup(args[1])
	if err != nil {
		return
	}
	rec := cset.New(sch)
	repl.names[args[0]] = repl.hist.Track(rec)
	fmt.Printf("%s %s\n", args[0], rec.String())
	return
}

func (repl *REPL) record(name string) (*cset.Record, error) {
	id, ok := repl.names[name]
	if !ok {
		return nil, errors.Wrap(ErrNoSuchRecord, name)
	}
	return repl.hist.Record(id)
}

func (repl *REPL) CommandGet(args []string) (err error) {
	if len(args) != 2 {
		return HelpGet
	}
	rec, err := repl.record(args[0])
	if err != nil {
		return
	}
	path, err := repl.reg.Resolve(rec.Schema(), args[1])
	if err != nil {
		return
	}
	field, err := rec.Schema().FieldByPath(path)
	if err != nil {
		return
	}
	cur := rec
	for depth := 0; depth+1 < path.Len(); depth++ {
		cur = cur.Child(path.At(depth))
	}
	last := path.At(path.Len() - 1)
	if field.Kind == schema.Nested {
		fmt.Println(cur.Child(last).String())
	} else {
		fmt.Println(schema.StringValue(cur.Get(last)))
	}
	return
}

func (repl *REPL) CommandSet(args []string) (err error) {
	if len(args) != 3 {
		return HelpSet
	}
	rec, err := repl.record(args[0])
	if err != nil {
		return
	}
	path, err := repl.reg.Resolve(rec.Schema(), args[1])
	if err != nil {
		return
	}
	field, err := rec.Schema().FieldByPath(path)
	if err != nil {
		return
	}
	if field.Kind != schema.Scalar {
		return HelpSet
	}
	value, err := schema.ParseValue(field.Type, args[2])
	if err != nil {
		return
	}
	err = repl.hist.Edit(repl.names[args[0]], func(d *cset.Draft) {
		for depth := 0; depth+1 < path.Len(); depth++ {
			d = d.Editor(path.At(depth))
		}
		d.Set(path.At(path.Len()-1), value)
	})
	if err == nil {
		fmt.Printf("%s %s\n", args[0], rec.String())
	}
	return
}

func (repl *REPL) CommandShow(args []string) (err error) {
	if len(args) != 1 {
		return HelpShow
	}
	rec, err := repl.record(args[0])
	if err != nil {
		return
	}
	fmt.Printf("%s: %s %s\n", args[0], rec.Schema().Name(), rec.String())
	return
}

func (repl *REPL) CommandList(args []string) error {
	for name, id := range repl.names {
		rec, err := repl.hist.Record(id)
		if err != nil {
			continue
		}
		fmt.Printf("%s: %s %s\n", name, rec.Schema().Name(), rec.String())
	}
	return nil
}

func (repl *REPL) CommandUndo(args []string) error {
	if !repl.hist.Undo() {
		fmt.Println("nothing to undo")
	}
	return nil
}

func (repl *REPL) CommandRedo(args []string) error {
	if !repl.hist.Redo() {
		fmt.Println("nothing to redo")
	}
	return nil
}
