package schema

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/zclconf/go-cty/cty"
)

var ErrBadValue = errors.New("bad value for the field type")

// ParseValue turns user-facing text into a cty value of the wanted type.
// Only the primitive types have a text form; everything else arrives as
// a ready-made cty.Value through the API.
func ParseValue(t cty.Type, text string) (cty.Value, error) {
	switch t {
	case cty.String:
		if len(text) >= 2 && text[0] == '"' {
			unq, err := strconv.Unquote(text)
			if err != nil {
				return cty.NilVal, errors.Wrap(ErrBadValue, text)
			}
			return cty.StringVal(unq), nil
		}
		return cty.StringVal(text), nil
	case cty.Number:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return cty.NilVal, errors.Wrap(ErrBadValue, text)
		}
		return cty.NumberFloatVal(f), nil
	case cty.Bool:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return cty.NilVal, errors.Wrap(ErrBadValue, text)
		}
		return cty.BoolVal(b), nil
	}
	return cty.NilVal, errors.Wrap(ErrBadValue, t.FriendlyName())
}

// StringValue renders a value for display, the inverse of ParseValue
// for the primitive types.
func StringValue(v cty.Value) string {
	if v.IsNull() {
		return "null"
	}
	switch v.Type() {
	case cty.String:
		return strconv.Quote(v.AsString())
	case cty.Number:
		f, _ := v.AsBigFloat().Float64()
		return strconv.FormatFloat(f, 'g', -1, 64)
	case cty.Bool:
		return strconv.FormatBool(v.True())
	}
	return v.GoString()
}

// TypeFromName maps the repl-facing type names onto cty types.
func TypeFromName(name string) (cty.Type, bool) {
	switch name {
	case "string", "S":
		return cty.String, true
	case "number", "N":
		return cty.Number, true
	case "bool", "B":
		return cty.Bool, true
	}
	return cty.NilType, false
}
