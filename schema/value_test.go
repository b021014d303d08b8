package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zclconf/go-cty/cty"
)

func TestParseValue(t *testing.T) {
	v, err := ParseValue(cty.Number, "3.14")
	assert.Nil(t, err)
	assert.Equal(t, "3.14", StringValue(v))

	v, err = ParseValue(cty.String, "plain")
	assert.Nil(t, err)
	assert.Equal(t, "plain", v.AsString())

	v, err = ParseValue(cty.String, "\"quo ted\"")
	assert.Nil(t, err)
	assert.Equal(t, "quo ted", v.AsString())

	v, err = ParseValue(cty.Bool, "true")
	assert.Nil(t, err)
	assert.True(t, v.True())

	_, err = ParseValue(cty.Number, "elephant")
	assert.NotNil(t, err)
	_, err = ParseValue(cty.Bool, "maybe")
	assert.NotNil(t, err)
}

func TestStringValue(t *testing.T) {
	assert.Equal(t, "null", StringValue(cty.NullVal(cty.Number)))
	assert.Equal(t, "42", StringValue(cty.NumberIntVal(42)))
	assert.Equal(t, "\"hi\"", StringValue(cty.StringVal("hi")))
	assert.Equal(t, "false", StringValue(cty.False))
}

func TestTypeFromName(t *testing.T) {
	for name, want := range map[string]cty.Type{
		"string": cty.String, "S": cty.String,
		"number": cty.Number, "N": cty.Number,
		"bool": cty.Bool, "B": cty.Bool,
	} {
		got, ok := TypeFromName(name)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}
	_, ok := TypeFromName("Point")
	assert.False(t, ok)
}
