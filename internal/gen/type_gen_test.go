package gen

import (
	"os"
	"testing"

	"github.com/beevik/etree"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sbe-schema-generator/internal/schema"
)

func writtenTypes(t *testing.T, g *Generator) []*etree.Element {
	t.Helper()

	types := readDoc(t, g.Path()).Root().SelectElement("types")
	require.NotNil(t, types)

	return types.ChildElements()
}

func TestGenerateNumberType_BoundaryTable(t *testing.T) {
	tests := []struct {
		primitive string
		null      string
		min       string
		max       string
	}{
		{"int8", "-128", "-127", "127"},
		{"uint8", "255", "0", "254"},
		{"int16", "-32768", "-32767", "32767"},
		{"uint16", "65535", "0", "65534"},
		{"int32", "-2147483648", "-2147483647", "2147483647"},
		{"uint32", "4294967295", "0", "4294967294"},
		{"int64", "-9223372036854775808", "-9223372036854775807", "9223372036854775807"},
		{"uint64", "18446744073709551615", "0", "18446744073709551614"},
	}

	for _, tt := range tests {
		t.Run(tt.primitive, func(t *testing.T) {
			g := newTestGenerator(t)

			frag, err := g.GenerateNumberType(tt.primitive+"_t", tt.primitive, schema.PresenceRequired)
			require.NoError(t, err)
			assert.Contains(t, frag, `nullValue="`+tt.null+`"`)

			types := writtenTypes(t, g)
			require.Len(t, types, 1)

			el := types[0]
			assert.Equal(t, "type", el.Tag)
			assert.Equal(t, []string{"name", "primitiveType", "nullValue", "presence", "minValue", "maxValue"}, attrKeys(el))
			assert.Equal(t, tt.primitive+"_t", el.SelectAttrValue("name", ""))
			assert.Equal(t, tt.null, el.SelectAttrValue("nullValue", ""))
			assert.Equal(t, tt.min, el.SelectAttrValue("minValue", ""))
			assert.Equal(t, tt.max, el.SelectAttrValue("maxValue", ""))
			assert.Equal(t, "required", el.SelectAttrValue("presence", ""))
		})
	}
}

func TestGenerateNumberType_Unsupported(t *testing.T) {
	g := newTestGenerator(t)

	before, err := os.ReadFile(g.Path())
	require.NoError(t, err)

	for _, name := range []string{"float", "double", "char", "int128", "UINT8", ""} {
		_, err := g.GenerateNumberType("x_t", name, schema.PresenceRequired)
		require.ErrorIs(t, err, ErrUnsupportedPrimitiveType, name)
	}

	after, err := os.ReadFile(g.Path())
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
	assert.Empty(t, g.types.ChildElements())
}

func TestGenerateStringType(t *testing.T) {
	tests := []struct {
		name     string
		presence schema.Presence
		want     []string
	}{
		{"char8", schema.PresenceRequired, []string{"name", "length", "primitiveType"}},
		{"char8_optional", schema.PresenceOptional, []string{"name", "length", "primitiveType", "presence"}},
		{"char8c", schema.PresenceConstant, []string{"name", "length", "primitiveType"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGenerator(t)

			_, err := g.GenerateStringType(tt.name, "char", 8, tt.presence)
			require.NoError(t, err)

			types := writtenTypes(t, g)
			require.Len(t, types, 1)
			assert.Equal(t, tt.want, attrKeys(types[0]))
			assert.Equal(t, "8", types[0].SelectAttrValue("length", ""))
		})
	}
}

func TestGenerateEnumAndSet(t *testing.T) {
	g := newTestGenerator(t)

	var side schema.Structure
	require.NoError(t, json.Unmarshal([]byte(`{"Sell": "2", "Buy": "1", "Cross": 3}`), &side))

	frag, err := g.GenerateEnum("char", "Side", side)
	require.NoError(t, err)
	assert.Contains(t, frag, `<validValue name="Cross">3</validValue>`)

	_, err = g.GenerateSet("uint8", "Flags", schema.Structure{{Key: "A", Value: 0}, {Key: "B", Value: 1}})
	require.NoError(t, err)

	types := writtenTypes(t, g)
	require.Len(t, types, 2)

	enum := types[0]
	assert.Equal(t, "enum", enum.Tag)
	assert.Equal(t, []string{"encodingType", "name"}, attrKeys(enum))

	var values []string
	for _, v := range enum.SelectElements("validValue") {
		values = append(values, v.SelectAttrValue("name", "")+"="+v.Text())
	}

	assert.Equal(t, []string{"Sell=2", "Buy=1", "Cross=3"}, values)

	set := types[1]
	assert.Equal(t, "set", set.Tag)
	choices := set.SelectElements("choice")
	require.Len(t, choices, 2)
	assert.Equal(t, "B", choices[1].SelectAttrValue("name", ""))
	assert.Equal(t, "1", choices[1].Text())
}

func TestGenerateComposite_WritesAttributesAsGiven(t *testing.T) {
	g := newTestGenerator(t)

	_, err := g.GenerateComposite(schema.CompositeTypeDef{
		Name:        "decimal",
		Description: "price",
		Elements: []schema.Attributes{
			{{Key: "primitiveType", Value: "int64"}, {Key: "name", Value: "mantissa"}},
			{{Key: "name", Value: "exponent"}, {Key: "primitiveType", Value: "int8"}, {Key: "presence", Value: "constant"}},
		},
	})
	require.NoError(t, err)

	types := writtenTypes(t, g)
	require.Len(t, types, 1)
	assert.Equal(t, "decimal", types[0].SelectAttrValue("name", ""))
	assert.Equal(t, "price", types[0].SelectAttrValue("description", ""))

	elements := types[0].ChildElements()
	require.Len(t, elements, 2)
	assert.Equal(t, []string{"primitiveType", "name"}, attrKeys(elements[0]))
	assert.Equal(t, []string{"name", "primitiveType", "presence"}, attrKeys(elements[1]))
}

func TestGenerateDefaultComposites(t *testing.T) {
	g := newTestGenerator(t)

	frag, err := g.GenerateDefaultComposites()
	require.NoError(t, err)
	assert.Contains(t, frag, `name="messageHeader"`)
	assert.Contains(t, frag, `name="groupSizeEncoding16"`)

	types := writtenTypes(t, g)
	require.Len(t, types, 3)

	var names []string
	for _, c := range types {
		names = append(names, c.SelectAttrValue("name", ""))
	}

	assert.Equal(t, []string{"messageHeader", "groupSizeEncoding", "groupSizeEncoding16"}, names)

	header := types[0].ChildElements()
	require.Len(t, header, 4)
	assert.Equal(t, "Message identifiers and length of message root", types[0].SelectAttrValue("description", ""))

	for _, el := range header {
		assert.Equal(t, "uint16", el.SelectAttrValue("primitiveType", ""))
	}

	for i, blockLength := range []string{"uint8", "uint16"} {
		c := types[i+1]
		assert.Equal(t, "Repeating group dimensions", c.SelectAttrValue("description", ""))

		elements := c.ChildElements()
		require.Len(t, elements, 2)
		assert.Equal(t, blockLength, elements[0].SelectAttrValue("primitiveType", ""))
		assert.Equal(t, []string{"name", "primitiveType", "semanticType"}, attrKeys(elements[1]))
		assert.Equal(t, "NumInGroup", elements[1].SelectAttrValue("semanticType", ""))
		assert.Equal(t, "uint8", elements[1].SelectAttrValue("primitiveType", ""))
	}
}

func TestGenerateByCollection(t *testing.T) {
	g := newTestGenerator(t)

	_, err := g.GeneratePrimitiveType(schema.CollectionStringTypes, schema.PrimitiveTypeDef{
		Name: "char4", DataType: "char", Length: 4, Presence: schema.PresenceRequired,
	})
	require.NoError(t, err)

	_, err = g.GeneratePrimitiveType(schema.CollectionNumberTypes, schema.PrimitiveTypeDef{
		Name: "uint8_t", DataType: "uint8", Length: 1, Presence: schema.PresenceOptional,
	})
	require.NoError(t, err)

	_, err = g.GenerateCustomType(schema.CollectionSetTypes, schema.CustomTypeDef{EncodingType: "uint8", Name: "Flags"})
	require.NoError(t, err)

	_, err = g.GeneratePrimitiveType(schema.CollectionEnumTypes, schema.PrimitiveTypeDef{})
	require.ErrorIs(t, err, schema.ErrInvalidCollection)

	_, err = g.GenerateCustomType(schema.CollectionMessages, schema.CustomTypeDef{})
	require.ErrorIs(t, err, schema.ErrInvalidCollection)

	types := writtenTypes(t, g)
	require.Len(t, types, 3)
	assert.Equal(t, "4", types[0].SelectAttrValue("length", ""))
	assert.Equal(t, "optional", types[1].SelectAttrValue("presence", ""))
	assert.Equal(t, "set", types[2].Tag)
	assert.Empty(t, types[2].ChildElements())
}
