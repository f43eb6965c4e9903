package gen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"sbe-schema-generator/internal/schema"
	"sbe-schema-generator/primitive"
)

// GenerateEnum appends an enum with one validValue per structure entry.
func (g *Generator) GenerateEnum(encodingType, name string, structure schema.Structure) (string, error) {
	return g.appendTo(g.types, valuesElement("enum", "validValue", encodingType, name, structure))
}

// GenerateSet appends a set with one choice per structure entry.
func (g *Generator) GenerateSet(encodingType, name string, structure schema.Structure) (string, error) {
	return g.appendTo(g.types, valuesElement("set", "choice", encodingType, name, structure))
}

func valuesElement(tag, childTag, encodingType, name string, structure schema.Structure) *etree.Element {
	el := etree.NewElement(tag)
	el.CreateAttr("encodingType", encodingType)
	el.CreateAttr("name", name)

	for key, value := range structure.All() {
		child := el.CreateElement(childTag)
		child.CreateAttr("name", key)
		child.SetText(schema.FormatLiteral(value))
	}

	return el
}

// GenerateCustomType appends the enum or set held by collection c.
func (g *Generator) GenerateCustomType(c schema.Collection, t schema.CustomTypeDef) (string, error) {
	switch c {
	case schema.CollectionEnumTypes:
		return g.GenerateEnum(t.EncodingType, t.Name, t.Structure)
	case schema.CollectionSetTypes:
		return g.GenerateSet(t.EncodingType, t.Name, t.Structure)
	default:
		return "", fmt.Errorf("%w: %s does not hold enum or set types", schema.ErrInvalidCollection, c)
	}
}

// GenerateNumberType appends a number type carrying the boundary literals
// of its primitive. Primitives without boundary literals are rejected
// before anything is appended.
func (g *Generator) GenerateNumberType(name, primitiveType string, presence schema.Presence) (string, error) {
	b, ok := primitive.LookupBounds(primitiveType)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedPrimitiveType, primitiveType)
	}

	el := etree.NewElement("type")
	el.CreateAttr("name", name)
	el.CreateAttr("primitiveType", primitiveType)
	el.CreateAttr("nullValue", b.Null)
	el.CreateAttr("presence", string(presence.OrDefault()))
	el.CreateAttr("minValue", b.Min)
	el.CreateAttr("maxValue", b.Max)

	return g.appendTo(g.types, el)
}

// GenerateStringType appends a fixed-length string type. Only an optional
// presence is written; required is implicit.
func (g *Generator) GenerateStringType(name, primitiveType string, length int, presence schema.Presence) (string, error) {
	el := etree.NewElement("type")
	el.CreateAttr("name", name)
	el.CreateAttr("length", strconv.Itoa(length))
	el.CreateAttr("primitiveType", primitiveType)

	if presence == schema.PresenceOptional {
		el.CreateAttr("presence", string(presence))
	}

	return g.appendTo(g.types, el)
}

// GeneratePrimitiveType appends the number or string type held by
// collection c.
func (g *Generator) GeneratePrimitiveType(c schema.Collection, t schema.PrimitiveTypeDef) (string, error) {
	switch c {
	case schema.CollectionNumberTypes:
		return g.GenerateNumberType(t.Name, t.DataType, t.Presence)
	case schema.CollectionStringTypes:
		return g.GenerateStringType(t.Name, t.DataType, t.Length, t.Presence)
	default:
		return "", fmt.Errorf("%w: %s does not hold primitive types", schema.ErrInvalidCollection, c)
	}
}

// GenerateComposite appends a composite with one type element per element
// definition. The attributes of each definition are written as given.
func (g *Generator) GenerateComposite(c schema.CompositeTypeDef) (string, error) {
	el := etree.NewElement("composite")
	el.CreateAttr("name", c.Name)
	el.CreateAttr("description", c.Description)

	for _, attrs := range c.Elements {
		t := el.CreateElement("type")
		for key, value := range attrs.All() {
			t.CreateAttr(key, value)
		}
	}

	return g.appendTo(g.types, el)
}

// DefaultComposites returns the standard message header and group
// dimension composites.
func DefaultComposites() []schema.CompositeTypeDef {
	field := func(name, primitiveType string) schema.Attributes {
		return schema.Attributes{{Key: "name", Value: name}, {Key: "primitiveType", Value: primitiveType}}
	}

	numInGroup := func() schema.Attributes {
		return append(field("numInGroup", "uint8"), schema.Pair[string]{Key: "semanticType", Value: "NumInGroup"})
	}

	return []schema.CompositeTypeDef{
		{
			Name:        "messageHeader",
			Description: "Message identifiers and length of message root",
			Elements: []schema.Attributes{
				field("blockLength", "uint16"),
				field("templateId", "uint16"),
				field("schemaId", "uint16"),
				field("version", "uint16"),
			},
		},
		{
			Name:        "groupSizeEncoding",
			Description: "Repeating group dimensions",
			Elements: []schema.Attributes{
				field("blockLength", "uint8"),
				numInGroup(),
			},
		},
		{
			Name:        "groupSizeEncoding16",
			Description: "Repeating group dimensions",
			Elements: []schema.Attributes{
				field("blockLength", "uint16"),
				numInGroup(),
			},
		},
	}
}

// GenerateDefaultComposites appends the DefaultComposites in order and
// returns their fragments joined.
func (g *Generator) GenerateDefaultComposites() (string, error) {
	var sb strings.Builder

	for _, c := range DefaultComposites() {
		frag, err := g.GenerateComposite(c)
		if err != nil {
			return "", fmt.Errorf("generating composite %s: %w", c.Name, err)
		}

		sb.WriteString(frag)
	}

	return sb.String(), nil
}
