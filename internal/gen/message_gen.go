package gen

import (
	"iter"
	"slices"
	"strconv"

	"github.com/beevik/etree"

	"sbe-schema-generator/internal/schema"
)

// Every message starts with this field.
const (
	fixHeaderID   = 20007
	fixHeaderName = "FixHeader"
	fixHeaderType = "fixHeader"
)

const groupDimensionType = "groupSizeEncoding"

// MessageSource looks up stored messages.
type MessageSource interface {
	FindMessage(name string) (schema.Message, error)
}

// GenerateMessage appends a message under the root: the FixHeader field,
// then one field per body field, then one group per repeating group with
// its items. Body fields carry presence only when optional; group fields
// never do. Nil sequences are treated as empty.
func (g *Generator) GenerateMessage(
	name string,
	templateID int,
	fields iter.Seq[schema.SbeFieldDef],
	groups iter.Seq[schema.RepeatingGroup],
) (string, error) {
	if g.namespaces.SBE == "" {
		return "", ErrNamespacesNotConfigured
	}

	msg := etree.NewElement(sbePrefix + ":message")
	msg.CreateAttr("name", name)
	msg.CreateAttr("id", strconv.Itoa(templateID))

	header := msg.CreateElement("field")
	header.CreateAttr("id", strconv.Itoa(fixHeaderID))
	header.CreateAttr("name", fixHeaderName)
	header.CreateAttr("type", fixHeaderType)

	if fields != nil {
		for f := range fields {
			el := msg.CreateElement("field")
			el.CreateAttr("id", strconv.Itoa(f.ID))
			el.CreateAttr("name", f.Name)
			el.CreateAttr("type", f.TypeName())

			if f.IsOptional() {
				el.CreateAttr("presence", string(schema.PresenceOptional))
			}
		}
	}

	if groups != nil {
		for grp := range groups {
			el := msg.CreateElement("group")
			el.CreateAttr("dimensionType", groupDimensionType)
			el.CreateAttr("name", grp.Name)
			el.CreateAttr("id", strconv.Itoa(int(grp.ID)))

			for _, f := range grp.Items {
				item := el.CreateElement("field")
				item.CreateAttr("name", f.Name)
				item.CreateAttr("id", strconv.Itoa(f.ID))
				item.CreateAttr("type", f.TypeName())
			}
		}
	}

	return g.appendTo(g.root, msg)
}

// GenerateMessageFromStore looks up the named message and generates it with
// its stored fields and groups.
func (g *Generator) GenerateMessageFromStore(src MessageSource, name string) (string, error) {
	m, err := src.FindMessage(name)
	if err != nil {
		return "", err
	}

	return g.GenerateMessage(m.Name, m.TemplateID, slices.Values(m.SbeFields), slices.Values(m.RepeatingGroups))
}
