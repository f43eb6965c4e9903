package manifest

import (
	"fmt"

	"github.com/goccy/go-json"

	"sbe-schema-generator/internal/schema"
)

// FromStore builds the manifest that recreates st's document. Primitive
// types are left out since applying the fields registers them again.
func FromStore(st *schema.Store) (*File, error) {
	sc, err := st.Snapshot()
	if err != nil {
		return nil, err
	}

	header := sc.Header

	f := &File{
		Version: "1",
		Schema:  st.Name(),
		Header:  &header,
	}

	for _, t := range sc.EnumTypes {
		f.Enums = append(f.Enums, exportCustomType(t))
	}

	for _, t := range sc.SetTypes {
		f.Sets = append(f.Sets, exportCustomType(t))
	}

	for _, c := range sc.CompositeTypes {
		f.Composites = append(f.Composites, Composite{
			Name:        c.Name,
			Description: c.Description,
			Elements:    c.Elements,
		})
	}

	for _, m := range sc.Messages {
		msg, err := exportMessage(m)
		if err != nil {
			return nil, fmt.Errorf("exporting message %s: %w", m.Name, err)
		}

		f.Messages = append(f.Messages, msg)
	}

	return f, nil
}

func exportCustomType(t schema.CustomTypeDef) CustomType {
	return CustomType{
		Name:         t.Name,
		EncodingType: t.EncodingType,
		Values:       t.Structure,
	}
}

func exportMessage(m schema.Message) (Message, error) {
	msg := Message{
		Name:       m.Name,
		TemplateID: m.TemplateID,
		Columns:    m.DocumentColumns,
		Fields:     exportFields(m.SbeFields),
	}

	for _, raw := range m.DocumentFields {
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return Message{}, fmt.Errorf("decoding document field: %w", err)
		}

		msg.DocumentFields = append(msg.DocumentFields, v)
	}

	for _, g := range m.RepeatingGroups {
		msg.Groups = append(msg.Groups, Group{
			ID:     int(g.ID),
			Name:   g.Name,
			Fields: exportFields(g.Items),
		})
	}

	return msg, nil
}

func exportFields(defs []schema.SbeFieldDef) []Field {
	var fields []Field

	for _, d := range defs {
		fields = append(fields, Field{
			ID:       d.ID,
			Name:     d.Name,
			Type:     d.DataType,
			Length:   d.Length,
			Presence: d.Presence,
		})
	}

	return fields
}
