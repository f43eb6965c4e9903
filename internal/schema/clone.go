package schema

import (
	"slices"
)

// Clone returns a deep copy of the schema. Document field blobs are shared;
// they are never modified in place.
func (s *Schema) Clone() *Schema {
	c := *s
	c.NumberTypes = slices.Clone(s.NumberTypes)
	c.StringTypes = slices.Clone(s.StringTypes)
	c.EnumTypes = cloneCustomTypes(s.EnumTypes)
	c.SetTypes = cloneCustomTypes(s.SetTypes)

	c.CompositeTypes = slices.Clone(s.CompositeTypes)
	for i := range c.CompositeTypes {
		c.CompositeTypes[i] = s.CompositeTypes[i].Clone()
	}

	c.Messages = slices.Clone(s.Messages)
	for i := range c.Messages {
		c.Messages[i] = s.Messages[i].Clone()
	}

	return &c
}

func cloneCustomTypes(in []CustomTypeDef) []CustomTypeDef {
	out := slices.Clone(in)
	for i := range out {
		out[i].Structure = in[i].Structure.Clone()
	}

	return out
}

// Clone returns a deep copy of the composite.
func (c CompositeTypeDef) Clone() CompositeTypeDef {
	out := c
	out.Elements = slices.Clone(c.Elements)

	for i := range out.Elements {
		out.Elements[i] = c.Elements[i].Clone()
	}

	return out
}

// Clone returns a deep copy of the message.
func (m Message) Clone() Message {
	out := m
	out.DocumentColumns = slices.Clone(m.DocumentColumns)
	out.DocumentFields = slices.Clone(m.DocumentFields)
	out.SbeFields = slices.Clone(m.SbeFields)

	out.RepeatingGroups = slices.Clone(m.RepeatingGroups)
	for i := range out.RepeatingGroups {
		out.RepeatingGroups[i].Items = slices.Clone(m.RepeatingGroups[i].Items)
	}

	return out
}
