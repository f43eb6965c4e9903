package manifest

import (
	"fmt"
	"strconv"

	"github.com/goccy/go-json"

	"sbe-schema-generator/internal/common"
	"sbe-schema-generator/internal/diagnostic"
	"sbe-schema-generator/internal/gen"
	"sbe-schema-generator/primitive"
)

// Validate checks a manifest structurally. Errors make Apply pointless;
// warnings and infos describe declarations the store will merge or that
// reference types this manifest does not declare.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("manifest_is_nil", "manifest is nil", "", "")
		return res
	}

	if f.Schema == "" {
		res.AddError("missing_schema_name", "schema name is required", "", "")
	}

	if f.Header != nil && !f.Header.IsComplete() {
		res.AddWarning("incomplete_header",
			"header is incomplete; the schema document must already exist", "header", f.Schema)
	}

	known := map[string]bool{}
	for _, c := range gen.DefaultComposites() {
		known[c.Name] = true
	}

	validateCustomTypes(res, "enum", f.Enums, known)
	validateCustomTypes(res, "set", f.Sets, known)
	validateComposites(res, f.Composites, known)
	validateMessages(res, f.Messages, known)

	return res
}

func validateCustomTypes(res *diagnostic.Diagnostics, entity string, types []CustomType, known map[string]bool) {
	var names []string

	for i, t := range types {
		if t.Name == "" {
			res.AddError("missing_name", fmt.Sprintf("%s #%d has no name", entity, i+1), entity, "")
			continue
		}

		names = append(names, t.Name)
		known[t.Name] = true

		if t.EncodingType == "" {
			res.AddError("missing_encoding_type", fmt.Sprintf("%s %q has no encoding type", entity, t.Name), entity, t.Name)
		} else if _, ok := primitive.Parse(t.EncodingType); !ok {
			res.AddWarning("unknown_encoding_type",
				fmt.Sprintf("%s %q is encoded as %q, which is not a primitive", entity, t.Name, t.EncodingType), entity, t.Name)
		}

		if len(t.Values) == 0 {
			res.AddWarning("empty_values", fmt.Sprintf("%s %q declares no values", entity, t.Name), entity, t.Name)
		}
	}

	for _, name := range common.Duplicates(names) {
		res.AddWarning("duplicate_type",
			fmt.Sprintf("%s %q is declared more than once; values will be merged", entity, name), entity, name)
	}
}

func validateComposites(res *diagnostic.Diagnostics, composites []Composite, known map[string]bool) {
	var names []string

	for i, c := range composites {
		if c.Name == "" {
			res.AddError("missing_name", fmt.Sprintf("composite #%d has no name", i+1), "composite", "")
			continue
		}

		names = append(names, c.Name)
		known[c.Name] = true

		for j, el := range c.Elements {
			if !el.Has("name") {
				res.AddError("missing_element_name",
					fmt.Sprintf("element #%d of composite %q has no name attribute", j+1, c.Name), "composite", c.Name)
			}
		}
	}

	for _, name := range common.Duplicates(names) {
		res.AddWarning("duplicate_composite",
			fmt.Sprintf("composite %q is declared more than once; only the first description is kept", name), "composite", name)
	}
}

func validateMessages(res *diagnostic.Diagnostics, messages []Message, known map[string]bool) {
	var (
		names       []string
		templateIDs []int
	)

	for i, m := range messages {
		if m.Name == "" {
			res.AddError("missing_name", fmt.Sprintf("message #%d has no name", i+1), "message", "")
			continue
		}

		names = append(names, m.Name)
		templateIDs = append(templateIDs, m.TemplateID)

		var ids []int

		for _, f := range m.Fields {
			ids = append(ids, f.ID)
			validateField(res, m.Name, f, known)
		}

		var groupIDs []int

		for _, g := range m.Groups {
			ids = append(ids, g.ID)
			groupIDs = append(groupIDs, g.ID)

			if g.Name == "" {
				res.AddError("missing_group_name", fmt.Sprintf("group %d has no name", g.ID), "message", m.Name)
			}

			for _, f := range g.Fields {
				ids = append(ids, f.ID)
				validateField(res, m.Name, f, known)
			}
		}

		for _, id := range common.Duplicates(groupIDs) {
			res.AddError("duplicate_group_id",
				fmt.Sprintf("group id %d is declared more than once; only the first group is kept", id), "message", m.Name)
		}

		for _, id := range common.Duplicates(ids) {
			res.AddError("duplicate_field_id", fmt.Sprintf("id %d is used more than once", id), "message", m.Name)
		}

		for j, doc := range m.DocumentFields {
			if _, err := json.Marshal(doc); err != nil {
				res.AddError("invalid_document_field",
					fmt.Sprintf("document field #%d cannot be encoded as JSON: %v", j+1, err), "message", m.Name)
			}
		}
	}

	for _, name := range common.Duplicates(names) {
		res.AddWarning("duplicate_message",
			fmt.Sprintf("message %q is declared more than once; declarations are combined", name), "message", name)
	}

	for _, id := range common.Duplicates(templateIDs) {
		res.AddError("duplicate_template_id",
			fmt.Sprintf("template id %d is used by more than one message", id), "message", strconv.Itoa(id))
	}
}

func validateField(res *diagnostic.Diagnostics, message string, f Field, known map[string]bool) {
	key := message + "." + f.Name

	if f.Name == "" {
		res.AddError("missing_field_name", fmt.Sprintf("field %d has no name", f.ID), "field", key)
	}

	if f.Type == "" {
		res.AddError("missing_field_type", fmt.Sprintf("field %q has no type", f.Name), "field", key)
		return
	}

	if !f.Presence.OrDefault().IsValid() {
		res.AddError("invalid_presence", fmt.Sprintf("field %q has invalid presence %q", f.Name, f.Presence), "field", key)
	}

	if f.Length < 0 {
		res.AddError("invalid_length", fmt.Sprintf("field %q has negative length %d", f.Name, f.Length), "field", key)
	}

	if k, ok := primitive.Parse(f.Type); ok {
		if k.IsNumber() && !k.IsInteger() {
			res.AddError("unsupported_primitive",
				fmt.Sprintf("field %q uses %s, which has no boundary values", f.Name, f.Type), "field", key)
		}

		return
	}

	if !known[f.Type] {
		res.AddInfo("undeclared_type",
			fmt.Sprintf("field %q references %q, which this manifest does not declare", f.Name, f.Type), "field", key)
	}
}
