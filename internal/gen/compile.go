package gen

import (
	"fmt"
	"iter"
	"slices"

	"sbe-schema-generator/internal/diagnostic"
	"sbe-schema-generator/internal/logging"
	"sbe-schema-generator/internal/schema"
	"sbe-schema-generator/primitive"
)

// CodeUnknownFieldType is reported for a wire field whose type is neither
// registered, a default composite, nor a primitive.
const CodeUnknownFieldType = "unknown_field_type"

// Source is the read-only view of a store that Compile walks.
type Source interface {
	HeaderSource
	MessageSource

	Name() string
	PrimitiveTypes(c schema.Collection) (iter.Seq[schema.PrimitiveTypeDef], error)
	CustomTypes(c schema.Collection) (iter.Seq[schema.CustomTypeDef], error)
	Composites() (iter.Seq[schema.CompositeTypeDef], error)
	Messages() (iter.Seq[schema.Message], error)
	IterateSbeFields(fn func(msg schema.Message, field schema.SbeFieldDef) error) error
}

// Compile builds the complete artifact of src and writes it once: the
// default composites when configured, the number, string, enum, set and
// composite types in store order, then every message. The returned
// diagnostics warn about fields referencing unknown types.
func Compile(src Source, config GeneratorConfig) (*Generator, *diagnostic.Diagnostics, error) {
	config.AutoFlush = false

	g, err := NewGenerator(src, src.Name(), config)
	if err != nil {
		return nil, nil, err
	}

	known := map[string]bool{}

	if config.DefaultComposites {
		if _, err := g.GenerateDefaultComposites(); err != nil {
			return nil, nil, err
		}

		for _, c := range DefaultComposites() {
			known[c.Name] = true
		}
	}

	for _, c := range []schema.Collection{schema.CollectionNumberTypes, schema.CollectionStringTypes} {
		types, err := src.PrimitiveTypes(c)
		if err != nil {
			return nil, nil, err
		}

		for t := range types {
			if _, err := g.GeneratePrimitiveType(c, t); err != nil {
				return nil, nil, fmt.Errorf("generating type %s: %w", t.Name, err)
			}

			known[t.Name] = true
		}
	}

	for _, c := range []schema.Collection{schema.CollectionEnumTypes, schema.CollectionSetTypes} {
		types, err := src.CustomTypes(c)
		if err != nil {
			return nil, nil, err
		}

		for t := range types {
			if _, err := g.GenerateCustomType(c, t); err != nil {
				return nil, nil, fmt.Errorf("generating type %s: %w", t.Name, err)
			}

			known[t.Name] = true
		}
	}

	composites, err := src.Composites()
	if err != nil {
		return nil, nil, err
	}

	for c := range composites {
		if _, err := g.GenerateComposite(c); err != nil {
			return nil, nil, fmt.Errorf("generating composite %s: %w", c.Name, err)
		}

		known[c.Name] = true
	}

	messages, err := src.Messages()
	if err != nil {
		return nil, nil, err
	}

	count := 0

	for m := range messages {
		if _, err := g.GenerateMessage(m.Name, m.TemplateID, slices.Values(m.SbeFields), slices.Values(m.RepeatingGroups)); err != nil {
			return nil, nil, fmt.Errorf("generating message %s: %w", m.Name, err)
		}

		count++
	}

	diags := &diagnostic.Diagnostics{}

	err = src.IterateSbeFields(func(msg schema.Message, f schema.SbeFieldDef) error {
		typ := f.TypeName()
		if known[typ] {
			return nil
		}

		if _, ok := primitive.Parse(typ); ok {
			return nil
		}

		diags.AddWarning(CodeUnknownFieldType,
			fmt.Sprintf("field %q references unknown type %q", f.Name, typ),
			"message", msg.Name)

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	if err := g.Flush(); err != nil {
		return nil, nil, err
	}

	logging.Info().
		Str("schema", src.Name()).
		Str("path", g.Path()).
		Int("messages", count).
		Int("warnings", len(diags.Warnings)).
		Msg("compiled wire schema")

	return g, diags, nil
}
