package manifest

import (
	"fmt"

	"github.com/goccy/go-json"

	"sbe-schema-generator/internal/logging"
	"sbe-schema-generator/internal/schema"
)

// Report counts the outcomes of an Apply.
type Report struct {
	Added    int
	Existing int
	Merged   int
}

func (r *Report) record(o schema.Outcome) {
	switch o {
	case schema.OutcomeAdded:
		r.Added++
	case schema.OutcomeExists:
		r.Existing++
	case schema.OutcomeMerged:
		r.Merged++
	}
}

// Changed returns true if the store was modified.
func (r Report) Changed() bool {
	return r.Added+r.Merged > 0
}

// Apply registers everything the manifest declares into st inside a single
// batch: enums, sets, composites, then messages with their columns,
// document fields, body fields and groups. On error nothing is committed.
func Apply(st *schema.Store, f *File) (Report, error) {
	var report Report

	a := applier{st: st, report: &report}

	err := st.Batch(func() error {
		for _, t := range f.Enums {
			if err := a.customType(schema.CollectionEnumTypes, t); err != nil {
				return err
			}
		}

		for _, t := range f.Sets {
			if err := a.customType(schema.CollectionSetTypes, t); err != nil {
				return err
			}
		}

		for _, c := range f.Composites {
			if err := a.composite(c); err != nil {
				return err
			}
		}

		for _, m := range f.Messages {
			if err := a.message(m); err != nil {
				return fmt.Errorf("applying message %s: %w", m.Name, err)
			}
		}

		return nil
	})
	if err != nil {
		return Report{}, err
	}

	logging.Info().
		Str("schema", st.Name()).
		Int("added", report.Added).
		Int("existing", report.Existing).
		Int("merged", report.Merged).
		Msg("applied manifest")

	return report, nil
}

type applier struct {
	st     *schema.Store
	report *Report
}

func (a applier) record(o schema.Outcome, err error) error {
	if err != nil {
		return err
	}

	a.report.record(o)

	return nil
}

func (a applier) customType(c schema.Collection, t CustomType) error {
	return a.record(a.st.AddCustomType(c, t.EncodingType, t.Name, t.Values))
}

func (a applier) composite(c Composite) error {
	if err := a.record(a.st.AddComposite(c.Name, c.Description)); err != nil {
		return err
	}

	for _, el := range c.Elements {
		if err := a.record(a.st.AddCompositeElement(c.Name, el)); err != nil {
			return err
		}
	}

	return nil
}

func (a applier) message(m Message) error {
	if err := a.record(a.st.AddMessage(m.Name, m.TemplateID)); err != nil {
		return err
	}

	for _, col := range m.Columns {
		if err := a.record(a.st.AddDocumentColumn(m.Name, col)); err != nil {
			return err
		}
	}

	for _, doc := range m.DocumentFields {
		raw, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("encoding document field: %w", err)
		}

		if err := a.record(a.st.AddDocumentField(m.Name, raw)); err != nil {
			return err
		}
	}

	for _, f := range m.Fields {
		def, err := a.fieldDef(f)
		if err != nil {
			return err
		}

		if err := a.record(a.st.AddSbeField(m.Name, def)); err != nil {
			return err
		}
	}

	for _, g := range m.Groups {
		if err := a.record(a.st.AddRepeatingGroup(m.Name, g.Name, g.ID)); err != nil {
			return err
		}

		for _, f := range g.Fields {
			def, err := a.fieldDef(f)
			if err != nil {
				return err
			}

			if err := a.record(a.st.AddGroupField(m.Name, g.ID, def)); err != nil {
				return err
			}
		}
	}

	return nil
}

// fieldDef registers the primitive type a field needs, if any, and returns
// the field definition referencing it.
func (a applier) fieldDef(f Field) (schema.SbeFieldDef, error) {
	def := f.Def()

	c, ok := f.Collection()
	if !ok {
		return def, nil
	}

	if err := a.record(a.st.AddPrimitiveType(c, &def)); err != nil {
		return def, fmt.Errorf("registering type of field %s: %w", f.Name, err)
	}

	return def, nil
}
