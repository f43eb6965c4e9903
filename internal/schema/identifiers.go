package schema

import (
	"fmt"
	"strconv"

	"sbe-schema-generator/internal/common"
	"sbe-schema-generator/internal/diagnostic"
)

// Codes reported by CheckIdentifiers.
const (
	CodeDuplicateTemplateID = "duplicate_template_id"
	CodeDuplicateFieldID    = "duplicate_field_id"
)

// CheckIdentifiers reports identifier collisions that registration lets
// through: template ids shared by several messages, and ids shared by
// fields or groups of the same message (body fields, group ids and group
// items together). Each collision is an error diagnostic.
func CheckIdentifiers(s *Store) (*diagnostic.Diagnostics, error) {
	sc, err := s.schema()
	if err != nil {
		return nil, err
	}

	res := &diagnostic.Diagnostics{}

	templateIDs := make([]int, 0, len(sc.Messages))
	for _, m := range sc.Messages {
		templateIDs = append(templateIDs, m.TemplateID)
	}

	for _, id := range common.Duplicates(templateIDs) {
		res.AddError(CodeDuplicateTemplateID,
			fmt.Sprintf("template id %d is used by more than one message", id),
			string(EntityMessage), strconv.Itoa(id))
	}

	for _, m := range sc.Messages {
		var ids []int

		for _, f := range m.SbeFields {
			ids = append(ids, f.ID)
		}

		for _, g := range m.RepeatingGroups {
			ids = append(ids, int(g.ID))
			for _, f := range g.Items {
				ids = append(ids, f.ID)
			}
		}

		for _, id := range common.Duplicates(ids) {
			res.AddError(CodeDuplicateFieldID,
				fmt.Sprintf("id %d is used more than once", id),
				string(EntityMessage), m.Name)
		}
	}

	return res, nil
}
