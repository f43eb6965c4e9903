package schema

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Integer is a numeric attribute that also accepts its decimal text form.
// Documents written by tools that keep every attribute as text hold
// "schema_id": "1"; Integer reads both and always writes a number.
type Integer int

// UnmarshalJSON accepts a JSON number or a string holding a decimal integer.
func (i *Integer) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}

		n, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil {
			return fmt.Errorf("integer attribute %s: %w", data, err)
		}

		*i = Integer(n)

		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}

	*i = Integer(n)

	return nil
}
