package export

import (
	"encoding/csv"
	"encoding/json"
	"io"

	"github.com/lehigh-university-libraries/medline/mapping"
)

// CSV writes records as CSV rows, columns per the profile.
type CSV struct {
	Profile *mapping.Profile

	// NoHeader suppresses the header row.
	NoHeader bool
}

// Write emits a header row followed by one row per record. The unset marker
// renders as the profile's Unset string; non-string values (structured lists
// selected by the output-shape switches) render as JSON.
func (c *CSV) Write(w io.Writer, records []map[string]any) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if !c.NoHeader {
		if err := writer.Write(c.Profile.Columns); err != nil {
			return err
		}
	}

	for _, record := range records {
		row := make([]string, len(c.Profile.Columns))
		for i, col := range c.Profile.Columns {
			cell, err := c.render(record[col])
			if err != nil {
				return err
			}
			row[i] = cell
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	return writer.Error()
}

func (c *CSV) render(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return c.Profile.Unset, nil
	case string:
		return v, nil
	case bool:
		if v {
			return "true", nil
		}
		return "false", nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
}
