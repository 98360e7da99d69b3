package export

import (
	"encoding/json"
	"io"
)

// JSON writes records as a single JSON array.
type JSON struct {
	Pretty bool
}

// Write emits the records as one array, optionally indented.
func (j *JSON) Write(w io.Writer, records []map[string]any) error {
	enc := json.NewEncoder(w)
	if j.Pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(records)
}
