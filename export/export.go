// Package export serializes flattened citation records to CSV or JSON.
package export

import (
	"fmt"
	"io"

	"github.com/lehigh-university-libraries/medline/mapping"
)

// Writer serializes a batch of flattened records.
type Writer interface {
	Write(w io.Writer, records []map[string]any) error
}

// New returns the Writer for a format name.
func New(name string, profile *mapping.Profile, pretty bool) (Writer, error) {
	switch name {
	case "csv":
		if profile == nil {
			profile = mapping.Default()
		}
		return &CSV{Profile: profile}, nil
	case "json":
		return &JSON{Pretty: pretty}, nil
	default:
		return nil, fmt.Errorf("unknown output format: %s", name)
	}
}
