// Package mapping defines output column profiles: which record fields a
// tabular export carries, in what order, and how unset values render.
package mapping

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lehigh-university-libraries/medline/citation"
)

// DefaultUnset is the rendering of the unset marker in tabular output. It is
// deliberately distinct from the empty string, which means "parsed as
// empty".
const DefaultUnset = "N/A"

// Profile describes one tabular output layout.
type Profile struct {
	// Name identifies the profile.
	Name string `yaml:"name"`

	// Columns are the record keys to emit, in order.
	Columns []string `yaml:"columns"`

	// Unset is the rendering of the unset marker (delete-record fields).
	// Empty means DefaultUnset.
	Unset string `yaml:"unset"`
}

// Default returns the full-record profile: every record key in canonical
// order.
func Default() *Profile {
	return &Profile{
		Name:    "default",
		Columns: citation.RecordKeys(),
		Unset:   DefaultUnset,
	}
}

// GrantColumns are the columns of the grants-only extraction.
func GrantColumns() []string {
	return []string{"pmid", "grant_id", "grant_acronym", "country", "agency"}
}

// Load reads a profile from a YAML file and validates it against the record
// key set.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile file: %w", err)
	}
	return Parse(data)
}

// Parse reads a profile from YAML content.
func Parse(data []byte) (*Profile, error) {
	var profile Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("parsing profile YAML: %w", err)
	}
	if len(profile.Columns) == 0 {
		return nil, fmt.Errorf("profile %q has no columns", profile.Name)
	}

	known := make(map[string]bool)
	for _, key := range citation.RecordKeys() {
		known[key] = true
	}
	for _, col := range profile.Columns {
		if !known[col] {
			return nil, fmt.Errorf("profile %q: unknown column %q", profile.Name, col)
		}
	}

	if profile.Unset == "" {
		profile.Unset = DefaultUnset
	}
	return &profile, nil
}
