// Package helpers provides utility functions for flattening markup and
// canonicalizing date tokens in MEDLINE citation data.
package helpers

import (
	"encoding/xml"
	"html"
	"io"
	"regexp"
	"strings"
)

var tagRegex = regexp.MustCompile(`<[^>]*>`)

// FlattenMarkup reduces an inner-XML fragment to plain text: inline tags
// (<i>, <sub>, <sup>, ...) are dropped, their text and tail text kept, and
// character entities decoded. Whitespace is preserved as written.
func FlattenMarkup(s string) string {
	if s == "" {
		return ""
	}
	s = tagRegex.ReplaceAllString(s, "")
	return html.UnescapeString(s)
}

// DirectTextTokens returns the depth-0 character-data tokens of an inner-XML
// fragment, in document order. Text inside child elements is excluded; text
// following a child element is a separate token.
func DirectTextTokens(s string) []string {
	if s == "" {
		return nil
	}

	dec := xml.NewDecoder(strings.NewReader(s))
	depth := 0
	var tokens []string
	for {
		tok, err := dec.Token()
		if err != nil {
			if err != io.EOF && len(tokens) == 0 {
				// Not well-formed as a fragment; take the whole text.
				return []string{FlattenMarkup(s)}
			}
			return tokens
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			if depth == 0 && len(t) > 0 {
				tokens = append(tokens, string(t))
			}
		}
	}
}
