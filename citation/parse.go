package citation

import (
	"fmt"
	"log/slog"

	"github.com/lehigh-university-libraries/medline/dtd"
)

// CitationError reports a structurally malformed citation: a mandatory node
// was absent, so the citation cannot be distinguished from corrupt input.
type CitationError struct {
	// Index is the zero-based position of the citation in the document.
	Index int
	// PMID is the citation's PMID when determinable, otherwise empty.
	PMID string
	// Missing names the absent mandatory node.
	Missing string
}

func (e *CitationError) Error() string {
	if e.PMID != "" {
		return fmt.Sprintf("citation %d (pmid %s) malformed: missing <%s>", e.Index, e.PMID, e.Missing)
	}
	return fmt.Sprintf("citation %d malformed: missing <%s>", e.Index, e.Missing)
}

type missingNodeError string

func errMissing(node string) error { return missingNodeError(node) }

func (e missingNodeError) Error() string { return "missing <" + string(e) + ">" }

// Parse extracts one structured Record per citation in document order, then
// appends one delete record per DeleteCitation PMID. A malformed citation
// aborts the batch with a *CitationError unless opts.Lenient is set, in
// which case it is skipped with a warning. A document with no citations
// yields an empty slice.
func Parse(doc *dtd.Document, opts Options) ([]Record, error) {
	records := make([]Record, 0, len(doc.Citations)+len(doc.DeletePMIDs))
	for i, c := range doc.Citations {
		record, err := extractRecord(c, opts)
		if err != nil {
			cerr := citationError(i, c, err)
			if opts.Lenient {
				slog.Warn("skipping malformed citation", "error", cerr)
				continue
			}
			return nil, cerr
		}
		records = append(records, record)
	}
	for _, pmid := range doc.DeletePMIDs {
		records = append(records, Record{Delete: true, PMID: pmid})
	}
	return records, nil
}

// ParseGrants extracts only the grant list of every citation, flattened into
// a single sequence. A document with no citations (or no grants) yields an
// empty slice.
func ParseGrants(doc *dtd.Document) ([]Grant, error) {
	var grants []Grant
	for i, c := range doc.Citations {
		if c.Medline == nil {
			return nil, citationError(i, c, errMissing("MedlineCitation"))
		}
		if c.Medline.Article == nil {
			return nil, citationError(i, c, errMissing("Article"))
		}
		grants = append(grants, parseGrants(c.Medline.Article, parsePMID(c))...)
	}
	return grants, nil
}

func citationError(index int, c *dtd.Citation, err error) *CitationError {
	cerr := &CitationError{Index: index, PMID: parsePMID(c)}
	if m, ok := err.(missingNodeError); ok {
		cerr.Missing = string(m)
	} else {
		cerr.Missing = err.Error()
	}
	return cerr
}
