package dtd

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

type pubmedArticleSet struct {
	Articles []*Citation      `xml:"PubmedArticle"`
	Deletes  []deleteCitation `xml:"DeleteCitation"`
}

type medlineCitationSet struct {
	Citations []*MedlineCitation `xml:"MedlineCitation"`
	Deletes   []deleteCitation   `xml:"DeleteCitation"`
}

type deleteCitation struct {
	PMIDs []string `xml:"PMID"`
}

// Decode reads a MEDLINE/PubMed citation file into a Document. Two document
// shapes are accepted: a <PubmedArticleSet> of <PubmedArticle> nodes, or the
// legacy <MedlineCitationSet> of bare <MedlineCitation> nodes. A document
// with zero citations decodes to an empty Document, not an error.
func Decode(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)

	start, err := firstStartElement(dec)
	if err != nil {
		return nil, fmt.Errorf("reading document root: %w", err)
	}

	doc := &Document{}
	switch start.Name.Local {
	case "PubmedArticleSet":
		var set pubmedArticleSet
		if err := dec.DecodeElement(&set, start); err != nil {
			return nil, fmt.Errorf("decoding PubmedArticleSet: %w", err)
		}
		doc.Citations = set.Articles
		doc.DeletePMIDs = deletePMIDs(set.Deletes)
	case "MedlineCitationSet":
		var set medlineCitationSet
		if err := dec.DecodeElement(&set, start); err != nil {
			return nil, fmt.Errorf("decoding MedlineCitationSet: %w", err)
		}
		for _, m := range set.Citations {
			doc.Citations = append(doc.Citations, &Citation{Medline: m})
		}
		doc.DeletePMIDs = deletePMIDs(set.Deletes)
	default:
		return nil, fmt.Errorf("unexpected document root <%s>", start.Name.Local)
	}

	return doc, nil
}

func firstStartElement(dec *xml.Decoder) (*xml.StartElement, error) {
	for {
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				return nil, fmt.Errorf("no root element found")
			}
			return nil, err
		}
		if start, ok := tok.(xml.StartElement); ok {
			return &start, nil
		}
	}
}

func deletePMIDs(deletes []deleteCitation) []string {
	var pmids []string
	for _, d := range deletes {
		for _, p := range d.PMIDs {
			pmids = append(pmids, strings.TrimSpace(p))
		}
	}
	return pmids
}
