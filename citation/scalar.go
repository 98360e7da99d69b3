package citation

import (
	"strings"

	"github.com/lehigh-university-libraries/medline/dtd"
	"github.com/lehigh-university-libraries/medline/helpers"
)

// parsePMID reads the citation's PMID, falling back to the pmid entry of the
// PubMed ArticleIdList when the MedlineCitation carries none.
func parsePMID(c *dtd.Citation) string {
	if c.Medline != nil && c.Medline.PMID != nil {
		return strings.TrimSpace(c.Medline.PMID.Text)
	}
	if c.Pubmed != nil {
		return strings.TrimSpace(c.Pubmed.ArticleIDList.FindArticleID("pmid"))
	}
	return ""
}

// parseDOI reads the article's DOI. ELocationID entries typed "doi" are
// authoritative; when several exist the last one wins (a long-standing quirk
// kept for output compatibility). Only when no doi-typed entry exists is the
// PubMed ArticleIdList consulted.
func parseDOI(article *dtd.Article, pubmed *dtd.PubmedData) string {
	doi := ""
	found := false
	for _, e := range article.ELocationIDs {
		if e.EIdType == "doi" {
			doi = strings.TrimSpace(e.Value)
			found = true
		}
	}
	if found {
		return doi
	}
	if pubmed != nil {
		return strings.TrimSpace(pubmed.ArticleIDList.FindArticleID("doi"))
	}
	return ""
}

// parseJournalName joins the direct text tokens of the journal title with
// single spaces. Normally there is exactly one token.
func parseJournalName(journal *dtd.Journal) string {
	if journal == nil || journal.Title == nil {
		return ""
	}
	return strings.Join(helpers.DirectTextTokens(journal.Title.Inner), " ")
}

const unassignedLabel = "UNASSIGNED"

// parseAbstract renders the abstract. Multi-section abstracts keep their
// section labels (unless the label is the UNASSIGNED sentinel); nlmCategory
// selects the NlmCategory attribute over the free-text Label attribute as
// the label source. Inline markup is flattened to text.
func parseAbstract(article *dtd.Article, nlmCategory bool) string {
	abstract := article.Abstract
	if abstract == nil {
		return ""
	}

	sections := abstract.Sections
	switch {
	case len(sections) > 1:
		var parts []string
		for _, s := range sections {
			label := s.Label
			if nlmCategory {
				label = s.NlmCategory
			}
			if label != unassignedLabel {
				parts = append(parts, "", label)
			}
			parts = append(parts, strings.TrimSpace(helpers.FlattenMarkup(s.Inner)))
		}
		return strings.TrimSpace(strings.Join(parts, "\n"))
	case len(sections) == 1:
		return strings.TrimSpace(helpers.FlattenMarkup(sections[0].Inner))
	default:
		return strings.TrimSpace(helpers.FlattenMarkup(abstract.Inner))
	}
}

// parseOtherIDs splits OtherID entries into the PMC identifier and the rest.
// When several PMC-bearing entries exist the last one wins.
func parseOtherIDs(medline *dtd.MedlineCitation) (pmc, otherID string) {
	var others []string
	for _, oid := range medline.OtherIDs {
		if oid.Value == "" {
			continue
		}
		if strings.Contains(oid.Value, "PMC") {
			pmc = oid.Value
		} else {
			others = append(others, oid.Value)
		}
	}
	return pmc, strings.Join(others, "; ")
}

// journalInfo holds the MedlineJournalInfo scalar fields.
type journalInfo struct {
	medlineTA   string
	nlmUniqueID string
	issnLinking string
	country     string
}

func parseJournalInfo(medline *dtd.MedlineCitation) journalInfo {
	ji := medline.MedlineJournalInfo
	if ji == nil {
		return journalInfo{}
	}
	return journalInfo{
		medlineTA:   strings.TrimSpace(ji.MedlineTA),
		nlmUniqueID: ji.NlmUniqueID,
		issnLinking: ji.ISSNLinking,
		country:     ji.Country,
	}
}

func parseCoiStatement(medline *dtd.MedlineCitation) string {
	if medline.CoiStatement == nil {
		return ""
	}
	return strings.TrimSpace(medline.CoiStatement.Text)
}

func parsePublicationStatus(pubmed *dtd.PubmedData) string {
	if pubmed == nil {
		return ""
	}
	return pubmed.PublicationStatus
}

// composeIssue renders "volume(issue)" when the volume is known; without a
// volume the composed issue is empty regardless of the issue number.
func composeIssue(volume, issue string) string {
	if volume == "" {
		return ""
	}
	return volume + "(" + issue + ")"
}
