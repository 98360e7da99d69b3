package citation

import (
	"strings"

	"github.com/lehigh-university-libraries/medline/dtd"
	"github.com/lehigh-university-libraries/medline/helpers"
)

// meshInfo holds the four derived MeSH views. Each is already a
// semicolon-joined string; MeSH fields have no list-mode switch.
type meshInfo struct {
	terms       string
	subheadings string
	majorTopics string
	fullTerms   string
}

// parseMeshInfo derives the four MeSH views from the heading list. A heading
// without qualifiers contributes a single full-term entry, starred iff the
// heading itself is a major topic; a heading with qualifiers contributes one
// full-term entry per qualifier, each starred iff that qualifier is major.
// Subheadings and major topics are deduplicated by rendered string, first
// occurrence winning.
func parseMeshInfo(medline *dtd.MedlineCitation) meshInfo {
	list := medline.MeshHeadingList
	if list == nil {
		return meshInfo{}
	}

	var terms, subheadings, majorTopics, fullTerms []string
	seenSubheading := map[string]bool{}
	seenMajor := map[string]bool{}

	for _, heading := range list.Headings {
		descriptor := heading.Descriptor
		if descriptor == nil {
			continue
		}
		term := descriptor.UI + ":" + descriptor.Text
		terms = append(terms, term)

		if len(heading.Qualifiers) == 0 {
			if descriptor.MajorTopicYN == "Y" {
				majorTopics = append(majorTopics, term)
			}
			fullTerms = append(fullTerms, term+star(descriptor.MajorTopicYN))
			continue
		}

		for _, q := range heading.Qualifiers {
			subheading := q.UI + ":" + q.Text
			if !seenSubheading[subheading] {
				seenSubheading[subheading] = true
				subheadings = append(subheadings, subheading)
			}
			if q.MajorTopicYN == "Y" && !seenMajor[subheading] {
				seenMajor[subheading] = true
				majorTopics = append(majorTopics, subheading)
			}
			fullTerms = append(fullTerms,
				descriptor.UI+"/"+q.UI+":"+descriptor.Text+"/"+q.Text+star(q.MajorTopicYN))
		}
	}

	return meshInfo{
		terms:       strings.Join(terms, "; "),
		subheadings: strings.Join(subheadings, "; "),
		majorTopics: strings.Join(majorTopics, "; "),
		fullTerms:   strings.Join(fullTerms, "; "),
	}
}

func star(majorTopicYN string) string {
	if majorTopicYN == "Y" {
		return "*"
	}
	return ""
}

func parsePublicationTypes(article *dtd.Article) string {
	if article.PublicationTypeList == nil {
		return ""
	}
	var types []string
	for _, pt := range article.PublicationTypeList.Types {
		types = append(types, pt.UI+":"+strings.TrimSpace(pt.Text))
	}
	return strings.Join(types, "; ")
}

func parseChemicalList(medline *dtd.MedlineCitation) string {
	if medline.ChemicalList == nil {
		return ""
	}
	var chemicals []string
	for _, c := range medline.ChemicalList.Chemicals {
		var ui, name string
		if c.Substance != nil {
			ui = c.Substance.UI
			name = strings.TrimSpace(c.Substance.Text)
		}
		chemicals = append(chemicals, strings.TrimSpace(c.RegistryNumber)+":"+ui+":"+name)
	}
	return strings.Join(chemicals, "; ")
}

// parseKeywords joins the keywords of the first KeywordList only; further
// lists (other owners) are ignored. Empty keyword elements are skipped.
func parseKeywords(medline *dtd.MedlineCitation) string {
	if len(medline.KeywordLists) == 0 {
		return ""
	}
	var keywords []string
	for _, k := range medline.KeywordLists[0].Keywords {
		if k != "" {
			keywords = append(keywords, k)
		}
	}
	return strings.Join(keywords, "; ")
}

// affiliationBoilerplate is stripped verbatim from affiliation values.
const affiliationBoilerplate = "For a full list of the authors' affiliations please see the Acknowledgements section."

// parseAuthors flattens every AuthorList into a single ordered sequence,
// tagging each entry with its source list type.
func parseAuthors(article *dtd.Article) []Author {
	var authors []Author
	for _, list := range article.AuthorLists {
		listType := list.Type
		if listType == "" {
			listType = "authors"
		}
		for _, a := range list.Authors {
			author := Author{
				LastName:  strings.TrimSpace(a.LastName),
				ForeName:  strings.TrimSpace(a.ForeName),
				Initials:  strings.TrimSpace(a.Initials),
				Suffix:    strings.TrimSpace(a.Suffix),
				Type:      listType,
				Corporate: strings.TrimSpace(a.CollectiveName),
			}
			if a.Identifier != nil {
				author.IdentifierType = strings.TrimSpace(a.Identifier.Source)
				author.Identifier = strings.TrimSpace(a.Identifier.Value)
			}
			if len(a.AffiliationInfo) > 0 {
				author.Affiliation = strings.ReplaceAll(
					a.AffiliationInfo[0].Affiliation, affiliationBoilerplate, "")
			}
			authors = append(authors, author)
		}
	}
	return authors
}

func parseInvestigators(medline *dtd.MedlineCitation) []PersonName {
	if medline.InvestigatorList == nil {
		return nil
	}
	return personNames(medline.InvestigatorList.Investigators)
}

func parsePersonalSubjectNames(medline *dtd.MedlineCitation) []PersonName {
	if medline.PersonalNameSubjects == nil {
		return nil
	}
	return personNames(medline.PersonalNameSubjects.Names)
}

func personNames(nodes []dtd.PersonName) []PersonName {
	var names []PersonName
	for _, n := range nodes {
		names = append(names, PersonName{
			LastName: strings.TrimSpace(n.LastName),
			ForeName: strings.TrimSpace(n.ForeName),
			Initials: strings.TrimSpace(n.Initials),
			Suffix:   strings.TrimSpace(n.Suffix),
		})
	}
	return names
}

func parseSupplementaryConcepts(medline *dtd.MedlineCitation) []SupplementaryConcept {
	if medline.SupplMeshList == nil {
		return nil
	}
	var concepts []SupplementaryConcept
	for _, n := range medline.SupplMeshList.Names {
		concepts = append(concepts, SupplementaryConcept{
			Type: n.Type,
			UI:   n.UI,
			Name: n.Text,
		})
	}
	return concepts
}

func parseDatabanks(article *dtd.Article) []Databank {
	if article.DataBankList == nil {
		return nil
	}
	var databanks []Databank
	for _, db := range article.DataBankList.DataBanks {
		d := Databank{Name: db.Name}
		if db.AccessionNumbers != nil {
			d.AccessionNumbers = db.AccessionNumbers.Numbers
		}
		databanks = append(databanks, d)
	}
	return databanks
}

// parseELocationIDs collects every ELocationID entry. When none is typed
// "doi", a doi from the PubMed ArticleIdList is appended so the list always
// carries the DOI when one is known anywhere in the citation.
func parseELocationIDs(article *dtd.Article, pubmed *dtd.PubmedData) []ELocationID {
	var ids []ELocationID
	foundDOI := false
	for _, e := range article.ELocationIDs {
		if e.EIdType == "doi" {
			foundDOI = true
		}
		ids = append(ids, ELocationID{Type: e.EIdType, Value: strings.TrimSpace(e.Value)})
	}
	if !foundDOI && pubmed != nil {
		if doi := strings.TrimSpace(pubmed.ArticleIDList.FindArticleID("doi")); doi != "" {
			ids = append(ids, ELocationID{Type: "doi", Value: doi})
		}
	}
	return ids
}

func parseGrants(article *dtd.Article, pmid string) []Grant {
	if article.GrantList == nil {
		return nil
	}
	var grants []Grant
	for _, g := range article.GrantList.Grants {
		grants = append(grants, Grant{
			PMID:    pmid,
			GrantID: g.GrantID,
			Acronym: g.Acronym,
			Country: g.Country,
			Agency:  g.Agency,
		})
	}
	return grants
}

// parseReferences reads the cited works. Only the Citation element's leading
// direct text is kept; text inside or after child elements is excluded.
func parseReferences(pubmed *dtd.PubmedData) []Reference {
	if pubmed == nil || pubmed.ReferenceList == nil {
		return nil
	}
	var references []Reference
	for _, ref := range pubmed.ReferenceList.References {
		r := Reference{}
		if ref.Citation != nil {
			if tokens := helpers.DirectTextTokens(ref.Citation.Inner); len(tokens) > 0 {
				r.Citation = strings.TrimSpace(tokens[0])
			}
		}
		r.PMID = strings.TrimSpace(ref.ArticleIDList.FindArticleID("pubmed"))
		references = append(references, r)
	}
	return references
}

func parseHistoryDates(pubmed *dtd.PubmedData, yearOnly, parseTime bool) []HistoryDate {
	if pubmed == nil || pubmed.History == nil {
		return nil
	}
	var dates []HistoryDate
	for _, d := range pubmed.History.Dates {
		dates = append(dates, HistoryDate{
			Status: d.PubStatus,
			Date:   dateInfo(&d, yearOnly, parseTime),
		})
	}
	return dates
}
