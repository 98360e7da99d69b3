package citation

import (
	"strings"

	"github.com/lehigh-university-libraries/medline/dtd"
	"github.com/lehigh-university-libraries/medline/helpers"
)

// extractRecord assembles the full structured record for one citation. It is
// a pure function of the citation node; the output-shape switches only take
// effect later, in Flatten.
func extractRecord(c *dtd.Citation, opts Options) (Record, error) {
	medline := c.Medline
	if medline == nil {
		return Record{}, errMissing("MedlineCitation")
	}
	article := medline.Article
	if article == nil {
		return Record{}, errMissing("Article")
	}

	pmid := parsePMID(c)

	var title string
	if article.ArticleTitle != nil {
		title = strings.TrimSpace(helpers.FlattenMarkup(article.ArticleTitle.Inner))
	}
	var vernacularTitle string
	if article.VernacularTitle != nil {
		vernacularTitle = strings.TrimSpace(helpers.FlattenMarkup(article.VernacularTitle.Inner))
	}

	var volume, shortIssue string
	if article.Journal != nil && article.Journal.JournalIssue != nil {
		volume = article.Journal.JournalIssue.Volume
		shortIssue = article.Journal.JournalIssue.Issue
	}

	var pages string
	if article.Pagination != nil {
		pages = article.Pagination.MedlinePgn
	}

	mesh := parseMeshInfo(medline)
	info := parseJournalInfo(medline)
	pmc, otherID := parseOtherIDs(medline)

	return Record{
		PMID:              pmid,
		DOI:               parseDOI(article, c.Pubmed),
		Title:             title,
		VernacularTitle:   vernacularTitle,
		Abstract:          parseAbstract(article, opts.NLMCategory),
		Journal:           parseJournalName(article.Journal),
		PubDate:           parsePubDate(article.Journal, opts.YearInfoOnly),
		Issue:             composeIssue(volume, shortIssue),
		ShortIssue:        shortIssue,
		Volume:            volume,
		Pages:             pages,
		Languages:         strings.Join(article.Languages, ";"),
		MeshTerms:         mesh.terms,
		MeshSubheadings:   mesh.subheadings,
		MeshMajorTopics:   mesh.majorTopics,
		MeshFullTerms:     mesh.fullTerms,
		PublicationTypes:  parsePublicationTypes(article),
		ChemicalList:      parseChemicalList(medline),
		Keywords:          parseKeywords(medline),
		PMC:               pmc,
		OtherID:           otherID,
		MedlineTA:         info.medlineTA,
		NlmUniqueID:       info.nlmUniqueID,
		ISSNLinking:       info.issnLinking,
		Country:           info.country,
		CoiStatement:      parseCoiStatement(medline),
		CompletionDate:    parseCompletionDate(medline, opts.YearInfoOnly),
		ModificationDate:  parseModificationDate(medline, opts.YearInfoOnly),
		PublicationStatus: parsePublicationStatus(c.Pubmed),

		Authors:               parseAuthors(article),
		Investigators:         parseInvestigators(medline),
		HistoryDates:          parseHistoryDates(c.Pubmed, opts.YearInfoOnly, opts.ParseTime),
		ELocationIDs:          parseELocationIDs(article, c.Pubmed),
		Databanks:             parseDatabanks(article),
		PersonalSubjectNames:  parsePersonalSubjectNames(medline),
		SupplementaryConcepts: parseSupplementaryConcepts(medline),
		References:            parseReferences(c.Pubmed),
		Grants:                parseGrants(article, pmid),
	}, nil
}
