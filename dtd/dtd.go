// Package dtd models the subset of the MEDLINE/PubMed citation DTD consumed
// by the extraction layer. Fields are pointers or slices wherever the DTD
// allows the element to be absent or repeated; an absent element decodes to
// nil/empty rather than an error.
package dtd

// Document is a decoded citation file. Citations appear in document order.
type Document struct {
	Citations   []*Citation
	DeletePMIDs []string
}

// Citation is one article node. In the PubmedArticleSet shape both halves may
// be present; in the legacy MedlineCitationSet shape Pubmed is always nil.
type Citation struct {
	Medline *MedlineCitation `xml:"MedlineCitation"`
	Pubmed  *PubmedData      `xml:"PubmedData"`
}

// MedlineCitation holds the bibliographic half of a citation.
type MedlineCitation struct {
	PMID                 *TextNode                `xml:"PMID"`
	DateCompleted        *Date                    `xml:"DateCompleted"`
	DateRevised          *Date                    `xml:"DateRevised"`
	Article              *Article                 `xml:"Article"`
	MedlineJournalInfo   *MedlineJournalInfo      `xml:"MedlineJournalInfo"`
	ChemicalList         *ChemicalList            `xml:"ChemicalList"`
	SupplMeshList        *SupplMeshList           `xml:"SupplMeshList"`
	MeshHeadingList      *MeshHeadingList         `xml:"MeshHeadingList"`
	OtherIDs             []OtherID                `xml:"OtherID"`
	PersonalNameSubjects *PersonalNameSubjectList `xml:"PersonalNameSubjectList"`
	KeywordLists         []KeywordList            `xml:"KeywordList"`
	InvestigatorList     *InvestigatorList        `xml:"InvestigatorList"`
	CoiStatement         *TextNode                `xml:"CoiStatement"`
}

// Article is the Article element under MedlineCitation.
type Article struct {
	Journal             *Journal             `xml:"Journal"`
	ArticleTitle        *Mixed               `xml:"ArticleTitle"`
	Pagination          *Pagination          `xml:"Pagination"`
	ELocationIDs        []ELocationID        `xml:"ELocationID"`
	Abstract            *Abstract            `xml:"Abstract"`
	AuthorLists         []AuthorList         `xml:"AuthorList"`
	Languages           []string             `xml:"Language"`
	DataBankList        *DataBankList        `xml:"DataBankList"`
	GrantList           *GrantList           `xml:"GrantList"`
	PublicationTypeList *PublicationTypeList `xml:"PublicationTypeList"`
	VernacularTitle     *Mixed               `xml:"VernacularTitle"`
}

// TextNode is an element whose character data is the value of interest.
type TextNode struct {
	Text string `xml:",chardata"`
}

// Mixed is an element that may carry inline markup (italics, sub/superscript)
// which the extractors flatten to plain text.
type Mixed struct {
	Inner string `xml:",innerxml"`
}

// Journal is the Journal element under Article.
type Journal struct {
	Title        *Mixed        `xml:"Title"`
	JournalIssue *JournalIssue `xml:"JournalIssue"`
}

// JournalIssue carries volume, issue number, and the publication date.
type JournalIssue struct {
	Volume  string `xml:"Volume"`
	Issue   string `xml:"Issue"`
	PubDate *Date  `xml:"PubDate"`
}

// Date covers every date-bearing element in the DTD: PubDate, DateCompleted,
// DateRevised, and PubMedPubDate. Finer components than the DTD supplies
// simply decode empty. PubStatus is only populated for history dates.
type Date struct {
	PubStatus   string `xml:"PubStatus,attr"`
	Year        string `xml:"Year"`
	Month       string `xml:"Month"`
	Day         string `xml:"Day"`
	Hour        string `xml:"Hour"`
	Minute      string `xml:"Minute"`
	MedlineDate string `xml:"MedlineDate"`
}

// Pagination holds the MedlinePgn page range.
type Pagination struct {
	MedlinePgn string `xml:"MedlinePgn"`
}

// ELocationID is an electronic location identifier (doi, pii, ...).
type ELocationID struct {
	EIdType string `xml:"EIdType,attr"`
	ValidYN string `xml:"ValidYN,attr"`
	Value   string `xml:",chardata"`
}

// Abstract keeps both the structured AbstractText sections and the raw inner
// XML so unstructured abstracts can be flattened wholesale.
type Abstract struct {
	Inner    string         `xml:",innerxml"`
	Sections []AbstractText `xml:"AbstractText"`
}

// AbstractText is one (possibly labeled) abstract section.
type AbstractText struct {
	Label       string `xml:"Label,attr"`
	NlmCategory string `xml:"NlmCategory,attr"`
	Inner       string `xml:",innerxml"`
}

// AuthorList groups authors; Type distinguishes e.g. primary authors from
// collaborator lists.
type AuthorList struct {
	Type    string   `xml:"Type,attr"`
	Authors []Author `xml:"Author"`
}

// Author is one AuthorList entry.
type Author struct {
	LastName        string            `xml:"LastName"`
	ForeName        string            `xml:"ForeName"`
	Initials        string            `xml:"Initials"`
	Suffix          string            `xml:"Suffix"`
	CollectiveName  string            `xml:"CollectiveName"`
	Identifier      *Identifier       `xml:"Identifier"`
	AffiliationInfo []AffiliationInfo `xml:"AffiliationInfo"`
}

// Identifier is an author identifier such as an ORCID.
type Identifier struct {
	Source string `xml:"Source,attr"`
	Value  string `xml:",chardata"`
}

// AffiliationInfo wraps a single affiliation string.
type AffiliationInfo struct {
	Affiliation string `xml:"Affiliation"`
}

// PersonName is the shared shape of Investigator and PersonalNameSubject.
type PersonName struct {
	LastName string `xml:"LastName"`
	ForeName string `xml:"ForeName"`
	Initials string `xml:"Initials"`
	Suffix   string `xml:"Suffix"`
}

// InvestigatorList holds the named investigators of a citation.
type InvestigatorList struct {
	Investigators []PersonName `xml:"Investigator"`
}

// PersonalNameSubjectList holds people the article is about.
type PersonalNameSubjectList struct {
	Names []PersonName `xml:"PersonalNameSubject"`
}

// GrantList holds funding acknowledgements.
type GrantList struct {
	CompleteYN string  `xml:"CompleteYN,attr"`
	Grants     []Grant `xml:"Grant"`
}

// Grant is one funding acknowledgement.
type Grant struct {
	GrantID string `xml:"GrantID"`
	Acronym string `xml:"Acronym"`
	Agency  string `xml:"Agency"`
	Country string `xml:"Country"`
}

// MeshHeadingList holds the MeSH classification of a citation.
type MeshHeadingList struct {
	Headings []MeshHeading `xml:"MeshHeading"`
}

// MeshHeading pairs a descriptor with zero or more qualifiers.
type MeshHeading struct {
	Descriptor *MeshTerm  `xml:"DescriptorName"`
	Qualifiers []MeshTerm `xml:"QualifierName"`
}

// MeshTerm is a UI-qualified controlled-vocabulary term. It also covers
// NameOfSubstance and PublicationType, which share the same shape.
type MeshTerm struct {
	UI           string `xml:"UI,attr"`
	MajorTopicYN string `xml:"MajorTopicYN,attr"`
	Text         string `xml:",chardata"`
}

// ChemicalList holds registry-numbered substances.
type ChemicalList struct {
	Chemicals []Chemical `xml:"Chemical"`
}

// Chemical is one ChemicalList entry.
type Chemical struct {
	RegistryNumber string    `xml:"RegistryNumber"`
	Substance      *MeshTerm `xml:"NameOfSubstance"`
}

// SupplMeshList holds supplementary concept names.
type SupplMeshList struct {
	Names []SupplMeshName `xml:"SupplMeshName"`
}

// SupplMeshName is one supplementary concept.
type SupplMeshName struct {
	Type string `xml:"Type,attr"`
	UI   string `xml:"UI,attr"`
	Text string `xml:",chardata"`
}

// KeywordList holds free-text keywords. A citation may carry several lists
// with different owners.
type KeywordList struct {
	Owner    string   `xml:"Owner,attr"`
	Keywords []string `xml:"Keyword"`
}

// OtherID is an alternative identifier (PMC ids live here).
type OtherID struct {
	Source string `xml:"Source,attr"`
	Value  string `xml:",chardata"`
}

// DataBankList holds external databank accessions.
type DataBankList struct {
	DataBanks []DataBank `xml:"DataBank"`
}

// DataBank names a databank and its accession numbers.
type DataBank struct {
	Name             string               `xml:"DataBankName"`
	AccessionNumbers *AccessionNumberList `xml:"AccessionNumberList"`
}

// AccessionNumberList wraps the accession number strings.
type AccessionNumberList struct {
	Numbers []string `xml:"AccessionNumber"`
}

// PublicationTypeList holds the article's publication types.
type PublicationTypeList struct {
	Types []MeshTerm `xml:"PublicationType"`
}

// MedlineJournalInfo carries NLM journal metadata.
type MedlineJournalInfo struct {
	Country     string `xml:"Country"`
	MedlineTA   string `xml:"MedlineTA"`
	NlmUniqueID string `xml:"NlmUniqueID"`
	ISSNLinking string `xml:"ISSNLinking"`
}

// PubmedData is the PubMed-supplied half of a citation.
type PubmedData struct {
	History           *History       `xml:"History"`
	PublicationStatus string         `xml:"PublicationStatus"`
	ArticleIDList     *ArticleIDList `xml:"ArticleIdList"`
	ReferenceList     *ReferenceList `xml:"ReferenceList"`
}

// History holds the publication status timeline.
type History struct {
	Dates []Date `xml:"PubMedPubDate"`
}

// ArticleIDList holds typed article identifiers.
type ArticleIDList struct {
	IDs []ArticleID `xml:"ArticleId"`
}

// ArticleID is one typed identifier (pmid, doi, pmc, pii, ...).
type ArticleID struct {
	IDType string `xml:"IdType,attr"`
	Value  string `xml:",chardata"`
}

// ReferenceList holds cited references. Nested reference lists are not
// descended into; only the top-level references are read.
type ReferenceList struct {
	References []Reference `xml:"Reference"`
}

// Reference is one cited work.
type Reference struct {
	Citation      *Mixed         `xml:"Citation"`
	ArticleIDList *ArticleIDList `xml:"ArticleIdList"`
}

// FindArticleID returns the value of the first identifier of the given type,
// or empty string when the list or the type is absent.
func (l *ArticleIDList) FindArticleID(idType string) string {
	if l == nil {
		return ""
	}
	for _, id := range l.IDs {
		if id.IDType == idType {
			return id.Value
		}
	}
	return ""
}
