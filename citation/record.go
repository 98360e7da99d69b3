// Package citation extracts flat bibliographic records from decoded
// MEDLINE/PubMed citation documents. Extraction is a pure function of the
// document: nothing is mutated and repeated runs yield identical output.
package citation

// Options controls extraction and output shape. The zero value is not the
// default; use DefaultOptions.
type Options struct {
	// YearInfoOnly restricts every date field to year granularity.
	YearInfoOnly bool `mapstructure:"year_info_only" yaml:"year_info_only"`

	// NLMCategory selects the NlmCategory attribute instead of the free-text
	// Label attribute as the section label source for structured abstracts.
	NLMCategory bool `mapstructure:"nlm_category" yaml:"nlm_category"`

	// ParseTime appends hour:minute to history dates when available. Only
	// meaningful when YearInfoOnly is false.
	ParseTime bool `mapstructure:"parse_time" yaml:"parse_time"`

	// The list switches select the structured-list output shape for one
	// field each; when false (the default) the field flattens to a
	// semicolon-joined string.
	AuthorList                bool `mapstructure:"author_list" yaml:"author_list"`
	ReferenceList             bool `mapstructure:"reference_list" yaml:"reference_list"`
	HistoryDatesList          bool `mapstructure:"history_dates_list" yaml:"history_dates_list"`
	InvestigatorList          bool `mapstructure:"investigator_list" yaml:"investigator_list"`
	ELocationIDsList          bool `mapstructure:"elocation_ids_list" yaml:"elocation_ids_list"`
	DatabanksList             bool `mapstructure:"databanks_list" yaml:"databanks_list"`
	PersonalSubjectNamesList  bool `mapstructure:"personal_subject_names_list" yaml:"personal_subject_names_list"`
	SupplementaryConceptsList bool `mapstructure:"supplementary_concepts_list" yaml:"supplementary_concepts_list"`
	GrantIDsList              bool `mapstructure:"grant_ids_list" yaml:"grant_ids_list"`

	// Lenient drops a malformed citation with a warning instead of aborting
	// the whole batch.
	Lenient bool `mapstructure:"lenient" yaml:"lenient"`
}

// DefaultOptions returns the default extraction options: year-only dates,
// free-text abstract labels, and joined-string output for every switchable
// field.
func DefaultOptions() Options {
	return Options{YearInfoOnly: true}
}

// Author is one author entry, flattened across all author lists of the
// citation.
type Author struct {
	LastName       string `json:"lastname"`
	ForeName       string `json:"forename"`
	Initials       string `json:"initials"`
	Suffix         string `json:"suffix"`
	Type           string `json:"author_type"`
	IdentifierType string `json:"identifier_type"`
	Identifier     string `json:"identifier"`
	Corporate      string `json:"corporate"`
	Affiliation    string `json:"affiliation"`
}

// PersonName is an investigator or personal-name subject.
type PersonName struct {
	LastName string `json:"lastname"`
	ForeName string `json:"forename"`
	Initials string `json:"initials"`
	Suffix   string `json:"suffix"`
}

// Grant is one funding acknowledgement, tagged with the owning citation's
// PMID.
type Grant struct {
	PMID    string `json:"pmid"`
	GrantID string `json:"grant_id"`
	Acronym string `json:"grant_acronym"`
	Country string `json:"country"`
	Agency  string `json:"agency"`
}

// Reference is one cited work with its resolved PMID when known.
type Reference struct {
	Citation string `json:"citation"`
	PMID     string `json:"pmid"`
}

// HistoryDate is one entry of the publication status timeline.
type HistoryDate struct {
	Status string `json:"status"`
	Date   string `json:"date"`
}

// ELocationID is a typed electronic location identifier.
type ELocationID struct {
	Type  string `json:"type"`
	Value string `json:"ELocationID"`
}

// Databank names a databank and the article's accession numbers in it.
type Databank struct {
	Name             string   `json:"name"`
	AccessionNumbers []string `json:"accession_numbers"`
}

// SupplementaryConcept is one supplementary MeSH concept.
type SupplementaryConcept struct {
	Type string `json:"type"`
	UI   string `json:"UI"`
	Name string `json:"supplementary_concept"`
}

// Record is the canonical structured record for one citation. Composite
// fields are kept structured here; the list-vs-string output policy is
// applied only by Flatten. A delete record carries Delete=true and a PMID;
// everything else stays zero.
type Record struct {
	Delete bool

	PMID             string
	DOI              string
	Title            string
	VernacularTitle  string
	Abstract         string
	Journal          string
	PubDate          string
	Issue            string
	ShortIssue       string
	Volume           string
	Pages            string
	Languages        string
	MeshTerms        string
	MeshSubheadings  string
	MeshMajorTopics  string
	MeshFullTerms    string
	PublicationTypes string
	ChemicalList     string
	Keywords         string
	PMC              string
	OtherID          string
	MedlineTA        string
	NlmUniqueID      string
	ISSNLinking      string
	Country          string
	CoiStatement     string
	CompletionDate   string
	ModificationDate string

	PublicationStatus string

	Authors               []Author
	Investigators         []PersonName
	HistoryDates          []HistoryDate
	ELocationIDs          []ELocationID
	Databanks             []Databank
	PersonalSubjectNames  []PersonName
	SupplementaryConcepts []SupplementaryConcept
	References            []Reference
	Grants                []Grant
}
