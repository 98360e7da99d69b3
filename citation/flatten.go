package citation

import "strings"

// recordKeys enumerates the flat record's key set. Every flattened record
// carries every key; delete records carry the unset marker instead of
// values.
var recordKeys = []string{
	"title",
	"issue",
	"short_issue",
	"volume",
	"pages",
	"abstract",
	"journal",
	"authors",
	"affiliations",
	"pubdate",
	"pmid",
	"mesh_terms",
	"mesh_subheadings",
	"mesh_major_topics",
	"mesh_full_terms",
	"publication_types",
	"chemical_list",
	"keywords",
	"doi",
	"references",
	"delete",
	"languages",
	"vernacular_title",
	"coi_statement",
	"completion_date",
	"modification_date",
	"history_dates",
	"investigators",
	"elocation_ids",
	"databanks",
	"personal_subject_names",
	"supplementary_concepts",
	"publication_status",
	"grant_ids",
	"pmc",
	"other_id",
	"medline_ta",
	"nlm_unique_id",
	"issn_linking",
	"country",
}

// RecordKeys returns the flat record's key set in its canonical order.
func RecordKeys() []string {
	keys := make([]string, len(recordKeys))
	copy(keys, recordKeys)
	return keys
}

// Flatten renders the record as a flat mapping with the full key set. The
// output-shape switches in opts decide, per composite field, between the
// structured slice and the semicolon-joined string form ("|" between a
// sub-record's own fields). A delete record keeps only pmid and delete; all
// informational keys hold nil, the unset marker.
func (r Record) Flatten(opts Options) map[string]any {
	if r.Delete {
		out := make(map[string]any, len(recordKeys))
		for _, key := range recordKeys {
			out[key] = nil
		}
		out["pmid"] = r.PMID
		out["delete"] = true
		return out
	}

	out := map[string]any{
		"title":              r.Title,
		"issue":              r.Issue,
		"short_issue":        r.ShortIssue,
		"volume":             r.Volume,
		"pages":              r.Pages,
		"abstract":           r.Abstract,
		"journal":            r.Journal,
		"affiliations":       renderAffiliations(r.Authors),
		"pubdate":            r.PubDate,
		"pmid":               r.PMID,
		"mesh_terms":         r.MeshTerms,
		"mesh_subheadings":   r.MeshSubheadings,
		"mesh_major_topics":  r.MeshMajorTopics,
		"mesh_full_terms":    r.MeshFullTerms,
		"publication_types":  r.PublicationTypes,
		"chemical_list":      r.ChemicalList,
		"keywords":           r.Keywords,
		"doi":                r.DOI,
		"delete":             false,
		"languages":          r.Languages,
		"vernacular_title":   r.VernacularTitle,
		"coi_statement":      r.CoiStatement,
		"completion_date":    r.CompletionDate,
		"modification_date":  r.ModificationDate,
		"publication_status": r.PublicationStatus,
		"pmc":                r.PMC,
		"other_id":           r.OtherID,
		"medline_ta":         r.MedlineTA,
		"nlm_unique_id":      r.NlmUniqueID,
		"issn_linking":       r.ISSNLinking,
		"country":            r.Country,
	}

	out["authors"] = listOrString(opts.AuthorList, r.Authors, RenderAuthors)
	out["references"] = listOrString(opts.ReferenceList, r.References, RenderReferences)
	out["history_dates"] = listOrString(opts.HistoryDatesList, r.HistoryDates, RenderHistoryDates)
	out["investigators"] = listOrString(opts.InvestigatorList, r.Investigators, RenderPersonNames)
	out["elocation_ids"] = listOrString(opts.ELocationIDsList, r.ELocationIDs, RenderELocationIDs)
	out["databanks"] = listOrString(opts.DatabanksList, r.Databanks, RenderDatabanks)
	out["personal_subject_names"] = listOrString(opts.PersonalSubjectNamesList, r.PersonalSubjectNames, RenderPersonNames)
	out["supplementary_concepts"] = listOrString(opts.SupplementaryConceptsList, r.SupplementaryConcepts, RenderSupplementaryConcepts)
	out["grant_ids"] = listOrString(opts.GrantIDsList, r.Grants, RenderGrants)

	return out
}

func listOrString[T any](asList bool, list []T, render func([]T) string) any {
	if asList {
		return list
	}
	return render(list)
}

// RenderAuthors joins authors as
// "lastname|forename|initials|suffix|author_type|identifier_type|identifier|corporate"
// entries separated by ";". Affiliations are rendered separately.
func RenderAuthors(authors []Author) string {
	entries := make([]string, 0, len(authors))
	for _, a := range authors {
		entries = append(entries, strings.Join([]string{
			a.LastName, a.ForeName, a.Initials, a.Suffix,
			a.Type, a.IdentifierType, a.Identifier, a.Corporate,
		}, "|"))
	}
	return strings.Join(entries, ";")
}

func renderAffiliations(authors []Author) string {
	var affiliations []string
	for _, a := range authors {
		if a.Affiliation != "" {
			affiliations = append(affiliations, a.Affiliation)
		}
	}
	return strings.Join(affiliations, ";")
}

// RenderReferences joins the non-empty reference PMIDs with ";". References
// without a resolved PMID are dropped entirely in this form.
func RenderReferences(references []Reference) string {
	var pmids []string
	for _, ref := range references {
		if ref.PMID != "" {
			pmids = append(pmids, ref.PMID)
		}
	}
	return strings.Join(pmids, ";")
}

// RenderHistoryDates joins history dates as "status|date" entries.
func RenderHistoryDates(dates []HistoryDate) string {
	entries := make([]string, 0, len(dates))
	for _, d := range dates {
		entries = append(entries, d.Status+"|"+d.Date)
	}
	return strings.Join(entries, ";")
}

// RenderPersonNames joins names as "lastname|forename|initials|suffix"
// entries.
func RenderPersonNames(names []PersonName) string {
	entries := make([]string, 0, len(names))
	for _, n := range names {
		entries = append(entries, strings.Join([]string{
			n.LastName, n.ForeName, n.Initials, n.Suffix,
		}, "|"))
	}
	return strings.Join(entries, ";")
}

// RenderELocationIDs joins e-location entries as "type|value".
func RenderELocationIDs(ids []ELocationID) string {
	entries := make([]string, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, id.Type+"|"+id.Value)
	}
	return strings.Join(entries, ";")
}

// RenderDatabanks joins databanks as one "name/accession" entry per
// accession number, or the bare name when a databank has none.
func RenderDatabanks(databanks []Databank) string {
	var entries []string
	for _, db := range databanks {
		if len(db.AccessionNumbers) == 0 {
			entries = append(entries, db.Name)
			continue
		}
		for _, accession := range db.AccessionNumbers {
			entries = append(entries, db.Name+"/"+accession)
		}
	}
	return strings.Join(entries, ";")
}

// RenderSupplementaryConcepts joins concepts as "type|UI|name" entries.
func RenderSupplementaryConcepts(concepts []SupplementaryConcept) string {
	entries := make([]string, 0, len(concepts))
	for _, c := range concepts {
		entries = append(entries, c.Type+"|"+c.UI+"|"+c.Name)
	}
	return strings.Join(entries, ";")
}

// RenderGrants joins grants as "grant_id|grant_acronym|country|agency"
// entries; the owning PMID is not part of this form.
func RenderGrants(grants []Grant) string {
	entries := make([]string, 0, len(grants))
	for _, g := range grants {
		entries = append(entries, strings.Join([]string{
			g.GrantID, g.Acronym, g.Country, g.Agency,
		}, "|"))
	}
	return strings.Join(entries, ";")
}

// FlattenAll renders every record; a convenience for the serialization
// layer.
func FlattenAll(records []Record, opts Options) []map[string]any {
	flat := make([]map[string]any, 0, len(records))
	for _, r := range records {
		flat = append(flat, r.Flatten(opts))
	}
	return flat
}
