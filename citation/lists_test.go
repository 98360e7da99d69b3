package citation

import (
	"testing"

	"github.com/lehigh-university-libraries/medline/dtd"
)

func TestParseMeshInfoDeduplicatesSharedQualifiers(t *testing.T) {
	medline := &dtd.MedlineCitation{
		MeshHeadingList: &dtd.MeshHeadingList{
			Headings: []dtd.MeshHeading{
				{
					Descriptor: &dtd.MeshTerm{UI: "D000328", Text: "Adult"},
					Qualifiers: []dtd.MeshTerm{
						{UI: "Q000032", Text: "analysis", MajorTopicYN: "Y"},
						{UI: "Q000276", Text: "immunology"},
					},
				},
				{
					Descriptor: &dtd.MeshTerm{UI: "D005260", Text: "Female", MajorTopicYN: "Y"},
					Qualifiers: []dtd.MeshTerm{
						{UI: "Q000032", Text: "analysis", MajorTopicYN: "Y"},
					},
				},
				{
					Descriptor: &dtd.MeshTerm{UI: "D006801", Text: "Humans"},
				},
			},
		},
	}

	mesh := parseMeshInfo(medline)

	if want := "D000328:Adult; D005260:Female; D006801:Humans"; mesh.terms != want {
		t.Errorf("terms = %q, want %q", mesh.terms, want)
	}
	// The shared qualifier appears once; first occurrence wins.
	if want := "Q000032:analysis; Q000276:immunology"; mesh.subheadings != want {
		t.Errorf("subheadings = %q, want %q", mesh.subheadings, want)
	}
	if want := "Q000032:analysis"; mesh.majorTopics != want {
		t.Errorf("majorTopics = %q, want %q", mesh.majorTopics, want)
	}
	want := "D000328/Q000032:Adult/analysis*; D000328/Q000276:Adult/immunology; " +
		"D005260/Q000032:Female/analysis*; D006801:Humans"
	if mesh.fullTerms != want {
		t.Errorf("fullTerms = %q, want %q", mesh.fullTerms, want)
	}
}

func TestParseMeshInfoMajorDescriptorWithoutQualifiers(t *testing.T) {
	medline := &dtd.MedlineCitation{
		MeshHeadingList: &dtd.MeshHeadingList{
			Headings: []dtd.MeshHeading{
				{Descriptor: &dtd.MeshTerm{UI: "D005260", Text: "Female", MajorTopicYN: "Y"}},
			},
		},
	}

	mesh := parseMeshInfo(medline)
	if want := "D005260:Female"; mesh.majorTopics != want {
		t.Errorf("majorTopics = %q, want %q", mesh.majorTopics, want)
	}
	if want := "D005260:Female*"; mesh.fullTerms != want {
		t.Errorf("fullTerms = %q, want %q", mesh.fullTerms, want)
	}
}

func TestParseMeshInfoNoHeadings(t *testing.T) {
	mesh := parseMeshInfo(&dtd.MedlineCitation{})
	if mesh != (meshInfo{}) {
		t.Errorf("meshInfo = %+v, want zero value", mesh)
	}
}

func TestParseAuthorsStripsBoilerplateAffiliation(t *testing.T) {
	article := &dtd.Article{
		AuthorLists: []dtd.AuthorList{
			{
				Authors: []dtd.Author{
					{
						LastName: "Smith",
						AffiliationInfo: []dtd.AffiliationInfo{
							{Affiliation: affiliationBoilerplate},
						},
					},
				},
			},
		},
	}

	authors := parseAuthors(article)
	if len(authors) != 1 {
		t.Fatalf("got %d authors, want 1", len(authors))
	}
	if authors[0].Affiliation != "" {
		t.Errorf("affiliation = %q, want empty after boilerplate removal", authors[0].Affiliation)
	}
}

func TestParseAuthorsFlattensMultipleLists(t *testing.T) {
	article := &dtd.Article{
		AuthorLists: []dtd.AuthorList{
			{Authors: []dtd.Author{{LastName: "Smith"}}},
			{Type: "collaborators", Authors: []dtd.Author{{CollectiveName: "CHARGE Consortium"}}},
		},
	}

	authors := parseAuthors(article)
	if len(authors) != 2 {
		t.Fatalf("got %d authors, want 2", len(authors))
	}
	if authors[0].Type != "authors" {
		t.Errorf("first author type = %q, want %q", authors[0].Type, "authors")
	}
	if authors[1].Type != "collaborators" || authors[1].Corporate != "CHARGE Consortium" {
		t.Errorf("unexpected collaborator entry: %+v", authors[1])
	}
}
