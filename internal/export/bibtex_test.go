package export

import (
	"strings"
	"testing"

	"github.com/deckcite/deckcite/internal/citation"
)

func TestToBibTeX(t *testing.T) {
	rec := citation.Record{
		Key:              "Smith2020",
		Title:            "Costs & Benefits",
		ItemType:         "journalArticle",
		Date:             "2020-03-01",
		Creators:         citation.CreatorList{{LastName: "Smith", FirstName: "Jane"}, {Name: "Acme Corp"}},
		PublicationTitle: "Journal of Examples",
		Volume:           "12",
		Pages:            "1-10",
		DOI:              "10.1000/xyz",
	}

	out := ToBibTeX(rec)

	if !strings.HasPrefix(out, "@article{Smith2020,\n") {
		t.Errorf("entry header wrong:\n%s", out)
	}
	for _, want := range []string{
		"author = {Smith, Jane and {Acme Corp}}",
		`title = {Costs \& Benefits}`,
		"journal = {Journal of Examples}",
		"year = {2020}",
		"volume = {12}",
		"pages = {1-10}",
		"doi = {10.1000/xyz}",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestToBibTeX_ConferencePaper(t *testing.T) {
	rec := citation.Record{
		Key:              "Doe2019",
		Title:            "A Talk",
		ItemType:         "conferencePaper",
		PublicationTitle: "Proceedings of Examples",
	}
	out := ToBibTeX(rec)
	if !strings.HasPrefix(out, "@inproceedings{Doe2019,") {
		t.Errorf("entry type wrong:\n%s", out)
	}
	if !strings.Contains(out, "booktitle = {Proceedings of Examples}") {
		t.Errorf("conference venue should use booktitle:\n%s", out)
	}
}

func TestToBibTeX_UnknownTypeIsMisc(t *testing.T) {
	out := ToBibTeX(citation.Record{Key: "X", ItemType: "webpage"})
	if !strings.HasPrefix(out, "@misc{X,") {
		t.Errorf("unknown item type should map to misc:\n%s", out)
	}
}

func TestToBibTeXList(t *testing.T) {
	out := ToBibTeXList([]citation.Record{
		{Key: "A", Title: "One"},
		{Key: "B", Title: "Two"},
	})
	if strings.Count(out, "@misc{") != 2 {
		t.Errorf("expected two entries:\n%s", out)
	}
}
