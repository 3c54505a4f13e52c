package citation

import (
	"encoding/json"
	"testing"
)

func TestYear(t *testing.T) {
	cases := []struct {
		date string
		want string
	}{
		{"2020-01-15", "2020"},
		{"2020", "2020"},
		{"", ""},
		{"1999-12", "1999"},
	}
	for _, c := range cases {
		r := Record{Date: c.date}
		if got := r.Year(); got != c.want {
			t.Errorf("Year(%q) = %q, want %q", c.date, got, c.want)
		}
	}
}

func TestDisplayName(t *testing.T) {
	if got := (Creator{LastName: "Smith", Name: "J. Smith"}).DisplayName(); got != "Smith" {
		t.Errorf("DisplayName = %q, want %q", got, "Smith")
	}
	if got := (Creator{Name: "The Royal Society"}).DisplayName(); got != "The Royal Society" {
		t.Errorf("DisplayName = %q, want %q", got, "The Royal Society")
	}
	if got := (Creator{}).DisplayName(); got != "" {
		t.Errorf("DisplayName = %q, want empty", got)
	}
}

func TestRecordUnmarshal_NumericKey(t *testing.T) {
	var r Record
	if err := json.Unmarshal([]byte(`{"key":1234,"title":"Foo","volume":7}`), &r); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if r.Key != "1234" {
		t.Errorf("Key = %q, want %q", r.Key, "1234")
	}
	if r.Volume != "7" {
		t.Errorf("Volume = %q, want %q", r.Volume, "7")
	}
}

func TestRecordUnmarshal_SingletonCreator(t *testing.T) {
	// A one-element creator list collapsed to a bare object must be
	// normalized back to a list.
	var r Record
	data := `{"key":"A1","creators":{"lastName":"Smith","firstName":"Jane"}}`
	if err := json.Unmarshal([]byte(data), &r); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(r.Creators) != 1 {
		t.Fatalf("expected 1 creator, got %d", len(r.Creators))
	}
	if r.Creators[0].LastName != "Smith" {
		t.Errorf("LastName = %q, want %q", r.Creators[0].LastName, "Smith")
	}
}

func TestRecordUnmarshal_CreatorList(t *testing.T) {
	var r Record
	data := `{"key":"A1","creators":[{"lastName":"Smith"},{"name":"Acme Corp"}]}`
	if err := json.Unmarshal([]byte(data), &r); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(r.Creators) != 2 {
		t.Fatalf("expected 2 creators, got %d", len(r.Creators))
	}
	if r.Creators[1].Name != "Acme Corp" {
		t.Errorf("Name = %q, want %q", r.Creators[1].Name, "Acme Corp")
	}
}

func TestRecordUnmarshal_SingletonTag(t *testing.T) {
	var r Record
	if err := json.Unmarshal([]byte(`{"key":"A1","tags":"biology"}`), &r); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(r.Tags) != 1 || r.Tags[0] != "biology" {
		t.Errorf("Tags = %v, want [biology]", r.Tags)
	}
}

func TestRecordRoundTrip(t *testing.T) {
	orig := Record{
		Key:              "Smith2020",
		Title:            "On Things",
		ItemType:         "journalArticle",
		Date:             "2020-03-01",
		Creators:         CreatorList{{LastName: "Smith", FirstName: "Jane"}},
		PublicationTitle: "Journal of Things",
		Volume:           "12",
		Pages:            "1-10",
		DOI:              "10.1000/xyz",
		Tags:             StringList{"a", "b"},
		DateAdded:        "2026-01-02T03:04:05Z",
	}
	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var got Record
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Key != orig.Key || got.Title != orig.Title || got.Volume != orig.Volume {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if len(got.Creators) != 1 || got.Creators[0].FirstName != "Jane" {
		t.Errorf("creators mismatch: %+v", got.Creators)
	}
	if len(got.Tags) != 2 {
		t.Errorf("tags mismatch: %+v", got.Tags)
	}
}
