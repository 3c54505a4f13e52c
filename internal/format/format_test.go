package format

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/deckcite/deckcite/internal/citation"
)

func TestFormat_TitleAndYear(t *testing.T) {
	ctx := context.Background()
	f := &Formatter{}
	rec := citation.Record{Key: "X", Title: "Foo", Date: "2020-01-01"}

	segs, err := f.Format(ctx, rec, Spec{Template: "<b>{title}</b>, {year}"}, nil)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	want := []Segment{
		{Text: "Foo", Bold: true},
		{Text: ", 2020"},
	}
	if !reflect.DeepEqual(segs, want) {
		t.Errorf("segments = %+v, want %+v", segs, want)
	}
}

func TestFormat_Numbering(t *testing.T) {
	ctx := context.Background()
	f := &Formatter{}
	rec := citation.Record{Key: "X"}

	for i, want := range []string{"[1]", "[2]", "[3]"} {
		segs, err := f.Format(ctx, rec, Spec{Template: "[{#}]"}, &Position{Index: i, StartIndex: 0})
		if err != nil {
			t.Fatalf("Format: %v", err)
		}
		if len(segs) != 1 || segs[0].Text != want {
			t.Errorf("position %d: segments = %+v, want text %q", i, segs, want)
		}
	}

	// StartIndex offsets the ordinal
	segs, err := f.Format(ctx, rec, Spec{Template: "[{#}]"}, &Position{Index: 0, StartIndex: 4})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if segs[0].Text != "[5]" {
		t.Errorf("with startIndex 4: %q, want %q", segs[0].Text, "[5]")
	}
}

func TestFormat_NumberWithoutPosition(t *testing.T) {
	ctx := context.Background()
	f := &Formatter{}
	segs, err := f.Format(ctx, citation.Record{Key: "X"}, Spec{Template: "[{#}]"}, nil)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if segs[0].Text != "[{#}]" {
		t.Errorf("without position: %q, want literal marker", segs[0].Text)
	}
}

func TestFormat_Fallbacks(t *testing.T) {
	ctx := context.Background()
	f := &Formatter{}
	segs, err := f.Format(ctx, citation.Record{Key: "X"}, Spec{Template: "{title}, {year}, {creator}"}, nil)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if len(segs) != 1 {
		t.Fatalf("expected one segment, got %+v", segs)
	}
	want := NoTitle + ", " + NoDate + ", " + NoAuthor
	if segs[0].Text != want {
		t.Errorf("text = %q, want %q", segs[0].Text, want)
	}
}

func TestFormat_UnknownPlaceholderLiteral(t *testing.T) {
	ctx := context.Background()
	f := &Formatter{}
	segs, err := f.Format(ctx, citation.Record{Key: "X", Title: "T"}, Spec{Template: "{title} {wat}"}, nil)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if segs[0].Text != "T {wat}" {
		t.Errorf("text = %q, want %q", segs[0].Text, "T {wat}")
	}
}

func TestFormat_BadSpec(t *testing.T) {
	ctx := context.Background()
	f := &Formatter{}
	_, err := f.Format(ctx, citation.Record{Key: "X"}, Spec{}, nil)
	if !errors.Is(err, ErrBadSpec) {
		t.Errorf("expected ErrBadSpec, got %v", err)
	}
	_, err = f.Format(ctx, citation.Record{Key: "X"}, Spec{Template: "   "}, nil)
	if !errors.Is(err, ErrBadSpec) {
		t.Errorf("whitespace template: expected ErrBadSpec, got %v", err)
	}
}

func TestFormatCreators(t *testing.T) {
	cases := []struct {
		creators []citation.Creator
		want     string
	}{
		{nil, NoAuthor},
		{[]citation.Creator{{LastName: "Smith"}}, "Smith"},
		{[]citation.Creator{{LastName: "Smith"}, {LastName: "Doe"}}, "Smith and Doe"},
		{[]citation.Creator{{LastName: "Smith"}, {LastName: "Doe"}, {LastName: "Roe"}}, "Smith et al."},
		{[]citation.Creator{{Name: "The Royal Society"}}, "The Royal Society"},
		{[]citation.Creator{{}}, NoName},
		{[]citation.Creator{{LastName: "Smith"}, {Name: "Acme"}}, "Smith and Acme"},
	}
	for _, c := range cases {
		if got := FormatCreators(c.creators); got != c.want {
			t.Errorf("FormatCreators(%v) = %q, want %q", c.creators, got, c.want)
		}
	}
}

func TestJournalAbbreviation(t *testing.T) {
	ctx := context.Background()
	rec := citation.Record{Key: "X", PublicationTitle: "Journal of Theoretical Biology"}

	// Record-level abbreviation wins
	withOwn := rec
	withOwn.JournalAbbreviation = "J. Theor. Biol."
	f := &Formatter{Abbrev: func(ctx context.Context, title string) (string, error) {
		t.Error("lookup should not be called when record has its own abbreviation")
		return "", nil
	}}
	segs, err := f.Format(ctx, withOwn, Spec{Template: "{journal}"}, nil)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if segs[0].Text != "J. Theor. Biol." {
		t.Errorf("journal = %q", segs[0].Text)
	}

	// Async lookup consulted otherwise
	var asked string
	f = &Formatter{Abbrev: func(ctx context.Context, title string) (string, error) {
		asked = title
		return "J Theor Biol", nil
	}}
	segs, err = f.Format(ctx, rec, Spec{Template: "{journal}"}, nil)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if segs[0].Text != "J Theor Biol" {
		t.Errorf("journal = %q", segs[0].Text)
	}
	if asked != "Journal of Theoretical Biology" {
		t.Errorf("lookup title = %q", asked)
	}

	// Lookup failure falls back to the full title
	f = &Formatter{Abbrev: func(ctx context.Context, title string) (string, error) {
		return "", errors.New("service down")
	}}
	segs, err = f.Format(ctx, rec, Spec{Template: "{journal}"}, nil)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if segs[0].Text != "Journal of Theoretical Biology" {
		t.Errorf("journal fallback = %q", segs[0].Text)
	}

	// No lookup configured falls back too
	f = &Formatter{}
	segs, _ = f.Format(ctx, rec, Spec{Template: "{journal}"}, nil)
	if segs[0].Text != "Journal of Theoretical Biology" {
		t.Errorf("journal without lookup = %q", segs[0].Text)
	}
}

func TestFormatList(t *testing.T) {
	ctx := context.Background()
	f := &Formatter{}
	a := &citation.Record{Key: "A", Title: "Alpha"}
	b := &citation.Record{Key: "B", Title: "Beta"}

	segs, err := f.FormatList(ctx, []*citation.Record{a, b}, Spec{Template: "[{#}] {title}"}, 0)
	if err != nil {
		t.Fatalf("FormatList: %v", err)
	}
	want := []Segment{
		{Text: "[1] Alpha"},
		{Text: DefaultDelimiter},
		{Text: "[2] Beta"},
	}
	if !reflect.DeepEqual(segs, want) {
		t.Errorf("segments = %+v, want %+v", segs, want)
	}
}

func TestFormatList_SkipsMissing(t *testing.T) {
	ctx := context.Background()
	f := &Formatter{}
	a := &citation.Record{Key: "A", Title: "Alpha"}

	segs, err := f.FormatList(ctx, []*citation.Record{nil, a, nil}, Spec{Template: "[{#}] {title}", Delimiter: " | "}, 0)
	if err != nil {
		t.Fatalf("FormatList: %v", err)
	}
	want := []Segment{{Text: "[1] Alpha"}}
	if !reflect.DeepEqual(segs, want) {
		t.Errorf("segments = %+v, want %+v", segs, want)
	}
}

func TestFormatList_CustomDelimiter(t *testing.T) {
	ctx := context.Background()
	f := &Formatter{}
	a := &citation.Record{Key: "A", Title: "Alpha"}
	b := &citation.Record{Key: "B", Title: "Beta"}

	segs, err := f.FormatList(ctx, []*citation.Record{a, b}, Spec{Template: "{title}", Delimiter: " | "}, 0)
	if err != nil {
		t.Fatalf("FormatList: %v", err)
	}
	if len(segs) != 3 || segs[1].Text != " | " || segs[1].Bold || segs[1].Italic {
		t.Errorf("segments = %+v, want unstyled delimiter between entries", segs)
	}
}

func TestFormatList_NoTrailingDelimiter(t *testing.T) {
	ctx := context.Background()
	f := &Formatter{}
	a := &citation.Record{Key: "A", Title: "Alpha"}

	segs, err := f.FormatList(ctx, []*citation.Record{a}, Spec{Template: "{title}"}, 0)
	if err != nil {
		t.Fatalf("FormatList: %v", err)
	}
	if len(segs) != 1 {
		t.Errorf("single citation should produce no delimiter: %+v", segs)
	}
}
