// Package format expands a citation record through a user template
// into styled text segments ready to be written into a text run.
package format

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/deckcite/deckcite/internal/citation"
)

// DefaultDelimiter separates consecutive citations on one page.
const DefaultDelimiter = ";  "

// DefaultTemplate is used when no template is configured.
const DefaultTemplate = "[{#}] <b>{creator}</b>, {title}, <i>{journal}</i> ({year})"

// Fallback strings substituted for absent fields.
const (
	NoTitle   = "[no title]"
	NoAuthor  = "[no author]"
	NoName    = "[name]"
	NoDate    = "n.d."
	EtAl      = " et al."
	NameJoin  = " and "
	NumberTag = "{#}"
)

// ErrBadSpec indicates a format spec that fails shape validation. It
// is rejected before any formatting work.
var ErrBadSpec = errors.New("malformed format template config")

// Segment is one run of text with style flags.
type Segment struct {
	Text   string `json:"text"`
	Bold   bool   `json:"bold"`
	Italic bool   `json:"italic"`
}

// Spec configures the formatter: a template with named placeholders
// and <b>/<i> markers, plus an optional delimiter between citations.
type Spec struct {
	Template  string `json:"template" yaml:"template"`
	Delimiter string `json:"delimiter,omitempty" yaml:"delimiter,omitempty"`
}

// Validate checks the spec's shape. An empty template is rejected; an
// empty delimiter falls back to the default at use sites.
func (s Spec) Validate() error {
	if strings.TrimSpace(s.Template) == "" {
		return fmt.Errorf("%w: template must be a non-empty string", ErrBadSpec)
	}
	return nil
}

func (s Spec) delimiter() string {
	if s.Delimiter == "" {
		return DefaultDelimiter
	}
	return s.Delimiter
}

// Position locates a citation within its page's reference list for
// ordinal numbering.
type Position struct {
	Index      int // position within the page list, zero-based
	StartIndex int // numbering offset for the whole page
}

// AbbrevFunc resolves a journal abbreviation from an exact publication
// title. It is treated as an opaque async lookup; an error or empty
// result falls back to the full title.
type AbbrevFunc func(ctx context.Context, title string) (string, error)

// Formatter turns citation records into styled segments.
type Formatter struct {
	// Abbrev, when set, is consulted for {journal} on records without
	// their own abbreviation field.
	Abbrev AbbrevFunc
}

// Format expands one record through the spec's template and returns
// the resulting styled segments. pos may be nil, in which case the
// ordinal placeholder is left as a literal marker.
func (f *Formatter) Format(ctx context.Context, rec citation.Record, spec Spec, pos *Position) ([]Segment, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	expanded := f.expand(ctx, rec, spec.Template, pos)
	return ParseMarkup(expanded), nil
}

// FormatList formats an ordered page reference list, numbering from
// startIndex and joining consecutive citations with the spec's
// delimiter. Nil entries (keys missing from the store) are silently
// skipped and do not consume an ordinal.
func (f *Formatter) FormatList(ctx context.Context, recs []*citation.Record, spec Spec, startIndex int) ([]Segment, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	var out []Segment
	index := 0
	for _, rec := range recs {
		if rec == nil {
			continue
		}
		segs, err := f.Format(ctx, *rec, spec, &Position{Index: index, StartIndex: startIndex})
		if err != nil {
			return nil, err
		}
		if index > 0 {
			out = append(out, Segment{Text: spec.delimiter()})
		}
		out = append(out, segs...)
		index++
	}
	return out, nil
}

// expand substitutes every placeholder in the template.
func (f *Formatter) expand(ctx context.Context, rec citation.Record, template string, pos *Position) string {
	var b strings.Builder
	for i := 0; i < len(template); {
		if template[i] != '{' {
			b.WriteByte(template[i])
			i++
			continue
		}
		end := strings.IndexByte(template[i:], '}')
		if end < 0 {
			b.WriteString(template[i:])
			break
		}
		name := template[i+1 : i+end]
		value, ok := f.placeholder(ctx, rec, name, pos)
		if ok {
			b.WriteString(value)
		} else {
			// Unknown placeholders pass through literally.
			b.WriteString(template[i : i+end+1])
		}
		i += end + 1
	}
	return b.String()
}

func (f *Formatter) placeholder(ctx context.Context, rec citation.Record, name string, pos *Position) (string, bool) {
	switch name {
	case "#":
		if pos == nil {
			return NumberTag, true
		}
		return strconv.Itoa(pos.Index + pos.StartIndex + 1), true
	case "key":
		return rec.Key, true
	case "title":
		if rec.Title == "" {
			return NoTitle, true
		}
		return rec.Title, true
	case "creator":
		return FormatCreators(rec.Creators), true
	case "year":
		if y := rec.Year(); y != "" {
			return y, true
		}
		return NoDate, true
	case "date":
		return rec.Date, true
	case "journal":
		return f.journal(ctx, rec), true
	case "publication":
		return rec.PublicationTitle, true
	case "volume":
		return rec.Volume, true
	case "issue":
		return rec.Issue, true
	case "pages":
		return rec.Pages, true
	case "doi":
		return rec.DOI, true
	case "isbn":
		return rec.ISBN, true
	case "url":
		return rec.URL, true
	case "publisher":
		return rec.Publisher, true
	case "itemType":
		return rec.ItemType, true
	}
	return "", false
}

// journal resolves the abbreviated journal name: the record's own
// abbreviation, then the external lookup, then the full title.
func (f *Formatter) journal(ctx context.Context, rec citation.Record) string {
	if rec.JournalAbbreviation != "" {
		return rec.JournalAbbreviation
	}
	if f.Abbrev != nil && rec.PublicationTitle != "" {
		if abbrev, err := f.Abbrev(ctx, rec.PublicationTitle); err == nil && abbrev != "" {
			return abbrev
		}
	}
	return rec.PublicationTitle
}
