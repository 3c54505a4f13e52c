// Package export renders stored citation records in exchange formats.
package export

import (
	"fmt"
	"strings"

	"github.com/deckcite/deckcite/internal/citation"
)

// entryTypes maps citation item types onto BibTeX entry types.
var entryTypes = map[string]string{
	"journalArticle":  "article",
	"conferencePaper": "inproceedings",
	"book":            "book",
	"bookSection":     "incollection",
	"thesis":          "phdthesis",
	"report":          "techreport",
	"preprint":        "article",
}

// ToBibTeX converts a citation record to a BibTeX entry.
func ToBibTeX(rec citation.Record) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("@%s{%s,\n", entryType(rec.ItemType), rec.Key))

	if len(rec.Creators) > 0 {
		b.WriteString(fmt.Sprintf("  author = {%s},\n", formatCreators(rec.Creators)))
	}
	b.WriteString(fmt.Sprintf("  title = {%s},\n", escapeLatex(rec.Title)))
	if rec.PublicationTitle != "" {
		field := "journal"
		if entryType(rec.ItemType) == "inproceedings" {
			field = "booktitle"
		}
		b.WriteString(fmt.Sprintf("  %s = {%s},\n", field, escapeLatex(rec.PublicationTitle)))
	}
	if year := rec.Year(); year != "" {
		b.WriteString(fmt.Sprintf("  year = {%s},\n", year))
	}
	if rec.Volume != "" {
		b.WriteString(fmt.Sprintf("  volume = {%s},\n", rec.Volume))
	}
	if rec.Issue != "" {
		b.WriteString(fmt.Sprintf("  number = {%s},\n", rec.Issue))
	}
	if rec.Pages != "" {
		b.WriteString(fmt.Sprintf("  pages = {%s},\n", rec.Pages))
	}
	if rec.Publisher != "" {
		b.WriteString(fmt.Sprintf("  publisher = {%s},\n", escapeLatex(rec.Publisher)))
	}
	if rec.DOI != "" {
		b.WriteString(fmt.Sprintf("  doi = {%s},\n", rec.DOI))
	}
	if rec.ISBN != "" {
		b.WriteString(fmt.Sprintf("  isbn = {%s},\n", rec.ISBN))
	}
	if rec.URL != "" {
		b.WriteString(fmt.Sprintf("  url = {%s},\n", rec.URL))
	}
	b.WriteString("}\n")

	return b.String()
}

// ToBibTeXList converts multiple records to BibTeX.
func ToBibTeXList(recs []citation.Record) string {
	var entries []string
	for _, rec := range recs {
		entries = append(entries, ToBibTeX(rec))
	}
	return strings.Join(entries, "\n")
}

func entryType(itemType string) string {
	if t, ok := entryTypes[itemType]; ok {
		return t
	}
	return "misc"
}

// formatCreators formats creators in BibTeX style:
// "Last, First and Last, First". Single-field names are braced.
func formatCreators(creators []citation.Creator) string {
	var formatted []string
	for _, c := range creators {
		switch {
		case c.LastName != "" && c.FirstName != "":
			formatted = append(formatted, fmt.Sprintf("%s, %s", c.LastName, c.FirstName))
		case c.LastName != "":
			formatted = append(formatted, c.LastName)
		case c.Name != "":
			formatted = append(formatted, "{"+c.Name+"}")
		}
	}
	return strings.Join(formatted, " and ")
}

// escapeLatex escapes special LaTeX characters.
func escapeLatex(s string) string {
	replacer := strings.NewReplacer(
		"&", `\&`,
		"%", `\%`,
		"$", `\$`,
		"#", `\#`,
		"_", `\_`,
		"{", `\{`,
		"}", `\}`,
		"~", `\textasciitilde{}`,
		"^", `\textasciicircum{}`,
	)
	return replacer.Replace(s)
}
