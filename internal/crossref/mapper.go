package crossref

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/deckcite/deckcite/internal/citation"
)

// itemTypes maps Crossref work types onto citation item types.
var itemTypes = map[string]string{
	"journal-article":     "journalArticle",
	"proceedings-article": "conferencePaper",
	"book":                "book",
	"book-chapter":        "bookSection",
	"posted-content":      "preprint",
	"report":              "report",
	"dissertation":        "thesis",
}

var nonAlnumRe = regexp.MustCompile(`[^A-Za-z0-9]+`)

// RecordFromWork converts a Crossref work into a citation record. The
// citation key is derived from the first author's family name and the
// publication year; the caller is responsible for resolving key
// collisions before storing.
func RecordFromWork(w Work) citation.Record {
	rec := citation.Record{
		Title:            first(w.Title),
		ItemType:         itemType(w.Type),
		Date:             issuedDate(w.Issued),
		PublicationTitle: first(w.ContainerTitle),
		Volume:           w.Volume,
		Issue:            w.Issue,
		Pages:            w.Page,
		DOI:              w.DOI,
		ISBN:             first(w.ISBN),
		URL:              w.URL,
		Publisher:        w.Publisher,
		AbstractNote:     stripJATS(w.Abstract),
	}

	if abbrev := first(w.ShortContainerTitle); abbrev != rec.PublicationTitle {
		rec.JournalAbbreviation = abbrev
	}

	for _, a := range w.Author {
		rec.Creators = append(rec.Creators, citation.Creator{
			LastName:  a.Family,
			FirstName: a.Given,
			Name:      a.Name,
		})
	}

	rec.Key = deriveKey(rec)

	now := time.Now().UTC().Format(time.RFC3339)
	rec.DateAdded = now
	rec.DateModified = now

	return rec
}

// deriveKey builds a "Smith2020"-style citation key, falling back to a
// sanitized DOI when the record has neither author nor year.
func deriveKey(rec citation.Record) string {
	name := ""
	if len(rec.Creators) > 0 {
		name = nonAlnumRe.ReplaceAllString(rec.Creators[0].DisplayName(), "")
	}
	year := rec.Year()
	if name != "" {
		return name + year
	}
	if rec.DOI != "" {
		return nonAlnumRe.ReplaceAllString(rec.DOI, "-")
	}
	return "untitled" + year
}

// UniqueKey returns key if not taken, otherwise key-2, key-3, etc.
func UniqueKey(taken map[string]citation.Record, key string) string {
	if _, ok := taken[key]; !ok {
		return key
	}
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s-%d", key, i)
		if _, ok := taken[candidate]; !ok {
			return candidate
		}
	}
}

func itemType(t string) string {
	if mapped, ok := itemTypes[t]; ok {
		return mapped
	}
	return "journalArticle"
}

func issuedDate(d WorkDate) string {
	if len(d.DateParts) == 0 || len(d.DateParts[0]) == 0 {
		return ""
	}
	parts := d.DateParts[0]
	switch len(parts) {
	case 1:
		return fmt.Sprintf("%d", parts[0])
	case 2:
		return fmt.Sprintf("%d-%02d", parts[0], parts[1])
	default:
		return fmt.Sprintf("%d-%02d-%02d", parts[0], parts[1], parts[2])
	}
}

var jatsTagRe = regexp.MustCompile(`</?jats:[^>]+>`)

// stripJATS removes the JATS XML wrapper Crossref uses for abstracts.
func stripJATS(s string) string {
	return strings.TrimSpace(jatsTagRe.ReplaceAllString(s, ""))
}

func first(list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[0]
}
