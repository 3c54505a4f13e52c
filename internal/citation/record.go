// Package citation defines the core domain types for bibliographic citations.
package citation

import (
	"encoding/json"
	"strconv"
)

// Record represents one bibliographic entry identified by a stable key.
// The zero value of every field except Key is meaningful (absent).
type Record struct {
	Key      string `json:"key"`
	Title    string `json:"title,omitempty"`
	ItemType string `json:"itemType,omitempty"`

	// Date is an ISO-ish date string ("2020-01-15", "2020") or empty.
	Date     string      `json:"date,omitempty"`
	Creators CreatorList `json:"creators,omitempty"`

	PublicationTitle    string `json:"publicationTitle,omitempty"`
	JournalAbbreviation string `json:"journalAbbreviation,omitempty"`
	Publisher           string `json:"publisher,omitempty"`
	Volume              string `json:"volume,omitempty"`
	Issue               string `json:"issue,omitempty"`
	Pages               string `json:"pages,omitempty"`
	DOI                 string `json:"DOI,omitempty"`
	ISBN                string `json:"ISBN,omitempty"`
	URL                 string `json:"url,omitempty"`
	AbstractNote        string `json:"abstractNote,omitempty"`

	Tags StringList `json:"tags,omitempty"`

	// Timestamps are set by the writer and not validated.
	DateAdded    string `json:"dateAdded,omitempty"`
	DateModified string `json:"dateModified,omitempty"`
}

// Year returns the portion of Date before the first '-', or "" when
// the record has no date.
func (r Record) Year() string {
	for i := 0; i < len(r.Date); i++ {
		if r.Date[i] == '-' {
			return r.Date[:i]
		}
	}
	return r.Date
}

// Creator is one author, editor, etc. A creator carries either a split
// lastName/firstName pair or a single display name.
type Creator struct {
	LastName  string `json:"lastName,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	Name      string `json:"name,omitempty"`
}

// DisplayName returns the name used when rendering: the last name,
// falling back to the single display name.
func (c Creator) DisplayName() string {
	if c.LastName != "" {
		return c.LastName
	}
	return c.Name
}

// recordJSON mirrors Record but decodes the key through flexString so a
// key round-tripped as a bare number still compares as a string.
type recordJSON struct {
	Key                 flexString  `json:"key"`
	Title               string      `json:"title"`
	ItemType            string      `json:"itemType"`
	Date                string      `json:"date"`
	Creators            CreatorList `json:"creators"`
	PublicationTitle    string      `json:"publicationTitle"`
	JournalAbbreviation string      `json:"journalAbbreviation"`
	Publisher           string      `json:"publisher"`
	Volume              flexString  `json:"volume"`
	Issue               flexString  `json:"issue"`
	Pages               flexString  `json:"pages"`
	DOI                 string      `json:"DOI"`
	ISBN                flexString  `json:"ISBN"`
	URL                 string      `json:"url"`
	AbstractNote        string      `json:"abstractNote"`
	Tags                StringList  `json:"tags"`
	DateAdded           string      `json:"dateAdded"`
	DateModified        string      `json:"dateModified"`
}

// UnmarshalJSON decodes a record, coercing number-like scalars to
// strings where a string field is meant.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw recordJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = Record{
		Key:                 string(raw.Key),
		Title:               raw.Title,
		ItemType:            raw.ItemType,
		Date:                raw.Date,
		Creators:            raw.Creators,
		PublicationTitle:    raw.PublicationTitle,
		JournalAbbreviation: raw.JournalAbbreviation,
		Publisher:           raw.Publisher,
		Volume:              string(raw.Volume),
		Issue:               string(raw.Issue),
		Pages:               string(raw.Pages),
		DOI:                 raw.DOI,
		ISBN:                string(raw.ISBN),
		URL:                 raw.URL,
		AbstractNote:        raw.AbstractNote,
		Tags:                raw.Tags,
		DateAdded:           raw.DateAdded,
		DateModified:        raw.DateModified,
	}
	return nil
}

// flexString is a string that also accepts JSON numbers and booleans.
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*s = ""
		return nil
	}
	if data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = flexString(v)
		return nil
	}
	// Numbers and other scalars keep their literal token form.
	if f, err := strconv.ParseFloat(string(data), 64); err == nil {
		if f == float64(int64(f)) {
			*s = flexString(strconv.FormatInt(int64(f), 10))
			return nil
		}
	}
	*s = flexString(data)
	return nil
}

// CreatorList is a creator sequence that tolerates a bare object where
// a one-element array is meant.
type CreatorList []Creator

func (l *CreatorList) UnmarshalJSON(data []byte) error {
	return unmarshalSingleOrList(data, (*[]Creator)(l))
}

// StringList is a string sequence that tolerates a bare scalar where a
// one-element array is meant.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	return unmarshalSingleOrList(data, (*[]string)(l))
}

// unmarshalSingleOrList decodes data into out, wrapping a single value
// in a one-element slice. This is the normalization point for formats
// whose parsers collapse one-element sequences to scalars.
func unmarshalSingleOrList[T any](data []byte, out *[]T) error {
	trimmed := trimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		*out = nil
		return nil
	}
	if trimmed[0] == '[' {
		var list []T
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return err
		}
		*out = list
		return nil
	}
	var single T
	if err := json.Unmarshal(trimmed, &single); err != nil {
		return err
	}
	*out = []T{single}
	return nil
}

func trimSpace(data []byte) []byte {
	start, end := 0, len(data)
	for start < end && isJSONSpace(data[start]) {
		start++
	}
	for end > start && isJSONSpace(data[end-1]) {
		end--
	}
	return data[start:end]
}

func isJSONSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
