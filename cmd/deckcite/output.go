package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/deckcite/deckcite/internal/citation"
	"github.com/deckcite/deckcite/internal/format"
)

// Title truncation length for list output.
const ListTitleMaxLen = 60

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// exitWithError outputs an error in the appropriate format and exits.
func exitWithError(code int, formatStr string, args ...interface{}) {
	msg := fmt.Sprintf(formatStr, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// StatusResponse is a generic response for commands that return status.
type StatusResponse struct {
	Status string `json:"status"`
	Key    string `json:"key,omitempty"`
	Page   string `json:"page,omitempty"`
	Path   string `json:"path,omitempty"`
	Count  int    `json:"count,omitempty"`
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// summarizeRecord renders a one-line human summary of a record.
func summarizeRecord(rec citation.Record) string {
	year := rec.Year()
	if year == "" {
		year = format.NoDate
	}
	return fmt.Sprintf("%s  %s (%s)", rec.Key,
		truncateString(rec.Title, ListTitleMaxLen), year)
}

// renderSegmentsPlain flattens styled segments into marked-up text for
// terminal display: **bold** and _italic_.
func renderSegmentsPlain(segs []format.Segment) string {
	var b strings.Builder
	for _, seg := range segs {
		text := seg.Text
		if seg.Bold {
			text = "**" + text + "**"
		}
		if seg.Italic {
			text = "_" + text + "_"
		}
		b.WriteString(text)
	}
	return b.String()
}
