package format

import "strings"

// markup tags recognized by ParseMarkup. Tags toggle their style
// independently and do not nest: an opening tag turns the style on
// for all following text until the matching closing tag.
var markupTags = []struct {
	tag    string
	bold   bool
	italic bool
	on     bool
}{
	{"<b>", true, false, true},
	{"</b>", true, false, false},
	{"<i>", false, true, true},
	{"</i>", false, true, false},
}

// ParseMarkup splits a string containing <b> and <i> markers into
// styled segments with the tags stripped out. Text outside any tag is
// unstyled; empty runs between adjacent tags produce no segment.
func ParseMarkup(s string) []Segment {
	var segs []Segment
	bold, italic := false, false

	for len(s) > 0 {
		tagPos, tagIdx := nextTag(s)
		if tagPos < 0 {
			segs = appendSegment(segs, s, bold, italic)
			break
		}
		segs = appendSegment(segs, s[:tagPos], bold, italic)
		t := markupTags[tagIdx]
		if t.bold {
			bold = t.on
		}
		if t.italic {
			italic = t.on
		}
		s = s[tagPos+len(t.tag):]
	}
	return segs
}

// nextTag finds the earliest markup tag in s, returning its position
// and its index in markupTags, or (-1, -1) when none remains.
func nextTag(s string) (int, int) {
	pos, idx := -1, -1
	for i, t := range markupTags {
		p := strings.Index(s, t.tag)
		if p >= 0 && (pos < 0 || p < pos) {
			pos, idx = p, i
		}
	}
	return pos, idx
}

func appendSegment(segs []Segment, text string, bold, italic bool) []Segment {
	if text == "" {
		return segs
	}
	return append(segs, Segment{Text: text, Bold: bold, Italic: italic})
}
