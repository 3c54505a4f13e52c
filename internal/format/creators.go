package format

import "github.com/deckcite/deckcite/internal/citation"

// FormatCreators renders a creator list for the {creator} placeholder:
//
//	0 creators  -> "[no author]"
//	1 creator   -> "Smith"
//	2 creators  -> "Smith and Doe"
//	3+ creators -> "Smith et al."
func FormatCreators(creators []citation.Creator) string {
	switch len(creators) {
	case 0:
		return NoAuthor
	case 1:
		return displayName(creators[0])
	case 2:
		return displayName(creators[0]) + NameJoin + displayName(creators[1])
	default:
		return displayName(creators[0]) + EtAl
	}
}

func displayName(c citation.Creator) string {
	if name := c.DisplayName(); name != "" {
		return name
	}
	return NoName
}
