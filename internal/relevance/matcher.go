package relevance

import "strings"

// DefaultKeywords are the community title markers. Both the spaced and the
// collapsed spellings are listed so titles written either way match.
var DefaultKeywords = []string{"chaserp", "chase rp", "chase-rp"}

// Matcher classifies clip titles as belonging to the community.
type Matcher struct {
	keywords []string
}

func NewMatcher(keywords []string) *Matcher {
	if len(keywords) == 0 {
		keywords = DefaultKeywords
	}
	lowered := make([]string, len(keywords))
	for i, k := range keywords {
		lowered[i] = strings.ToLower(k)
	}
	return &Matcher{keywords: lowered}
}

// IsRelevant reports whether either title contains any keyword variant as a
// case-insensitive substring. The secondary title (source video) may be empty.
func (m *Matcher) IsRelevant(primary, secondary string) bool {
	haystack := strings.ToLower(primary)
	if secondary != "" {
		haystack += " " + strings.ToLower(secondary)
	}
	for _, k := range m.keywords {
		if strings.Contains(haystack, k) {
			return true
		}
	}
	return false
}
