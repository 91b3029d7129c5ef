package tui

import "strings"

// queryTerm is one word of a suggestion query, with "|" alternatives and an optional "-" negation.
type queryTerm struct {
	alternatives []string
	negate       bool
}

// locationQuery matches remembered locations against what is typed in the input.
// Words must all match, in any order:
//
//	"bury st"          matches "Bury St Edmunds"
//	"cam|col"          matches "Cambridge" and "Colchester"
//	"cam -bridge"      matches "Cambourne" but not "Cambridge"
type locationQuery struct {
	terms []queryTerm
}

func parseQuery(raw string) locationQuery {
	var q locationQuery

	for _, word := range strings.Fields(strings.ToLower(raw)) {
		negate := len(word) > 1 && word[0] == '-'
		if negate {
			word = word[1:]
		}

		var alts []string
		for _, alt := range strings.Split(word, "|") {
			if alt != "" && alt != "-" {
				alts = append(alts, alt)
			}
		}

		if len(alts) > 0 {
			q.terms = append(q.terms, queryTerm{alternatives: alts, negate: negate})
		}
	}

	return q
}

// empty reports whether the query has no usable word.
func (q locationQuery) empty() bool {
	return len(q.terms) == 0
}

// matches reports whether location satisfies every term. An empty query matches everything.
func (q locationQuery) matches(location string) bool {
	lower := strings.ToLower(location)

	for _, term := range q.terms {
		found := false
		for _, alt := range term.alternatives {
			if strings.Contains(lower, alt) {
				found = true
				break
			}
		}

		if found == term.negate {
			return false
		}
	}

	return true
}
