package analyses

import (
	"sort"
	"strings"
	"unicode"
)

// contextRadius is the number of runes captured on each side of a match.
const contextRadius = 50

// ScanPhrases finds every occurrence of every phrase in text, case-insensitive
// and substring-based. Overlapping occurrences and sub-matches of longer
// phrases are all reported; matches are ordered by position, stable so that
// equal positions keep phrase-list order. Never fails: empty text or an empty
// phrase list yields an empty result.
func ScanPhrases(text string, phrases []string) []PhraseMatch {
	matches := []PhraseMatch{}
	if text == "" || len(phrases) == 0 {
		return matches
	}

	runes := []rune(text)
	folded := foldRunes(runes)

	for _, phrase := range phrases {
		needle := foldRunes([]rune(phrase))
		if len(needle) == 0 {
			continue
		}
		for from := 0; ; {
			idx := indexRunes(folded, needle, from)
			if idx < 0 {
				break
			}
			matches = append(matches, PhraseMatch{
				Phrase:   strings.ToLower(phrase),
				Context:  contextWindow(runes, idx, idx+len(needle)),
				Position: idx,
			})
			from = idx + 1
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Position < matches[j].Position
	})
	return matches
}

// foldRunes lowercases rune-wise so offsets stay 1:1 with the source text.
func foldRunes(in []rune) []rune {
	out := make([]rune, len(in))
	for i, r := range in {
		out[i] = unicode.ToLower(r)
	}
	return out
}

func indexRunes(haystack, needle []rune, from int) int {
	if from < 0 {
		from = 0
	}
	last := len(haystack) - len(needle)
	for i := from; i <= last; i++ {
		matched := true
		for j := range needle {
			if haystack[i+j] != needle[j] {
				matched = false
				break
			}
		}
		if matched {
			return i
		}
	}
	return -1
}

// contextWindow extracts the original-cased text around [start, end),
// truncated at document boundaries.
func contextWindow(runes []rune, start, end int) string {
	lo := start - contextRadius
	if lo < 0 {
		lo = 0
	}
	hi := end + contextRadius
	if hi > len(runes) {
		hi = len(runes)
	}
	return strings.TrimSpace(string(runes[lo:hi]))
}
