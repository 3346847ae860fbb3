// Package words derives the top-N word frequency ranking from article bodies.
package words

import (
	"sort"
	"strings"
	"unicode"

	"newswatch/internal/crawler"
)

// punctuation is the ASCII punctuation set stripped before tokenizing.
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// turkishUpper maps the lowercase letters that a naive uppercasing rule gets
// wrong or leaves unchanged. Applied before generic uppercasing.
var turkishUpper = map[rune]rune{
	'i': 'İ',
	'ı': 'I',
	'ğ': 'Ğ',
	'ü': 'Ü',
	'ş': 'Ş',
	'ö': 'Ö',
	'ç': 'Ç',
}

// UpperTurkish uppercases a token with Turkish letter mappings.
func UpperTurkish(s string) string {
	return strings.Map(func(r rune) rune {
		if up, ok := turkishUpper[r]; ok {
			return up
		}
		return unicode.ToUpper(r)
	}, s)
}

// stripPunctuation deletes every ASCII punctuation character.
func stripPunctuation(s string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(punctuation, r) {
			return -1
		}
		return r
	}, s)
}

// TopN tokenizes the given bodies and returns the n most frequent words in
// descending count order. Ties keep first-encountered order, so the ranking
// is stable across runs over the same corpus.
func TopN(bodies []string, n int) []crawler.WordCount {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)

	position := 0
	for _, body := range bodies {
		for _, token := range strings.Fields(stripPunctuation(body)) {
			word := UpperTurkish(token)
			if _, seen := counts[word]; !seen {
				firstSeen[word] = position
				position++
			}
			counts[word]++
		}
	}

	ranked := make([]crawler.WordCount, 0, len(counts))
	for word, count := range counts {
		ranked = append(ranked, crawler.WordCount{Word: word, Count: count})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return firstSeen[ranked[i].Word] < firstSeen[ranked[j].Word]
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
