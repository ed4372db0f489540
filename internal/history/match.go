package history

import (
	"sort"
	"strings"
	"unicode"

	"github.com/hbollon/go-edlib"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// similarityFloor is the minimum Jaro-Winkler score for a fuzzy title match.
const similarityFloor = 0.70

// rankByTitle filters items to those whose title (or author) matches the
// query and orders them best match first. A normalized substring hit scores
// high-confidence so partial queries like "quantum" find long titles.
func rankByTitle(items []*Item, query string, limit int) []*Item {
	q := normalizeTitle(query)
	if q == "" {
		return nil
	}

	type scored struct {
		item  *Item
		score float64
	}
	var matched []scored

	for _, item := range items {
		title := normalizeTitle(item.Title)
		author := normalizeTitle(item.Author)

		score := float64(edlib.JaroWinklerSimilarity(q, title))
		if score < 0.95 && (strings.Contains(title, q) || strings.Contains(author, q)) {
			score = 0.95
		}
		if score >= similarityFloor {
			matched = append(matched, scored{item, score})
		}
	}

	sort.SliceStable(matched, func(i, j int) bool { return matched[i].score > matched[j].score })

	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	results := make([]*Item, len(matched))
	for i, m := range matched {
		results[i] = m.item
	}
	return results
}

// normalizeTitle lowercases, strips accents and collapses whitespace.
func normalizeTitle(s string) string {
	s = strings.ToLower(s)
	s = removeAccents(s)

	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}
