package analysis

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Context window bounds around a match, in bytes.
const (
	contextBefore = 100
	contextAfter  = 200
)

// Extract scans text for risk indicators, beneficial clauses and ambiguous
// phrasing. Matching is case-insensitive on a lower-cased copy; context
// windows are cut from the original-case text around the first occurrence
// of the trigger. Extract is pure: identical input yields identical
// findings, and empty input yields three empty slices.
func Extract(text string) (risks []Risk, benefits []Benefit, unclear []UnclearTerm) {
	folded := foldText(text)

	for _, group := range riskPatterns {
		for _, keyword := range group.keywords {
			idx := strings.Index(folded.lower, keyword)
			if idx < 0 {
				continue
			}
			risks = append(risks, Risk{
				Type:           group.subtype,
				Keyword:        keyword,
				Context:        contextWindow(text, folded.sourceOffset(idx)),
				Severity:       riskSeverity(keyword),
				Recommendation: fmt.Sprintf("Рекомендуется пересмотреть условия, связанные с '%s'", keyword),
			})
			break // one finding per subtype
		}
	}

	for _, group := range benefitPatterns {
		for _, keyword := range group.keywords {
			idx := strings.Index(folded.lower, keyword)
			if idx < 0 {
				continue
			}
			benefits = append(benefits, Benefit{
				Type:    group.subtype,
				Keyword: keyword,
				Context: contextWindow(text, folded.sourceOffset(idx)),
				Value:   benefitValue(keyword),
			})
			break
		}
	}

	for _, phrase := range unclearPhrases {
		idx := strings.Index(folded.lower, phrase)
		if idx < 0 {
			continue
		}
		unclear = append(unclear, UnclearTerm{
			Phrase:      phrase,
			Context:     contextWindow(text, folded.sourceOffset(idx)),
			Explanation: fmt.Sprintf("Фраза '%s' требует уточнения конкретных условий", phrase),
			Suggestion:  "Рекомендуется запросить детализацию данного пункта",
		})
	}

	return risks, benefits, unclear
}

// foldedText is a lower-cased copy of a source string plus a map from every
// byte offset in the copy back to the originating byte offset. Lower-casing
// can change a rune's encoded width (İ shrinks, Ⱥ grows), so match indexes
// found in the copy must not be used to slice the source directly.
type foldedText struct {
	lower   string
	offsets []int
}

func foldText(text string) foldedText {
	var b strings.Builder
	b.Grow(len(text))
	offsets := make([]int, 0, len(text)+1)
	for i, r := range text {
		low := unicode.ToLower(r)
		width := utf8.RuneLen(low)
		if width < 0 {
			low = r
			width = utf8.RuneLen(r)
		}
		for j := 0; j < width; j++ {
			offsets = append(offsets, i)
		}
		b.WriteRune(low)
	}
	offsets = append(offsets, len(text))
	return foldedText{lower: b.String(), offsets: offsets}
}

// sourceOffset maps a byte offset in the lower-cased copy to the byte
// offset of the same rune in the source string.
func (f foldedText) sourceOffset(idx int) int {
	if idx < 0 {
		return 0
	}
	if idx >= len(f.offsets) {
		return f.offsets[len(f.offsets)-1]
	}
	return f.offsets[idx]
}

func riskSeverity(keyword string) string {
	for _, fragment := range highSeverityFragments {
		if strings.Contains(keyword, fragment) {
			return SeverityHigh
		}
	}
	return SeverityMedium
}

func benefitValue(keyword string) string {
	if strings.Contains(keyword, highValueFragment) {
		return ValueHigh
	}
	return ValueMedium
}

// contextWindow returns up to contextBefore bytes ahead of the match and
// contextAfter bytes after it, shrunk inward to rune boundaries so Cyrillic
// text is never cut mid-rune, then trimmed of surrounding whitespace.
func contextWindow(text string, matchStart int) string {
	if matchStart < 0 {
		matchStart = 0
	}
	if matchStart > len(text) {
		matchStart = len(text)
	}
	start := matchStart - contextBefore
	if start < 0 {
		start = 0
	}
	end := matchStart + contextAfter
	if end > len(text) {
		end = len(text)
	}
	for start < len(text) && !utf8.RuneStart(text[start]) {
		start++
	}
	for end > start && end < len(text) && !utf8.RuneStart(text[end]) {
		end--
	}
	return strings.TrimSpace(text[start:end])
}
