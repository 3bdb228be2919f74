package analysis

import "time"

// Document ratings, ordered from harmless to harmful.
const (
	RatingSafe           = "безопасен"
	RatingNeedsAttention = "требует внимания"
	RatingRisky          = "рискован"
)

// Risk severities and benefit values.
const (
	SeverityHigh   = "высокий"
	SeverityMedium = "средний"
	ValueHigh      = "высокая"
	ValueMedium    = "средняя"
)

// Risk is one detected risk indicator with its surrounding context.
type Risk struct {
	Type           string `json:"type"`
	Keyword        string `json:"keyword"`
	Context        string `json:"context"`
	Severity       string `json:"severity"`
	Recommendation string `json:"recommendation"`
}

// Benefit is one detected clause that favors the reader.
type Benefit struct {
	Type    string `json:"type"`
	Keyword string `json:"keyword"`
	Context string `json:"context"`
	Value   string `json:"value"`
}

// UnclearTerm is one ambiguous phrase that should be clarified before signing.
type UnclearTerm struct {
	Phrase      string `json:"phrase"`
	Context     string `json:"context"`
	Explanation string `json:"explanation"`
	Suggestion  string `json:"suggestion"`
}

// Result is the immutable outcome of analysing one document. Re-analysing
// the same text produces a new Result with a new ID.
type Result struct {
	ID           string
	FileName     string
	TextExcerpt  string
	Risks        []Risk
	Benefits     []Benefit
	UnclearTerms []UnclearTerm
	Rating       string
	Summary      string
	ProcessedAt  time.Time
}
