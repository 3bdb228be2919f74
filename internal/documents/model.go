package documents

import (
	"time"

	"github.com/AlanJumabayev/SafeDocs/internal/analysis"
)

// Analysis is the stored, write-once result of analysing one uploaded
// document. It is never updated in place; re-analysing the same bytes
// produces a new record under a new id.
type Analysis struct {
	ID            string
	FileName      string
	MimeType      string
	SizeBytes     int64
	StorageKey    string
	TextExcerpt   string
	Risks         []analysis.Risk
	Benefits      []analysis.Benefit
	UnclearTerms  []analysis.UnclearTerm
	OverallRating string
	Summary       string
	ProcessedAt   time.Time
}
