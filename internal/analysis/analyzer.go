package analysis

import (
	"time"

	"github.com/google/uuid"
)

// Stored excerpt cap, in runes. Longer texts are cut and marked; the full
// text is not retained past Analyze — callers that need it must have
// persisted the raw bytes beforehand.
const (
	excerptCap       = 2000
	truncationMarker = "..."
)

// Analyze runs the full rule pipeline over extracted text and packages the
// findings into an immutable Result keyed by a fresh identifier.
func Analyze(text, fileName string) Result {
	risks, benefits, unclear := Extract(text)
	rating := Rate(risks)

	return Result{
		ID:           uuid.NewString(),
		FileName:     fileName,
		TextExcerpt:  excerpt(text),
		Risks:        risks,
		Benefits:     benefits,
		UnclearTerms: unclear,
		Rating:       rating,
		Summary:      Summarize(fileName, risks, benefits, unclear, rating),
		ProcessedAt:  time.Now().UTC(),
	}
}

func excerpt(text string) string {
	runes := []rune(text)
	if len(runes) <= excerptCap {
		return text
	}
	return string(runes[:excerptCap]) + truncationMarker
}
