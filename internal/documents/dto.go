package documents

import (
	"time"

	"github.com/AlanJumabayev/SafeDocs/internal/analysis"
)

// AnalysisResponse is the outward-facing representation of a full analysis.
type AnalysisResponse struct {
	DocumentID    string                 `json:"document_id"`
	Filename      string                 `json:"filename"`
	TextExcerpt   string                 `json:"text_excerpt"`
	Risks         []analysis.Risk        `json:"risks"`
	Benefits      []analysis.Benefit     `json:"benefits"`
	UnclearTerms  []analysis.UnclearTerm `json:"unclear_terms"`
	OverallRating string                 `json:"overall_rating"`
	Summary       string                 `json:"summary"`
	ProcessedAt   time.Time              `json:"processed_at"`
}

// AnalysisSummary is the list-view representation of an analysis.
type AnalysisSummary struct {
	ID            string    `json:"id"`
	Filename      string    `json:"filename"`
	OverallRating string    `json:"overall_rating"`
	ProcessedAt   time.Time `json:"processed_at"`
	RisksCount    int       `json:"risks_count"`
	BenefitsCount int       `json:"benefits_count"`
}

func toResponse(doc Analysis) AnalysisResponse {
	resp := AnalysisResponse{
		DocumentID:    doc.ID,
		Filename:      doc.FileName,
		TextExcerpt:   doc.TextExcerpt,
		Risks:         doc.Risks,
		Benefits:      doc.Benefits,
		UnclearTerms:  doc.UnclearTerms,
		OverallRating: doc.OverallRating,
		Summary:       doc.Summary,
		ProcessedAt:   doc.ProcessedAt,
	}
	// Absence of findings renders as [] on the wire, not null.
	if resp.Risks == nil {
		resp.Risks = []analysis.Risk{}
	}
	if resp.Benefits == nil {
		resp.Benefits = []analysis.Benefit{}
	}
	if resp.UnclearTerms == nil {
		resp.UnclearTerms = []analysis.UnclearTerm{}
	}
	return resp
}

func toSummary(doc Analysis) AnalysisSummary {
	return AnalysisSummary{
		ID:            doc.ID,
		Filename:      doc.FileName,
		OverallRating: doc.OverallRating,
		ProcessedAt:   doc.ProcessedAt,
		RisksCount:    len(doc.Risks),
		BenefitsCount: len(doc.Benefits),
	}
}
