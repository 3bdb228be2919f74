package documents

import (
	"bytes"
	"context"
	"fmt"
	"unicode"

	"github.com/AlanJumabayev/SafeDocs/internal/analysis"
	"github.com/AlanJumabayev/SafeDocs/internal/extract"
	"github.com/AlanJumabayev/SafeDocs/internal/shared/storage/object"
	"github.com/AlanJumabayev/SafeDocs/internal/shared/telemetry"
)

// Extracted text below this many non-whitespace characters is rejected
// before analysis.
const minTextChars = 50

// Service contains the upload-to-analysis business logic.
type Service struct {
	Store     object.ObjectStore
	Repo      Repo
	Extractor *extract.Extractor
}

// Analyze persists the raw upload, extracts its text, runs the rule
// pipeline and stores the resulting record. The raw bytes are kept only in
// object storage; the record itself retains a capped excerpt.
func (s *Service) Analyze(ctx context.Context, fileName, contentType string, data []byte) (Analysis, error) {
	if fileName == "" {
		return Analysis{}, ErrInvalidInput
	}
	if len(data) == 0 {
		return Analysis{}, fmt.Errorf("%w: empty file", ErrInvalidInput)
	}

	storageKey, _, sniffedType, err := s.Store.Save(ctx, fileName, bytes.NewReader(data))
	if err != nil {
		return Analysis{}, fmt.Errorf("save upload: %w", err)
	}
	if contentType == "" {
		contentType = sniffedType
	}

	text, err := s.Extractor.FromBytes(ctx, data, contentType, fileName)
	if err != nil {
		return Analysis{}, err
	}
	if countNonWhitespace(text) < minTextChars {
		return Analysis{}, ErrInsufficientText
	}

	result := analysis.Analyze(text, fileName)
	doc := Analysis{
		ID:            result.ID,
		FileName:      fileName,
		MimeType:      contentType,
		SizeBytes:     int64(len(data)),
		StorageKey:    storageKey,
		TextExcerpt:   result.TextExcerpt,
		Risks:         result.Risks,
		Benefits:      result.Benefits,
		UnclearTerms:  result.UnclearTerms,
		OverallRating: result.Rating,
		Summary:       result.Summary,
		ProcessedAt:   result.ProcessedAt,
	}

	if err := s.Repo.Create(ctx, doc); err != nil {
		return Analysis{}, fmt.Errorf("store analysis: %w", err)
	}

	telemetry.Info("document.analyzed", map[string]any{
		"document_id": doc.ID,
		"file_name":   doc.FileName,
		"rating":      doc.OverallRating,
		"risks":       len(doc.Risks),
		"benefits":    len(doc.Benefits),
		"unclear":     len(doc.UnclearTerms),
	})

	return doc, nil
}

// Get returns a stored analysis record by document id.
func (s *Service) Get(ctx context.Context, id string) (Analysis, error) {
	if id == "" {
		return Analysis{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, id)
}

// List returns all stored analysis records, newest first.
func (s *Service) List(ctx context.Context) ([]Analysis, error) {
	return s.Repo.List(ctx)
}

// Count returns the number of stored analysis records.
func (s *Service) Count(ctx context.Context) (int, error) {
	return s.Repo.Count(ctx)
}

func countNonWhitespace(text string) int {
	n := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}
