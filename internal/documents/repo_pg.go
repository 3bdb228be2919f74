package documents

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/AlanJumabayev/SafeDocs/internal/analysis"
)

// PGRepo implements Repo using Postgres. Findings are stored as JSONB.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new analysis record.
func (r *PGRepo) Create(ctx context.Context, doc Analysis) error {
	const query = `
INSERT INTO documents (
    id,
    file_name,
    mime_type,
    size_bytes,
    storage_key,
    text_excerpt,
    risks,
    benefits,
    unclear_terms,
    overall_rating,
    summary,
    processed_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	risks, err := json.Marshal(doc.Risks)
	if err != nil {
		return fmt.Errorf("marshal risks: %w", err)
	}
	benefits, err := json.Marshal(doc.Benefits)
	if err != nil {
		return fmt.Errorf("marshal benefits: %w", err)
	}
	unclear, err := json.Marshal(doc.UnclearTerms)
	if err != nil {
		return fmt.Errorf("marshal unclear terms: %w", err)
	}

	var storageKey sql.NullString
	if doc.StorageKey != "" {
		storageKey = sql.NullString{String: doc.StorageKey, Valid: true}
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		doc.ID,
		doc.FileName,
		doc.MimeType,
		doc.SizeBytes,
		storageKey,
		doc.TextExcerpt,
		risks,
		benefits,
		unclear,
		doc.OverallRating,
		doc.Summary,
		doc.ProcessedAt,
	)
	return err
}

// GetByID returns an analysis record by its id.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Analysis, error) {
	const query = `
SELECT id, file_name, mime_type, size_bytes, storage_key, text_excerpt, risks, benefits, unclear_terms, overall_rating, summary, processed_at
FROM documents
WHERE id = $1`

	row := r.DB.QueryRowContext(ctx, query, id)
	doc, err := scanAnalysis(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Analysis{}, ErrNotFound
		}
		return Analysis{}, err
	}
	return doc, nil
}

// List returns all analysis records, newest first.
func (r *PGRepo) List(ctx context.Context) ([]Analysis, error) {
	const query = `
SELECT id, file_name, mime_type, size_bytes, storage_key, text_excerpt, risks, benefits, unclear_terms, overall_rating, summary, processed_at
FROM documents
ORDER BY processed_at DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := []Analysis{}
	for rows.Next() {
		doc, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// Count returns the number of stored analysis records.
func (r *PGRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM documents`).Scan(&count)
	return count, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row rowScanner) (Analysis, error) {
	var doc Analysis
	var storageKey sql.NullString
	var risks, benefits, unclear []byte

	err := row.Scan(
		&doc.ID,
		&doc.FileName,
		&doc.MimeType,
		&doc.SizeBytes,
		&storageKey,
		&doc.TextExcerpt,
		&risks,
		&benefits,
		&unclear,
		&doc.OverallRating,
		&doc.Summary,
		&doc.ProcessedAt,
	)
	if err != nil {
		return Analysis{}, err
	}
	if storageKey.Valid {
		doc.StorageKey = storageKey.String
	}
	doc.Risks = []analysis.Risk{}
	doc.Benefits = []analysis.Benefit{}
	doc.UnclearTerms = []analysis.UnclearTerm{}
	if len(risks) > 0 {
		if err := json.Unmarshal(risks, &doc.Risks); err != nil {
			return Analysis{}, fmt.Errorf("unmarshal risks: %w", err)
		}
	}
	if len(benefits) > 0 {
		if err := json.Unmarshal(benefits, &doc.Benefits); err != nil {
			return Analysis{}, fmt.Errorf("unmarshal benefits: %w", err)
		}
	}
	if len(unclear) > 0 {
		if err := json.Unmarshal(unclear, &doc.UnclearTerms); err != nil {
			return Analysis{}, fmt.Errorf("unmarshal unclear terms: %w", err)
		}
	}
	return doc, nil
}
