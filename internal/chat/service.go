package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/AlanJumabayev/SafeDocs/internal/documents"
	"github.com/AlanJumabayev/SafeDocs/internal/shared/telemetry"
)

// Service answers questions about analyzed documents and records the
// conversation history.
type Service struct {
	Docs documents.Repo
	Repo Repo
}

func NewService(docs documents.Repo, repo Repo) *Service {
	return &Service{Docs: docs, Repo: repo}
}

// Ask answers a question about the document and appends the exchange to the
// chat history. The document must have been analyzed before.
func (s *Service) Ask(ctx context.Context, documentID, question string) (Exchange, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return Exchange{}, fmt.Errorf("%w: empty question", documents.ErrInvalidInput)
	}

	doc, err := s.Docs.GetByID(ctx, documentID)
	if err != nil {
		return Exchange{}, err
	}

	exchange := Exchange{
		ID:         uuid.NewString(),
		DocumentID: doc.ID,
		Question:   question,
		Answer:     Respond(doc, question),
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.Repo.Append(ctx, exchange); err != nil {
		return Exchange{}, fmt.Errorf("append exchange: %w", err)
	}

	telemetry.Info("chat.answered", map[string]any{
		"documentId": doc.ID,
		"exchangeId": exchange.ID,
	})
	return exchange, nil
}

// History returns the full chat history for an analyzed document.
func (s *Service) History(ctx context.Context, documentID string) ([]Exchange, error) {
	if _, err := s.Docs.GetByID(ctx, documentID); err != nil {
		return nil, err
	}
	return s.Repo.ListByDocument(ctx, documentID)
}
