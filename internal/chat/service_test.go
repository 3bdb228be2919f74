package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/AlanJumabayev/SafeDocs/internal/analysis"
	"github.com/AlanJumabayev/SafeDocs/internal/documents"
)

func newTestService(t *testing.T, docs ...documents.Analysis) (*Service, *MemoryRepo) {
	t.Helper()
	docRepo := documents.NewMemoryRepo()
	for _, doc := range docs {
		if err := docRepo.Create(context.Background(), doc); err != nil {
			t.Fatalf("seed document: %v", err)
		}
	}
	chatRepo := NewMemoryRepo()
	return NewService(docRepo, chatRepo), chatRepo
}

func TestAskAppendsExchange(t *testing.T) {
	doc := documents.Analysis{
		ID:            "doc-1",
		FileName:      "contract.pdf",
		OverallRating: analysis.RatingSafe,
	}
	svc, repo := newTestService(t, doc)

	exchange, err := svc.Ask(context.Background(), "doc-1", "Какие есть риски?")
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if exchange.ID == "" {
		t.Error("exchange should get an id")
	}
	if exchange.Answer != "В документе не найдено серьезных рисков." {
		t.Errorf("unexpected answer: %q", exchange.Answer)
	}
	if exchange.CreatedAt.IsZero() {
		t.Error("exchange should get a timestamp")
	}

	history, err := repo.ListByDocument(context.Background(), "doc-1")
	if err != nil {
		t.Fatalf("list history: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("want 1 exchange, got %d", len(history))
	}
	if history[0].Question != "Какие есть риски?" {
		t.Errorf("unexpected question: %q", history[0].Question)
	}
}

func TestAskUnknownDocument(t *testing.T) {
	svc, repo := newTestService(t)

	_, err := svc.Ask(context.Background(), "missing", "Какие есть риски?")
	if !errors.Is(err, documents.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}

	history, err := repo.ListByDocument(context.Background(), "missing")
	if err != nil {
		t.Fatalf("list history: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("failed question must not be recorded, got %d exchanges", len(history))
	}
}

func TestAskEmptyQuestion(t *testing.T) {
	doc := documents.Analysis{ID: "doc-1", OverallRating: analysis.RatingSafe}
	svc, _ := newTestService(t, doc)

	_, err := svc.Ask(context.Background(), "doc-1", "   ")
	if !errors.Is(err, documents.ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
}

func TestHistoryOrdered(t *testing.T) {
	doc := documents.Analysis{ID: "doc-1", OverallRating: analysis.RatingSafe}
	svc, _ := newTestService(t, doc)

	questions := []string{"Какие риски?", "Какие выгоды?", "Стоит ли подписывать?"}
	for _, q := range questions {
		if _, err := svc.Ask(context.Background(), "doc-1", q); err != nil {
			t.Fatalf("ask %q: %v", q, err)
		}
	}

	history, err := svc.History(context.Background(), "doc-1")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != len(questions) {
		t.Fatalf("want %d exchanges, got %d", len(questions), len(history))
	}
	for i, q := range questions {
		if history[i].Question != q {
			t.Errorf("exchange %d: want question %q, got %q", i, q, history[i].Question)
		}
	}
}

func TestHistoryUnknownDocument(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.History(context.Background(), "missing")
	if !errors.Is(err, documents.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
