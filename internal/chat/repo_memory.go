package chat

import (
	"context"
	"sync"
)

// MemoryRepo stores chat history in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu         sync.RWMutex
	byDocument map[string][]Exchange
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byDocument: make(map[string][]Exchange)}
}

// Append adds an exchange to the document's history, creating it if needed.
func (r *MemoryRepo) Append(ctx context.Context, exchange Exchange) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byDocument[exchange.DocumentID] = append(r.byDocument[exchange.DocumentID], exchange)
	return nil
}

// ListByDocument returns the document's exchanges in append order.
func (r *MemoryRepo) ListByDocument(ctx context.Context, documentID string) ([]Exchange, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	history := r.byDocument[documentID]
	out := make([]Exchange, len(history))
	copy(out, history)
	return out, nil
}
