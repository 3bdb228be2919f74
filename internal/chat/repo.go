package chat

import "context"

// Repo defines persistence for per-document chat history. The history is
// an ordered, append-only sequence created lazily on first append.
type Repo interface {
	Append(ctx context.Context, exchange Exchange) error
	ListByDocument(ctx context.Context, documentID string) ([]Exchange, error)
}
