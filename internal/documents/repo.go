package documents

import "context"

// Repo defines persistence operations for analysed documents. Records are
// write-once: there is no update.
type Repo interface {
	Create(ctx context.Context, doc Analysis) error
	GetByID(ctx context.Context, id string) (Analysis, error)
	List(ctx context.Context) ([]Analysis, error)
	Count(ctx context.Context) (int, error)
}
