package chat

import (
	"context"
	"database/sql"
	"fmt"
)

// PGRepo persists chat history in Postgres.
type PGRepo struct {
	DB *sql.DB
}

func NewPGRepo(db *sql.DB) *PGRepo {
	return &PGRepo{DB: db}
}

func (r *PGRepo) Append(ctx context.Context, exchange Exchange) error {
	const q = `
		INSERT INTO chat_messages (id, document_id, question, answer, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.DB.ExecContext(ctx, q,
		exchange.ID,
		exchange.DocumentID,
		exchange.Question,
		exchange.Answer,
		exchange.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert chat message: %w", err)
	}
	return nil
}

func (r *PGRepo) ListByDocument(ctx context.Context, documentID string) ([]Exchange, error) {
	const q = `
		SELECT id, document_id, question, answer, created_at
		FROM chat_messages
		WHERE document_id = $1
		ORDER BY created_at ASC`
	rows, err := r.DB.QueryContext(ctx, q, documentID)
	if err != nil {
		return nil, fmt.Errorf("query chat messages: %w", err)
	}
	defer rows.Close()

	out := make([]Exchange, 0)
	for rows.Next() {
		var e Exchange
		if err := rows.Scan(&e.ID, &e.DocumentID, &e.Question, &e.Answer, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan chat message: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate chat messages: %w", err)
	}
	return out, nil
}
