package chat

import "time"

// Exchange is one question/answer pair in a document's chat history.
// Exchanges are append-only: never edited, never removed.
type Exchange struct {
	ID         string
	DocumentID string
	Question   string
	Answer     string
	CreatedAt  time.Time
}
