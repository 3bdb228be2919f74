package chat

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AlanJumabayev/SafeDocs/internal/documents"
	"github.com/AlanJumabayev/SafeDocs/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the chat service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches chat routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/chat", h.ask)
	rg.GET("/chat/:id/history", h.history)
}

type askRequest struct {
	DocumentID string `json:"document_id" binding:"required"`
	Question   string `json:"question" binding:"required"`
}

type askResponse struct {
	Answer     string `json:"answer"`
	DocumentID string `json:"document_id"`
}

type historyItem struct {
	ID        string `json:"id"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	CreatedAt string `json:"created_at"`
}

func (h *Handler) ask(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "document_id and question are required", nil)
		return
	}

	exchange, err := h.Svc.Ask(c.Request.Context(), req.DocumentID, req.Question)
	if err != nil {
		switch {
		case errors.Is(err, documents.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Документ не найден", nil)
		case errors.Is(err, documents.ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to answer question", nil)
		}
		return
	}

	c.Set("documentId", exchange.DocumentID)
	respond.JSON(c, http.StatusOK, askResponse{
		Answer:     exchange.Answer,
		DocumentID: exchange.DocumentID,
	})
}

func (h *Handler) history(c *gin.Context) {
	id := c.Param("id")

	history, err := h.Svc.History(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, documents.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Документ не найден", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch chat history", nil)
		}
		return
	}

	items := make([]historyItem, 0, len(history))
	for _, e := range history {
		items = append(items, historyItem{
			ID:        e.ID,
			Question:  e.Question,
			Answer:    e.Answer,
			CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"document_id": id,
		"messages":    items,
	})
}
