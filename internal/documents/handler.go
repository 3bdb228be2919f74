package documents

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AlanJumabayev/SafeDocs/internal/extract"
	"github.com/AlanJumabayev/SafeDocs/internal/shared/server/respond"
)

const maxUploadSize = 10 << 20 // 10MB

// Declared content types the analyze endpoint accepts.
var allowedUploadTypes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/jpg":       true,
	"image/png":       true,
	"text/plain":      true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

// Handler wires HTTP handlers to the documents service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches document routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze", h.analyze)
	rg.GET("/documents", h.list)
	rg.GET("/documents/:id", h.get)
}

func (h *Handler) analyze(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType != "" && !allowedUploadTypes[contentType] {
		respond.Error(c, http.StatusBadRequest, "unsupported_type",
			"Неподдерживаемый тип файла. Поддерживаются: PDF, JPG, PNG, TXT, DOCX", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	if len(data) == 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is empty", nil)
		return
	}

	doc, err := h.Svc.Analyze(c.Request.Context(), fileHeader.Filename, contentType, data)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrInsufficientText):
			respond.Error(c, http.StatusBadRequest, "insufficient_text",
				"Слишком мало текста для анализа (минимум 50 символов)", nil)
		case errors.Is(err, extract.ErrUnsupportedType):
			respond.Error(c, http.StatusBadRequest, "unsupported_type",
				"Неподдерживаемый тип файла. Поддерживаются: PDF, JPG, PNG, TXT, DOCX", nil)
		case errors.Is(err, extract.ErrExtractionFailed):
			respond.Error(c, http.StatusBadRequest, "extraction_failed",
				"Не удалось извлечь текст из документа", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to analyze document", nil)
		}
		return
	}

	c.Set("documentId", doc.ID)
	respond.JSON(c, http.StatusOK, toResponse(doc))
}

func (h *Handler) get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "document id is required", nil)
		return
	}

	doc, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Документ не найден", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch document", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(doc))
}

func (h *Handler) list(c *gin.Context) {
	docs, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list documents", nil)
		return
	}

	summaries := make([]AnalysisSummary, 0, len(docs))
	for _, doc := range docs {
		summaries = append(summaries, toSummary(doc))
	}

	respond.JSON(c, http.StatusOK, gin.H{"documents": summaries})
}
