package chat_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/AlanJumabayev/SafeDocs/internal/bootstrap"
	"github.com/AlanJumabayev/SafeDocs/internal/shared/config"
)

const riskyContract = "Штраф за просрочку составляет 10% ежедневно. " +
	"Исполнитель несет полную ответственность за убытки заказчика по настоящему договору."

func buildTestApp(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		LocalStoreDir:   t.TempDir(),
		Env:             "dev",
		ObjectStoreType: "local",
	}

	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app.Router
}

func analyzeDocument(t *testing.T, router *gin.Engine) string {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="договор.txt"`)
	header.Set("Content-Type", "text/plain")
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write([]byte(riskyContract)); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("analyze: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var created struct {
		DocumentID string `json:"document_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode analyze response: %v", err)
	}
	if created.DocumentID == "" {
		t.Fatal("expected document_id")
	}
	return created.DocumentID
}

func askQuestion(t *testing.T, router *gin.Engine, documentID, question string) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(map[string]string{
		"document_id": documentID,
		"question":    question,
	})
	if err != nil {
		t.Fatalf("marshal question: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestChatAboutRisks(t *testing.T) {
	router := buildTestApp(t)
	docID := analyzeDocument(t, router)

	resp := askQuestion(t, router, docID, "Какие есть риски?")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var answer struct {
		Answer     string `json:"answer"`
		DocumentID string `json:"document_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&answer); err != nil {
		t.Fatalf("decode chat response: %v", err)
	}
	if answer.DocumentID != docID {
		t.Fatalf("expected document_id %s, got %s", docID, answer.DocumentID)
	}
	if !bytes.Contains([]byte(answer.Answer), []byte("штрафные санкции")) {
		t.Fatalf("expected the answer to mention the found risk: %q", answer.Answer)
	}
}

func TestChatUnknownDocument(t *testing.T) {
	router := buildTestApp(t)

	resp := askQuestion(t, router, "does-not-exist", "Какие есть риски?")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestChatValidation(t *testing.T) {
	router := buildTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader([]byte(`{"document_id":""}`)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestChatHistory(t *testing.T) {
	router := buildTestApp(t)
	docID := analyzeDocument(t, router)

	questions := []string{"Какие есть риски?", "Стоит ли подписывать?"}
	for _, q := range questions {
		resp := askQuestion(t, router, docID, q)
		if resp.Code != http.StatusOK {
			t.Fatalf("ask %q: expected 200, got %d", q, resp.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/chat/%s/history", docID), nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var history struct {
		DocumentID string `json:"document_id"`
		Messages   []struct {
			ID       string `json:"id"`
			Question string `json:"question"`
			Answer   string `json:"answer"`
		} `json:"messages"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&history); err != nil {
		t.Fatalf("decode history response: %v", err)
	}
	if history.DocumentID != docID {
		t.Fatalf("expected document_id %s, got %s", docID, history.DocumentID)
	}
	if len(history.Messages) != len(questions) {
		t.Fatalf("expected %d messages, got %d", len(questions), len(history.Messages))
	}
	for i, q := range questions {
		if history.Messages[i].Question != q {
			t.Fatalf("message %d: expected question %q, got %q", i, q, history.Messages[i].Question)
		}
		if history.Messages[i].Answer == "" {
			t.Fatalf("message %d: expected an answer", i)
		}
	}
}

func TestChatHistoryUnknownDocument(t *testing.T) {
	router := buildTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/chat/does-not-exist/history", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}
