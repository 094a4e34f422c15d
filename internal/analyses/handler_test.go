package analyses

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"lawassist-backend/internal/llm"
)

func newAnalysisRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc, _ := newTestService(t, llm.PlaceholderClient{})
	handler := NewHandler(svc, 10<<20)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)
	return router
}

func multipartUpload(t *testing.T, fieldName, fileName string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(fieldName, fileName)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, writer.FormDataContentType()
}

func TestHandlerAnalyzeAndFetch(t *testing.T) {
	router := newAnalysisRouter(t)

	body, contentType := multipartUpload(t, "file", "contract.txt", []byte(englishContract))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var report Report
	if err := json.Unmarshal(resp.Body.Bytes(), &report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if report.RiskLevel != RiskMedium || len(report.DangerousPhrases) != 2 {
		t.Fatalf("unexpected report: %+v", report)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/analyses/"+report.ID, nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("fetch report: expected 200, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/analyses", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("history: expected 200, got %d", resp.Code)
	}
	var summaries []Summary
	if err := json.Unmarshal(resp.Body.Bytes(), &summaries); err != nil {
		t.Fatalf("decode history: %v", err)
	}
	if len(summaries) != 1 || summaries[0].ID != report.ID {
		t.Fatalf("unexpected history: %+v", summaries)
	}
}

func TestHandlerAnalyzeMissingFile(t *testing.T) {
	router := newAnalysisRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses", strings.NewReader("no file"))
	req.Header.Set("Content-Type", "text/plain")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestHandlerAnalyzeUnsupportedFormat(t *testing.T) {
	router := newAnalysisRouter(t)

	body, contentType := multipartUpload(t, "file", "table.xlsx", []byte("cells"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), "unsupported_format") {
		t.Fatalf("expected unsupported_format code, got %s", resp.Body.String())
	}
}

func TestHandlerAnalyzeCorruptDocument(t *testing.T) {
	router := newAnalysisRouter(t)

	body, contentType := multipartUpload(t, "file", "broken.pdf", []byte("%PDF-1.4 garbage"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), "corrupt_document") {
		t.Fatalf("expected corrupt_document code, got %s", resp.Body.String())
	}
}

func TestHandlerExportFormats(t *testing.T) {
	router := newAnalysisRouter(t)

	body, contentType := multipartUpload(t, "file", "contract.txt", []byte(englishContract))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("analyze: expected 201, got %d", resp.Code)
	}
	var report Report
	if err := json.Unmarshal(resp.Body.Bytes(), &report); err != nil {
		t.Fatalf("decode report: %v", err)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/analyses/"+report.ID+"/export/json", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK || !strings.HasPrefix(resp.Header().Get("Content-Type"), "application/json") {
		t.Fatalf("json export: code=%d type=%s", resp.Code, resp.Header().Get("Content-Type"))
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/analyses/"+report.ID+"/export/html", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK || !strings.HasPrefix(resp.Header().Get("Content-Type"), "text/html") {
		t.Fatalf("html export: code=%d type=%s", resp.Code, resp.Header().Get("Content-Type"))
	}
	if !strings.Contains(resp.Body.String(), "contract.txt") {
		t.Fatal("html export missing filename")
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/analyses/"+report.ID+"/export/xml", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("xml export: expected 400, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/analyses/unknown/export/json", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("unknown report export: expected 404, got %d", resp.Code)
	}
}

func TestHandlerHistoryBadLimit(t *testing.T) {
	router := newAnalysisRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analyses?limit=abc", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}
