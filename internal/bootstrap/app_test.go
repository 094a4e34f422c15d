package bootstrap

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lawassist-backend/internal/analyses"
	"lawassist-backend/internal/shared/config"
)

func devConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		ObjectStoreType: "local",
		LocalStoreDir:   t.TempDir(),
		LLMProvider:     "none",
		Env:             "dev",
		MaxUploadBytes:  10 << 20,
	}
}

func TestBuildDevUsesMemoryRepos(t *testing.T) {
	app, err := Build(devConfig(t))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if app.DB != nil {
		t.Fatal("dev build without DATABASE_URL should not open a database")
	}
	if app.Router == nil {
		t.Fatal("router not wired")
	}
	if app.AnalysesService == nil || app.KeywordsService == nil {
		t.Fatal("services not wired")
	}
}

func TestHealthEndpoint(t *testing.T) {
	app, err := Build(devConfig(t))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), `"ok":true`) {
		t.Fatalf("unexpected health body: %s", resp.Body.String())
	}
}

func TestAnalyzeJourney(t *testing.T) {
	app, err := Build(devConfig(t))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	contract := `SERVICE AGREEMENT
Subject matter. Rights and obligations. Payment terms.
Duration. Liability of the parties. Dispute resolution. Details of the parties.
A penalty applies for late delivery.`

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "agreement.txt")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte(contract)); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("analyze: expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var report analyses.Report
	if err := json.Unmarshal(resp.Body.Bytes(), &report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if report.RiskLevel != analyses.RiskMedium {
		t.Fatalf("risk = %s, want MEDIUM (matches=%v missing=%v)",
			report.RiskLevel, report.DangerousPhrases, report.MissingSections)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/analyses/"+report.ID+"/export/html", nil)
	resp = httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("export: expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "agreement.txt") {
		t.Fatal("export missing filename")
	}

	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp = httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("metrics: expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "analysis_completed_total") {
		t.Fatalf("metrics output missing counters: %s", resp.Body.String())
	}
}
