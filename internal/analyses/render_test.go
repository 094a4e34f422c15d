package analyses

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"
)

func sampleReport() Report {
	summary := "Автоматический анализ."
	return Report{
		ID:        "report-1",
		Filename:  "contract.pdf",
		RiskLevel: RiskHigh,
		DangerousPhrases: []PhraseMatch{
			{Phrase: "штраф", Context: "взимается штраф в размере", Position: 120},
			{Phrase: "automatic renewal", Context: "subject to automatic renewal each year", Position: 340},
		},
		MissingSections: []string{"liability", "dispute_resolution"},
		AIAnalysis:      &summary,
		CreatedAt:       time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC),
	}
}

func TestRenderJSONRoundTrip(t *testing.T) {
	report := sampleReport()

	body, contentType, err := Render(report, FormatJSON)
	if err != nil {
		t.Fatalf("render json: %v", err)
	}
	if contentType != ContentTypeJSON {
		t.Fatalf("content type = %q", contentType)
	}

	var decoded Report
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatalf("decode exported json: %v", err)
	}
	if !reflect.DeepEqual(report, decoded) {
		t.Fatalf("round trip mismatch:\nwant %+v\ngot  %+v", report, decoded)
	}
}

func TestRenderHTML(t *testing.T) {
	report := sampleReport()

	body, contentType, err := Render(report, FormatHTML)
	if err != nil {
		t.Fatalf("render html: %v", err)
	}
	if contentType != ContentTypeHTML {
		t.Fatalf("content type = %q", contentType)
	}

	html := string(body)
	for _, want := range []string{
		"contract.pdf",
		"HIGH",
		"automatic renewal",
		"Ответственность сторон",
		"Порядок разрешения споров",
		"Автоматический анализ.",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("html export missing %q", want)
		}
	}
}

func TestRenderHTMLEscapesContent(t *testing.T) {
	report := sampleReport()
	report.Filename = `<script>alert("x")</script>.txt`

	body, _, err := Render(report, FormatHTML)
	if err != nil {
		t.Fatalf("render html: %v", err)
	}
	if strings.Contains(string(body), "<script>alert") {
		t.Fatal("filename was not escaped in html export")
	}
}

func TestRenderUnsupportedFormat(t *testing.T) {
	_, _, err := Render(sampleReport(), "pdf")
	if !errors.Is(err, ErrUnsupportedExportFormat) {
		t.Fatalf("expected ErrUnsupportedExportFormat, got %v", err)
	}
}
