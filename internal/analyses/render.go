package analyses

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
)

const (
	FormatJSON = "json"
	FormatHTML = "html"

	ContentTypeJSON = "application/json; charset=utf-8"
	ContentTypeHTML = "text/html; charset=utf-8"
)

//go:embed report.html.tmpl
var reportTemplateText string

var reportTemplate = template.Must(template.New("report").Parse(reportTemplateText))

var riskColors = map[RiskLevel]template.CSS{
	RiskLow:    "#22c55e",
	RiskMedium: "#f59e0b",
	RiskHigh:   "#ef4444",
}

type reportTemplateData struct {
	Report        Report
	RiskColor     template.CSS
	MissingLabels []string
}

// Render projects a stored report into the requested export format and
// returns the encoded bytes with their content type. It never re-runs
// analysis or mutates the report.
func Render(report Report, format string) ([]byte, string, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return nil, "", fmt.Errorf("encode report: %w", err)
		}
		return data, ContentTypeJSON, nil
	case FormatHTML:
		labels := make([]string, 0, len(report.MissingSections))
		for _, id := range report.MissingSections {
			labels = append(labels, SectionLabel(id))
		}
		var buf bytes.Buffer
		err := reportTemplate.Execute(&buf, reportTemplateData{
			Report:        report,
			RiskColor:     riskColors[report.RiskLevel],
			MissingLabels: labels,
		})
		if err != nil {
			return nil, "", fmt.Errorf("render report: %w", err)
		}
		return buf.Bytes(), ContentTypeHTML, nil
	default:
		return nil, "", fmt.Errorf("%w: %q (allowed: json, html)", ErrUnsupportedExportFormat, format)
	}
}
