package analyses

import (
	"bytes"
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"

	"lawassist-backend/internal/extract"
	"lawassist-backend/internal/keywords"
	"lawassist-backend/internal/llm"
	"lawassist-backend/internal/shared/metrics"
	"lawassist-backend/internal/shared/storage/object"
	"lawassist-backend/internal/shared/telemetry"
)

// uploadsNamespace is where original contract files land in the object store.
const uploadsNamespace = "contracts"

// Service contains business logic for contract analyses.
type Service struct {
	Repo     Repo
	Keywords *keywords.Service
	Store    object.ObjectStore
	LLM      llm.Client
}

// Analyze runs the full pipeline over raw file bytes: extract, scan, check
// sections, aggregate risk, optionally augment with the LLM, then persist the
// report to history before returning it. Nothing is persisted on failure.
func (s *Service) Analyze(ctx context.Context, fileName string, data []byte) (Report, error) {
	started := time.Now()
	metrics.IncAnalysisStarted()

	extractStarted := time.Now()
	text, err := extract.Text(data, fileName)
	if err != nil {
		metrics.IncAnalysisFailed()
		return Report{}, err
	}
	metrics.ObserveExtractionDurationMs(float64(time.Since(extractStarted).Microseconds()) / 1000.0)

	// Snapshot the keyword set once, so a concurrent edit cannot split
	// this scan across two keyword lists.
	phrases, err := s.Keywords.ActivePhrases(ctx)
	if err != nil {
		metrics.IncAnalysisFailed()
		return Report{}, err
	}

	matches := ScanPhrases(text, phrases)
	missing := MissingSections(text)
	riskLevel := RiskFor(len(matches), len(missing))

	report := Report{
		ID:               uuid.NewString(),
		Filename:         fileName,
		RiskLevel:        riskLevel,
		DangerousPhrases: matches,
		MissingSections:  missing,
		CreatedAt:        time.Now().UTC(),
	}

	if summary, ok := s.aiAnalyze(ctx, report.ID, text); ok {
		report.AIAnalysis = &summary
	}

	report.StorageKey = s.storeOriginal(ctx, report.ID, fileName, data)

	if err := s.Repo.Create(ctx, report); err != nil {
		metrics.IncAnalysisFailed()
		return Report{}, err
	}

	metrics.IncAnalysisCompleted()
	metrics.IncRiskLevel(string(riskLevel))
	metrics.ObserveAnalysisDurationMs(float64(time.Since(started).Microseconds()) / 1000.0)

	telemetry.Info("analysis.complete", map[string]any{
		"report_id":        report.ID,
		"filename":         fileName,
		"risk_level":       string(riskLevel),
		"phrase_matches":   len(matches),
		"missing_sections": len(missing),
		"ai_analysis":      report.AIAnalysis != nil,
	})

	return report, nil
}

// aiAnalyze runs the optional LLM pass. It is best-effort: any failure is
// logged and the report proceeds without the field.
func (s *Service) aiAnalyze(ctx context.Context, reportID, text string) (string, bool) {
	if s.LLM == nil {
		return "", false
	}
	summary, err := s.LLM.AnalyzeContract(ctx, text)
	if err != nil {
		if errors.Is(err, llm.ErrNotImplemented) {
			return "", false
		}
		telemetry.Error("analysis.ai_failed", map[string]any{
			"report_id": reportID,
			"err":       err.Error(),
		})
		return "", false
	}
	return summary, true
}

// storeOriginal keeps the uploaded file alongside its report. Best-effort:
// the report stays authoritative even when the object store is unavailable.
func (s *Service) storeOriginal(ctx context.Context, reportID, fileName string, data []byte) string {
	if s.Store == nil {
		return ""
	}
	storageKey, _, _, err := s.Store.Save(ctx, uploadsNamespace, fileName, bytes.NewReader(data))
	if err != nil {
		telemetry.Error("analysis.store_failed", map[string]any{
			"report_id": reportID,
			"filename":  fileName,
			"err":       err.Error(),
		})
		return ""
	}
	return storageKey
}

// Get fetches one stored report.
func (s *Service) Get(ctx context.Context, id string) (Report, error) {
	return s.Repo.GetByID(ctx, id)
}

// defaultHistoryLimit caps history listings when the caller does not ask
// for a specific page size.
const defaultHistoryLimit = 50

// History returns summaries of recent reports, newest first.
func (s *Service) History(ctx context.Context, limit int) ([]Summary, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	reports, err := s.Repo.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]Summary, 0, len(reports))
	for _, report := range reports {
		out = append(out, toSummary(report))
	}
	return out, nil
}

// Export renders a stored report into the requested format.
func (s *Service) Export(ctx context.Context, id, format string) ([]byte, string, error) {
	report, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	return Render(report, format)
}

// OpenOriginal streams the stored original file for a report.
func (s *Service) OpenOriginal(ctx context.Context, id string) (io.ReadCloser, error) {
	report, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if report.StorageKey == "" {
		return nil, ErrNotFound
	}
	return s.Store.Open(ctx, report.StorageKey)
}
