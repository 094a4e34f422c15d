package analyses

import "time"

// RiskLevel is the coarse three-tier contract risk classification.
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// Rank returns the level's position in the LOW < MEDIUM < HIGH order.
func (r RiskLevel) Rank() int {
	switch r {
	case RiskHigh:
		return 2
	case RiskMedium:
		return 1
	default:
		return 0
	}
}

// PhraseMatch is one occurrence of a dangerous phrase, with the surrounding
// text shown to the user. Position is the rune offset of the occurrence.
type PhraseMatch struct {
	Phrase   string `json:"phrase"`
	Context  string `json:"context"`
	Position int    `json:"position"`
}

// Report is one persisted analysis result. A report is immutable after
// creation; re-analyzing the same file produces a new report with a new id.
type Report struct {
	ID               string        `json:"id"`
	Filename         string        `json:"filename"`
	RiskLevel        RiskLevel     `json:"riskLevel"`
	DangerousPhrases []PhraseMatch `json:"dangerousPhrases"`
	MissingSections  []string      `json:"missingSections"`
	AIAnalysis       *string       `json:"aiAnalysis,omitempty"`
	StorageKey       string        `json:"storageKey,omitempty"`
	CreatedAt        time.Time     `json:"createdAt"`
}

// Summary is the outward-facing history entry for a report.
type Summary struct {
	ID            string    `json:"id"`
	Filename      string    `json:"filename"`
	RiskLevel     RiskLevel `json:"riskLevel"`
	PhraseCount   int       `json:"phraseCount"`
	MissingCount  int       `json:"missingCount"`
	CreatedAt     time.Time `json:"createdAt"`
	HasAIAnalysis bool      `json:"hasAiAnalysis"`
}

func toSummary(r Report) Summary {
	return Summary{
		ID:            r.ID,
		Filename:      r.Filename,
		RiskLevel:     r.RiskLevel,
		PhraseCount:   len(r.DangerousPhrases),
		MissingCount:  len(r.MissingSections),
		CreatedAt:     r.CreatedAt,
		HasAIAnalysis: r.AIAnalysis != nil,
	}
}
