package analyses

// Risk thresholds. Fixed constants, not tunable at call time:
// HIGH when at least highPhraseThreshold dangerous phrases matched or at
// least highSectionThreshold required sections are missing; MEDIUM when
// there is at least one match or one missing section; LOW otherwise.
const (
	highPhraseThreshold  = 5
	highSectionThreshold = 3
	lowPhraseThreshold   = 1
)

// RiskFor derives the risk level from the match count and missing-section
// count. Pure and monotonic in both inputs.
func RiskFor(phraseCount, missingCount int) RiskLevel {
	switch {
	case phraseCount >= highPhraseThreshold || missingCount >= highSectionThreshold:
		return RiskHigh
	case phraseCount >= lowPhraseThreshold || missingCount >= 1:
		return RiskMedium
	default:
		return RiskLow
	}
}
