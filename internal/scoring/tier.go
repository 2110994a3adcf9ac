package scoring

// Intent tiers ordered from strongest to weakest buying signal.
const (
	IntentVeryHigh = "Very High"
	IntentHigh     = "High"
	IntentMedium   = "Medium"
	IntentLow      = "Low"
	IntentVeryLow  = "Very Low"
)

// IntentLevel maps a reranked score onto its tier. Thresholds are
// inclusive at the lower bound of each tier.
func IntentLevel(score int) string {
	switch {
	case score >= 80:
		return IntentVeryHigh
	case score >= 60:
		return IntentHigh
	case score >= 40:
		return IntentMedium
	case score >= 20:
		return IntentLow
	default:
		return IntentVeryLow
	}
}
