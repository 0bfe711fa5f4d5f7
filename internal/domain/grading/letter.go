package grading

// letterBand maps a monotonic score floor to a letter grade and label.
type letterBand struct {
	floor  int
	letter string
	label  string
}

var letterBands = []letterBand{
	{97, "A+", "Outstanding"},
	{93, "A", "Excellent"},
	{90, "A-", "Excellent"},
	{87, "B+", "Good"},
	{83, "B", "Good"},
	{80, "B-", "Good"},
	{77, "C+", "Fair"},
	{73, "C", "Fair"},
	{70, "C-", "Fair"},
	{67, "D+", "Poor"},
	{63, "D", "Poor"},
	{60, "D-", "Poor"},
}

// LetterGrade maps a 0-100 score onto the full letter scale.
func LetterGrade(score int) (letter, label string) {
	for _, band := range letterBands {
		if score >= band.floor {
			return band.letter, band.label
		}
	}
	return "F", "Failing"
}

// SimpleGrade is the 4-bucket mapping used for roll-up summaries across
// many teams.
func SimpleGrade(score int) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	default:
		return "D"
	}
}

// ClassifyTrend buckets the score delta against the previous period.
func ClassifyTrend(delta int) TrendDirection {
	switch {
	case delta >= TrendDeltaThreshold:
		return TrendUp
	case delta <= -TrendDeltaThreshold:
		return TrendDown
	default:
		return TrendStable
	}
}

// TierFor buckets an included member's average readiness.
func TierFor(avgReadiness float64) RiskTier {
	switch {
	case avgReadiness < AtRiskBelow:
		return RiskAtRisk
	case avgReadiness < NeedsAttentionBelow:
		return RiskNeedsAttention
	default:
		return RiskHealthy
	}
}
