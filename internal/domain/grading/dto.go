package grading

// MinCheckinDaysThreshold is the onboarding data-sufficiency floor: members
// with fewer actual check-in days in the period are tagged onboarding and
// excluded from averages and risk tallies, but still counted in MemberCount.
const MinCheckinDaysThreshold = 3

// Score weighting. Fixed business constants, not per-request tunables.
const (
	ReadinessWeight  = 0.60
	ComplianceWeight = 0.40
)

// Trend classification bounds.
const TrendDeltaThreshold = 3

// Risk tiers on a member's individual average readiness.
const (
	AtRiskBelow         = 60.0
	NeedsAttentionBelow = 70.0
)

type TrendDirection string

const (
	TrendUp     TrendDirection = "up"
	TrendDown   TrendDirection = "down"
	TrendStable TrendDirection = "stable"
)

type RiskTier string

const (
	RiskHealthy        RiskTier = "healthy"
	RiskNeedsAttention RiskTier = "needs_attention"
	RiskAtRisk         RiskTier = "at_risk"
	RiskOnboarding     RiskTier = "onboarding"
)

// WellnessMeans are the per-input averages over a member's check-ins in the
// period, on the raw 1-10 scale (stress not inverted).
type WellnessMeans struct {
	SleepQuality float64 `json:"sleep_quality"`
	EnergyLevel  float64 `json:"energy_level"`
	Mood         float64 `json:"mood"`
	StressLevel  float64 `json:"stress_level"`
}

// MemberBreakdown is the plain per-member data structure handed to external
// consumers such as the AI-summary feature.
type MemberBreakdown struct {
	MemberID          string        `json:"member_id"`
	Name              string        `json:"name"`
	AvgReadiness      float64       `json:"avg_readiness"`
	CheckinDays       int           `json:"checkin_days"`
	UnexcusedAbsences int           `json:"unexcused_absences"`
	RiskTier          RiskTier      `json:"risk_tier"`
	Onboarding        bool          `json:"onboarding"`
	Wellness          WellnessMeans `json:"wellness"`
}

type Trend struct {
	Direction     TrendDirection `json:"direction"`
	Delta         int            `json:"delta"`
	PreviousScore int            `json:"previous_score"`
}

type TeamGrade struct {
	TeamID     string `json:"team_id"`
	PeriodDays int    `json:"period_days"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`

	Score        int     `json:"score"`
	Letter       string  `json:"letter"`
	Label        string  `json:"label"`
	SimpleGrade  string  `json:"simple_grade"`
	AvgReadiness float64 `json:"avg_readiness"`
	Compliance   float64 `json:"compliance"`

	Trend Trend `json:"trend"`

	MemberCount         int `json:"member_count"`
	OnboardingCount     int `json:"onboarding_count"`
	AtRiskCount         int `json:"at_risk_count"`
	NeedsAttentionCount int `json:"needs_attention_count"`

	Breakdown []MemberBreakdown `json:"breakdown"`
}
