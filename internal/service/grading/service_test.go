package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/teamready/readiness-backend-go/internal/domain/checkin"
	"github.com/teamready/readiness-backend-go/internal/domain/grading"
	"github.com/teamready/readiness-backend-go/internal/domain/member"
)

func checkins(scores ...int) []checkin.Checkin {
	out := make([]checkin.Checkin, 0, len(scores))
	for _, s := range scores {
		out = append(out, checkin.Checkin{
			ReadinessScore: s,
			SleepQuality:   7,
			EnergyLevel:    6,
			Mood:           8,
			StressLevel:    4,
		})
	}
	return out
}

func TestMemberStatsOnboardingThreshold(t *testing.T) {
	m := member.Member{ID: "m1", FullName: "Ana"}

	two := MemberStats(m, checkins(80, 90), 0)
	assert.True(t, two.Onboarding)
	assert.Equal(t, grading.RiskOnboarding, two.RiskTier)

	three := MemberStats(m, checkins(80, 90, 85), 0)
	assert.False(t, three.Onboarding)
	assert.Equal(t, grading.RiskHealthy, three.RiskTier)
}

func TestMemberStatsUnexcusedDragsAverage(t *testing.T) {
	m := member.Member{ID: "m1", FullName: "Ana"}

	// 3 check-ins at 80 plus one unexcused zero-score day: 240 / 4 = 60
	row := MemberStats(m, checkins(80, 80, 80), 1)

	assert.InDelta(t, 60.0, row.AvgReadiness, 0.001)
	assert.Equal(t, 1, row.UnexcusedAbsences)
	// 60 is the at-risk boundary: strictly below 60 only
	assert.Equal(t, grading.RiskNeedsAttention, row.RiskTier)
}

func TestMemberStatsRiskTiers(t *testing.T) {
	m := member.Member{ID: "m1", FullName: "Ana"}

	assert.Equal(t, grading.RiskAtRisk, MemberStats(m, checkins(50, 55, 58), 0).RiskTier)
	assert.Equal(t, grading.RiskNeedsAttention, MemberStats(m, checkins(65, 65, 65), 0).RiskTier)
	assert.Equal(t, grading.RiskHealthy, MemberStats(m, checkins(75, 80, 85), 0).RiskTier)
}

func TestMemberStatsWellnessMeans(t *testing.T) {
	m := member.Member{ID: "m1", FullName: "Ana"}

	row := MemberStats(m, checkins(80, 80, 80), 0)

	assert.InDelta(t, 7.0, row.Wellness.SleepQuality, 0.001)
	assert.InDelta(t, 6.0, row.Wellness.EnergyLevel, 0.001)
	assert.InDelta(t, 8.0, row.Wellness.Mood, 0.001)
	assert.InDelta(t, 4.0, row.Wellness.StressLevel, 0.001)
}

func TestMemberStatsNoData(t *testing.T) {
	m := member.Member{ID: "m1", FullName: "Ana"}

	row := MemberStats(m, nil, 2)

	assert.Equal(t, 0.0, row.AvgReadiness)
	assert.True(t, row.Onboarding)
	assert.Equal(t, grading.WellnessMeans{}, row.Wellness)
}

func TestCombineScore(t *testing.T) {
	tests := []struct {
		name       string
		readiness  float64
		compliance float64
		want       int
	}{
		{"perfect", 100, 100, 100},
		{"zero", 0, 0, 0},
		{"weighting", 80, 50, 68},  // 48 + 20
		{"rounding up", 77.5, 70, 75}, // 46.5 + 28 = 74.5
		{"readiness only", 90, 0, 54},
		{"compliance only", 0, 90, 36},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CombineScore(tt.readiness, tt.compliance))
		})
	}
}

func TestLetterGradeBoundaries(t *testing.T) {
	tests := []struct {
		score  int
		letter string
	}{
		{100, "A+"}, {97, "A+"}, {96, "A"}, {93, "A"}, {90, "A-"},
		{87, "B+"}, {83, "B"}, {80, "B-"},
		{77, "C+"}, {73, "C"}, {70, "C-"},
		{67, "D+"}, {63, "D"}, {60, "D-"},
		{59, "F"}, {0, "F"},
	}
	for _, tt := range tests {
		letter, _ := grading.LetterGrade(tt.score)
		assert.Equal(t, tt.letter, letter, "score %d", tt.score)
	}
}

func TestClassifyTrend(t *testing.T) {
	assert.Equal(t, grading.TrendUp, grading.ClassifyTrend(3))
	assert.Equal(t, grading.TrendUp, grading.ClassifyTrend(12))
	assert.Equal(t, grading.TrendDown, grading.ClassifyTrend(-3))
	assert.Equal(t, grading.TrendDown, grading.ClassifyTrend(-8))
	assert.Equal(t, grading.TrendStable, grading.ClassifyTrend(2))
	assert.Equal(t, grading.TrendStable, grading.ClassifyTrend(-2))
	assert.Equal(t, grading.TrendStable, grading.ClassifyTrend(0))
}

func TestSimpleGrade(t *testing.T) {
	assert.Equal(t, "A", grading.SimpleGrade(95))
	assert.Equal(t, "B", grading.SimpleGrade(85))
	assert.Equal(t, "C", grading.SimpleGrade(75))
	assert.Equal(t, "D", grading.SimpleGrade(65))
	assert.Equal(t, "D", grading.SimpleGrade(10))
}
