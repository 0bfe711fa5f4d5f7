package grading

import (
	"context"
	"math"
	"time"

	"github.com/teamready/readiness-backend-go/internal/domain/absence"
	"github.com/teamready/readiness-backend-go/internal/domain/checkin"
	"github.com/teamready/readiness-backend-go/internal/domain/grading"
	"github.com/teamready/readiness-backend-go/internal/domain/member"
	"github.com/teamready/readiness-backend-go/internal/domain/summary"
	"github.com/teamready/readiness-backend-go/internal/domain/team"
	"github.com/teamready/readiness-backend-go/internal/pkg/calendar"
)

const (
	defaultPeriodDays = 30
	maxPeriodDays     = 90
)

type GradingServiceImpl struct {
	team.TeamRepository
	member.MemberRepository
	checkin.CheckinRepository
	absence.AbsenceRepository
	summarySvc summary.SummaryService
}

// MemberStats folds one member's period data into the breakdown row.
// Unexcused absences enter the readiness average as zero-score days;
// excused and still-pending absences carry no datum.
func MemberStats(m member.Member, checkins []checkin.Checkin, unexcused int) grading.MemberBreakdown {
	row := grading.MemberBreakdown{
		MemberID:          m.ID,
		Name:              m.FullName,
		CheckinDays:       len(checkins),
		UnexcusedAbsences: unexcused,
	}

	if len(checkins) > 0 {
		var scoreSum int
		var sleep, energy, mood, stress int
		for _, c := range checkins {
			scoreSum += c.ReadinessScore
			sleep += c.SleepQuality
			energy += c.EnergyLevel
			mood += c.Mood
			stress += c.StressLevel
		}
		n := float64(len(checkins))
		row.AvgReadiness = float64(scoreSum) / (n + float64(unexcused))
		row.Wellness = grading.WellnessMeans{
			SleepQuality: float64(sleep) / n,
			EnergyLevel:  float64(energy) / n,
			Mood:         float64(mood) / n,
			StressLevel:  float64(stress) / n,
		}
	}

	if row.CheckinDays < grading.MinCheckinDaysThreshold {
		row.Onboarding = true
		row.RiskTier = grading.RiskOnboarding
	} else {
		row.RiskTier = grading.TierFor(row.AvgReadiness)
	}

	return row
}

// CombineScore applies the fixed 60/40 readiness/compliance weighting.
func CombineScore(avgReadiness, compliance float64) int {
	return int(math.Round(avgReadiness*grading.ReadinessWeight + compliance*grading.ComplianceWeight))
}

// periodResult is one trailing window fully graded.
type periodResult struct {
	Score        int
	AvgReadiness float64
	Compliance   float64
	Breakdown    []grading.MemberBreakdown

	OnboardingCount     int
	AtRiskCount         int
	NeedsAttentionCount int
}

// GetTeamGrade implements grading.GradingService.
func (s *GradingServiceImpl) GetTeamGrade(ctx context.Context, teamID string, periodDays int, companyID string) (grading.TeamGrade, error) {
	if periodDays <= 0 {
		periodDays = defaultPeriodDays
	}
	if periodDays > maxPeriodDays {
		periodDays = maxPeriodDays
	}

	t, err := s.TeamRepository.GetByID(ctx, teamID, companyID)
	if err != nil {
		return grading.TeamGrade{}, err
	}
	loc := calendar.LoadLocation(t.Timezone)

	end := calendar.LocalMidnight(time.Now(), loc)
	start := end.AddDate(0, 0, -(periodDays - 1))

	members, err := s.MemberRepository.ListActiveWorkersByTeam(ctx, teamID, companyID)
	if err != nil {
		return grading.TeamGrade{}, err
	}

	current, err := s.gradePeriod(ctx, t, loc, members, start, end, companyID)
	if err != nil {
		return grading.TeamGrade{}, err
	}

	prevEnd := start.AddDate(0, 0, -1)
	prevStart := prevEnd.AddDate(0, 0, -(periodDays - 1))
	previous, err := s.gradePeriod(ctx, t, loc, members, prevStart, prevEnd, companyID)
	if err != nil {
		return grading.TeamGrade{}, err
	}

	delta := current.Score - previous.Score
	letter, label := grading.LetterGrade(current.Score)

	return grading.TeamGrade{
		TeamID:       teamID,
		PeriodDays:   periodDays,
		StartDate:    start.Format(calendar.DateLayout),
		EndDate:      end.Format(calendar.DateLayout),
		Score:        current.Score,
		Letter:       letter,
		Label:        label,
		SimpleGrade:  grading.SimpleGrade(current.Score),
		AvgReadiness: current.AvgReadiness,
		Compliance:   current.Compliance,
		Trend: grading.Trend{
			Direction:     grading.ClassifyTrend(delta),
			Delta:         delta,
			PreviousScore: previous.Score,
		},
		MemberCount:         len(members),
		OnboardingCount:     current.OnboardingCount,
		AtRiskCount:         current.AtRiskCount,
		NeedsAttentionCount: current.NeedsAttentionCount,
		Breakdown:           current.Breakdown,
	}, nil
}

func (s *GradingServiceImpl) gradePeriod(ctx context.Context, t team.Team, loc *time.Location, members []member.Member, start, end time.Time, companyID string) (periodResult, error) {
	startStr := start.Format(calendar.DateLayout)
	endStr := end.Format(calendar.DateLayout)

	teamCheckins, err := s.CheckinRepository.ListByTeamDateRange(ctx, t.ID, startStr, endStr, companyID)
	if err != nil {
		return periodResult{}, err
	}
	checkinsByMember := make(map[string][]checkin.Checkin)
	for _, c := range teamCheckins {
		checkinsByMember[c.MemberID] = append(checkinsByMember[c.MemberID], c)
	}

	memberIDs := make([]string, 0, len(members))
	for _, m := range members {
		memberIDs = append(memberIDs, m.ID)
	}
	reviewed, err := s.AbsenceRepository.ListReviewedByMembers(ctx, memberIDs, startStr, endStr, companyID)
	if err != nil {
		return periodResult{}, err
	}
	unexcusedByMember := make(map[string]int)
	for _, a := range reviewed {
		if a.Status == absence.StatusUnexcused {
			unexcusedByMember[a.MemberID]++
		}
	}

	var result periodResult
	var readinessSum float64
	var includedCount int

	for _, m := range members {
		row := MemberStats(m, checkinsByMember[m.ID], unexcusedByMember[m.ID])
		result.Breakdown = append(result.Breakdown, row)

		if row.Onboarding {
			result.OnboardingCount++
			continue
		}
		includedCount++
		readinessSum += row.AvgReadiness
		switch row.RiskTier {
		case grading.RiskAtRisk:
			result.AtRiskCount++
		case grading.RiskNeedsAttention:
			result.NeedsAttentionCount++
		}
	}

	if includedCount > 0 {
		result.AvgReadiness = readinessSum / float64(includedCount)
	}

	compliance, err := s.periodCompliance(ctx, t.ID, start, end, loc, companyID)
	if err != nil {
		return periodResult{}, err
	}
	result.Compliance = compliance

	result.Score = CombineScore(result.AvgReadiness, result.Compliance)
	return result, nil
}

// periodCompliance sums the stored daily projections over the period in the
// total-sum form Σ checkedIn ÷ Σ expected. Missing projections rebuild via
// GetOrCompute; non-work days and holidays contribute zero expected.
func (s *GradingServiceImpl) periodCompliance(ctx context.Context, teamID string, start, end time.Time, loc *time.Location, companyID string) (float64, error) {
	var expectedSum, checkedSum int
	var dayErr error

	calendar.EachDay(start, end, loc, func(day time.Time) {
		if dayErr != nil {
			return
		}
		daySummary, err := s.summarySvc.GetOrCompute(ctx, teamID, day.Format(calendar.DateLayout), companyID)
		if err != nil {
			dayErr = err
			return
		}
		expectedSum += daySummary.ExpectedToCheckIn
		checked := daySummary.CheckedInCount
		if checked > daySummary.ExpectedToCheckIn {
			checked = daySummary.ExpectedToCheckIn
		}
		checkedSum += checked
	})
	if dayErr != nil {
		return 0, dayErr
	}

	if expectedSum == 0 {
		return 0, nil
	}
	return float64(checkedSum) / float64(expectedSum) * 100, nil
}

func NewGradingService(
	teamRepo team.TeamRepository,
	memberRepo member.MemberRepository,
	checkinRepo checkin.CheckinRepository,
	absenceRepo absence.AbsenceRepository,
	summarySvc summary.SummaryService,
) grading.GradingService {
	return &GradingServiceImpl{
		TeamRepository:    teamRepo,
		MemberRepository:  memberRepo,
		CheckinRepository: checkinRepo,
		AbsenceRepository: absenceRepo,
		summarySvc:        summarySvc,
	}
}
