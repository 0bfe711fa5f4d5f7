package summary

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/teamready/readiness-backend-go/internal/domain/absence"
	"github.com/teamready/readiness-backend-go/internal/domain/checkin"
	"github.com/teamready/readiness-backend-go/internal/domain/exemption"
	"github.com/teamready/readiness-backend-go/internal/domain/holiday"
	"github.com/teamready/readiness-backend-go/internal/domain/member"
	"github.com/teamready/readiness-backend-go/internal/domain/summary"
	"github.com/teamready/readiness-backend-go/internal/domain/team"
	"github.com/teamready/readiness-backend-go/internal/pkg/calendar"
)

// recomputeParallelism bounds the fan-out of company-wide and range
// recomputations.
const recomputeParallelism = 4

type SummaryServiceImpl struct {
	team.TeamRepository
	member.MemberRepository
	checkin.CheckinRepository
	holiday.HolidayRepository
	exemption.ExemptionRepository
	absence.AbsenceRepository
	summary.SummaryRepository
}

// Snapshot is the consistent input set for one (team, date) aggregation.
// Compute is pure over it, which keeps the aggregation testable without a
// database and makes recomputation trivially idempotent.
type Snapshot struct {
	Team     team.Team
	Date     string // YYYY-MM-DD in the company timezone
	Location *time.Location

	Members    []member.Member // active workers of the team
	Checkins   []checkin.Checkin
	IsHoliday  bool
	Exemptions []exemption.Exemption // approved, possibly covering Date
	Absences   []absence.Absence     // the team's absence records for Date
}

// Compute aggregates one snapshot into the team summary and the per-member
// attendance rows. On-leave members are excluded from both the expected
// denominator and the checked-in numerator.
func Compute(s Snapshot) (summary.DailyTeamSummary, []summary.DailyAttendance) {
	loc := s.Location
	dayStart, err := calendar.ParseLocalDate(s.Date, loc)
	if err != nil {
		dayStart = calendar.LocalMidnight(time.Now(), loc)
	}

	result := summary.DailyTeamSummary{
		TeamID:    s.Team.ID,
		CompanyID: s.Team.CompanyID,
		Date:      s.Date,
		IsWorkDay: calendar.IsWorkDay(dayStart, s.Team.WorkDays, loc),
		IsHoliday: s.IsHoliday,
	}

	checkinsByMember := make(map[string]checkin.Checkin, len(s.Checkins))
	for _, c := range s.Checkins {
		checkinsByMember[c.MemberID] = c
	}

	excusedAbsence := make(map[string]bool)
	for _, a := range s.Absences {
		if a.Status == absence.StatusExcused {
			excusedAbsence[a.MemberID] = true
		}
	}

	onLeave := func(memberID string) bool {
		for _, e := range s.Exemptions {
			if e.MemberID == memberID && e.Covers(s.Date) {
				return true
			}
		}
		return false
	}

	required := result.IsWorkDay && !result.IsHoliday
	shiftAt := shiftInstant(dayStart, s.Team.ShiftStart, loc)

	var attendance []summary.DailyAttendance
	var scoreSum int

	for _, m := range s.Members {
		// obligation starts the day after joining
		if dayStart.Before(calendar.EffectiveStartDate(m.JoinedAt(), loc)) {
			continue
		}
		result.TotalMembers++

		row := summary.DailyAttendance{
			TeamID:    s.Team.ID,
			CompanyID: s.Team.CompanyID,
			MemberID:  m.ID,
			Date:      s.Date,
		}

		if onLeave(m.ID) {
			result.OnLeaveCount++
			row.Status = summary.DayExcused
			attendance = append(attendance, row)
			continue
		}

		c, checkedIn := checkinsByMember[m.ID]
		if checkedIn {
			result.CheckedInCount++
			scoreSum += c.ReadinessScore
			switch c.ReadinessStatus {
			case checkin.StatusGreen:
				result.GreenCount++
			case checkin.StatusYellow:
				result.YellowCount++
			case checkin.StatusRed:
				result.RedCount++
			}

			createdAt := c.CreatedAt
			row.CheckinAt = &createdAt
			score := c.ReadinessScore
			row.Score = &score
			row.Status = summary.DayStatus(c.ReadinessStatus)
			if shiftAt != nil && createdAt.After(*shiftAt) {
				late := int(createdAt.Sub(*shiftAt).Minutes())
				row.MinutesLate = &late
			}
			attendance = append(attendance, row)
			continue
		}

		if !required {
			// nothing expected, nothing to record
			continue
		}
		if excusedAbsence[m.ID] {
			row.Status = summary.DayExcused
		} else {
			row.Status = summary.DayAbsent
		}
		attendance = append(attendance, row)
	}

	if required {
		result.ExpectedToCheckIn = result.TotalMembers - result.OnLeaveCount
	}

	if result.CheckedInCount > 0 {
		avg := float64(scoreSum) / float64(result.CheckedInCount)
		result.AvgReadinessScore = &avg
	}

	if result.ExpectedToCheckIn > 0 {
		rate := int(math.Round(float64(result.CheckedInCount) / float64(result.ExpectedToCheckIn) * 100))
		if rate > 100 {
			rate = 100
		}
		result.ComplianceRate = &rate
	}

	return result, attendance
}

func shiftInstant(dayStart time.Time, shiftStart string, loc *time.Location) *time.Time {
	t, err := time.ParseInLocation("15:04", shiftStart, loc)
	if err != nil {
		return nil
	}
	at := time.Date(dayStart.Year(), dayStart.Month(), dayStart.Day(), t.Hour(), t.Minute(), 0, 0, loc)
	return &at
}

// GetOrCompute implements summary.SummaryService.
func (s *SummaryServiceImpl) GetOrCompute(ctx context.Context, teamID string, dateLocal string, companyID string) (summary.DailyTeamSummary, error) {
	stored, err := s.SummaryRepository.Get(ctx, teamID, dateLocal, companyID)
	if err == nil {
		return stored, nil
	}
	if !errors.Is(err, summary.ErrSummaryNotFound) {
		return summary.DailyTeamSummary{}, err
	}
	return s.Recompute(ctx, teamID, dateLocal, companyID)
}

// Recompute implements summary.SummaryService. The snapshot is fetched in
// one pass, aggregated, then persisted as a whole-record upsert.
func (s *SummaryServiceImpl) Recompute(ctx context.Context, teamID string, dateLocal string, companyID string) (summary.DailyTeamSummary, error) {
	snap, err := s.loadSnapshot(ctx, teamID, dateLocal, companyID)
	if err != nil {
		return summary.DailyTeamSummary{}, err
	}

	result, attendance := Compute(snap)

	if err := s.SummaryRepository.Upsert(ctx, result); err != nil {
		return summary.DailyTeamSummary{}, err
	}
	if err := s.SummaryRepository.ReplaceDailyAttendance(ctx, teamID, dateLocal, companyID, attendance); err != nil {
		return summary.DailyTeamSummary{}, err
	}

	return result, nil
}

func (s *SummaryServiceImpl) loadSnapshot(ctx context.Context, teamID string, dateLocal string, companyID string) (Snapshot, error) {
	t, err := s.TeamRepository.GetByID(ctx, teamID, companyID)
	if err != nil {
		return Snapshot{}, err
	}
	loc := calendar.LoadLocation(t.Timezone)

	members, err := s.MemberRepository.ListActiveWorkersByTeam(ctx, teamID, companyID)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to load team members: %w", err)
	}

	checkins, err := s.CheckinRepository.ListByTeamAndDate(ctx, teamID, dateLocal, companyID)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to load check-ins: %w", err)
	}

	isHoliday, err := s.HolidayRepository.ExistsOnDate(ctx, companyID, dateLocal)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to load holiday: %w", err)
	}

	memberIDs := make([]string, 0, len(members))
	for _, m := range members {
		memberIDs = append(memberIDs, m.ID)
	}

	exemptions, err := s.ExemptionRepository.ListApprovedOverlapping(ctx, memberIDs, dateLocal, dateLocal, companyID)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to load exemptions: %w", err)
	}

	absences, err := s.AbsenceRepository.ListByTeamAndDate(ctx, teamID, dateLocal, companyID)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to load absences: %w", err)
	}

	return Snapshot{
		Team:       t,
		Date:       dateLocal,
		Location:   loc,
		Members:    members,
		Checkins:   checkins,
		IsHoliday:  isHoliday,
		Exemptions: exemptions,
		Absences:   absences,
	}, nil
}

// GetDailyDetail implements summary.SummaryService.
func (s *SummaryServiceImpl) GetDailyDetail(ctx context.Context, teamID string, dateLocal string, companyID string) (summary.DailyTeamSummary, []summary.DailyAttendance, error) {
	result, err := s.GetOrCompute(ctx, teamID, dateLocal, companyID)
	if err != nil {
		return summary.DailyTeamSummary{}, nil, err
	}
	rows, err := s.SummaryRepository.ListDailyAttendance(ctx, teamID, dateLocal, companyID)
	if err != nil {
		return summary.DailyTeamSummary{}, nil, err
	}
	return result, rows, nil
}

// GetHistory implements summary.SummaryService. History reads stored
// projections only; a date nobody ever asked about stays absent rather than
// forcing a rebuild of the whole range on every listing.
func (s *SummaryServiceImpl) GetHistory(ctx context.Context, teamID string, startDate, endDate string, companyID string) ([]summary.DailyTeamSummary, error) {
	if _, err := s.TeamRepository.GetByID(ctx, teamID, companyID); err != nil {
		return nil, err
	}
	return s.SummaryRepository.ListRange(ctx, teamID, startDate, endDate, companyID)
}

// RecomputeCompanyDate implements summary.SummaryService.
func (s *SummaryServiceImpl) RecomputeCompanyDate(ctx context.Context, companyID string, dateLocal string) error {
	teams, err := s.TeamRepository.ListByCompany(ctx, companyID)
	if err != nil {
		return err
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(recomputeParallelism)
	for _, t := range teams {
		teamID := t.ID
		g.Go(func() error {
			if _, err := s.Recompute(gCtx, teamID, dateLocal, companyID); err != nil {
				return fmt.Errorf("recompute team %s date %s: %w", teamID, dateLocal, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// RecomputeMemberRange implements summary.SummaryService.
func (s *SummaryServiceImpl) RecomputeMemberRange(ctx context.Context, memberID string, startDate, endDate string, companyID string) error {
	m, err := s.MemberRepository.GetByID(ctx, memberID, companyID)
	if err != nil {
		return err
	}
	if m.TeamID == nil {
		return nil
	}
	teamID := *m.TeamID

	t, err := s.TeamRepository.GetByID(ctx, teamID, companyID)
	if err != nil {
		return err
	}
	loc := calendar.LoadLocation(t.Timezone)

	start, err := calendar.ParseLocalDate(startDate, loc)
	if err != nil {
		return fmt.Errorf("invalid start date %q: %w", startDate, err)
	}
	end, err := calendar.ParseLocalDate(endDate, loc)
	if err != nil {
		return fmt.Errorf("invalid end date %q: %w", endDate, err)
	}

	var dates []string
	calendar.EachDay(start, end, loc, func(day time.Time) {
		dates = append(dates, day.Format(calendar.DateLayout))
	})

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(recomputeParallelism)
	for _, date := range dates {
		date := date
		g.Go(func() error {
			if _, err := s.Recompute(gCtx, teamID, date, companyID); err != nil {
				return fmt.Errorf("recompute team %s date %s: %w", teamID, date, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func NewSummaryService(
	teamRepo team.TeamRepository,
	memberRepo member.MemberRepository,
	checkinRepo checkin.CheckinRepository,
	holidayRepo holiday.HolidayRepository,
	exemptionRepo exemption.ExemptionRepository,
	absenceRepo absence.AbsenceRepository,
	summaryRepo summary.SummaryRepository,
) summary.SummaryService {
	return &SummaryServiceImpl{
		TeamRepository:      teamRepo,
		MemberRepository:    memberRepo,
		CheckinRepository:   checkinRepo,
		HolidayRepository:   holidayRepo,
		ExemptionRepository: exemptionRepo,
		AbsenceRepository:   absenceRepo,
		SummaryRepository:   summaryRepo,
	}
}
