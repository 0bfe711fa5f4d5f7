package summary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamready/readiness-backend-go/internal/domain/absence"
	"github.com/teamready/readiness-backend-go/internal/domain/checkin"
	"github.com/teamready/readiness-backend-go/internal/domain/exemption"
	"github.com/teamready/readiness-backend-go/internal/domain/member"
	"github.com/teamready/readiness-backend-go/internal/domain/summary"
	"github.com/teamready/readiness-backend-go/internal/domain/team"
)

var jakarta, _ = time.LoadLocation("Asia/Jakarta")

func testTeam() team.Team {
	return team.Team{
		ID:         "team-1",
		CompanyID:  "company-1",
		Name:       "Platform",
		WorkDays:   "MON,TUE,WED,THU,FRI",
		ShiftStart: "09:00",
		Timezone:   "Asia/Jakarta",
	}
}

func worker(id string, joined time.Time) member.Member {
	return member.Member{
		ID:           id,
		CompanyID:    "company-1",
		FullName:     "Worker " + id,
		Role:         member.RoleWorker,
		Active:       true,
		TeamJoinedAt: &joined,
		CreatedAt:    joined,
	}
}

func checkinFor(memberID string, date string, score int, status checkin.ReadinessStatus, at time.Time) checkin.Checkin {
	return checkin.Checkin{
		ID:              "ci-" + memberID,
		CompanyID:       "company-1",
		MemberID:        memberID,
		DateLocal:       date,
		ReadinessScore:  score,
		ReadinessStatus: status,
		CreatedAt:       at,
	}
}

func TestComputeWorkDayCounts(t *testing.T) {
	joined := time.Date(2025, 1, 1, 10, 0, 0, 0, jakarta)
	date := "2025-03-10" // Monday
	morning := time.Date(2025, 3, 10, 8, 30, 0, 0, jakarta)

	snap := Snapshot{
		Team:     testTeam(),
		Date:     date,
		Location: jakarta,
		Members: []member.Member{
			worker("m1", joined),
			worker("m2", joined),
			worker("m3", joined),
		},
		Checkins: []checkin.Checkin{
			checkinFor("m1", date, 85, checkin.StatusGreen, morning),
			checkinFor("m2", date, 50, checkin.StatusYellow, morning),
		},
	}

	result, attendance := Compute(snap)

	assert.True(t, result.IsWorkDay)
	assert.False(t, result.IsHoliday)
	assert.Equal(t, 3, result.TotalMembers)
	assert.Equal(t, 0, result.OnLeaveCount)
	assert.Equal(t, 3, result.ExpectedToCheckIn)
	assert.Equal(t, 2, result.CheckedInCount)
	assert.Equal(t, 1, result.GreenCount)
	assert.Equal(t, 1, result.YellowCount)
	assert.Equal(t, 0, result.RedCount)

	require.NotNil(t, result.AvgReadinessScore)
	assert.InDelta(t, 67.5, *result.AvgReadinessScore, 0.001)

	require.NotNil(t, result.ComplianceRate)
	assert.Equal(t, 67, *result.ComplianceRate) // round(2/3*100)

	require.Len(t, attendance, 3)
	byMember := make(map[string]summary.DailyAttendance)
	for _, row := range attendance {
		byMember[row.MemberID] = row
	}
	assert.Equal(t, summary.DayGreen, byMember["m1"].Status)
	assert.Equal(t, summary.DayYellow, byMember["m2"].Status)
	assert.Equal(t, summary.DayAbsent, byMember["m3"].Status)
}

func TestComputeHolidayShortCircuit(t *testing.T) {
	joined := time.Date(2025, 1, 1, 10, 0, 0, 0, jakarta)
	snap := Snapshot{
		Team:      testTeam(),
		Date:      "2025-03-10",
		Location:  jakarta,
		IsHoliday: true,
		Members:   []member.Member{worker("m1", joined)},
	}

	result, attendance := Compute(snap)

	assert.True(t, result.IsWorkDay)
	assert.True(t, result.IsHoliday)
	assert.Equal(t, 1, result.TotalMembers)
	assert.Equal(t, 0, result.ExpectedToCheckIn)
	assert.Nil(t, result.ComplianceRate)
	assert.Nil(t, result.AvgReadinessScore)
	assert.Empty(t, attendance)
}

func TestComputeNonWorkDay(t *testing.T) {
	joined := time.Date(2025, 1, 1, 10, 0, 0, 0, jakarta)
	date := "2025-03-09" // Sunday
	snap := Snapshot{
		Team:     testTeam(),
		Date:     date,
		Location: jakarta,
		Members:  []member.Member{worker("m1", joined), worker("m2", joined)},
		Checkins: []checkin.Checkin{
			// voluntary check-in still counts toward readiness, never compliance
			checkinFor("m1", date, 90, checkin.StatusGreen, time.Date(2025, 3, 9, 9, 0, 0, 0, jakarta)),
		},
	}

	result, _ := Compute(snap)

	assert.False(t, result.IsWorkDay)
	assert.Equal(t, 0, result.ExpectedToCheckIn)
	assert.Nil(t, result.ComplianceRate)
	assert.Equal(t, 1, result.CheckedInCount)
	require.NotNil(t, result.AvgReadinessScore)
	assert.InDelta(t, 90.0, *result.AvgReadinessScore, 0.001)
}

func TestComputeOnLeaveStrictExclusion(t *testing.T) {
	joined := time.Date(2025, 1, 1, 10, 0, 0, 0, jakarta)
	date := "2025-03-10"

	snap := Snapshot{
		Team:     testTeam(),
		Date:     date,
		Location: jakarta,
		Members:  []member.Member{worker("m1", joined), worker("m2", joined)},
		Checkins: []checkin.Checkin{
			// on-leave member checked in anyway; must count on neither side
			checkinFor("m1", date, 95, checkin.StatusGreen, time.Date(2025, 3, 10, 8, 0, 0, 0, jakarta)),
		},
		Exemptions: []exemption.Exemption{
			{
				MemberID:  "m1",
				StartDate: "2025-03-08",
				EndDate:   "2025-03-12",
				Status:    exemption.StatusApproved,
			},
		},
	}

	result, attendance := Compute(snap)

	assert.Equal(t, 2, result.TotalMembers)
	assert.Equal(t, 1, result.OnLeaveCount)
	assert.Equal(t, 1, result.ExpectedToCheckIn)
	assert.Equal(t, 0, result.CheckedInCount)
	assert.Nil(t, result.AvgReadinessScore)
	require.NotNil(t, result.ComplianceRate)
	assert.Equal(t, 0, *result.ComplianceRate)

	require.Len(t, attendance, 2)
	byMember := make(map[string]summary.DailyAttendance)
	for _, row := range attendance {
		byMember[row.MemberID] = row
	}
	assert.Equal(t, summary.DayExcused, byMember["m1"].Status)
	assert.Equal(t, summary.DayAbsent, byMember["m2"].Status)
}

func TestComputeMemberNotYetObligated(t *testing.T) {
	date := "2025-03-10"
	// joined on the 10th: obligation starts the 11th
	justJoined := time.Date(2025, 3, 10, 8, 0, 0, 0, jakarta)
	veteran := time.Date(2025, 1, 1, 10, 0, 0, 0, jakarta)

	snap := Snapshot{
		Team:     testTeam(),
		Date:     date,
		Location: jakarta,
		Members:  []member.Member{worker("new", justJoined), worker("old", veteran)},
	}

	result, _ := Compute(snap)

	assert.Equal(t, 1, result.TotalMembers)
	assert.Equal(t, 1, result.ExpectedToCheckIn)
}

func TestComputeExcusedAbsenceAttendanceRow(t *testing.T) {
	joined := time.Date(2025, 1, 1, 10, 0, 0, 0, jakarta)
	date := "2025-03-10"

	snap := Snapshot{
		Team:     testTeam(),
		Date:     date,
		Location: jakarta,
		Members:  []member.Member{worker("m1", joined)},
		Absences: []absence.Absence{
			{MemberID: "m1", Date: date, Status: absence.StatusExcused},
		},
	}

	result, attendance := Compute(snap)

	assert.Equal(t, 1, result.ExpectedToCheckIn)
	assert.Equal(t, 0, result.CheckedInCount)
	require.Len(t, attendance, 1)
	assert.Equal(t, summary.DayExcused, attendance[0].Status)
}

func TestComputeMinutesLate(t *testing.T) {
	joined := time.Date(2025, 1, 1, 10, 0, 0, 0, jakarta)
	date := "2025-03-10"

	snap := Snapshot{
		Team:     testTeam(),
		Date:     date,
		Location: jakarta,
		Members:  []member.Member{worker("m1", joined), worker("m2", joined)},
		Checkins: []checkin.Checkin{
			checkinFor("m1", date, 80, checkin.StatusGreen, time.Date(2025, 3, 10, 9, 25, 0, 0, jakarta)),
			checkinFor("m2", date, 80, checkin.StatusGreen, time.Date(2025, 3, 10, 8, 55, 0, 0, jakarta)),
		},
	}

	_, attendance := Compute(snap)

	byMember := make(map[string]summary.DailyAttendance)
	for _, row := range attendance {
		byMember[row.MemberID] = row
	}
	require.NotNil(t, byMember["m1"].MinutesLate)
	assert.Equal(t, 25, *byMember["m1"].MinutesLate)
	assert.Nil(t, byMember["m2"].MinutesLate)
}

func TestComputeDeterministic(t *testing.T) {
	joined := time.Date(2025, 1, 1, 10, 0, 0, 0, jakarta)
	date := "2025-03-10"
	snap := Snapshot{
		Team:     testTeam(),
		Date:     date,
		Location: jakarta,
		Members:  []member.Member{worker("m1", joined), worker("m2", joined)},
		Checkins: []checkin.Checkin{
			checkinFor("m1", date, 72, checkin.StatusGreen, time.Date(2025, 3, 10, 8, 0, 0, 0, jakarta)),
		},
	}

	first, firstRows := Compute(snap)
	second, secondRows := Compute(snap)

	assert.Equal(t, first, second)
	assert.Equal(t, firstRows, secondRows)
}
