package summary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToAttendanceResponse(t *testing.T) {
	at := time.Date(2025, 3, 10, 9, 25, 0, 0, time.UTC)
	late := 25
	score := 80

	t.Run("checked in", func(t *testing.T) {
		out := ToAttendanceResponse(DailyAttendance{
			MemberID:    "m-1",
			Status:      DayGreen,
			CheckinAt:   &at,
			MinutesLate: &late,
			Score:       &score,
		})

		assert.Equal(t, "m-1", out.MemberID)
		assert.Equal(t, "GREEN", out.Status)
		require.NotNil(t, out.CheckinAt)
		assert.Equal(t, "2025-03-10 09:25:00", *out.CheckinAt)
		assert.Equal(t, &late, out.MinutesLate)
		assert.Equal(t, &score, out.Score)
	})

	t.Run("absent has no optional fields", func(t *testing.T) {
		out := ToAttendanceResponse(DailyAttendance{
			MemberID: "m-2",
			Status:   DayAbsent,
		})

		assert.Equal(t, "ABSENT", out.Status)
		assert.Nil(t, out.CheckinAt)
		assert.Nil(t, out.MinutesLate)
		assert.Nil(t, out.Score)
	})
}

func TestToSummaryDetailResponse(t *testing.T) {
	detail := ToSummaryDetailResponse(
		DailyTeamSummary{TeamID: "t-1", Date: "2025-03-10", TotalMembers: 2},
		[]DailyAttendance{
			{MemberID: "m-1", Status: DayGreen},
			{MemberID: "m-2", Status: DayAbsent},
		},
	)

	assert.Equal(t, "t-1", detail.TeamID)
	assert.Equal(t, 2, detail.TotalMembers)
	require.Len(t, detail.Members, 2)
	assert.Equal(t, "m-1", detail.Members[0].MemberID)
	assert.Equal(t, "ABSENT", detail.Members[1].Status)
}

func TestToSummaryDetailResponseEmptyRows(t *testing.T) {
	detail := ToSummaryDetailResponse(DailyTeamSummary{TeamID: "t-1"}, nil)
	assert.NotNil(t, detail.Members)
	assert.Empty(t, detail.Members)
}
