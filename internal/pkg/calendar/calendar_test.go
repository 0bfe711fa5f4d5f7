package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWorkDays_Normalization(t *testing.T) {
	t.Parallel()

	set := ParseWorkDays("mon, Tue,WED , thu,FRI")
	assert.Len(t, set, 5)
	assert.True(t, set[time.Monday])
	assert.True(t, set[time.Friday])
	assert.False(t, set[time.Saturday])

	// unknown tokens are dropped, not errors
	set = ParseWorkDays("MON,funday, ,SUN")
	assert.Len(t, set, 2)
	assert.True(t, set[time.Sunday])

	assert.Empty(t, ParseWorkDays(""))
}

func TestIsWorkDay_ResolvesWeekdayInTimezone(t *testing.T) {
	t.Parallel()

	jakarta := LoadLocation("Asia/Jakarta")

	// 2025-01-13 23:30 UTC is already Tuesday 2025-01-14 in Jakarta (UTC+7).
	instant := time.Date(2025, 1, 13, 23, 30, 0, 0, time.UTC)
	assert.False(t, IsWorkDay(instant, "TUE", time.UTC))
	assert.True(t, IsWorkDay(instant, "TUE", jakarta))
	assert.True(t, IsWorkDay(instant, "MON", time.UTC))
}

func TestIsWorkDay_EmptyTokenSet(t *testing.T) {
	t.Parallel()
	monday := time.Date(2025, 1, 13, 12, 0, 0, 0, time.UTC)
	assert.False(t, IsWorkDay(monday, "", time.UTC))
}

func TestFormatLocalDate_CrossesDateLine(t *testing.T) {
	t.Parallel()

	jakarta := LoadLocation("Asia/Jakarta")
	instant := time.Date(2025, 1, 13, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, "2025-01-13", FormatLocalDate(instant, time.UTC))
	assert.Equal(t, "2025-01-14", FormatLocalDate(instant, jakarta))
}

func TestLoadLocation_FallsBackToUTC(t *testing.T) {
	t.Parallel()
	assert.Equal(t, time.UTC, LoadLocation("Not/AZone"))
	assert.Equal(t, time.UTC, LoadLocation(""))
}

func TestEffectiveStartDate_DayAfterNotNext24Hours(t *testing.T) {
	t.Parallel()

	jakarta := LoadLocation("Asia/Jakarta")

	// Joined at 23:59 local time: obligation starts the next calendar day,
	// one minute later, not 24 hours later.
	join := time.Date(2025, 1, 13, 16, 59, 0, 0, time.UTC) // 23:59 Jakarta
	start := EffectiveStartDate(join, jakarta)
	assert.Equal(t, "2025-01-14", start.Format(DateLayout))
	assert.Equal(t, 0, start.Hour())

	// Joined just after local midnight: still next day, almost 24h away.
	join = time.Date(2025, 1, 13, 0, 1, 0, 0, time.UTC)
	start = EffectiveStartDate(join, time.UTC)
	assert.Equal(t, "2025-01-14", start.Format(DateLayout))
}

func TestCountWorkDaysInRange(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 1, 14, 0, 0, 0, 0, time.UTC) // Tuesday
	end := time.Date(2025, 1, 17, 0, 0, 0, 0, time.UTC)   // Friday

	holidays := map[string]struct{}{"2025-01-16": {}}

	// Spec example: Tue..Fri with Thursday a holiday.
	assert.Equal(t, 3, CountWorkDaysInRange(start, end, "MON,TUE,WED,THU,FRI", time.UTC, holidays))

	// No holidays.
	assert.Equal(t, 4, CountWorkDaysInRange(start, end, "MON,TUE,WED,THU,FRI", time.UTC, nil))

	// Weekend-only schedule across a week.
	weekEnd := time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 2, CountWorkDaysInRange(start, weekEnd, "SAT,SUN", time.UTC, nil))
}

func TestCountWorkDaysInRange_Degenerate(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 1, 14, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	// end before start
	assert.Equal(t, 0, CountWorkDaysInRange(start, end, "MON,TUE,WED,THU,FRI", time.UTC, nil))

	// empty token set
	assert.Equal(t, 0, CountWorkDaysInRange(end, start, "", time.UTC, nil))
}

func TestCountWorkDaysInRange_AllSevenTokens(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	// With every day enabled the count equals end-start+1 regardless of
	// holidays outside the set.
	got := CountWorkDaysInRange(start, end, "SUN,MON,TUE,WED,THU,FRI,SAT", time.UTC, nil)
	assert.Equal(t, 10, got)
	assert.Equal(t, DaysBetween(start, end, time.UTC), got)
}

func TestEachDay_Inclusive(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)
	end := time.Date(2025, 3, 3, 2, 0, 0, 0, time.UTC)

	var days []string
	EachDay(start, end, time.UTC, func(day time.Time) {
		days = append(days, day.Format(DateLayout))
	})
	require.Equal(t, []string{"2025-03-01", "2025-03-02", "2025-03-03"}, days)
}
