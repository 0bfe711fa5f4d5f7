package calendar

import (
	"strings"
	"time"
)

// DateLayout is the canonical local-date key used everywhere dates are
// compared or mapped. Instants must never be compared directly across
// timezones; convert to this form first.
const DateLayout = "2006-01-02"

var weekdayTokens = map[string]time.Weekday{
	"SUN": time.Sunday,
	"MON": time.Monday,
	"TUE": time.Tuesday,
	"WED": time.Wednesday,
	"THU": time.Thursday,
	"FRI": time.Friday,
	"SAT": time.Saturday,
}

// LoadLocation resolves an IANA timezone name, falling back to UTC on
// anything unparseable. A team with a broken timezone still gets
// deterministic behavior rather than an error path through every caller.
func LoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ParseWorkDays normalizes a comma-separated day-of-week token set such as
// "mon, Tue,WED" into a weekday membership set. Unknown tokens are ignored.
func ParseWorkDays(tokens string) map[time.Weekday]bool {
	set := make(map[time.Weekday]bool)
	for _, tok := range strings.Split(tokens, ",") {
		tok = strings.ToUpper(strings.TrimSpace(tok))
		if wd, ok := weekdayTokens[tok]; ok {
			set[wd] = true
		}
	}
	return set
}

// IsWorkDay reports whether date falls on one of the team's work days,
// with the day-of-week resolved in loc rather than in the process's local
// time or UTC.
func IsWorkDay(date time.Time, workDays string, loc *time.Location) bool {
	set := ParseWorkDays(workDays)
	if len(set) == 0 {
		return false
	}
	return set[date.In(loc).Weekday()]
}

// FormatLocalDate renders an instant as its YYYY-MM-DD calendar date as
// observed in loc.
func FormatLocalDate(instant time.Time, loc *time.Location) string {
	return instant.In(loc).Format(DateLayout)
}

// ParseLocalDate parses a YYYY-MM-DD string as local midnight in loc.
func ParseLocalDate(dateStr string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, dateStr, loc)
}

// LocalMidnight truncates an instant to midnight of its calendar day in loc.
func LocalMidnight(instant time.Time, loc *time.Location) time.Time {
	local := instant.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// EffectiveStartDate returns local midnight of the day after the given
// instant. A member is never obligated to check in on the calendar day they
// joined; the obligation begins the following day even when the join happens
// at 23:59 local time, and even when the following day is not a work day.
func EffectiveStartDate(instant time.Time, loc *time.Location) time.Time {
	return LocalMidnight(instant, loc).AddDate(0, 0, 1)
}

// EachDay walks the inclusive local calendar days from start through end,
// invoking fn with each day's local midnight. No-op when end precedes start.
func EachDay(start, end time.Time, loc *time.Location, fn func(day time.Time)) {
	day := LocalMidnight(start, loc)
	last := LocalMidnight(end, loc)
	for !day.After(last) {
		fn(day)
		day = day.AddDate(0, 0, 1)
	}
}

// DaysBetween counts the inclusive calendar days from start through end as
// observed in loc. Returns 0 when end precedes start.
func DaysBetween(start, end time.Time, loc *time.Location) int {
	day := LocalMidnight(start, loc)
	last := LocalMidnight(end, loc)
	count := 0
	for !day.After(last) {
		count++
		day = day.AddDate(0, 0, 1)
	}
	return count
}

// CountWorkDaysInRange counts the days in [start, end] that are work days
// and whose local-date string is absent from holidays. Returns 0 when end
// precedes start or the token set is empty. With all seven tokens enabled
// and no holidays in range this equals the inclusive day count.
func CountWorkDaysInRange(start, end time.Time, workDays string, loc *time.Location, holidays map[string]struct{}) int {
	set := ParseWorkDays(workDays)
	if len(set) == 0 {
		return 0
	}
	count := 0
	EachDay(start, end, loc, func(day time.Time) {
		if !set[day.Weekday()] {
			return
		}
		if _, holiday := holidays[day.Format(DateLayout)]; holiday {
			return
		}
		count++
	})
	return count
}
