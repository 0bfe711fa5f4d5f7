package checkin

import (
	"math"
	"time"
)

type ReadinessStatus string

const (
	StatusGreen  ReadinessStatus = "GREEN"
	StatusYellow ReadinessStatus = "YELLOW"
	StatusRed    ReadinessStatus = "RED"
)

// Readiness banding. Fixed business constants, not per-request tunables.
const (
	greenFloor  = 70
	yellowFloor = 45
)

// Checkin is an immutable readiness event. DateLocal is the calendar day in
// the owning company's timezone; at most one check-in exists per member per
// DateLocal.
type Checkin struct {
	ID        string
	CompanyID string
	TeamID    *string
	MemberID  string
	DateLocal string

	SleepQuality int
	EnergyLevel  int
	Mood         int
	StressLevel  int

	ReadinessScore  int
	ReadinessStatus ReadinessStatus

	CreatedAt time.Time

	// DTO
	MemberName *string
}

// DeriveScore maps the four 1-10 wellness inputs onto a 0-100 readiness
// score. Stress is inverted: a stress level of 1 contributes like a 10.
func DeriveScore(sleep, energy, mood, stress int) int {
	raw := float64(sleep+energy+mood+(11-stress)) / 40.0 * 100.0
	return int(math.Round(raw))
}

// DeriveStatus bands a readiness score into the GREEN/YELLOW/RED tri-state.
func DeriveStatus(score int) ReadinessStatus {
	switch {
	case score >= greenFloor:
		return StatusGreen
	case score >= yellowFloor:
		return StatusYellow
	default:
		return StatusRed
	}
}
