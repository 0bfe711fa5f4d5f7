package grading

import "context"

// GradingService produces team performance grades over a trailing period.
type GradingService interface {
	// GetTeamGrade grades the team over the trailing periodDays ending
	// today (company-timezone), with trend against the preceding period of
	// equal length
	GetTeamGrade(ctx context.Context, teamID string, periodDays int, companyID string) (TeamGrade, error)
}
