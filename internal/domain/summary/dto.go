package summary

type SummaryResponse struct {
	TeamID string `json:"team_id"`
	Date   string `json:"date"`

	IsWorkDay bool `json:"is_work_day"`
	IsHoliday bool `json:"is_holiday"`

	TotalMembers      int `json:"total_members"`
	OnLeaveCount      int `json:"on_leave_count"`
	ExpectedToCheckIn int `json:"expected_to_check_in"`
	CheckedInCount    int `json:"checked_in_count"`

	GreenCount  int `json:"green_count"`
	YellowCount int `json:"yellow_count"`
	RedCount    int `json:"red_count"`

	AvgReadinessScore *float64 `json:"avg_readiness_score"`
	ComplianceRate    *int     `json:"compliance_rate"`
}

type AttendanceResponse struct {
	MemberID    string  `json:"member_id"`
	Status      string  `json:"status"`
	CheckinAt   *string `json:"checkin_at,omitempty"`
	MinutesLate *int    `json:"minutes_late,omitempty"`
	Score       *int    `json:"score,omitempty"`
}

// SummaryDetailResponse is the daily summary with its per-member rows.
type SummaryDetailResponse struct {
	SummaryResponse
	Members []AttendanceResponse `json:"members"`
}

func ToSummaryResponse(s DailyTeamSummary) SummaryResponse {
	return SummaryResponse{
		TeamID:            s.TeamID,
		Date:              s.Date,
		IsWorkDay:         s.IsWorkDay,
		IsHoliday:         s.IsHoliday,
		TotalMembers:      s.TotalMembers,
		OnLeaveCount:      s.OnLeaveCount,
		ExpectedToCheckIn: s.ExpectedToCheckIn,
		CheckedInCount:    s.CheckedInCount,
		GreenCount:        s.GreenCount,
		YellowCount:       s.YellowCount,
		RedCount:          s.RedCount,
		AvgReadinessScore: s.AvgReadinessScore,
		ComplianceRate:    s.ComplianceRate,
	}
}

func ToAttendanceResponse(row DailyAttendance) AttendanceResponse {
	out := AttendanceResponse{
		MemberID:    row.MemberID,
		Status:      string(row.Status),
		MinutesLate: row.MinutesLate,
		Score:       row.Score,
	}
	if row.CheckinAt != nil {
		at := row.CheckinAt.Format("2006-01-02 15:04:05")
		out.CheckinAt = &at
	}
	return out
}

func ToSummaryDetailResponse(s DailyTeamSummary, rows []DailyAttendance) SummaryDetailResponse {
	members := make([]AttendanceResponse, 0, len(rows))
	for _, row := range rows {
		members = append(members, ToAttendanceResponse(row))
	}
	return SummaryDetailResponse{
		SummaryResponse: ToSummaryResponse(s),
		Members:         members,
	}
}
