package domain

// ReportRow is one student's summary line in an attendance report.
type ReportRow struct {
	StudentName          string  `json:"studentName"`
	RollNumber           string  `json:"rollNumber"`
	TotalDays            int     `json:"totalDays"`
	PresentDays          int     `json:"presentDays"`
	AbsentDays           int     `json:"absentDays"`
	LateDays             int     `json:"lateDays"`
	HalfDays             int     `json:"halfDays"`
	LeaveDays            int     `json:"leaveDays"`
	AttendancePercentage float64 `json:"attendancePercentage"`
}
