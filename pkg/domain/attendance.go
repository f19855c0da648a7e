package domain

import "time"

// AttendanceStatus is the daily status recorded per student.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "present"
	StatusAbsent  AttendanceStatus = "absent"
	StatusLate    AttendanceStatus = "late"
	StatusHalfDay AttendanceStatus = "half-day"
	StatusLeave   AttendanceStatus = "leave"
)

// AttendanceStatuses lists every status in the order screens display them.
var AttendanceStatuses = []AttendanceStatus{
	StatusPresent,
	StatusAbsent,
	StatusLate,
	StatusHalfDay,
	StatusLeave,
}

// ValidAttendanceStatus returns true if the given status is a known one.
func ValidAttendanceStatus(s AttendanceStatus) bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate, StatusHalfDay, StatusLeave:
		return true
	}
	return false
}

// AttendanceRecord is one student's status for one calendar day.
type AttendanceRecord struct {
	ID        string           `json:"id"`
	StudentID string           `json:"studentId"`
	Date      string           `json:"date"` // YYYY-MM-DD
	Status    AttendanceStatus `json:"status"`
	Remarks   string           `json:"remarks,omitempty"`
	MarkedBy  string           `json:"markedBy"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// AttendanceStats is the per-class daily summary shown on the dashboard.
type AttendanceStats struct {
	TotalStudents        int     `json:"totalStudents"`
	PresentToday         int     `json:"presentToday"`
	AbsentToday          int     `json:"absentToday"`
	LateToday            int     `json:"lateToday"`
	HalfDayToday         int     `json:"halfDayToday"`
	LeaveToday           int     `json:"leaveToday"`
	AttendancePercentage float64 `json:"attendancePercentage"`
}

// StudentAttendanceStats is the per-student running summary.
type StudentAttendanceStats struct {
	TotalDays            int     `json:"totalDays"`
	PresentDays          int     `json:"presentDays"`
	AbsentDays           int     `json:"absentDays"`
	LateDays             int     `json:"lateDays"`
	HalfDays             int     `json:"halfDays"`
	LeaveDays            int     `json:"leaveDays"`
	AttendancePercentage float64 `json:"attendancePercentage"`
}
