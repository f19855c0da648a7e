package domain

import "time"

// LeaveStatus is the lifecycle state of a leave application.
type LeaveStatus string

const (
	LeavePending  LeaveStatus = "pending"
	LeaveApproved LeaveStatus = "approved"
	LeaveRejected LeaveStatus = "rejected"
)

// LeaveApplication is a student's request for planned absence.
type LeaveApplication struct {
	ID         string      `json:"id"`
	StudentID  string      `json:"studentId"`
	StartDate  string      `json:"startDate"` // YYYY-MM-DD
	EndDate    string      `json:"endDate"`   // YYYY-MM-DD
	Reason     string      `json:"reason"`
	Status     LeaveStatus `json:"status"`
	ApprovedBy string      `json:"approvedBy,omitempty"`
	CreatedAt  time.Time   `json:"createdAt"`
}
