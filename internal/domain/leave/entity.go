package leave

import "time"

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "Pending"
	LeaveRequestStatusApproved LeaveRequestStatus = "Approved"
	LeaveRequestStatusRejected LeaveRequestStatus = "Rejected"
)

// IsTerminal reports whether no further status transition is defined.
func (s LeaveRequestStatus) IsTerminal() bool {
	return s == LeaveRequestStatusApproved || s == LeaveRequestStatusRejected
}

// LeaveRequest entity. StartDate and EndDate are inclusive calendar dates
// with no time component.
type LeaveRequest struct {
	ID              string
	UserID          string
	LeaveType       string
	Duration        string
	StartDate       time.Time
	EndDate         time.Time
	Reason          string
	Status          LeaveRequestStatus
	RejectionReason *string
	CreatedAt       time.Time

	// Requester identity, joined for admin listings
	UserName     *string
	UserEmail    *string
	EmployeeCode *string
}
