package leave

import (
	"time"

	"github.com/presensia/hris-backend-go/internal/pkg/validator"
)

type SubmitLeaveRequestRequest struct {
	UserID    string `json:"-"`
	LeaveType string `json:"leave_type"`
	Duration  string `json:"duration"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

func (r *SubmitLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type is required",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date (YYYY-MM-DD)",
		})
	}

	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid date (YYYY-MM-DD)",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SetStatusRequest struct {
	Status          string  `json:"status"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
}

func (r *SetStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	allowed := []string{string(LeaveRequestStatusApproved), string(LeaveRequestStatusRejected)}
	if !validator.IsInSlice(r.Status, allowed) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be either Approved or Rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveRequestResponse struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	LeaveType       string    `json:"leave_type"`
	Duration        string    `json:"duration"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	Reason          string    `json:"reason"`
	Status          string    `json:"status"`
	RejectionReason *string   `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time `json:"created_at"`

	UserName     *string `json:"user_name,omitempty"`
	UserEmail    *string `json:"user_email,omitempty"`
	EmployeeCode *string `json:"employee_code,omitempty"`
}

// SyncFailure records one date whose attendance marker could not be written.
type SyncFailure struct {
	Date  string `json:"date"`
	Error string `json:"error"`
}

// SyncReport is the outcome of materializing attendance markers for an
// approved leave: every working day in the interval lands in exactly one
// of the three buckets.
type SyncReport struct {
	Created []string      `json:"created"`
	Skipped []string      `json:"skipped"`
	Failed  []SyncFailure `json:"failed,omitempty"`
}

// Complete reports whether every marker was either created or already present.
func (r SyncReport) Complete() bool {
	return len(r.Failed) == 0
}
