package response

import (
	"errors"
	"net/http"

	"github.com/presensia/hris-backend-go/internal/domain/attendance"
	"github.com/presensia/hris-backend-go/internal/domain/leave"
	"github.com/presensia/hris-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrOverlappingLeave):
		Conflict(w, "Leave request overlaps an existing request")
	case errors.Is(err, leave.ErrInvalidStatusTransition):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrNonWorkingDayBoundary):
		BadRequest(w, "Leave cannot start or end on a non-working day", nil)
	case errors.Is(err, leave.ErrStartAfterEnd):
		BadRequest(w, "Start date must not be after end date", nil)
	case errors.Is(err, leave.ErrRejectionReasonRequired):
		BadRequest(w, "Rejection reason is required", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Attendance already recorded for today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "No open check-in for today", nil)
	case errors.Is(err, attendance.ErrOutsideAllowedRadius):
		Forbidden(w, "Location is outside the allowed office radius")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
