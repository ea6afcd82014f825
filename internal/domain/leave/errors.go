package leave

import "errors"

var (
	ErrLeaveRequestNotFound    = errors.New("Leave request not found")
	ErrOverlappingLeave        = errors.New("Leave request overlaps an existing request")
	ErrNonWorkingDayBoundary   = errors.New("Leave cannot start or end on a Sunday")
	ErrStartAfterEnd           = errors.New("Leave start date is after end date")
	ErrInvalidStatusTransition = errors.New("Leave request has already been processed")
	ErrRejectionReasonRequired = errors.New("Rejection reason is required")
)
