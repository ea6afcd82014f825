package leave

import (
	"context"
)

// LeaveRequestRepository - interface for leave_requests table.
// Pure persistence boundary; business validation lives in the service.
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	ListByUser(ctx context.Context, userID string) ([]LeaveRequest, error)
	ListAll(ctx context.Context) ([]LeaveRequest, error)
	UpdateStatus(ctx context.Context, id string, status LeaveRequestStatus, rejectionReason *string) (LeaveRequest, error)
}
