package leave

import (
	"context"
)

// LeaveService drives the leave request lifecycle:
// Pending -> Approved | Rejected, with approval materializing attendance
// markers for every working day of the interval.
type LeaveService interface {
	Submit(ctx context.Context, req SubmitLeaveRequestRequest) (LeaveRequestResponse, error)
	SetStatus(ctx context.Context, id string, req SetStatusRequest) (LeaveRequestResponse, SyncReport, error)
	Get(ctx context.Context, id string) (LeaveRequestResponse, error)
	ListByUser(ctx context.Context, userID string) ([]LeaveRequestResponse, error)
	ListAll(ctx context.Context) ([]LeaveRequestResponse, error)

	// RebuildMarkers regenerates attendance markers from the user's approved
	// leave history. The leave table is canonical; markers are derived.
	RebuildMarkers(ctx context.Context, userID string) (SyncReport, error)
}
