package attendance

import (
	"context"
)

// AttendanceService is the clock-in flow downstream of the leave lifecycle:
// an existing record for the day, including an engine-written Leave marker,
// blocks check-in.
type AttendanceService interface {
	ClockIn(ctx context.Context, req ClockInRequest) (AttendanceResponse, error)
	ClockOut(ctx context.Context, userID string) (AttendanceResponse, error)
	ListMy(ctx context.Context, userID string) ([]AttendanceResponse, error)
}
