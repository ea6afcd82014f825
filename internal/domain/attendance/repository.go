package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records.
// Uniqueness per (user_id, date) is enforced by callers through
// ExistsByUserAndDate before insert, not assumed from the store.
type AttendanceRepository interface {
	// ExistsByUserAndDate reports whether any record exists for the user on
	// the given calendar date, regardless of status.
	ExistsByUserAndDate(ctx context.Context, userID string, date time.Time) (bool, error)

	// CreateLeaveMarker inserts a status=Leave row for the date with all
	// capture fields empty. Write failures surface as errors.
	CreateLeaveMarker(ctx context.Context, userID string, date time.Time) error

	Create(ctx context.Context, attendance Attendance) (Attendance, error)
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (Attendance, error)
	SetClockOut(ctx context.Context, id string, clockOut time.Time) (Attendance, error)
	ListByUser(ctx context.Context, userID string) ([]Attendance, error)
}
