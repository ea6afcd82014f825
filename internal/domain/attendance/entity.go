package attendance

import "time"

type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "Present"
	AttendanceStatusLate    AttendanceStatus = "Late"
	AttendanceStatusAbsent  AttendanceStatus = "Absent"
	AttendanceStatusLeave   AttendanceStatus = "Leave"
)

// Attendance is one record per user per calendar date. Rows with status
// Leave are written by the leave lifecycle with the capture fields empty;
// the remaining statuses come from the clock-in flow.
type Attendance struct {
	ID           string
	UserID       string
	Date         time.Time
	Status       AttendanceStatus
	CheckInTime  *time.Time
	CheckOutTime *time.Time
	Latitude     *float64
	Longitude    *float64
	PhotoURL     *string
	CreatedAt    time.Time
}
