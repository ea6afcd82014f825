package attendance

import "errors"

var (
	ErrAlreadyCheckedIn     = errors.New("attendance already recorded for today")
	ErrNotCheckedIn         = errors.New("you have not checked in yet")
	ErrAlreadyCheckedOut    = errors.New("you have already checked out")
	ErrOutsideAllowedRadius = errors.New("you are outside the allowed radius")
	ErrAttendanceNotFound   = errors.New("attendance record not found")
)
