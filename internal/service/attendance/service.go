package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/presensia/hris-backend-go/internal/config"
	"github.com/presensia/hris-backend-go/internal/domain/attendance"
	"github.com/presensia/hris-backend-go/internal/pkg/daterange"
	"github.com/presensia/hris-backend-go/internal/pkg/geo"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	cfg      config.AttendanceConfig
	location *time.Location
	logger   *slog.Logger

	now func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	cfg config.AttendanceConfig,
	logger *slog.Logger,
) (attendance.AttendanceService, error) {
	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", cfg.Timezone, err)
	}

	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		cfg:                  cfg,
		location:             location,
		logger:               logger,
		now:                  time.Now,
	}, nil
}

// ClockIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if !geo.WithinRadius(req.Latitude, req.Longitude, a.cfg.OfficeLatitude, a.cfg.OfficeLongitude, a.cfg.RadiusMeters) {
		return attendance.AttendanceResponse{}, attendance.ErrOutsideAllowedRadius
	}

	now := a.now().In(a.location)
	today := daterange.Normalize(now)

	// A Leave marker written by the leave lifecycle counts as an existing
	// record and blocks check-in like any other row.
	exists, err := a.AttendanceRepository.ExistsByUserAndDate(ctx, req.UserID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check existing attendance: %w", err)
	}
	if exists {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	status := attendance.AttendanceStatusPresent
	if now.After(a.lateCutoff(now)) {
		status = attendance.AttendanceStatusLate
	}

	checkIn := now
	record := attendance.Attendance{
		UserID:      req.UserID,
		Date:        today,
		Status:      status,
		CheckInTime: &checkIn,
		Latitude:    &req.Latitude,
		Longitude:   &req.Longitude,
		PhotoURL:    &req.PhotoURL,
	}

	created, err := a.AttendanceRepository.Create(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return toResponse(created), nil
}

// lateCutoff is the scheduled workday start plus the grace period, on the
// same calendar day as t.
func (a *AttendanceServiceImpl) lateCutoff(t time.Time) time.Time {
	start, _ := time.Parse("15:04", a.cfg.WorkdayStart)
	cutoff := time.Date(t.Year(), t.Month(), t.Day(), start.Hour(), start.Minute(), 0, 0, a.location)
	return cutoff.Add(time.Duration(a.cfg.GraceMinutes) * time.Minute)
}

// ClockOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockOut(ctx context.Context, userID string) (attendance.AttendanceResponse, error) {
	now := a.now().In(a.location)
	today := daterange.Normalize(now)

	record, err := a.AttendanceRepository.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	// Leave markers have no check-in to close.
	if record.CheckInTime == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
	}
	if record.CheckOutTime != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	updated, err := a.AttendanceRepository.SetClockOut(ctx, record.ID, now)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to set clock out: %w", err)
	}

	return toResponse(updated), nil
}

// ListMy implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListMy(ctx context.Context, userID string) ([]attendance.AttendanceResponse, error) {
	records, err := a.AttendanceRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, toResponse(record))
	}
	return responses, nil
}

func toResponse(record attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:           record.ID,
		UserID:       record.UserID,
		Date:         record.Date,
		Status:       string(record.Status),
		CheckInTime:  record.CheckInTime,
		CheckOutTime: record.CheckOutTime,
		Latitude:     record.Latitude,
		Longitude:    record.Longitude,
		PhotoURL:     record.PhotoURL,
	}
}
