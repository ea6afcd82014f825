package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/presensia/hris-backend-go/internal/domain/attendance"
	"github.com/presensia/hris-backend-go/internal/domain/leave"
	"github.com/presensia/hris-backend-go/internal/pkg/daterange"
)

type LeaveServiceImpl struct {
	leave.LeaveRequestRepository
	attendance.AttendanceRepository
	logger *slog.Logger
}

func NewLeaveService(
	leaveRequestRepo leave.LeaveRequestRepository,
	attendanceRepo attendance.AttendanceRepository,
	logger *slog.Logger,
) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRequestRepository: leaveRequestRepo,
		AttendanceRepository:   attendanceRepo,
		logger:                 logger,
	}
}

// Submit implements leave.LeaveService.
func (l *LeaveServiceImpl) Submit(ctx context.Context, req leave.SubmitLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to parse end date: %w", err)
	}
	startDate = daterange.Normalize(startDate)
	endDate = daterange.Normalize(endDate)

	if daterange.IsNonWorkingDay(startDate) || daterange.IsNonWorkingDay(endDate) {
		return leave.LeaveRequestResponse{}, leave.ErrNonWorkingDayBoundary
	}

	if startDate.After(endDate) {
		return leave.LeaveRequestResponse{}, leave.ErrStartAfterEnd
	}

	// Overlap is a compound predicate over two columns and two bounds, so
	// candidates are fetched and tested here rather than composed into a
	// store-side filter expression. Concurrent submits for the same user can
	// still race past this check; a store-side exclusion constraint is the
	// recommended backstop.
	existing, err := l.LeaveRequestRepository.ListByUser(ctx, req.UserID)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to list leave requests for overlap check: %w", err)
	}
	for _, other := range existing {
		if other.Status == leave.LeaveRequestStatusRejected {
			continue
		}
		if daterange.Overlaps(other.StartDate, other.EndDate, startDate, endDate) {
			return leave.LeaveRequestResponse{}, leave.ErrOverlappingLeave
		}
	}

	request := leave.LeaveRequest{
		UserID:    req.UserID,
		LeaveType: req.LeaveType,
		Duration:  req.Duration,
		StartDate: startDate,
		EndDate:   endDate,
		Reason:    req.Reason,
		// Status is forced here; caller-supplied values are never trusted.
		Status: leave.LeaveRequestStatusPending,
	}

	created, err := l.LeaveRequestRepository.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return toResponse(created), nil
}

// SetStatus implements leave.LeaveService.
func (l *LeaveServiceImpl) SetStatus(ctx context.Context, id string, req leave.SetStatusRequest) (leave.LeaveRequestResponse, leave.SyncReport, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, leave.SyncReport{}, err
	}

	current, err := l.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequestResponse{}, leave.SyncReport{}, err
	}

	// Approved and Rejected are terminal; re-processing is undefined and
	// fails fast. Previously materialized markers are never retracted.
	if current.Status.IsTerminal() {
		return leave.LeaveRequestResponse{}, leave.SyncReport{}, leave.ErrInvalidStatusTransition
	}

	newStatus := leave.LeaveRequestStatus(req.Status)

	var rejectionReason *string
	if newStatus == leave.LeaveRequestStatusRejected {
		if req.RejectionReason == nil || *req.RejectionReason == "" {
			return leave.LeaveRequestResponse{}, leave.SyncReport{}, leave.ErrRejectionReasonRequired
		}
		rejectionReason = req.RejectionReason
	}

	updated, err := l.LeaveRequestRepository.UpdateStatus(ctx, id, newStatus, rejectionReason)
	if err != nil {
		return leave.LeaveRequestResponse{}, leave.SyncReport{}, err
	}

	var report leave.SyncReport
	if newStatus == leave.LeaveRequestStatusApproved {
		// The status change above is committed and authoritative; marker
		// failures below are reported, not rolled back.
		report = l.materializeMarkers(ctx, updated.UserID, updated.StartDate, updated.EndDate)
		if !report.Complete() {
			l.logger.Warn("attendance marker sync incomplete",
				"leave_request_id", updated.ID,
				"user_id", updated.UserID,
				"failed", len(report.Failed),
			)
		}
	}

	return toResponse(updated), report, nil
}

// materializeMarkers walks the interval sequentially, writing a Leave marker
// for every working day that has no attendance record yet. Each date is
// processed independently; a failure on one date never stops the rest.
func (l *LeaveServiceImpl) materializeMarkers(ctx context.Context, userID string, startDate, endDate time.Time) leave.SyncReport {
	report := leave.SyncReport{}

	for day := range daterange.Each(startDate, endDate) {
		if daterange.IsNonWorkingDay(day) {
			continue
		}
		dateStr := day.Format("2006-01-02")

		exists, err := l.AttendanceRepository.ExistsByUserAndDate(ctx, userID, day)
		if err != nil {
			l.logger.Error("attendance existence check failed",
				"user_id", userID, "date", dateStr, "error", err)
			report.Failed = append(report.Failed, leave.SyncFailure{Date: dateStr, Error: err.Error()})
			continue
		}
		if exists {
			// Existing rows of any status are left untouched.
			report.Skipped = append(report.Skipped, dateStr)
			continue
		}

		if err := l.AttendanceRepository.CreateLeaveMarker(ctx, userID, day); err != nil {
			l.logger.Error("leave marker insert failed",
				"user_id", userID, "date", dateStr, "error", err)
			report.Failed = append(report.Failed, leave.SyncFailure{Date: dateStr, Error: err.Error()})
			continue
		}
		report.Created = append(report.Created, dateStr)
	}

	return report
}

// RebuildMarkers implements leave.LeaveService.
func (l *LeaveServiceImpl) RebuildMarkers(ctx context.Context, userID string) (leave.SyncReport, error) {
	requests, err := l.LeaveRequestRepository.ListByUser(ctx, userID)
	if err != nil {
		return leave.SyncReport{}, fmt.Errorf("failed to list leave requests for rebuild: %w", err)
	}

	report := leave.SyncReport{}
	for _, request := range requests {
		if request.Status != leave.LeaveRequestStatusApproved {
			continue
		}
		partial := l.materializeMarkers(ctx, userID, request.StartDate, request.EndDate)
		report.Created = append(report.Created, partial.Created...)
		report.Skipped = append(report.Skipped, partial.Skipped...)
		report.Failed = append(report.Failed, partial.Failed...)
	}

	return report, nil
}

// Get implements leave.LeaveService.
func (l *LeaveServiceImpl) Get(ctx context.Context, id string) (leave.LeaveRequestResponse, error) {
	request, err := l.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	return toResponse(request), nil
}

// ListByUser implements leave.LeaveService.
func (l *LeaveServiceImpl) ListByUser(ctx context.Context, userID string) ([]leave.LeaveRequestResponse, error) {
	requests, err := l.LeaveRequestRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, toResponse(request))
	}
	return responses, nil
}

// ListAll implements leave.LeaveService.
func (l *LeaveServiceImpl) ListAll(ctx context.Context) ([]leave.LeaveRequestResponse, error) {
	requests, err := l.LeaveRequestRepository.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list all leave requests: %w", err)
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, toResponse(request))
	}
	return responses, nil
}

func toResponse(request leave.LeaveRequest) leave.LeaveRequestResponse {
	return leave.LeaveRequestResponse{
		ID:              request.ID,
		UserID:          request.UserID,
		LeaveType:       request.LeaveType,
		Duration:        request.Duration,
		StartDate:       request.StartDate,
		EndDate:         request.EndDate,
		Reason:          request.Reason,
		Status:          string(request.Status),
		RejectionReason: request.RejectionReason,
		CreatedAt:       request.CreatedAt,
		UserName:        request.UserName,
		UserEmail:       request.UserEmail,
		EmployeeCode:    request.EmployeeCode,
	}
}
