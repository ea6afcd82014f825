package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/presensia/hris-backend-go/internal/domain/leave"
	"github.com/presensia/hris-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to generate leave request id: %w", err)
	}

	query := `
		INSERT INTO leave_requests (
			id, user_id, leave_type, duration,
			start_date, end_date, reason, status,
			created_at
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7, $8,
			NOW()
		) RETURNING id, created_at
	`

	err = q.QueryRow(ctx, query,
		id.String(), request.UserID, request.LeaveType, request.Duration,
		request.StartDate, request.EndDate, request.Reason, request.Status,
	).Scan(&request.ID, &request.CreatedAt)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to insert leave request: %w", err)
	}

	return request, nil
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, leave_type, duration,
			   start_date, end_date, reason, status, rejection_reason,
			   created_at
		FROM leave_requests
		WHERE id = $1
	`

	var req leave.LeaveRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.UserID, &req.LeaveType, &req.Duration,
		&req.StartDate, &req.EndDate, &req.Reason, &req.Status, &req.RejectionReason,
		&req.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}

	return req, nil
}

func (r *leaveRequestRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, leave_type, duration,
			   start_date, end_date, reason, status, rejection_reason,
			   created_at
		FROM leave_requests
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var req leave.LeaveRequest
		err := rows.Scan(
			&req.ID, &req.UserID, &req.LeaveType, &req.Duration,
			&req.StartDate, &req.EndDate, &req.Reason, &req.Status, &req.RejectionReason,
			&req.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return requests, nil
}

func (r *leaveRequestRepositoryImpl) ListAll(ctx context.Context) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.user_id, lr.leave_type, lr.duration,
			   lr.start_date, lr.end_date, lr.reason, lr.status, lr.rejection_reason,
			   lr.created_at,
			   u.full_name, u.email, u.employee_code
		FROM leave_requests lr
		INNER JOIN users u ON lr.user_id = u.id
		ORDER BY lr.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var req leave.LeaveRequest
		var userName, userEmail, employeeCode string
		err := rows.Scan(
			&req.ID, &req.UserID, &req.LeaveType, &req.Duration,
			&req.StartDate, &req.EndDate, &req.Reason, &req.Status, &req.RejectionReason,
			&req.CreatedAt,
			&userName, &userEmail, &employeeCode,
		)
		if err != nil {
			return nil, err
		}

		req.UserName = &userName
		req.UserEmail = &userEmail
		req.EmployeeCode = &employeeCode
		requests = append(requests, req)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return requests, nil
}

func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.LeaveRequestStatus, rejectionReason *string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1, rejection_reason = $2
		WHERE id = $3
		RETURNING id, user_id, leave_type, duration,
				  start_date, end_date, reason, status, rejection_reason,
				  created_at
	`

	var req leave.LeaveRequest
	err := q.QueryRow(ctx, query, status, rejectionReason, id).Scan(
		&req.ID, &req.UserID, &req.LeaveType, &req.Duration,
		&req.StartDate, &req.EndDate, &req.Reason, &req.Status, &req.RejectionReason,
		&req.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to update status for leave request with id %s: %w", id, err)
	}

	return req, nil
}
