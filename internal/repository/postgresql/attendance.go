package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/presensia/hris-backend-go/internal/domain/attendance"
	"github.com/presensia/hris-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

func (r *attendanceRepositoryImpl) ExistsByUserAndDate(ctx context.Context, userID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM attendances
			WHERE user_id = $1 AND date = $2
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query, userID, date).Scan(&exists)
	return exists, err
}

func (r *attendanceRepositoryImpl) CreateLeaveMarker(ctx context.Context, userID string, date time.Time) error {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("failed to generate attendance id: %w", err)
	}

	query := `
		INSERT INTO attendances (id, user_id, date, status, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`

	if _, err := q.Exec(ctx, query, id.String(), userID, date, attendance.AttendanceStatusLeave); err != nil {
		return fmt.Errorf("failed to insert leave marker for %s: %w", date.Format("2006-01-02"), err)
	}

	return nil
}

func (r *attendanceRepositoryImpl) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to generate attendance id: %w", err)
	}

	query := `
		INSERT INTO attendances (
			id, user_id, date, status,
			check_in_time, check_out_time, latitude, longitude, photo_url,
			created_at
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7, $8, $9,
			NOW()
		) RETURNING id, created_at
	`

	err = q.QueryRow(ctx, query,
		id.String(), att.UserID, att.Date, att.Status,
		att.CheckInTime, att.CheckOutTime, att.Latitude, att.Longitude, att.PhotoURL,
	).Scan(&att.ID, &att.CreatedAt)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to insert attendance: %w", err)
	}

	return att, nil
}

func (r *attendanceRepositoryImpl) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, date, status,
			   check_in_time, check_out_time, latitude, longitude, photo_url,
			   created_at
		FROM attendances
		WHERE user_id = $1 AND date = $2
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, userID, date).Scan(
		&att.ID, &att.UserID, &att.Date, &att.Status,
		&att.CheckInTime, &att.CheckOutTime, &att.Latitude, &att.Longitude, &att.PhotoURL,
		&att.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, err
	}

	return att, nil
}

func (r *attendanceRepositoryImpl) SetClockOut(ctx context.Context, id string, clockOut time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET check_out_time = $1
		WHERE id = $2
		RETURNING id, user_id, date, status,
				  check_in_time, check_out_time, latitude, longitude, photo_url,
				  created_at
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, clockOut, id).Scan(
		&att.ID, &att.UserID, &att.Date, &att.Status,
		&att.CheckInTime, &att.CheckOutTime, &att.Latitude, &att.Longitude, &att.PhotoURL,
		&att.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to set clock out for attendance %s: %w", id, err)
	}

	return att, nil
}

func (r *attendanceRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, date, status,
			   check_in_time, check_out_time, latitude, longitude, photo_url,
			   created_at
		FROM attendances
		WHERE user_id = $1
		ORDER BY date DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.UserID, &att.Date, &att.Status,
			&att.CheckInTime, &att.CheckOutTime, &att.Latitude, &att.Longitude, &att.PhotoURL,
			&att.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, att)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return records, nil
}
