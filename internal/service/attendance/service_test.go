package attendance

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/presensia/hris-backend-go/internal/config"
	"github.com/presensia/hris-backend-go/internal/domain/attendance"
	"github.com/presensia/hris-backend-go/internal/pkg/validator"
)

// Monas, Jakarta.
const (
	officeLat = -6.175392
	officeLon = 106.827153
)

type fakeAttendanceRepository struct {
	rows map[string]attendance.Attendance

	createErr error
}

func newFakeAttendanceRepository() *fakeAttendanceRepository {
	return &fakeAttendanceRepository{rows: map[string]attendance.Attendance{}}
}

func attKey(userID string, date time.Time) string {
	return userID + "|" + date.Format("2006-01-02")
}

func (f *fakeAttendanceRepository) ExistsByUserAndDate(ctx context.Context, userID string, date time.Time) (bool, error) {
	_, ok := f.rows[attKey(userID, date)]
	return ok, nil
}

func (f *fakeAttendanceRepository) CreateLeaveMarker(ctx context.Context, userID string, date time.Time) error {
	f.rows[attKey(userID, date)] = attendance.Attendance{
		ID:     "marker-" + date.Format("2006-01-02"),
		UserID: userID,
		Date:   date,
		Status: attendance.AttendanceStatusLeave,
	}
	return nil
}

func (f *fakeAttendanceRepository) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	if f.createErr != nil {
		return attendance.Attendance{}, f.createErr
	}
	a.ID = "att-1"
	a.CreatedAt = time.Now()
	f.rows[attKey(a.UserID, a.Date)] = a
	return a, nil
}

func (f *fakeAttendanceRepository) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (attendance.Attendance, error) {
	a, ok := f.rows[attKey(userID, date)]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return a, nil
}

func (f *fakeAttendanceRepository) SetClockOut(ctx context.Context, id string, clockOut time.Time) (attendance.Attendance, error) {
	for key, a := range f.rows {
		if a.ID == id {
			a.CheckOutTime = &clockOut
			f.rows[key] = a
			return a, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepository) ListByUser(ctx context.Context, userID string) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, a := range f.rows {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func testConfig() config.AttendanceConfig {
	return config.AttendanceConfig{
		OfficeLatitude:  officeLat,
		OfficeLongitude: officeLon,
		RadiusMeters:    100,
		WorkdayStart:    "09:00",
		GraceMinutes:    15,
		Timezone:        "Asia/Jakarta",
	}
}

func newTestService(t *testing.T, repo attendance.AttendanceRepository, at time.Time) *AttendanceServiceImpl {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc, err := NewAttendanceService(repo, testConfig(), logger)
	require.NoError(t, err)
	impl := svc.(*AttendanceServiceImpl)
	impl.now = func() time.Time { return at }
	return impl
}

func jakartaTime(t *testing.T, value string) time.Time {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)
	parsed, err := time.ParseInLocation("2006-01-02 15:04", value, loc)
	require.NoError(t, err)
	return parsed
}

func clockInRequest() attendance.ClockInRequest {
	return attendance.ClockInRequest{
		UserID:    "user-1",
		Latitude:  officeLat,
		Longitude: officeLon,
		PhotoURL:  "https://cdn.example.com/selfies/user-1.jpg",
	}
}

func TestClockIn_OnTimeIsPresent(t *testing.T) {
	repo := newFakeAttendanceRepository()
	svc := newTestService(t, repo, jakartaTime(t, "2024-03-04 08:55"))

	resp, err := svc.ClockIn(context.Background(), clockInRequest())

	assert.NoError(t, err)
	assert.Equal(t, string(attendance.AttendanceStatusPresent), resp.Status)
	assert.NotNil(t, resp.CheckInTime)
	assert.Nil(t, resp.CheckOutTime)
}

func TestClockIn_WithinGraceIsPresent(t *testing.T) {
	repo := newFakeAttendanceRepository()
	svc := newTestService(t, repo, jakartaTime(t, "2024-03-04 09:15"))

	resp, err := svc.ClockIn(context.Background(), clockInRequest())

	assert.NoError(t, err)
	assert.Equal(t, string(attendance.AttendanceStatusPresent), resp.Status)
}

func TestClockIn_AfterGraceIsLate(t *testing.T) {
	repo := newFakeAttendanceRepository()
	svc := newTestService(t, repo, jakartaTime(t, "2024-03-04 09:16"))

	resp, err := svc.ClockIn(context.Background(), clockInRequest())

	assert.NoError(t, err)
	assert.Equal(t, string(attendance.AttendanceStatusLate), resp.Status)
}

func TestClockIn_OutsideRadius(t *testing.T) {
	repo := newFakeAttendanceRepository()
	svc := newTestService(t, repo, jakartaTime(t, "2024-03-04 08:55"))

	req := clockInRequest()
	// Roughly 1.2km north of the office.
	req.Latitude = officeLat + 0.011

	_, err := svc.ClockIn(context.Background(), req)
	assert.ErrorIs(t, err, attendance.ErrOutsideAllowedRadius)
}

func TestClockIn_TwiceSameDay(t *testing.T) {
	repo := newFakeAttendanceRepository()
	svc := newTestService(t, repo, jakartaTime(t, "2024-03-04 08:55"))

	_, err := svc.ClockIn(context.Background(), clockInRequest())
	require.NoError(t, err)

	_, err = svc.ClockIn(context.Background(), clockInRequest())
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestClockIn_BlockedByLeaveMarker(t *testing.T) {
	repo := newFakeAttendanceRepository()
	svc := newTestService(t, repo, jakartaTime(t, "2024-03-04 08:55"))

	day := jakartaTime(t, "2024-03-04 00:00")
	today := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.CreateLeaveMarker(context.Background(), "user-1", today))

	_, err := svc.ClockIn(context.Background(), clockInRequest())
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestClockIn_ValidationErrors(t *testing.T) {
	repo := newFakeAttendanceRepository()
	svc := newTestService(t, repo, jakartaTime(t, "2024-03-04 08:55"))

	req := clockInRequest()
	req.Latitude = 91
	req.PhotoURL = ""

	_, err := svc.ClockIn(context.Background(), req)

	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	assert.Contains(t, fields, "latitude")
	assert.Contains(t, fields, "photo_url")
}

func TestClockOut_Success(t *testing.T) {
	repo := newFakeAttendanceRepository()
	svc := newTestService(t, repo, jakartaTime(t, "2024-03-04 08:55"))

	_, err := svc.ClockIn(context.Background(), clockInRequest())
	require.NoError(t, err)

	svc.now = func() time.Time { return jakartaTime(t, "2024-03-04 17:30") }

	resp, err := svc.ClockOut(context.Background(), "user-1")

	assert.NoError(t, err)
	assert.NotNil(t, resp.CheckOutTime)
}

func TestClockOut_WithoutClockIn(t *testing.T) {
	repo := newFakeAttendanceRepository()
	svc := newTestService(t, repo, jakartaTime(t, "2024-03-04 17:30"))

	_, err := svc.ClockOut(context.Background(), "user-1")
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestClockOut_OnLeaveMarker(t *testing.T) {
	repo := newFakeAttendanceRepository()
	svc := newTestService(t, repo, jakartaTime(t, "2024-03-04 17:30"))

	day := jakartaTime(t, "2024-03-04 00:00")
	today := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.CreateLeaveMarker(context.Background(), "user-1", today))

	_, err := svc.ClockOut(context.Background(), "user-1")
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestClockOut_Twice(t *testing.T) {
	repo := newFakeAttendanceRepository()
	svc := newTestService(t, repo, jakartaTime(t, "2024-03-04 08:55"))

	_, err := svc.ClockIn(context.Background(), clockInRequest())
	require.NoError(t, err)

	svc.now = func() time.Time { return jakartaTime(t, "2024-03-04 17:30") }
	_, err = svc.ClockOut(context.Background(), "user-1")
	require.NoError(t, err)

	_, err = svc.ClockOut(context.Background(), "user-1")
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestListMy(t *testing.T) {
	repo := newFakeAttendanceRepository()
	svc := newTestService(t, repo, jakartaTime(t, "2024-03-04 08:55"))

	_, err := svc.ClockIn(context.Background(), clockInRequest())
	require.NoError(t, err)

	responses, err := svc.ListMy(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.Len(t, responses, 1)

	responses, err = svc.ListMy(context.Background(), "user-2")
	assert.NoError(t, err)
	assert.Empty(t, responses)
}

func TestNewAttendanceService_BadTimezone(t *testing.T) {
	cfg := testConfig()
	cfg.Timezone = "Mars/Olympus"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := NewAttendanceService(newFakeAttendanceRepository(), cfg, logger)
	assert.Error(t, err)
}
