package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vahanex/vahanex-server/internal/domain/models"
	"github.com/vahanex/vahanex-server/internal/domain/types"
	"github.com/vahanex/vahanex-server/pkg/logger"
	"github.com/vahanex/vahanex-server/pkg/uuid"
)

type fakeScheduleService struct {
	created  *models.Schedule
	info     *models.ScheduleInfo
	infos    []*models.ScheduleInfo
	metadata models.Metadata
	stats    models.StatsSnapshot
	err      error

	deleted []uuid.UUID
}

func (f *fakeScheduleService) Create(ctx context.Context, schedule *models.Schedule) (*models.ScheduleInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = schedule
	return f.info, nil
}

func (f *fakeScheduleService) Get(ctx context.Context, scheduleID uuid.UUID) (*models.ScheduleInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.info, nil
}

func (f *fakeScheduleService) List(ctx context.Context, date time.Time, filters models.Filters) ([]*models.ScheduleInfo, models.Metadata, error) {
	if f.err != nil {
		return nil, models.Metadata{}, f.err
	}
	return f.infos, f.metadata, nil
}

func (f *fakeScheduleService) UpdateTimes(ctx context.Context, scheduleID uuid.UUID, startTime, endTime string) (*models.ScheduleInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.info, nil
}

func (f *fakeScheduleService) UpdateStatus(ctx context.Context, scheduleID uuid.UUID, status types.ScheduleStatus) (*models.ScheduleInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.info, nil
}

func (f *fakeScheduleService) Delete(ctx context.Context, scheduleID uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, scheduleID)
	return nil
}

func (f *fakeScheduleService) Stats(ctx context.Context, now time.Time) (models.StatsSnapshot, error) {
	if f.err != nil {
		return models.StatsSnapshot{}, f.err
	}
	return f.stats, nil
}

func testScheduleInfo(t *testing.T) *models.ScheduleInfo {
	t.Helper()

	id, err := uuid.New()
	require.NoError(t, err)
	studentID, err := uuid.New()
	require.NoError(t, err)
	vehicleID, err := uuid.New()
	require.NoError(t, err)
	instructorID, err := uuid.New()
	require.NoError(t, err)

	return &models.ScheduleInfo{
		ID:              id,
		StudentID:       studentID,
		StudentName:     "Asha Shrestha",
		VehicleID:       vehicleID,
		VehicleNumber:   "BA 2 PA 1234",
		InstructorIDs:   []uuid.UUID{instructorID},
		InstructorNames: []string{"Hari Thapa"},
		ScheduleDate:    time.Date(2099, 6, 2, 0, 0, 0, 0, time.UTC),
		StartTime:       "09:00",
		EndTime:         "10:00",
		Status:          types.ScheduleScheduled,
		CreatedAt:       time.Now(),
	}
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestScheduleCreate(t *testing.T) {
	info := testScheduleInfo(t)
	svc := &fakeScheduleService{info: info}
	h := NewSchedule(svc, logger.InitLogger("test", logger.LevelError))

	payload := `{
		"studentId": "` + info.StudentID.String() + `",
		"vehicleId": "` + info.VehicleID.String() + `",
		"instructorIds": ["` + info.InstructorIDs[0].String() + `"],
		"scheduleDate": "2099-06-02",
		"startTime": "09:00",
		"endTime": "10:00"
	}`

	req := httptest.NewRequest(http.MethodPost, "/schedules", strings.NewReader(payload))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Schedule created successfully", body["message"])

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Asha Shrestha", data["studentName"])
	assert.Equal(t, "2099-06-02", data["scheduleDate"])
	assert.Equal(t, "09:00", data["startTime"])
	assert.Equal(t, "scheduled", data["status"])

	require.NotNil(t, svc.created)
	assert.Equal(t, info.StudentID, svc.created.StudentID)
}

func TestScheduleCreateValidation(t *testing.T) {
	svc := &fakeScheduleService{}
	h := NewSchedule(svc, logger.InitLogger("test", logger.LevelError))

	req := httptest.NewRequest(http.MethodPost, "/schedules", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeBody(t, rec)

	raw, ok := body["message"].([]any)
	require.True(t, ok, "validation errors must surface as a message list")

	messages := make([]string, 0, len(raw))
	for _, m := range raw {
		messages = append(messages, m.(string))
	}
	assert.Contains(t, messages, "Student is required")
	assert.Contains(t, messages, "Vehicle is required")
	assert.Contains(t, messages, "Select at least one instructor")
	assert.Contains(t, messages, "Date is required")
	assert.Contains(t, messages, "Start time is required")
	assert.Contains(t, messages, "End time is required")

	assert.Nil(t, svc.created)
}

func TestScheduleCreateInvertedWindow(t *testing.T) {
	svc := &fakeScheduleService{}
	h := NewSchedule(svc, logger.InitLogger("test", logger.LevelError))

	payload := `{
		"studentId": "s1",
		"vehicleId": "v1",
		"instructorIds": ["i1"],
		"scheduleDate": "2099-01-01",
		"startTime": "09:00",
		"endTime": "08:00"
	}`

	req := httptest.NewRequest(http.MethodPost, "/schedules", strings.NewReader(payload))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, []any{"End time must be after start time"}, body["message"])
}

func TestScheduleList(t *testing.T) {
	info := testScheduleInfo(t)
	svc := &fakeScheduleService{
		infos:    []*models.ScheduleInfo{info},
		metadata: models.CalculateMetadata(14, 2, 10),
	}
	h := NewSchedule(svc, logger.InitLogger("test", logger.LevelError))

	req := httptest.NewRequest(http.MethodGet, "/schedules?page=2&limit=10", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)

	meta, ok := body["meta"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(2), meta["page"])
	assert.Equal(t, float64(10), meta["limit"])
	assert.Equal(t, float64(14), meta["total"])
	assert.Equal(t, float64(2), meta["totalPages"])

	data, ok := body["data"].([]any)
	require.True(t, ok)
	require.Len(t, data, 1)
}

func TestScheduleListRejectsBadDate(t *testing.T) {
	svc := &fakeScheduleService{}
	h := NewSchedule(svc, logger.InitLogger("test", logger.LevelError))

	req := httptest.NewRequest(http.MethodGet, "/schedules?date=junk", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestScheduleCount(t *testing.T) {
	svc := &fakeScheduleService{
		stats: models.StatsSnapshot{Total: 12, Todays: 3, InProgress: 1, Completed: 7},
	}
	h := NewSchedule(svc, logger.InitLogger("test", logger.LevelError))

	req := httptest.NewRequest(http.MethodGet, "/schedules/count", nil)
	rec := httptest.NewRecorder()

	h.Count(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(12), data["total"])
	assert.Equal(t, float64(3), data["todays"])
	assert.Equal(t, float64(1), data["inprogress"])
	assert.Equal(t, float64(7), data["completed"])
}

func TestScheduleDeleteNotFound(t *testing.T) {
	svc := &fakeScheduleService{err: types.ErrScheduleNotFound}
	h := NewSchedule(svc, logger.InitLogger("test", logger.LevelError))

	id, err := uuid.New()
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodDelete, "/schedules/"+id.String(), nil)
	req.SetPathValue("id", id.String())
	rec := httptest.NewRecorder()

	h.Delete(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}
