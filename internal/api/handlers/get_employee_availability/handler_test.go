package get_employee_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VetClinicService/internal/domain"
	getEmployeeAvailability "github.com/m04kA/SMC-VetClinicService/internal/usecase/get_employee_availability"
	"github.com/m04kA/SMC-VetClinicService/pkg/logger"
)

type fakeUseCase struct {
	got *getEmployeeAvailability.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getEmployeeAvailability.Request) (*getEmployeeAvailability.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	return &getEmployeeAvailability.Response{
		EmployeeID:      req.EmployeeID,
		EmployeeName:    "Ivan Sidorov",
		Date:            req.Date,
		DurationMinutes: 30,
		Slots: []domain.Slot{
			{Start: start, End: start.Add(30 * time.Minute), Available: true},
			{Start: start.Add(30 * time.Minute), End: start.Add(time.Hour)},
		},
	}, nil
}

func serve(uc *fakeUseCase, employeeID, query string) *httptest.ResponseRecorder {
	h := NewHandler(uc, logger.NewNop())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/employees/"+employeeID+"/available-slots?"+query, nil)
	req = mux.SetURLVars(req, map[string]string{"employeeId": employeeID})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	uc := &fakeUseCase{}
	employeeID := uuid.New()

	rec := serve(uc, employeeID.String(), "date=2026-03-02&durationMinutes=45")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, employeeID, uc.got.EmployeeID)
	assert.Equal(t, 45, uc.got.DurationMinutes)

	var resp AvailableSlotsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "2026-03-02", resp.Date)
	require.Len(t, resp.Slots, 2)
	assert.True(t, resp.Slots[0].Available)
	assert.False(t, resp.Slots[1].Available)
}

func TestHandle_BadRequests(t *testing.T) {
	testCases := []struct {
		name       string
		employeeID string
		query      string
	}{
		{"bad employee", "7", "date=2026-03-02"},
		{"missing date", uuid.NewString(), ""},
		{"bad date", uuid.NewString(), "date=2026/03/02"},
		{"bad duration", uuid.NewString(), "date=2026-03-02&durationMinutes=half"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc := &fakeUseCase{}
			rec := serve(uc, tc.employeeID, tc.query)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, uc.got)
		})
	}
}

func TestHandle_UnknownEmployee(t *testing.T) {
	uc := &fakeUseCase{err: domain.NewNotFound(domain.KindEmployee, uuid.New())}

	rec := serve(uc, uuid.NewString(), "date=2026-03-02")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
