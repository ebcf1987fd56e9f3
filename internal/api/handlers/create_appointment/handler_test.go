package create_appointment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VetClinicService/internal/api/handlers"
	"github.com/m04kA/SMC-VetClinicService/internal/api/middleware"
	"github.com/m04kA/SMC-VetClinicService/internal/domain"
	"github.com/m04kA/SMC-VetClinicService/internal/service/projection"
	createAppointment "github.com/m04kA/SMC-VetClinicService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-VetClinicService/pkg/logger"
	"github.com/m04kA/SMC-VetClinicService/pkg/validator"
)

type fakeUseCase struct {
	got *createAppointment.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createAppointment.Request) (*projection.AppointmentResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &projection.AppointmentResponse{
		ID:          uuid.New(),
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		ServiceType: req.ServiceType,
		Status:      "scheduled",
	}, nil
}

func serve(t *testing.T, uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(uc, validator.New(), logger.NewNop())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
	req.Header.Set(middleware.UserIDHeader, "reception-1")
	rec := httptest.NewRecorder()

	middleware.Auth(http.HandlerFunc(h.Handle)).ServeHTTP(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{}
	clientID := uuid.New()

	rec := serve(t, uc, `{
		"startTime": "2026-03-02T10:00:00Z",
		"endTime": "2026-03-02T10:30:00Z",
		"serviceType": "vaccination",
		"clientId": "`+clientID.String()+`"
	}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, "vaccination", uc.got.ServiceType)
	assert.Equal(t, &clientID, uc.got.ClientID)
	if assert.NotNil(t, uc.got.Actor) {
		assert.Equal(t, "reception-1", *uc.got.Actor)
	}

	var resp projection.AppointmentResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "scheduled", resp.Status)
}

func TestHandle_GuestMapped(t *testing.T) {
	uc := &fakeUseCase{}

	rec := serve(t, uc, `{
		"startTime": "2026-03-02T10:00:00Z",
		"endTime": "2026-03-02T10:30:00Z",
		"serviceType": "consultation",
		"guest": {"name": "Walk-in", "email": "walkin@example.com"}
	}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.got.Guest)
	assert.Equal(t, "Walk-in", uc.got.Guest.Name)
	assert.Nil(t, uc.got.ClientID)
}

func TestHandle_BadRequests(t *testing.T) {
	testCases := []struct {
		name      string
		body      string
		wantField string
	}{
		{
			name: "unknown field",
			body: `{"startTime": "2026-03-02T10:00:00Z", "color": "red"}`,
		},
		{
			name: "malformed json",
			body: `{"startTime":`,
		},
		{
			name:      "missing service type",
			body:      `{"startTime": "2026-03-02T10:00:00Z", "endTime": "2026-03-02T10:30:00Z"}`,
			wantField: "serviceType",
		},
		{
			name:      "end before start",
			body:      `{"startTime": "2026-03-02T10:00:00Z", "endTime": "2026-03-02T09:00:00Z", "serviceType": "surgery"}`,
			wantField: "endTime",
		},
		{
			name:      "guest email",
			body:      `{"startTime": "2026-03-02T10:00:00Z", "endTime": "2026-03-02T10:30:00Z", "serviceType": "surgery", "guest": {"name": "A", "email": "nope"}}`,
			wantField: "email",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc := &fakeUseCase{}
			rec := serve(t, uc, tc.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, uc.got)

			if tc.wantField != "" {
				var resp handlers.ErrorResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Contains(t, resp.Details, tc.wantField)
			}
		})
	}
}

func TestHandle_DomainErrors(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"conflict", &domain.SchedulingConflictError{EmployeeID: uuid.New(), ConflictingID: uuid.New()}, http.StatusConflict},
		{"not found", domain.NewNotFound(domain.KindPet, uuid.New()), http.StatusNotFound},
		{"validation", domain.NewValidationError("petId", "belongs to another client"), http.StatusBadRequest},
		{"storage", domain.ErrStorageUnavailable, http.StatusServiceUnavailable},
	}

	body := `{"startTime": "2026-03-02T10:00:00Z", "endTime": "2026-03-02T10:30:00Z", "serviceType": "surgery"}`
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve(t, &fakeUseCase{err: tc.err}, body)
			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}
