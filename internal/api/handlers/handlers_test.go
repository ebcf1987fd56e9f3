package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VetClinicService/internal/domain"
)

func TestRespondDomainError(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "not found",
			err:        domain.NewNotFound(domain.KindPet, uuid.Nil),
			wantStatus: http.StatusNotFound,
			wantBody:   "pet 00000000-0000-0000-0000-000000000000 not found",
		},
		{
			name:       "validation",
			err:        domain.NewValidationError("endTime", "too short"),
			wantStatus: http.StatusBadRequest,
			wantBody:   "validation failed: endTime: too short",
		},
		{
			name:       "scheduling conflict",
			err:        &domain.SchedulingConflictError{},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "duplicate waiting entry",
			err:        &domain.DuplicateWaitingEntryError{},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "invalid transition",
			err:        domain.NewInvalidStatusTransition("completed", "scheduled"),
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   "invalid status transition from completed to scheduled",
		},
		{
			name:       "invalid operation",
			err:        domain.NewInvalidOperation("not waiting"),
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "storage unavailable hides details",
			err:        fmt.Errorf("%w: pq: connection refused", domain.ErrStorageUnavailable),
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   msgStorageUnavailable,
		},
		{
			name:       "unknown",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   msgInternalError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			status := RespondDomainError(rec, tc.err)
			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, tc.wantStatus, rec.Code)

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			if tc.wantBody != "" {
				assert.Equal(t, tc.wantBody, body.Error)
			}
		})
	}
}

func TestRespondDomainError_ValidationDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondDomainError(rec, domain.NewValidationError("petId", "guest appointments cannot reference a registered pet"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, map[string]string{"petId": "guest appointments cannot reference a registered pet"}, body.Details)
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Rex"}`))
	require.NoError(t, DecodeJSON(req, &v))
	assert.Equal(t, "Rex", v.Name)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(``))
	assert.ErrorIs(t, DecodeJSON(req, &v), ErrEmptyBody)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"nickname":"Rex"}`))
	assert.Error(t, DecodeJSON(req, &v))
}

func TestPathUUID(t *testing.T) {
	id := uuid.New()

	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": id.String()})
	got, err := PathUUID(req, "id")
	require.NoError(t, err)
	assert.Equal(t, id, got)

	req = mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": "42"})
	_, err = PathUUID(req, "id")
	assert.Error(t, err)
}

func TestQueryParams(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?from=2026-03-02T10:00:00Z&clientId=bad", nil)

	from, err := QueryTime(req, "from")
	require.NoError(t, err)
	require.NotNil(t, from)
	assert.Equal(t, 10, from.Hour())

	to, err := QueryTime(req, "to")
	require.NoError(t, err)
	assert.Nil(t, to)

	_, err = QueryUUID(req, "clientId")
	assert.Error(t, err)

	assert.Nil(t, QueryString(req, "status"))
}
