package move_to_consultation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VetClinicService/internal/api/middleware"
	"github.com/m04kA/SMC-VetClinicService/internal/domain"
	"github.com/m04kA/SMC-VetClinicService/internal/service/projection"
	"github.com/m04kA/SMC-VetClinicService/internal/service/waitingroom/models"
	"github.com/m04kA/SMC-VetClinicService/pkg/logger"
)

type fakeService struct {
	id  uuid.UUID
	got *models.TransitionRequest
	err error
}

func (f *fakeService) MoveToConsultation(_ context.Context, id uuid.UUID, req *models.TransitionRequest) (*projection.WaitingRoomEntryResponse, error) {
	f.id = id
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	started := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	return &projection.WaitingRoomEntryResponse{ID: id, Status: "in_consultation", ConsultationStartedAt: &started}, nil
}

func serve(svc *fakeService, id string) *httptest.ResponseRecorder {
	h := NewHandler(svc, logger.NewNop())
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/waiting-room/"+id+"/consultation", nil)
	req.Header.Set(middleware.UserIDHeader, "vet-1")
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rec := httptest.NewRecorder()
	middleware.Auth(http.HandlerFunc(h.Handle)).ServeHTTP(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	id := uuid.New()
	svc := &fakeService{}

	rec := serve(svc, id.String())

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id, svc.id)
	if assert.NotNil(t, svc.got.Actor) {
		assert.Equal(t, "vet-1", *svc.got.Actor)
	}
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "x").Code)
	assert.Equal(t, http.StatusUnprocessableEntity,
		serve(&fakeService{err: domain.NewInvalidStatusTransition("completed", "in_consultation")}, uuid.NewString()).Code)
}
