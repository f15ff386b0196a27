package handler

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/usecase"
	"clinic-management-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type stubTreatmentPlanUsecase struct {
	createErr error
}

func (s *stubTreatmentPlanUsecase) Create(ctx context.Context, req *dto.CreateTreatmentPlanRequest) (*dto.TreatmentPlanResponse, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &dto.TreatmentPlanResponse{
		ID:                   uuid.New(),
		PatientID:            req.PatientID,
		AttendanceID:         req.AttendanceID,
		ProcedureDescription: req.ProcedureDescription,
		SessionCount:         req.SessionCount,
	}, nil
}

func (s *stubTreatmentPlanUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.TreatmentPlanResponse, error) {
	return &dto.TreatmentPlanResponse{ID: id}, nil
}

func (s *stubTreatmentPlanUsecase) List(ctx context.Context, q entity.ListQuery) ([]dto.TreatmentPlanResponse, int64, error) {
	return []dto.TreatmentPlanResponse{}, 0, nil
}

func (s *stubTreatmentPlanUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateTreatmentPlanRequest) (*dto.TreatmentPlanResponse, error) {
	return &dto.TreatmentPlanResponse{ID: id}, nil
}

func (s *stubTreatmentPlanUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

func newTreatmentPlanTestRouter(stub *stubTreatmentPlanUsecase) *mux.Router {
	h := NewTreatmentPlanHandler(stub, validator.NewValidator())

	r := mux.NewRouter()
	r.HandleFunc("/treatment-plans", h.Create).Methods(http.MethodPost)
	return r
}

func treatmentPlanPayload() string {
	return fmt.Sprintf(`{
		"patient_id": %q,
		"attendance_id": %q,
		"procedure_description": "Weekly physiotherapy program",
		"session_count": 10
	}`, uuid.NewString(), uuid.NewString())
}

func TestTreatmentPlanCreate(t *testing.T) {
	router := newTreatmentPlanTestRouter(&stubTreatmentPlanUsecase{})

	req := httptest.NewRequest(http.MethodPost, "/treatment-plans", bytes.NewBufferString(treatmentPlanPayload()))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", rec.Code, rec.Body.String())
	}
}

func TestTreatmentPlanCreateRequiresEvaluation(t *testing.T) {
	router := newTreatmentPlanTestRouter(&stubTreatmentPlanUsecase{createErr: usecase.ErrAttendanceNotEvaluation})

	req := httptest.NewRequest(http.MethodPost, "/treatment-plans", bytes.NewBufferString(treatmentPlanPayload()))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestTreatmentPlanCreatePatientMismatch(t *testing.T) {
	router := newTreatmentPlanTestRouter(&stubTreatmentPlanUsecase{createErr: usecase.ErrAttendancePatientMismatch})

	req := httptest.NewRequest(http.MethodPost, "/treatment-plans", bytes.NewBufferString(treatmentPlanPayload()))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestTreatmentPlanCreateZeroSessions(t *testing.T) {
	router := newTreatmentPlanTestRouter(&stubTreatmentPlanUsecase{})

	payload := fmt.Sprintf(`{
		"patient_id": %q,
		"attendance_id": %q,
		"procedure_description": "Weekly physiotherapy program",
		"session_count": 0
	}`, uuid.NewString(), uuid.NewString())

	req := httptest.NewRequest(http.MethodPost, "/treatment-plans", bytes.NewBufferString(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
