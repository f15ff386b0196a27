package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/usecase"
	"clinic-management-api/pkg/response"
	"clinic-management-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type stubPatientUsecase struct {
	createErr error
	getErr    error
	updateErr error
	deleteErr error
	patients  []dto.PatientResponse
	total     int64
	lastQuery entity.ListQuery
}

func (s *stubPatientUsecase) Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &dto.PatientResponse{ID: uuid.New(), Name: req.Name, Phone: req.Phone}, nil
}

func (s *stubPatientUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return &dto.PatientResponse{ID: id, Name: "Maria Souza", Phone: "11988887777"}, nil
}

func (s *stubPatientUsecase) List(ctx context.Context, q entity.ListQuery) ([]dto.PatientResponse, int64, error) {
	s.lastQuery = q
	return s.patients, s.total, nil
}

func (s *stubPatientUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return &dto.PatientResponse{ID: id, Name: "Maria Souza", Phone: "11988887777"}, nil
}

func (s *stubPatientUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return s.deleteErr
}

func newPatientTestRouter(stub *stubPatientUsecase) *mux.Router {
	h := NewPatientHandler(stub, validator.NewValidator())

	r := mux.NewRouter()
	r.HandleFunc("/patients", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/patients", h.List).Methods(http.MethodGet)
	r.HandleFunc("/patients/{id}", h.GetByID).Methods(http.MethodGet)
	r.HandleFunc("/patients/{id}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/patients/{id}", h.Delete).Methods(http.MethodDelete)
	return r
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var body response.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	return body
}

func TestPatientCreate(t *testing.T) {
	router := newPatientTestRouter(&stubPatientUsecase{})

	payload := `{"name": "Maria Souza", "phone": "11988887777"}`
	req := httptest.NewRequest(http.MethodPost, "/patients", bytes.NewBufferString(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", rec.Code, rec.Body.String())
	}
	body := decodeEnvelope(t, rec)
	if !body.Success {
		t.Error("Success = false, want true")
	}
}

func TestPatientCreateValidation(t *testing.T) {
	router := newPatientTestRouter(&stubPatientUsecase{})

	// Name too short and phone missing.
	payload := `{"name": "M"}`
	req := httptest.NewRequest(http.MethodPost, "/patients", bytes.NewBufferString(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	if body.Success {
		t.Error("Success = true, want false")
	}
}

func TestPatientCreateDuplicatePhone(t *testing.T) {
	router := newPatientTestRouter(&stubPatientUsecase{createErr: usecase.ErrPhoneAlreadyExists})

	payload := `{"name": "Maria Souza", "phone": "11988887777"}`
	req := httptest.NewRequest(http.MethodPost, "/patients", bytes.NewBufferString(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestPatientListPagination(t *testing.T) {
	stub := &stubPatientUsecase{
		patients: []dto.PatientResponse{{ID: uuid.New(), Name: "Maria Souza", Phone: "11988887777"}},
		total:    42,
	}
	router := newPatientTestRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/patients?page=2&limit=20&sortBy=name&sortOrder=asc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	if stub.lastQuery.Page != 2 || stub.lastQuery.Limit != 20 {
		t.Errorf("query = %+v, want page 2 limit 20", stub.lastQuery)
	}
	if stub.lastQuery.SortBy != "name" || stub.lastQuery.SortOrder != "asc" {
		t.Errorf("query sort = %s %s, want name asc", stub.lastQuery.SortBy, stub.lastQuery.SortOrder)
	}

	body := decodeEnvelope(t, rec)
	if body.Meta == nil || body.Meta.Total != 42 || body.Meta.TotalPages != 3 {
		t.Errorf("meta = %+v, want total 42 pages 3", body.Meta)
	}
}

func TestPatientListInvalidPage(t *testing.T) {
	router := newPatientTestRouter(&stubPatientUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/patients?page=0", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestPatientGetByIDNotFound(t *testing.T) {
	router := newPatientTestRouter(&stubPatientUsecase{getErr: usecase.ErrPatientNotFound})

	req := httptest.NewRequest(http.MethodGet, "/patients/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestPatientGetByIDInvalidUUID(t *testing.T) {
	router := newPatientTestRouter(&stubPatientUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/patients/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestPatientDeleteWithAppointments(t *testing.T) {
	router := newPatientTestRouter(&stubPatientUsecase{deleteErr: usecase.ErrPatientHasAppointments})

	req := httptest.NewRequest(http.MethodDelete, "/patients/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestPatientDeleteWithClinicalRecords(t *testing.T) {
	router := newPatientTestRouter(&stubPatientUsecase{deleteErr: usecase.ErrPatientHasRecords})

	req := httptest.NewRequest(http.MethodDelete, "/patients/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}
