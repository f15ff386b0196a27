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

type stubAttendanceUsecase struct {
	createErr  error
	deleteErr  error
	presignErr error
	lastFilter *entity.AttendanceFilter
}

func (s *stubAttendanceUsecase) Create(ctx context.Context, req *dto.CreateAttendanceRequest) (*dto.AttendanceResponse, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &dto.AttendanceResponse{
		ID:             uuid.New(),
		PatientID:      req.PatientID,
		ProfessionalID: req.ProfessionalID,
		Type:           req.Type,
		Date:           req.Date,
	}, nil
}

func (s *stubAttendanceUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.AttendanceResponse, error) {
	return &dto.AttendanceResponse{ID: id, Type: "evolution"}, nil
}

func (s *stubAttendanceUsecase) List(ctx context.Context, q entity.ListQuery, filter *entity.AttendanceFilter) ([]dto.AttendanceResponse, int64, error) {
	s.lastFilter = filter
	return []dto.AttendanceResponse{}, 0, nil
}

func (s *stubAttendanceUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAttendanceRequest) (*dto.AttendanceResponse, error) {
	return &dto.AttendanceResponse{ID: id, Type: "evolution"}, nil
}

func (s *stubAttendanceUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return s.deleteErr
}

func (s *stubAttendanceUsecase) PresignAttachment(ctx context.Context, id uuid.UUID, req *dto.PresignAttachmentRequest) (*dto.PresignAttachmentResponse, error) {
	if s.presignErr != nil {
		return nil, s.presignErr
	}
	return &dto.PresignAttachmentResponse{
		UploadURL: "https://storage.test/upload",
		FileURL:   "https://storage.test/file",
		Key:       fmt.Sprintf("attachments/%s/%s", id, req.Name),
		ExpiresIn: 300,
	}, nil
}

func newAttendanceTestRouter(stub *stubAttendanceUsecase) *mux.Router {
	h := NewAttendanceHandler(stub, validator.NewValidator())

	r := mux.NewRouter()
	r.HandleFunc("/attendances", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/attendances", h.List).Methods(http.MethodGet)
	r.HandleFunc("/attendances/{id}", h.GetByID).Methods(http.MethodGet)
	r.HandleFunc("/attendances/{id}", h.Delete).Methods(http.MethodDelete)
	r.HandleFunc("/attendances/{id}/attachments/presign", h.PresignAttachment).Methods(http.MethodPost)
	return r
}

func attendancePayload(attendanceType string) string {
	return fmt.Sprintf(`{
		"patient_id": %q,
		"professional_id": %q,
		"type": %q,
		"date": "2026-04-10T14:00:00Z"
	}`, uuid.NewString(), uuid.NewString(), attendanceType)
}

func TestAttendanceCreate(t *testing.T) {
	router := newAttendanceTestRouter(&stubAttendanceUsecase{})

	req := httptest.NewRequest(http.MethodPost, "/attendances", bytes.NewBufferString(attendancePayload("evaluation")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", rec.Code, rec.Body.String())
	}
}

func TestAttendanceCreateRejectsUnknownType(t *testing.T) {
	router := newAttendanceTestRouter(&stubAttendanceUsecase{})

	req := httptest.NewRequest(http.MethodPost, "/attendances", bytes.NewBufferString(attendancePayload("consultation")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestAttendanceCreateFinanceAmountNotPositive(t *testing.T) {
	router := newAttendanceTestRouter(&stubAttendanceUsecase{createErr: usecase.ErrFinanceAmountNotPositive})

	req := httptest.NewRequest(http.MethodPost, "/attendances", bytes.NewBufferString(attendancePayload("evolution")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestAttendanceCreatePatientNotFound(t *testing.T) {
	router := newAttendanceTestRouter(&stubAttendanceUsecase{createErr: usecase.ErrPatientNotFound})

	req := httptest.NewRequest(http.MethodPost, "/attendances", bytes.NewBufferString(attendancePayload("evaluation")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestAttendanceDeleteReferencedByPlans(t *testing.T) {
	router := newAttendanceTestRouter(&stubAttendanceUsecase{deleteErr: usecase.ErrAttendanceInUse})

	req := httptest.NewRequest(http.MethodDelete, "/attendances/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestAttendanceListTypeFilter(t *testing.T) {
	stub := &stubAttendanceUsecase{}
	router := newAttendanceTestRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/attendances?type=evaluation", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if stub.lastFilter == nil || stub.lastFilter.Type == nil || *stub.lastFilter.Type != entity.AttendanceTypeEvaluation {
		t.Errorf("filter = %+v, want type EVALUATION", stub.lastFilter)
	}
}

func TestAttendanceListRejectsUnknownTypeFilter(t *testing.T) {
	router := newAttendanceTestRouter(&stubAttendanceUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/attendances?type=checkup", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestAttendancePresignAttachment(t *testing.T) {
	router := newAttendanceTestRouter(&stubAttendanceUsecase{})

	payload := `{"name": "exam.pdf", "type": "application/pdf", "size": 1024}`
	req := httptest.NewRequest(http.MethodPost, "/attendances/"+uuid.NewString()+"/attachments/presign", bytes.NewBufferString(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
}

func TestAttendancePresignAttachmentMissingFields(t *testing.T) {
	router := newAttendanceTestRouter(&stubAttendanceUsecase{})

	payload := `{"name": "exam.pdf"}`
	req := httptest.NewRequest(http.MethodPost, "/attendances/"+uuid.NewString()+"/attachments/presign", bytes.NewBufferString(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestAttendancePresignAttachmentNotFound(t *testing.T) {
	router := newAttendanceTestRouter(&stubAttendanceUsecase{presignErr: usecase.ErrAttendanceNotFound})

	payload := `{"name": "exam.pdf", "type": "application/pdf", "size": 1024}`
	req := httptest.NewRequest(http.MethodPost, "/attendances/"+uuid.NewString()+"/attachments/presign", bytes.NewBufferString(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
