package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"clinic-management-api/internal/converter"
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/usecase"
	"clinic-management-api/pkg/response"
	"clinic-management-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

var attendanceListOptions = dto.ListQueryOptions{
	DefaultSortBy:    "date",
	DefaultSortOrder: "desc",
	SortColumns: map[string]string{
		"date":       "date",
		"type":       "type",
		"created_at": "created_at",
	},
}

type AttendanceHandler struct {
	attendanceUsecase usecase.AttendanceUsecase
	validator         *validator.CustomValidator
}

func NewAttendanceHandler(attendanceUsecase usecase.AttendanceUsecase, validator *validator.CustomValidator) *AttendanceHandler {
	return &AttendanceHandler{
		attendanceUsecase: attendanceUsecase,
		validator:         validator,
	}
}

// Create handles attendance creation
// @Summary Create an attendance
// @Description Record a clinical encounter, optionally launching it to finance
// @Tags Attendances
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateAttendanceRequest true "Create Attendance Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /attendances [post]
func (h *AttendanceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	attendance, err := h.attendanceUsecase.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidEnumValue) {
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
			return
		}
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrProfessionalNotFound:
			response.NotFound(w, "Professional not found")
		case usecase.ErrFinanceAmountNotPositive:
			response.Error(w, http.StatusBadRequest, "Finance amount must be greater than zero", nil)
		default:
			response.InternalServerError(w, "Failed to create attendance")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Attendance created successfully", attendance)
}

// List handles listing attendances
// @Summary List attendances
// @Tags Attendances
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param type query string false "Filter by type (evaluation, evolution)"
// @Param patient_id query string false "Filter by patient"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /attendances [get]
func (h *AttendanceHandler) List(w http.ResponseWriter, r *http.Request) {
	q, err := dto.ParseListQuery(r.URL.Query(), attendanceListOptions)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	filter := &entity.AttendanceFilter{
		PatientID: r.URL.Query().Get("patient_id"),
	}
	if raw := r.URL.Query().Get("type"); raw != "" {
		attendanceType, err := converter.AttendanceTypeFromWire(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid attendance type filter", nil)
			return
		}
		filter.Type = &attendanceType
	}

	attendances, total, err := h.attendanceUsecase.List(r.Context(), q, filter)
	if err != nil {
		response.InternalServerError(w, "Failed to list attendances")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Attendances retrieved successfully", attendances, response.NewMeta(q.Page, q.Limit, total))
}

// GetByID handles getting an attendance by ID
// @Summary Get attendance by ID
// @Tags Attendances
// @Security BearerAuth
// @Produce json
// @Param id path string true "Attendance ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /attendances/{id} [get]
func (h *AttendanceHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid attendance ID", nil)
		return
	}

	attendance, err := h.attendanceUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrAttendanceNotFound:
			response.NotFound(w, "Attendance not found")
		default:
			response.InternalServerError(w, "Failed to get attendance")
		}
		return
	}

	response.Success(w, http.StatusOK, "Attendance retrieved successfully", attendance)
}

// Update handles partial attendance update
// @Summary Update an attendance
// @Tags Attendances
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Attendance ID"
// @Param request body dto.UpdateAttendanceRequest true "Update Attendance Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /attendances/{id} [put]
func (h *AttendanceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid attendance ID", nil)
		return
	}

	var req dto.UpdateAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	attendance, err := h.attendanceUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrAttendanceNotFound:
			response.NotFound(w, "Attendance not found")
		default:
			response.InternalServerError(w, "Failed to update attendance")
		}
		return
	}

	response.Success(w, http.StatusOK, "Attendance updated successfully", attendance)
}

// Delete handles attendance deletion
// @Summary Delete an attendance
// @Tags Attendances
// @Security BearerAuth
// @Produce json
// @Param id path string true "Attendance ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /attendances/{id} [delete]
func (h *AttendanceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid attendance ID", nil)
		return
	}

	if err := h.attendanceUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrAttendanceNotFound:
			response.NotFound(w, "Attendance not found")
		case usecase.ErrAttendanceInUse:
			response.Conflict(w, "Attendance is referenced by treatment plans")
		default:
			response.InternalServerError(w, "Failed to delete attendance")
		}
		return
	}

	response.Success(w, http.StatusOK, "Attendance deleted successfully", nil)
}

// PresignAttachment handles direct-upload URL generation
// @Summary Presign an attachment upload
// @Description Get a presigned URL to upload one attachment blob directly to object storage
// @Tags Attendances
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Attendance ID"
// @Param request body dto.PresignAttachmentRequest true "Presign Attachment Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /attendances/{id}/attachments/presign [post]
func (h *AttendanceHandler) PresignAttachment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid attendance ID", nil)
		return
	}

	var req dto.PresignAttachmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	presigned, err := h.attendanceUsecase.PresignAttachment(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrAttendanceNotFound:
			response.NotFound(w, "Attendance not found")
		default:
			response.InternalServerError(w, "Failed to presign attachment upload")
		}
		return
	}

	response.Success(w, http.StatusOK, "Attachment upload presigned successfully", presigned)
}
