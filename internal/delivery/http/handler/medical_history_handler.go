package handler

import (
	"encoding/json"
	"net/http"

	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/usecase"
	"clinic-management-api/pkg/response"
	"clinic-management-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

var medicalHistoryListOptions = dto.ListQueryOptions{
	DefaultSortBy:    "recorded_at",
	DefaultSortOrder: "desc",
	SortColumns: map[string]string{
		"title":       "title",
		"recorded_at": "recorded_at",
		"created_at":  "created_at",
	},
}

type MedicalHistoryHandler struct {
	historyUsecase usecase.MedicalHistoryUsecase
	validator      *validator.CustomValidator
}

func NewMedicalHistoryHandler(historyUsecase usecase.MedicalHistoryUsecase, validator *validator.CustomValidator) *MedicalHistoryHandler {
	return &MedicalHistoryHandler{
		historyUsecase: historyUsecase,
		validator:      validator,
	}
}

// Create handles adding a history entry to a patient
// @Summary Add a medical history entry
// @Tags MedicalHistory
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Patient ID"
// @Param request body dto.CreateMedicalHistoryRequest true "Create Medical History Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patients/{id}/history [post]
func (h *MedicalHistoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	patientID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	var req dto.CreateMedicalHistoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	history, err := h.historyUsecase.Create(r.Context(), patientID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to create medical history entry")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Medical history entry created successfully", history)
}

// List handles listing a patient's history
// @Summary List medical history entries
// @Tags MedicalHistory
// @Security BearerAuth
// @Produce json
// @Param id path string true "Patient ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patients/{id}/history [get]
func (h *MedicalHistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	patientID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	q, err := dto.ParseListQuery(r.URL.Query(), medicalHistoryListOptions)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	histories, total, err := h.historyUsecase.ListByPatient(r.Context(), patientID, q)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to list medical history")
		}
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Medical history retrieved successfully", histories, response.NewMeta(q.Page, q.Limit, total))
}

// Update handles partial history entry update
// @Summary Update a medical history entry
// @Tags MedicalHistory
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Patient ID"
// @Param historyId path string true "History Entry ID"
// @Param request body dto.UpdateMedicalHistoryRequest true "Update Medical History Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patients/{id}/history/{historyId} [put]
func (h *MedicalHistoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	patientID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}
	historyID, err := uuid.Parse(vars["historyId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid history entry ID", nil)
		return
	}

	var req dto.UpdateMedicalHistoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	history, err := h.historyUsecase.Update(r.Context(), patientID, historyID, &req)
	if err != nil {
		switch err {
		case usecase.ErrMedicalHistoryNotFound:
			response.NotFound(w, "Medical history entry not found")
		default:
			response.InternalServerError(w, "Failed to update medical history entry")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medical history entry updated successfully", history)
}

// Delete handles history entry deletion
// @Summary Delete a medical history entry
// @Tags MedicalHistory
// @Security BearerAuth
// @Produce json
// @Param id path string true "Patient ID"
// @Param historyId path string true "History Entry ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patients/{id}/history/{historyId} [delete]
func (h *MedicalHistoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	patientID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}
	historyID, err := uuid.Parse(vars["historyId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid history entry ID", nil)
		return
	}

	if err := h.historyUsecase.Delete(r.Context(), patientID, historyID); err != nil {
		switch err {
		case usecase.ErrMedicalHistoryNotFound:
			response.NotFound(w, "Medical history entry not found")
		default:
			response.InternalServerError(w, "Failed to delete medical history entry")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medical history entry deleted successfully", nil)
}
