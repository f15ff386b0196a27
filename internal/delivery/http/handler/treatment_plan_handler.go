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

var treatmentPlanListOptions = dto.ListQueryOptions{
	DefaultSortBy:    "created_at",
	DefaultSortOrder: "desc",
	SortColumns: map[string]string{
		"session_count": "session_count",
		"created_at":    "created_at",
	},
}

type TreatmentPlanHandler struct {
	planUsecase usecase.TreatmentPlanUsecase
	validator   *validator.CustomValidator
}

func NewTreatmentPlanHandler(planUsecase usecase.TreatmentPlanUsecase, validator *validator.CustomValidator) *TreatmentPlanHandler {
	return &TreatmentPlanHandler{
		planUsecase: planUsecase,
		validator:   validator,
	}
}

// Create handles treatment plan creation
// @Summary Create a treatment plan
// @Description Create a care plan from an evaluation attendance
// @Tags TreatmentPlans
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateTreatmentPlanRequest true "Create Treatment Plan Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /treatment-plans [post]
func (h *TreatmentPlanHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTreatmentPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	plan, err := h.planUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrAttendanceNotFound:
			response.NotFound(w, "Attendance not found")
		case usecase.ErrAttendanceNotEvaluation:
			response.Conflict(w, "Treatment plans can only be created from an evaluation attendance")
		case usecase.ErrAttendancePatientMismatch:
			response.Conflict(w, "Attendance does not belong to the given patient")
		default:
			response.InternalServerError(w, "Failed to create treatment plan")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Treatment plan created successfully", plan)
}

// List handles listing treatment plans
// @Summary List treatment plans
// @Tags TreatmentPlans
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /treatment-plans [get]
func (h *TreatmentPlanHandler) List(w http.ResponseWriter, r *http.Request) {
	q, err := dto.ParseListQuery(r.URL.Query(), treatmentPlanListOptions)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	plans, total, err := h.planUsecase.List(r.Context(), q)
	if err != nil {
		response.InternalServerError(w, "Failed to list treatment plans")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Treatment plans retrieved successfully", plans, response.NewMeta(q.Page, q.Limit, total))
}

// GetByID handles getting a treatment plan by ID
// @Summary Get treatment plan by ID
// @Tags TreatmentPlans
// @Security BearerAuth
// @Produce json
// @Param id path string true "Treatment Plan ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /treatment-plans/{id} [get]
func (h *TreatmentPlanHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid treatment plan ID", nil)
		return
	}

	plan, err := h.planUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrTreatmentPlanNotFound:
			response.NotFound(w, "Treatment plan not found")
		default:
			response.InternalServerError(w, "Failed to get treatment plan")
		}
		return
	}

	response.Success(w, http.StatusOK, "Treatment plan retrieved successfully", plan)
}

// Update handles partial treatment plan update
// @Summary Update a treatment plan
// @Tags TreatmentPlans
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Treatment Plan ID"
// @Param request body dto.UpdateTreatmentPlanRequest true "Update Treatment Plan Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /treatment-plans/{id} [put]
func (h *TreatmentPlanHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid treatment plan ID", nil)
		return
	}

	var req dto.UpdateTreatmentPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	plan, err := h.planUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrTreatmentPlanNotFound:
			response.NotFound(w, "Treatment plan not found")
		default:
			response.InternalServerError(w, "Failed to update treatment plan")
		}
		return
	}

	response.Success(w, http.StatusOK, "Treatment plan updated successfully", plan)
}

// Delete handles treatment plan deletion
// @Summary Delete a treatment plan
// @Tags TreatmentPlans
// @Security BearerAuth
// @Produce json
// @Param id path string true "Treatment Plan ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /treatment-plans/{id} [delete]
func (h *TreatmentPlanHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid treatment plan ID", nil)
		return
	}

	if err := h.planUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrTreatmentPlanNotFound:
			response.NotFound(w, "Treatment plan not found")
		default:
			response.InternalServerError(w, "Failed to delete treatment plan")
		}
		return
	}

	response.Success(w, http.StatusOK, "Treatment plan deleted successfully", nil)
}
