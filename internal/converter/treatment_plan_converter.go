package converter

import (
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"

	"github.com/google/uuid"
)

// TreatmentPlanToResponse converts a TreatmentPlan entity to its wire shape.
func TreatmentPlanToResponse(plan *entity.TreatmentPlan) *dto.TreatmentPlanResponse {
	if plan == nil {
		return nil
	}

	resp := &dto.TreatmentPlanResponse{
		ID:                   plan.ID,
		PatientID:            plan.PatientID,
		AttendanceID:         plan.AttendanceID,
		ProcedureDescription: plan.ProcedureDescription,
		SessionCount:         plan.SessionCount,
		Resource:             plan.Resource,
		Conducts:             plan.Conducts,
		Objectives:           plan.Objectives,
		Prognosis:            plan.Prognosis,
		CreatedAt:            plan.CreatedAt,
		UpdatedAt:            plan.UpdatedAt,
	}

	if plan.Patient.ID != uuid.Nil {
		resp.Patient = PatientToResponse(&plan.Patient)
	}

	return resp
}

// TreatmentPlansToResponses converts a slice of TreatmentPlan entities.
func TreatmentPlansToResponses(plans []entity.TreatmentPlan) []dto.TreatmentPlanResponse {
	responses := make([]dto.TreatmentPlanResponse, len(plans))
	for i, plan := range plans {
		responses[i] = *TreatmentPlanToResponse(&plan)
	}
	return responses
}

// TreatmentPlanFromCreateRequest builds a TreatmentPlan entity from a
// validated create payload.
func TreatmentPlanFromCreateRequest(req *dto.CreateTreatmentPlanRequest) *entity.TreatmentPlan {
	return &entity.TreatmentPlan{
		PatientID:            req.PatientID,
		AttendanceID:         req.AttendanceID,
		ProcedureDescription: req.ProcedureDescription,
		SessionCount:         req.SessionCount,
		Resource:             CollapseOptional(req.Resource),
		Conducts:             CollapseOptional(req.Conducts),
		Objectives:           CollapseOptional(req.Objectives),
		Prognosis:            CollapseOptional(req.Prognosis),
	}
}

// ApplyTreatmentPlanUpdate copies the provided fields of a partial update
// onto an existing entity. Patient and attendance links are immutable.
func ApplyTreatmentPlanUpdate(plan *entity.TreatmentPlan, req *dto.UpdateTreatmentPlanRequest) {
	if req.ProcedureDescription != nil {
		plan.ProcedureDescription = *req.ProcedureDescription
	}
	if req.SessionCount != nil {
		plan.SessionCount = *req.SessionCount
	}
	if req.Resource != nil {
		plan.Resource = CollapseOptional(req.Resource)
	}
	if req.Conducts != nil {
		plan.Conducts = CollapseOptional(req.Conducts)
	}
	if req.Objectives != nil {
		plan.Objectives = CollapseOptional(req.Objectives)
	}
	if req.Prognosis != nil {
		plan.Prognosis = CollapseOptional(req.Prognosis)
	}
}
