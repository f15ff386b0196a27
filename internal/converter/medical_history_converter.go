package converter

import (
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"

	"github.com/google/uuid"
)

// MedicalHistoryToResponse converts a MedicalHistory entity to its wire shape.
func MedicalHistoryToResponse(history *entity.MedicalHistory) *dto.MedicalHistoryResponse {
	if history == nil {
		return nil
	}

	return &dto.MedicalHistoryResponse{
		ID:          history.ID,
		PatientID:   history.PatientID,
		Title:       history.Title,
		Description: history.Description,
		RecordedAt:  history.RecordedAt,
		CreatedAt:   history.CreatedAt,
		UpdatedAt:   history.UpdatedAt,
	}
}

// MedicalHistoriesToResponses converts a slice of MedicalHistory entities.
func MedicalHistoriesToResponses(histories []entity.MedicalHistory) []dto.MedicalHistoryResponse {
	responses := make([]dto.MedicalHistoryResponse, len(histories))
	for i, history := range histories {
		responses[i] = *MedicalHistoryToResponse(&history)
	}
	return responses
}

// MedicalHistoryFromCreateRequest builds a MedicalHistory entity for a patient.
func MedicalHistoryFromCreateRequest(patientID uuid.UUID, req *dto.CreateMedicalHistoryRequest) *entity.MedicalHistory {
	return &entity.MedicalHistory{
		PatientID:   patientID,
		Title:       req.Title,
		Description: CollapseOptional(req.Description),
		RecordedAt:  req.RecordedAt,
	}
}

// ApplyMedicalHistoryUpdate copies the provided fields of a partial update
// onto an existing entity.
func ApplyMedicalHistoryUpdate(history *entity.MedicalHistory, req *dto.UpdateMedicalHistoryRequest) {
	if req.Title != nil {
		history.Title = *req.Title
	}
	if req.Description != nil {
		history.Description = CollapseOptional(req.Description)
	}
	if req.RecordedAt != nil {
		history.RecordedAt = *req.RecordedAt
	}
}
