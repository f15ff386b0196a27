package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateMedicalHistoryRequest struct {
	Title       string    `json:"title" validate:"required,max=255"`
	Description *string   `json:"description"`
	RecordedAt  time.Time `json:"recorded_at" validate:"required"`
}

type UpdateMedicalHistoryRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=1,max=255"`
	Description *string    `json:"description"`
	RecordedAt  *time.Time `json:"recorded_at"`
}

// Response DTOs

type MedicalHistoryResponse struct {
	ID          uuid.UUID `json:"id"`
	PatientID   uuid.UUID `json:"patient_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	RecordedAt  time.Time `json:"recorded_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
