package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateTreatmentPlanRequest struct {
	PatientID            uuid.UUID `json:"patient_id" validate:"required"`
	AttendanceID         uuid.UUID `json:"attendance_id" validate:"required"`
	ProcedureDescription string    `json:"procedure_description" validate:"required"`
	SessionCount         int       `json:"session_count" validate:"required,gt=0"`
	Resource             *string   `json:"resource"`
	Conducts             *string   `json:"conducts"`
	Objectives           *string   `json:"objectives"`
	Prognosis            *string   `json:"prognosis"`
}

type UpdateTreatmentPlanRequest struct {
	ProcedureDescription *string `json:"procedure_description" validate:"omitempty,min=1"`
	SessionCount         *int    `json:"session_count" validate:"omitempty,gt=0"`
	Resource             *string `json:"resource"`
	Conducts             *string `json:"conducts"`
	Objectives           *string `json:"objectives"`
	Prognosis            *string `json:"prognosis"`
}

// Response DTOs

type TreatmentPlanResponse struct {
	ID                   uuid.UUID        `json:"id"`
	PatientID            uuid.UUID        `json:"patient_id"`
	AttendanceID         uuid.UUID        `json:"attendance_id"`
	ProcedureDescription string           `json:"procedure_description"`
	SessionCount         int              `json:"session_count"`
	Resource             *string          `json:"resource,omitempty"`
	Conducts             *string          `json:"conducts,omitempty"`
	Objectives           *string          `json:"objectives,omitempty"`
	Prognosis            *string          `json:"prognosis,omitempty"`
	Patient              *PatientResponse `json:"patient,omitempty"`
	CreatedAt            time.Time        `json:"created_at"`
	UpdatedAt            time.Time        `json:"updated_at"`
}
